package services

import (
	"errors"
	"testing"

	"community-http-service/internal/domain/models"
)

func TestCreateNotice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)

	notice, err := svc.CreateNotice("停水通知", "本周六上午九点停水检修", secretary.ID)
	if err != nil {
		t.Fatalf("create notice: %v", err)
	}
	if notice.Title != "停水通知" {
		t.Fatalf("unexpected title: %s", notice.Title)
	}
	if notice.UserID != secretary.ID {
		t.Fatalf("expected author %d got %d", secretary.ID, notice.UserID)
	}
}

func TestCreateNoticeMissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)

	if _, err := svc.CreateNotice("", "内容", secretary.ID); !errors.Is(err, ErrNoticeFieldsRequired) {
		t.Fatalf("expected ErrNoticeFieldsRequired got %v", err)
	}
	if _, err := svc.CreateNotice("标题", "", secretary.ID); !errors.Is(err, ErrNoticeFieldsRequired) {
		t.Fatalf("expected ErrNoticeFieldsRequired got %v", err)
	}
}

func TestGetAllNoticesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)
	if _, err := svc.CreateNotice("第一条", "内容一", secretary.ID); err != nil {
		t.Fatalf("create notice: %v", err)
	}
	if _, err := svc.CreateNotice("第二条", "内容二", secretary.ID); err != nil {
		t.Fatalf("create notice: %v", err)
	}

	notices, err := svc.GetAllNotices()
	if err != nil {
		t.Fatalf("get notices: %v", err)
	}
	if len(notices) != 2 {
		t.Fatalf("expected 2 notices got %d", len(notices))
	}
	if notices[0].Author == nil || notices[0].Author.ID != secretary.ID {
		t.Fatalf("author must be preloaded")
	}
}

func TestDeleteNoticePermissions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)
	other := createUser(t, db, "other@example.com", models.RoleSecretary)
	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)

	notice, err := svc.CreateNotice("临时通知", "电梯检修", secretary.ID)
	if err != nil {
		t.Fatalf("create notice: %v", err)
	}

	if err := svc.DeleteNotice(notice.ID, callerFor(tenant)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
	// 其他秘书也可以删除
	if err := svc.DeleteNotice(notice.ID, callerFor(other)); err != nil {
		t.Fatalf("secretary delete: %v", err)
	}
	if err := svc.DeleteNotice(notice.ID, callerFor(secretary)); !errors.Is(err, ErrNoticeNotFound) {
		t.Fatalf("expected ErrNoticeNotFound got %v", err)
	}
}
