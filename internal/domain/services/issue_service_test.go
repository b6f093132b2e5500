package services

import (
	"errors"
	"testing"

	"community-http-service/internal/domain/models"
)

func TestCreateIssue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	issue, err := svc.CreateIssue("水管漏水", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if issue.Status != models.IssueStatusOpen {
		t.Fatalf("expected OPEN got %s", issue.Status)
	}
	if issue.AssignedStaffID != nil {
		t.Fatalf("new issue must not have an assignee")
	}
}

func TestCreateIssueEmptyDescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	if _, err := svc.CreateIssue("   ", nil); !errors.Is(err, ErrIssueDescriptionRequired) {
		t.Fatalf("expected ErrIssueDescriptionRequired got %v", err)
	}
}

func TestTakeIssue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	workerStaff := createStaffFor(t, db, worker, "Plumbing")

	issue, err := svc.CreateIssue("电梯故障", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}

	taken, err := svc.TakeIssue(issue.ID, callerFor(worker), nil)
	if err != nil {
		t.Fatalf("take issue: %v", err)
	}
	if taken.Status != models.IssueStatusInProgress {
		t.Fatalf("expected IN_PROGRESS got %s", taken.Status)
	}
	if taken.AssignedStaffID == nil || *taken.AssignedStaffID != workerStaff.ID {
		t.Fatalf("expected assignee %d got %v", workerStaff.ID, taken.AssignedStaffID)
	}
}

func TestTakeIssueAlreadyTaken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")
	other := createUser(t, db, "other@example.com", models.RoleStaff)
	createStaffFor(t, db, other, "Electric")

	issue, err := svc.CreateIssue("门禁损坏", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("first take: %v", err)
	}

	if _, err := svc.TakeIssue(issue.ID, callerFor(other), nil); !errors.Is(err, ErrIssueAlreadyTaken) {
		t.Fatalf("expected ErrIssueAlreadyTaken got %v", err)
	}
}

func TestTakeIssueWithoutStaffRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)

	issue, err := svc.CreateIssue("楼道灯不亮", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}

	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); !errors.Is(err, ErrNoStaffRecord) {
		t.Fatalf("expected ErrNoStaffRecord got %v", err)
	}
}

func TestTakeIssueSecretaryAssignsExplicitStaff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)
	createStaffFor(t, db, secretary, "SECRETARY")
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	workerStaff := createStaffFor(t, db, worker, "Plumbing")

	issue, err := svc.CreateIssue("垃圾堆积", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}

	taken, err := svc.TakeIssue(issue.ID, callerFor(secretary), &workerStaff.ID)
	if err != nil {
		t.Fatalf("take issue: %v", err)
	}
	if taken.AssignedStaffID == nil || *taken.AssignedStaffID != workerStaff.ID {
		t.Fatalf("expected assignee %d got %v", workerStaff.ID, taken.AssignedStaffID)
	}
}

func TestResolveIssueByAssignee(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	workerStaff := createStaffFor(t, db, worker, "Plumbing")

	issue, err := svc.CreateIssue("水管漏水", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take issue: %v", err)
	}

	resolved, err := svc.ResolveIssue(issue.ID, callerFor(worker), "已更换水管")
	if err != nil {
		t.Fatalf("resolve issue: %v", err)
	}
	if resolved.Status != models.IssueStatusResolved {
		t.Fatalf("expected RESOLVED got %s", resolved.Status)
	}
	if resolved.Resolution == nil || *resolved.Resolution != "已更换水管" {
		t.Fatalf("unexpected resolution: %v", resolved.Resolution)
	}
	if resolved.ResolvedAt == nil {
		t.Fatalf("resolved_at must be set")
	}
	if resolved.ResolvedByID == nil || *resolved.ResolvedByID != workerStaff.ID {
		t.Fatalf("expected resolver %d got %v", workerStaff.ID, resolved.ResolvedByID)
	}
}

func TestResolveIssueDefaultResolution(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")

	issue, err := svc.CreateIssue("灯泡坏了", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take issue: %v", err)
	}

	resolved, err := svc.ResolveIssue(issue.ID, callerFor(worker), " ")
	if err != nil {
		t.Fatalf("resolve issue: %v", err)
	}
	if resolved.Resolution == nil || *resolved.Resolution != "Resolved" {
		t.Fatalf("expected default resolution got %v", resolved.Resolution)
	}
}

func TestResolveIssueByNonAssigneeForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")
	other := createUser(t, db, "other@example.com", models.RoleStaff)
	createStaffFor(t, db, other, "Electric")

	issue, err := svc.CreateIssue("墙面渗水", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take issue: %v", err)
	}

	if _, err := svc.ResolveIssue(issue.ID, callerFor(other), "done"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
}

func TestResolveIssueBySecretary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")
	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)

	issue, err := svc.CreateIssue("车库积水", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take issue: %v", err)
	}

	resolved, err := svc.ResolveIssue(issue.ID, callerFor(secretary), "已安排抽水")
	if err != nil {
		t.Fatalf("resolve issue: %v", err)
	}
	if resolved.Status != models.IssueStatusResolved {
		t.Fatalf("expected RESOLVED got %s", resolved.Status)
	}
}

func TestReopenIssue(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")
	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)

	issue, err := svc.CreateIssue("噪音投诉", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take issue: %v", err)
	}
	if _, err := svc.ResolveIssue(issue.ID, callerFor(worker), "已处理"); err != nil {
		t.Fatalf("resolve issue: %v", err)
	}

	reopened, err := svc.ReopenIssue(issue.ID, callerFor(secretary))
	if err != nil {
		t.Fatalf("reopen issue: %v", err)
	}
	if reopened.Status != models.IssueStatusOpen {
		t.Fatalf("expected OPEN got %s", reopened.Status)
	}
	if reopened.AssignedStaffID != nil || reopened.ResolvedByID != nil {
		t.Fatalf("reopen must clear assignee and resolver")
	}
	if reopened.Resolution != nil || reopened.ResolvedAt != nil {
		t.Fatalf("reopen must clear resolution fields")
	}

	// 重开后的工单可被再次领取
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take after reopen: %v", err)
	}
}

func TestReopenIssueForbiddenForStaff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")

	issue, err := svc.CreateIssue("门铃失灵", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}

	if _, err := svc.ReopenIssue(issue.ID, callerFor(worker)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
}

func TestDeleteIssuePermissions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	other := createUser(t, db, "other@example.com", models.RoleTenant)
	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)

	issue, err := svc.CreateIssue("信箱损坏", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}

	if err := svc.DeleteIssue(issue.ID, callerFor(other)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden got %v", err)
	}
	if err := svc.DeleteIssue(issue.ID, callerFor(tenant)); err != nil {
		t.Fatalf("reporter delete: %v", err)
	}

	issue2, err := svc.CreateIssue("围墙涂鸦", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if err := svc.DeleteIssue(issue2.ID, callerFor(secretary)); err != nil {
		t.Fatalf("secretary delete: %v", err)
	}
	if _, err := svc.GetIssueByID(issue2.ID); !errors.Is(err, ErrIssueNotFound) {
		t.Fatalf("expected ErrIssueNotFound got %v", err)
	}
}

func TestUpdateIssueStatusOpenDelegatesToReopen(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIssueService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, worker, "Plumbing")
	secretary := createUser(t, db, "secretary@example.com", models.RoleSecretary)

	issue, err := svc.CreateIssue("健身房器材损坏", &tenant.ID)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if _, err := svc.TakeIssue(issue.ID, callerFor(worker), nil); err != nil {
		t.Fatalf("take issue: %v", err)
	}

	updated, err := svc.UpdateIssueStatus(issue.ID, callerFor(secretary), models.IssueStatusOpen)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.IssueStatusOpen || updated.AssignedStaffID != nil {
		t.Fatalf("expected reopened issue, got status=%s assignee=%v", updated.Status, updated.AssignedStaffID)
	}
}
