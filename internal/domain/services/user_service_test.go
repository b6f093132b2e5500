package services

import (
	"errors"
	"testing"

	"community-http-service/internal/domain/models"
)

func TestRegisterTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register(RegisterInput{
		Email:    "Tenant@Example.com",
		Name:     "张三",
		Password: "password123",
		Role:     "TENANT",
		Block:    "B",
		FlatNo:   "302",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "tenant@example.com" {
		t.Fatalf("email must be normalized, got %s", user.Email)
	}
	if user.Role != models.RoleTenant {
		t.Fatalf("expected TENANT got %s", user.Role)
	}
	if user.Staff != nil {
		t.Fatalf("tenant must not have a staff record")
	}
	if user.Block == nil || *user.Block != "B" {
		t.Fatalf("unexpected block: %v", user.Block)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	if _, err := svc.Register(RegisterInput{Email: "", Password: "password123"}); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "not-an-email", Password: "password123"}); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected ErrEmailInvalid got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "123"}); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	input := RegisterInput{Email: "dup@example.com", Password: "password123"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(input); !errors.Is(err, ErrUserAlreadyExist) {
		t.Fatalf("expected ErrUserAlreadyExist got %v", err)
	}
}

func TestRegisterWorkerCreatesStaffRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register(RegisterInput{
		Email:      "plumber@example.com",
		Name:       "Ravi",
		Password:   "password123",
		Role:       "WORKER",
		WorkerType: "Plumbing",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != models.RoleStaff {
		t.Fatalf("WORKER must be stored as STAFF, got %s", user.Role)
	}
	if user.Staff == nil {
		t.Fatalf("worker registration must create a staff record")
	}
	if user.Staff.RoleLabel != "Plumbing" {
		t.Fatalf("expected worker type Plumbing got %s", user.Staff.RoleLabel)
	}
	if user.Staff.IsOnDuty {
		t.Fatalf("new staff must start off duty")
	}
}

func TestRegisterWorkerDefaultType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register(RegisterInput{
		Email:    "worker@example.com",
		Password: "password123",
		Role:     "WORKER",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Staff == nil || user.Staff.RoleLabel != "WORKER" {
		t.Fatalf("expected default worker type, got %+v", user.Staff)
	}
	// 姓名缺省回退到邮箱
	if user.Staff.Name != "worker@example.com" {
		t.Fatalf("expected staff name fallback to email, got %s", user.Staff.Name)
	}
}

func TestRegisterUnknownRoleDefaultsToTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register(RegisterInput{
		Email:    "someone@example.com",
		Password: "password123",
		Role:     "SUPERADMIN",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != models.RoleTenant {
		t.Fatalf("expected TENANT got %s", user.Role)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := createUser(t, db, "tenant@example.com", models.RoleTenant)

	name := "李四"
	photo := "https://cdn.example.com/avatar.png"
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Name: &name, Photo: &photo})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "李四" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}
	if updated.Photo == nil || *updated.Photo != photo {
		t.Fatalf("unexpected photo: %v", updated.Photo)
	}

	empty := "  "
	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{Name: &empty}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired got %v", err)
	}
}

func TestUpdateUserRolePromoteToStaff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := createUser(t, db, "tenant@example.com", models.RoleTenant)

	updated, err := svc.UpdateUserRole(user.ID, models.RoleStaff)
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != models.RoleStaff {
		t.Fatalf("expected STAFF got %s", updated.Role)
	}
	if updated.Staff == nil {
		t.Fatalf("promotion must create a staff record")
	}
	if updated.Staff.RoleLabel != "STAFF" {
		t.Fatalf("unexpected staff label: %s", updated.Staff.RoleLabel)
	}
}

func TestUpdateUserRoleDemoteRemovesStaffRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, user, "Plumbing")

	updated, err := svc.UpdateUserRole(user.ID, models.RoleTenant)
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != models.RoleTenant {
		t.Fatalf("expected TENANT got %s", updated.Role)
	}
	if updated.Staff != nil {
		t.Fatalf("demotion must delete the staff record")
	}

	var count int64
	db.Model(&models.Staff{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no staff rows, got %d", count)
	}
}

func TestUpdateUserRoleStaffToSecretary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := createUser(t, db, "worker@example.com", models.RoleStaff)
	createStaffFor(t, db, user, "Plumbing")

	updated, err := svc.UpdateUserRole(user.ID, models.RoleSecretary)
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Staff == nil || updated.Staff.RoleLabel != "SECRETARY" {
		t.Fatalf("expected staff label SECRETARY, got %+v", updated.Staff)
	}
}

func TestUpdateUserRoleNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	if _, err := svc.UpdateUserRole(9999, models.RoleStaff); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}
}
