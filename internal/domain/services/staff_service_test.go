package services

import (
	"errors"
	"testing"

	"community-http-service/internal/domain/models"
)

func TestCreateStaffDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStaffService(db, testConfig())

	staff, err := svc.CreateStaff("Ravi", "", false)
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	if staff.RoleLabel != "STAFF" {
		t.Fatalf("expected default label STAFF got %s", staff.RoleLabel)
	}
	if staff.UserID != nil {
		t.Fatalf("directly created staff must not be linked to a user")
	}

	if _, err := svc.CreateStaff("  ", "Cleaning", false); !errors.Is(err, ErrStaffNameRequired) {
		t.Fatalf("expected ErrStaffNameRequired got %v", err)
	}
}

func TestGetAllStaffSortedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStaffService(db, testConfig())

	if _, err := svc.CreateStaff("Zhang", "Cleaning", false); err != nil {
		t.Fatalf("create staff: %v", err)
	}
	if _, err := svc.CreateStaff("Anand", "Plumbing", true); err != nil {
		t.Fatalf("create staff: %v", err)
	}

	staff, err := svc.GetAllStaff()
	if err != nil {
		t.Fatalf("get staff: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("expected 2 staff got %d", len(staff))
	}
	if staff[0].Name != "Anand" {
		t.Fatalf("expected name order, got %s first", staff[0].Name)
	}
}

func TestUpdateStaffDuty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStaffService(db, testConfig())

	staff, err := svc.CreateStaff("Ravi", "Plumbing", false)
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}

	updated, err := svc.UpdateStaffDuty(staff.ID, true)
	if err != nil {
		t.Fatalf("update duty: %v", err)
	}
	if !updated.IsOnDuty {
		t.Fatalf("expected on duty")
	}

	updated, err = svc.UpdateStaffDuty(staff.ID, false)
	if err != nil {
		t.Fatalf("update duty: %v", err)
	}
	if updated.IsOnDuty {
		t.Fatalf("expected off duty")
	}

	if _, err := svc.UpdateStaffDuty(9999, true); !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound got %v", err)
	}
}

func TestGetStaffByUserID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStaffService(db, testConfig())

	worker := createUser(t, db, "worker@example.com", models.RoleStaff)
	staff := createStaffFor(t, db, worker, "Electric")

	found, err := svc.GetStaffByUserID(worker.ID)
	if err != nil {
		t.Fatalf("get staff by user: %v", err)
	}
	if found.ID != staff.ID {
		t.Fatalf("expected staff %d got %d", staff.ID, found.ID)
	}

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	if _, err := svc.GetStaffByUserID(tenant.ID); !errors.Is(err, ErrNoStaffRecord) {
		t.Fatalf("expected ErrNoStaffRecord got %v", err)
	}
}
