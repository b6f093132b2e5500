package services

import (
	"errors"
	"testing"

	"community-http-service/internal/domain/models"
)

func TestCreateMaintenance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)

	record, err := svc.CreateMaintenance(tenant.ID, 1500, "DUE")
	if err != nil {
		t.Fatalf("create maintenance: %v", err)
	}
	if record.Status != models.MaintenanceStatusDue {
		t.Fatalf("expected DUE got %s", record.Status)
	}
	if record.User == nil || record.User.ID != tenant.ID {
		t.Fatalf("user must be preloaded")
	}
}

func TestCreateMaintenanceDefaultStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)

	record, err := svc.CreateMaintenance(tenant.ID, 800, "")
	if err != nil {
		t.Fatalf("create maintenance: %v", err)
	}
	if record.Status != models.MaintenanceStatusPending {
		t.Fatalf("expected PENDING got %s", record.Status)
	}
}

func TestCreateMaintenanceValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)

	if _, err := svc.CreateMaintenance(0, 100, ""); !errors.Is(err, ErrMaintenanceUserRequired) {
		t.Fatalf("expected ErrMaintenanceUserRequired got %v", err)
	}
	if _, err := svc.CreateMaintenance(tenant.ID, 100, "UNKNOWN"); !errors.Is(err, ErrMaintenanceStatusInvalid) {
		t.Fatalf("expected ErrMaintenanceStatusInvalid got %v", err)
	}
	if _, err := svc.CreateMaintenance(9999, 100, "PAID"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}
}

func TestGetAllMaintenanceNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(db, testConfig())

	tenant := createUser(t, db, "tenant@example.com", models.RoleTenant)
	if _, err := svc.CreateMaintenance(tenant.ID, 500, "PAID"); err != nil {
		t.Fatalf("create maintenance: %v", err)
	}
	if _, err := svc.CreateMaintenance(tenant.ID, 600, "DUE"); err != nil {
		t.Fatalf("create maintenance: %v", err)
	}

	records, err := svc.GetAllMaintenance()
	if err != nil {
		t.Fatalf("get maintenance: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records got %d", len(records))
	}
}
