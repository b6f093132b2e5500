package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
	"community-http-service/pkg/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Staff{}, &models.Issue{}, &models.Notice{}, &models.Maintenance{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret-key",
	}
}

// createUser 创建带密码的测试用户
func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Email:        email,
		Name:         email,
		PasswordHash: &hash,
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

// createStaffFor 为用户创建关联的员工记录
func createStaffFor(t *testing.T, db *gorm.DB, user *models.User, label string) *models.Staff {
	t.Helper()
	staff := models.Staff{
		Name:      user.Name,
		RoleLabel: label,
		UserID:    &user.ID,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return &staff
}

func callerFor(user *models.User) Caller {
	return Caller{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}
