package services

import (
	"errors"

	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
)

// Caller 表示一次请求的已认证调用者身份
type Caller struct {
	UserID uint
	Email  string
	Role   models.Role
}

// IsSecretary 判断调用者是否为物业秘书
func (c Caller) IsSecretary() bool {
	return c.Role == models.RoleSecretary
}

// findStaffForUser 解析用户关联的员工记录，
// 所有需要"当前用户的员工身份"的地方统一走这里
func findStaffForUser(db *gorm.DB, userID uint) (*models.Staff, error) {
	var staff models.Staff
	if err := db.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoStaffRecord
		}
		return nil, err
	}
	return &staff, nil
}
