package models

import (
	"strings"
	"time"
)

// Role 表示用户在小区系统中的角色
type Role string

const (
	// RoleTenant 租户
	RoleTenant Role = "TENANT"
	// RoleOwner 业主
	RoleOwner Role = "OWNER"
	// RoleSecretary 物业秘书，拥有管理权限
	RoleSecretary Role = "SECRETARY"
	// RoleStaff 物业员工
	RoleStaff Role = "STAFF"
)

// ParseRole 将任意大小写的角色字符串规范化为封闭枚举，
// 无法识别时返回 false
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleTenant:
		return RoleTenant, true
	case RoleOwner:
		return RoleOwner, true
	case RoleSecretary:
		return RoleSecretary, true
	case RoleStaff:
		return RoleStaff, true
	default:
		return "", false
	}
}

// HasStaffRecord 判断该角色是否需要关联员工记录
func (r Role) HasStaffRecord() bool {
	return r == RoleStaff || r == RoleSecretary
}

// User represents a registered community member
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(50)" json:"name"`
	PasswordHash *string   `gorm:"type:varchar(100)" json:"-"` // 不在JSON中暴露密码哈希，未设置密码的账户为NULL
	Role         Role      `gorm:"type:varchar(20);not null;default:'TENANT'" json:"role"`
	Block        *string   `gorm:"type:varchar(10)" json:"block,omitempty"`
	FlatNo       *string   `gorm:"type:varchar(10)" json:"flat_no,omitempty"`
	Photo        *string   `gorm:"type:varchar(255)" json:"photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联关系
	Staff *Staff `gorm:"foreignKey:UserID" json:"staff,omitempty"` // 员工角色关联的员工记录
}
