package models

import (
	"strings"
	"time"
)

// MaintenanceStatus 表示物业费缴纳状态
type MaintenanceStatus string

const (
	// MaintenanceStatusPaid 已缴纳
	MaintenanceStatusPaid MaintenanceStatus = "PAID"
	// MaintenanceStatusDue 已到期未缴纳
	MaintenanceStatusDue MaintenanceStatus = "DUE"
	// MaintenanceStatusPending 待确认
	MaintenanceStatusPending MaintenanceStatus = "PENDING"
)

// ParseMaintenanceStatus 规范化缴费状态字符串，无法识别时返回 false
func ParseMaintenanceStatus(s string) (MaintenanceStatus, bool) {
	switch MaintenanceStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case MaintenanceStatusPaid:
		return MaintenanceStatusPaid, true
	case MaintenanceStatusDue:
		return MaintenanceStatusDue, true
	case MaintenanceStatusPending:
		return MaintenanceStatusPending, true
	default:
		return "", false
	}
}

// Maintenance 表示一条物业费缴纳记录，只增不改
type Maintenance struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"not null" json:"user_id"`
	Amount    float64           `gorm:"not null" json:"amount"`
	Status    MaintenanceStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	// 关联关系
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
