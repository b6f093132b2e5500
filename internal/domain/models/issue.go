package models

import (
	"strings"
	"time"
)

// IssueStatus 表示报修工单的状态
type IssueStatus string

const (
	// IssueStatusOpen 待处理
	IssueStatusOpen IssueStatus = "OPEN"
	// IssueStatusInProgress 处理中，已分配给员工
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	// IssueStatusResolved 已解决，可由秘书重新打开
	IssueStatusResolved IssueStatus = "RESOLVED"
)

// ParseIssueStatus 规范化状态字符串，无法识别时返回 false
func ParseIssueStatus(s string) (IssueStatus, bool) {
	switch IssueStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case IssueStatusOpen:
		return IssueStatusOpen, true
	case IssueStatusInProgress:
		return IssueStatusInProgress, true
	case IssueStatusResolved:
		return IssueStatusResolved, true
	default:
		return "", false
	}
}

// Issue represents a reported maintenance problem
type Issue struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Description     string      `gorm:"type:text;not null" json:"description"`
	Status          IssueStatus `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	UserID          *uint       `json:"user_id,omitempty"`           // 报修人
	AssignedStaffID *uint       `json:"assigned_staff_id,omitempty"` // 负责处理的员工
	ResolvedByID    *uint       `json:"resolved_by_id,omitempty"`    // 实际解决的员工
	Resolution      *string     `gorm:"type:text" json:"resolution,omitempty"`
	ResolvedAt      *time.Time  `json:"resolved_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// 关联关系
	Reporter   *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AssignedTo *Staff `gorm:"foreignKey:AssignedStaffID" json:"assigned_to,omitempty"`
	ResolvedBy *Staff `gorm:"foreignKey:ResolvedByID" json:"resolved_by,omitempty"`
}
