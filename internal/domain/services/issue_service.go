package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

// 未填写处理说明时的默认值
const defaultResolution = "Resolved"

// InterfaceIssueService 定义报修工单服务接口
type InterfaceIssueService interface {
	GetAllIssues() ([]models.Issue, error)
	GetIssueByID(id uint) (*models.Issue, error)
	CreateIssue(description string, reporterID *uint) (*models.Issue, error)
	TakeIssue(id uint, caller Caller, explicitStaffID *uint) (*models.Issue, error)
	ResolveIssue(id uint, caller Caller, resolution string) (*models.Issue, error)
	ReopenIssue(id uint, caller Caller) (*models.Issue, error)
	UpdateIssueStatus(id uint, caller Caller, status models.IssueStatus) (*models.Issue, error)
	DeleteIssue(id uint, caller Caller) error
}

// IssueService 提供报修工单的状态机逻辑：
// OPEN -> IN_PROGRESS -> RESOLVED，秘书可将 RESOLVED 退回 OPEN
type IssueService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewIssueService 创建一个新的工单服务
func NewIssueService(db *gorm.DB, cfg *config.Config) InterfaceIssueService {
	return &IssueService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllIssues 获取所有工单，按创建时间倒序，附带报修人/负责人/解决人信息
func (s *IssueService) GetAllIssues() ([]models.Issue, error) {
	var issues []models.Issue
	err := s.DB.
		Preload("Reporter").
		Preload("AssignedTo").
		Preload("ResolvedBy").
		Order("created_at DESC").
		Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// 2 GetIssueByID 根据ID获取工单
func (s *IssueService) GetIssueByID(id uint) (*models.Issue, error) {
	var issue models.Issue
	if err := s.DB.First(&issue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// 3 CreateIssue 创建新工单，初始状态为OPEN且没有负责人
func (s *IssueService) CreateIssue(description string, reporterID *uint) (*models.Issue, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrIssueDescriptionRequired
	}

	issue := models.Issue{
		Description: description,
		Status:      models.IssueStatusOpen,
		UserID:      reporterID,
	}
	if err := s.DB.Create(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// 4 TakeIssue 领取工单：分配负责员工并置为IN_PROGRESS。
// 秘书可通过 explicitStaffID 指派任意员工，其他情况解析调用者自己的员工记录。
// 已被领取且不在OPEN状态的工单不允许再次领取，必须先由秘书重新打开。
func (s *IssueService) TakeIssue(id uint, caller Caller, explicitStaffID *uint) (*models.Issue, error) {
	issue, err := s.GetIssueByID(id)
	if err != nil {
		return nil, err
	}

	if issue.Status != models.IssueStatusOpen && issue.AssignedStaffID != nil {
		return nil, ErrIssueAlreadyTaken
	}

	var staffID uint
	if caller.IsSecretary() && explicitStaffID != nil {
		staffID = *explicitStaffID
	} else {
		staff, err := findStaffForUser(s.DB, caller.UserID)
		if err != nil {
			return nil, err
		}
		staffID = staff.ID
	}

	updates := map[string]interface{}{
		"assigned_staff_id": staffID,
		"status":            models.IssueStatusInProgress,
	}
	if err := s.DB.Model(issue).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetIssueByID(id)
}

// 5 ResolveIssue 解决工单：仅秘书或当前负责该工单的员工可以操作
func (s *IssueService) ResolveIssue(id uint, caller Caller, resolution string) (*models.Issue, error) {
	issue, err := s.GetIssueByID(id)
	if err != nil {
		return nil, err
	}

	// 解析调用者的员工记录; 秘书可能没有关联员工记录, 此时解决人留空
	var callerStaff *models.Staff
	if staff, err := findStaffForUser(s.DB, caller.UserID); err == nil {
		callerStaff = staff
	} else if !errors.Is(err, ErrNoStaffRecord) {
		return nil, err
	}

	allowed := caller.IsSecretary()
	if !allowed && caller.Role == models.RoleStaff && callerStaff != nil &&
		issue.AssignedStaffID != nil && *issue.AssignedStaffID == callerStaff.ID {
		allowed = true
	}
	if !allowed {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(resolution) == "" {
		resolution = defaultResolution
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      models.IssueStatusResolved,
		"resolution":  resolution,
		"resolved_at": now,
	}
	if callerStaff != nil {
		updates["resolved_by_id"] = callerStaff.ID
	}
	if err := s.DB.Model(issue).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetIssueByID(id)
}

// 6 ReopenIssue 重新打开已解决的工单：仅秘书可以操作。
// 重新打开会清空负责人和解决信息，工单回到待领取状态。
func (s *IssueService) ReopenIssue(id uint, caller Caller) (*models.Issue, error) {
	if !caller.IsSecretary() {
		return nil, ErrForbidden
	}

	issue, err := s.GetIssueByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":            models.IssueStatusOpen,
		"assigned_staff_id": nil,
		"resolved_by_id":    nil,
		"resolution":        nil,
		"resolved_at":       nil,
	}
	if err := s.DB.Model(issue).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetIssueByID(id)
}

// 7 UpdateIssueStatus 秘书对工单状态的直接改写，OPEN走重新打开逻辑
func (s *IssueService) UpdateIssueStatus(id uint, caller Caller, status models.IssueStatus) (*models.Issue, error) {
	if !caller.IsSecretary() {
		return nil, ErrForbidden
	}

	if status == models.IssueStatusOpen {
		return s.ReopenIssue(id, caller)
	}

	issue, err := s.GetIssueByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(issue).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.GetIssueByID(id)
}

// 8 DeleteIssue 删除工单：仅秘书或报修人本人可以操作
func (s *IssueService) DeleteIssue(id uint, caller Caller) error {
	issue, err := s.GetIssueByID(id)
	if err != nil {
		return err
	}

	if !caller.IsSecretary() && (issue.UserID == nil || *issue.UserID != caller.UserID) {
		return ErrForbidden
	}

	return s.DB.Delete(issue).Error
}
