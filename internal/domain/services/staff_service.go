package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

// InterfaceStaffService 定义物业员工服务接口
type InterfaceStaffService interface {
	GetAllStaff() ([]models.Staff, error)
	GetStaffByID(id uint) (*models.Staff, error)
	GetStaffByUserID(userID uint) (*models.Staff, error)
	CreateStaff(name, roleLabel string, isOnDuty bool) (*models.Staff, error)
	UpdateStaffDuty(id uint, isOnDuty bool) (*models.Staff, error)
}

// StaffService 提供物业员工相关的服务
type StaffService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStaffService 创建一个新的物业员工服务
func NewStaffService(db *gorm.DB, cfg *config.Config) InterfaceStaffService {
	return &StaffService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllStaff 获取所有员工，按姓名排序
func (s *StaffService) GetAllStaff() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Order("name ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// 2 GetStaffByID 根据ID获取员工
func (s *StaffService) GetStaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// 3 GetStaffByUserID 根据关联用户ID获取员工记录
func (s *StaffService) GetStaffByUserID(userID uint) (*models.Staff, error) {
	return findStaffForUser(s.DB, userID)
}

// 4 CreateStaff 创建新员工记录（无关联用户账户）
func (s *StaffService) CreateStaff(name, roleLabel string, isOnDuty bool) (*models.Staff, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrStaffNameRequired
	}
	if strings.TrimSpace(roleLabel) == "" {
		roleLabel = string(models.RoleStaff)
	}

	staff := models.Staff{
		Name:      name,
		RoleLabel: roleLabel,
		IsOnDuty:  isOnDuty,
	}
	if err := s.DB.Create(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// 5 UpdateStaffDuty 切换员工的值班状态
func (s *StaffService) UpdateStaffDuty(id uint, isOnDuty bool) (*models.Staff, error) {
	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(staff).Update("is_on_duty", isOnDuty).Error; err != nil {
		return nil, err
	}
	return s.GetStaffByID(id)
}
