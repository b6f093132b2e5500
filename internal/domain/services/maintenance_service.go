package services

import (
	"errors"

	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

// InterfaceMaintenanceService 定义物业费服务接口
type InterfaceMaintenanceService interface {
	GetAllMaintenance() ([]models.Maintenance, error)
	CreateMaintenance(userID uint, amount float64, status string) (*models.Maintenance, error)
}

// MaintenanceService 提供物业费缴纳记录相关的服务
type MaintenanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceService 创建一个新的物业费服务
func NewMaintenanceService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceService {
	return &MaintenanceService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllMaintenance 获取所有缴费记录，按创建时间倒序，附带用户信息
func (s *MaintenanceService) GetAllMaintenance() ([]models.Maintenance, error) {
	var records []models.Maintenance
	err := s.DB.
		Preload("User").
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// 2 CreateMaintenance 创建缴费记录，状态缺省为PENDING
func (s *MaintenanceService) CreateMaintenance(userID uint, amount float64, status string) (*models.Maintenance, error) {
	if userID == 0 {
		return nil, ErrMaintenanceUserRequired
	}

	parsed := models.MaintenanceStatusPending
	if status != "" {
		var ok bool
		if parsed, ok = models.ParseMaintenanceStatus(status); !ok {
			return nil, ErrMaintenanceStatusInvalid
		}
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	record := models.Maintenance{
		UserID: userID,
		Amount: amount,
		Status: parsed,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("User").First(&record, record.ID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
