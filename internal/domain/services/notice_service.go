package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

// InterfaceNoticeService 定义公告服务接口
type InterfaceNoticeService interface {
	GetAllNotices() ([]models.Notice, error)
	CreateNotice(title, content string, authorID uint) (*models.Notice, error)
	DeleteNotice(id uint, caller Caller) error
}

// NoticeService 提供公告相关的服务
type NoticeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNoticeService 创建一个新的公告服务
func NewNoticeService(db *gorm.DB, cfg *config.Config) InterfaceNoticeService {
	return &NoticeService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllNotices 获取所有公告，按创建时间倒序，附带发布人信息
func (s *NoticeService) GetAllNotices() ([]models.Notice, error) {
	var notices []models.Notice
	err := s.DB.
		Preload("Author").
		Order("created_at DESC").
		Find(&notices).Error
	if err != nil {
		return nil, err
	}
	return notices, nil
}

// 2 CreateNotice 发布公告，标题和内容都不能为空
func (s *NoticeService) CreateNotice(title, content string, authorID uint) (*models.Notice, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrNoticeFieldsRequired
	}

	notice := models.Notice{
		Title:   title,
		Content: content,
		UserID:  authorID,
	}
	if err := s.DB.Create(&notice).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Author").First(&notice, notice.ID).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// 3 DeleteNotice 删除公告：仅发布人本人或秘书可以操作
func (s *NoticeService) DeleteNotice(id uint, caller Caller) error {
	var notice models.Notice
	if err := s.DB.First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		return err
	}

	if notice.UserID != caller.UserID && !caller.IsSecretary() {
		return ErrForbidden
	}

	return s.DB.Delete(&notice).Error
}
