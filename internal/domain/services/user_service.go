package services

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
	"community-http-service/pkg/utils"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// RegisterInput 表示注册请求的输入
type RegisterInput struct {
	Email      string
	Name       string
	Password   string
	Role       string // TENANT/OWNER/WORKER，WORKER会被映射为STAFF
	Block      string
	FlatNo     string
	WorkerType string // WORKER注册时的工种分类
}

// UpdateProfileInput 表示个人资料更新的输入，nil字段表示不修改
type UpdateProfileInput struct {
	Name  *string
	Photo *string
}

// InterfaceUserService 定义用户服务接口
type InterfaceUserService interface {
	Register(input RegisterInput) (*models.User, error)
	GetProfile(id uint) (*models.User, error)
	UpdateProfile(id uint, input UpdateProfileInput) (*models.User, error)
	UpdateUserRole(id uint, role models.Role) (*models.User, error)
}

// UserService 提供用户账户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Register 注册新用户。
// 员工类角色(STAFF/SECRETARY，包括WORKER映射来的STAFF)会在同一事务内
// 创建关联的员工记录，两者要么都创建要么都不创建。
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExist
	}

	// WORKER是注册时的伪角色，落库为STAFF并携带工种分类
	role := models.RoleTenant
	workerType := ""
	switch strings.ToUpper(strings.TrimSpace(input.Role)) {
	case "WORKER":
		role = models.RoleStaff
		workerType = strings.TrimSpace(input.WorkerType)
		if workerType == "" {
			workerType = "WORKER"
		}
	default:
		if r, ok := models.ParseRole(input.Role); ok {
			role = r
		}
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: &hashedPassword,
		Role:         role,
	}
	if input.Block != "" {
		user.Block = &input.Block
	}
	if input.FlatNo != "" {
		user.FlatNo = &input.FlatNo
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		if user.Role.HasStaffRecord() {
			name := user.Name
			if name == "" {
				name = user.Email
			}
			label := workerType
			if label == "" {
				label = string(user.Role)
			}
			staff := models.Staff{
				Name:      name,
				RoleLabel: label,
				IsOnDuty:  false,
				UserID:    &user.ID,
			}
			if err := tx.Create(&staff).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(user.ID)
}

// 2 GetProfile 获取用户资料（附带员工记录）
func (s *UserService) GetProfile(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Staff").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// 3 UpdateProfile 更新用户自己的姓名和头像
func (s *UserService) UpdateProfile(id uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrNameRequired
		}
		updates["name"] = *input.Name
	}
	if input.Photo != nil {
		updates["photo"] = *input.Photo
	}
	if len(updates) == 0 {
		return nil, ErrNameRequired
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProfile(id)
}

// 4 UpdateUserRole 变更用户角色并同步员工记录：
// 升为员工类角色时创建员工记录，降级时删除，角色互换时更新工种标签。
// 用户行和员工行的变更在同一事务内完成。
func (s *UserService) UpdateUserRole(id uint, role models.Role) (*models.User, error) {
	user, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error; err != nil {
			return err
		}

		wasStaff := user.Role.HasStaffRecord()
		isStaff := role.HasStaffRecord()

		switch {
		case isStaff && !wasStaff:
			name := user.Name
			if name == "" {
				name = user.Email
			}
			staff := models.Staff{
				Name:      name,
				RoleLabel: string(role),
				IsOnDuty:  false,
				UserID:    &user.ID,
			}
			return tx.Create(&staff).Error
		case !isStaff && wasStaff && user.Staff != nil:
			return tx.Delete(user.Staff).Error
		case isStaff && wasStaff && user.Staff != nil && user.Role != role:
			return tx.Model(user.Staff).Update("role", string(role)).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(id)
}
