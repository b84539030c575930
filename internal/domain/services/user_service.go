package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUserService 定义账号服务接口
type InterfaceUserService interface {
	GetAllUsers(page, pageSize int) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User, residentID *uint) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	EnsureDefaultAdmin(password string) error
}

// UserService 提供账号相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的账号服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllUsers 获取所有账号列表，支持分页
func (s *UserService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Resident").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// 2. GetUserByID 根据ID获取账号
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Resident").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// 3. CreateUser 注册新账号，可同时关联已有居民（双向一对一在同一事务内建立）
func (s *UserService) CreateUser(user *models.User, residentID *uint) error {
	// 验证登录名唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrUserAlreadyExist)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if residentID != nil {
			var resident models.Resident
			if err := tx.First(&resident, *residentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return code.NewError(code.ErrResidentNotFound)
				}
				return err
			}

			// 居民只能关联一个账号
			if resident.UserID != nil {
				return code.NewErrorWithMessage(code.ErrValidation, "该居民已关联其他账号")
			}
		}

		user.IsActive = true
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if residentID != nil {
			if err := tx.Model(&models.Resident{}).Where("id = ?", *residentID).Update("user_id", user.ID).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// 4. UpdateUser 更新账号信息，is_staff 与 is_active 仅限管理人员维护（在控制器层剥离）
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	if _, err := s.GetUserByID(id); err != nil {
		return nil, err
	}

	// 密码更新走模型钩子重新哈希
	if password, ok := updates["password"].(string); ok {
		hashed, err := models.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// 5. EnsureDefaultAdmin 启动时种子默认管理员账号
func (s *UserService) EnsureDefaultAdmin(password string) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Username: "admin",
		Password: password,
		IsStaff:  true,
		IsActive: true,
	}
	return s.DB.Create(&admin).Error
}
