package services

import (
	"errors"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceLockerService 定义储物柜服务接口
type InterfaceLockerService interface {
	GetAllLockerItems(actor *perms.Actor, page, pageSize int) ([]models.LockerItem, int64, error)
	GetLockerItemByID(id uint) (*models.LockerItem, error)
	CreateLockerItem(locker *models.LockerItem) error
	AddItem(lockerID uint, item *models.Item) error
	UpdateItem(lockerID, itemID uint, updates map[string]interface{}) (*models.Item, error)
}

// LockerService 提供储物柜相关的服务
type LockerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLockerService 创建一个新的储物柜服务
func NewLockerService(db *gorm.DB, cfg *config.Config) InterfaceLockerService {
	return &LockerService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllLockerItems 获取储物柜列表，非管理人员只能看到自己的
func (s *LockerService) GetAllLockerItems(actor *perms.Actor, page, pageSize int) ([]models.LockerItem, int64, error) {
	var lockers []models.LockerItem
	var total int64

	query := perms.ScopeToResident(s.DB.Model(&models.LockerItem{}), actor, "resident_id")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Items").Limit(pageSize).Offset(offset).Find(&lockers).Error; err != nil {
		return nil, 0, err
	}

	return lockers, total, nil
}

// 2. GetLockerItemByID 根据ID获取储物柜及柜内包裹
func (s *LockerService) GetLockerItemByID(id uint) (*models.LockerItem, error) {
	var locker models.LockerItem
	if err := s.DB.Preload("Items").Preload("Resident").First(&locker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrLockerNotFound)
		}
		return nil, err
	}
	return &locker, nil
}

// 3. CreateLockerItem 为居民创建储物柜，每人一个
func (s *LockerService) CreateLockerItem(locker *models.LockerItem) error {
	var resident models.Resident
	if err := s.DB.First(&resident, locker.ResidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NewError(code.ErrResidentNotFound)
		}
		return err
	}

	var count int64
	if err := s.DB.Model(&models.LockerItem{}).Where("resident_id = ?", locker.ResidentID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrLockerAlreadyExist)
	}

	return s.DB.Create(locker).Error
}

// 4. AddItem 向储物柜登记新包裹，初始状态为待领取
func (s *LockerService) AddItem(lockerID uint, item *models.Item) error {
	if _, err := s.GetLockerItemByID(lockerID); err != nil {
		return err
	}

	item.LockerItemID = lockerID
	item.Status = models.ItemStatusWaiting
	item.ReceivedAt = nil
	return s.DB.Create(item).Error
}

// 5. UpdateItem 更新包裹信息，状态改为已领取时写入领取时间
func (s *LockerService) UpdateItem(lockerID, itemID uint, updates map[string]interface{}) (*models.Item, error) {
	var item models.Item
	if err := s.DB.Where("id = ? AND locker_item_id = ?", itemID, lockerID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrItemNotFound)
		}
		return nil, err
	}

	if status, ok := updates["status"].(string); ok {
		if status != models.ItemStatusWaiting && status != models.ItemStatusReceived {
			return nil, code.NewErrorWithMessage(code.ErrValidation, "包裹状态取值不合法")
		}
		if status == models.ItemStatusReceived && item.Status != models.ItemStatusReceived {
			updates["received_at"] = time.Now()
		}
	}

	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &item, nil
}
