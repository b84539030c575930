package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceParkingService 定义停车卡服务接口
type InterfaceParkingService interface {
	GetAllParkingCards(actor *perms.Actor, page, pageSize int) ([]models.ParkingCard, int64, error)
	GetParkingCardByID(id uint) (*models.ParkingCard, error)
	CreateParkingCard(card *models.ParkingCard) error
	UpdateParkingCard(id uint, updates map[string]interface{}) (*models.ParkingCard, error)
	DeleteParkingCard(id uint) error
}

// ParkingService 提供停车卡相关的服务
type ParkingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewParkingService 创建一个新的停车卡服务
func NewParkingService(db *gorm.DB, cfg *config.Config) InterfaceParkingService {
	return &ParkingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllParkingCards 获取停车卡列表。
// 非管理人员能看到自己的卡和自己访客的卡
func (s *ParkingService) GetAllParkingCards(actor *perms.Actor, page, pageSize int) ([]models.ParkingCard, int64, error) {
	var cards []models.ParkingCard
	var total int64

	query := s.DB.Model(&models.ParkingCard{})
	if actor == nil {
		query = query.Where("1 = 0")
	} else if !actor.IsStaff {
		query = query.Where(
			"resident_id = ? OR visitor_id IN (?)",
			actor.ResidentID,
			s.DB.Model(&models.Visitor{}).Select("id").Where("resident_id = ?", actor.ResidentID),
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&cards).Error; err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

// 2. GetParkingCardByID 根据ID获取停车卡
func (s *ParkingService) GetParkingCardByID(id uint) (*models.ParkingCard, error) {
	var card models.ParkingCard
	if err := s.DB.Preload("Resident").Preload("Visitor").First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrParkingCardNotFound)
		}
		return nil, err
	}
	return &card, nil
}

// 3. CreateParkingCard 创建新停车卡，卡必须恰好属于居民或访客其中之一
func (s *ParkingService) CreateParkingCard(card *models.ParkingCard) error {
	if err := card.ValidateOwner(); err != nil {
		return code.NewErrorWithMessage(code.ErrParkingCardOwner, err.Error())
	}

	if card.VehicleType != "" && !models.IsValidVehicleType(card.VehicleType) {
		return code.NewErrorWithMessage(code.ErrValidation, "车辆类型取值不合法")
	}

	// 验证所属人存在
	if card.ResidentID != nil {
		var resident models.Resident
		if err := s.DB.First(&resident, *card.ResidentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.NewError(code.ErrResidentNotFound)
			}
			return err
		}
	}
	if card.VisitorID != nil {
		var visitor models.Visitor
		if err := s.DB.First(&visitor, *card.VisitorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.NewError(code.ErrVisitorNotFound)
			}
			return err
		}
	}

	// 验证卡号唯一性
	var count int64
	if err := s.DB.Model(&models.ParkingCard{}).Where("card_number = ?", card.CardNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrParkingCardAlreadyExist)
	}

	return s.DB.Create(card).Error
}

// 4. UpdateParkingCard 更新停车卡，变更所属人时重新校验二选一约束
func (s *ParkingService) UpdateParkingCard(id uint, updates map[string]interface{}) (*models.ParkingCard, error) {
	card, err := s.GetParkingCardByID(id)
	if err != nil {
		return nil, err
	}

	// 构造更新之后的所属人组合再校验
	next := models.ParkingCard{ResidentID: card.ResidentID, VisitorID: card.VisitorID}
	if raw, ok := updates["resident_id"]; ok {
		if raw == nil {
			next.ResidentID = nil
		} else if residentID, ok := toUint(raw); ok {
			next.ResidentID = &residentID
		}
	}
	if raw, ok := updates["visitor_id"]; ok {
		if raw == nil {
			next.VisitorID = nil
		} else if visitorID, ok := toUint(raw); ok {
			next.VisitorID = &visitorID
		}
	}
	if err := next.ValidateOwner(); err != nil {
		return nil, code.NewErrorWithMessage(code.ErrParkingCardOwner, err.Error())
	}

	if vehicleType, ok := updates["vehicle_type"].(string); ok && !models.IsValidVehicleType(vehicleType) {
		return nil, code.NewErrorWithMessage(code.ErrValidation, "车辆类型取值不合法")
	}

	// 如果更新卡号，需要检查唯一性
	if cardNumber, ok := updates["card_number"].(string); ok && cardNumber != card.CardNumber {
		var count int64
		if err := s.DB.Model(&models.ParkingCard{}).Where("card_number = ? AND id != ?", cardNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.NewError(code.ErrParkingCardAlreadyExist)
		}
	}

	// 按ID更新，避免已加载的关联把外键改回旧值
	if err := s.DB.Model(&models.ParkingCard{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetParkingCardByID(id)
}

// 5. DeleteParkingCard 删除停车卡
func (s *ParkingService) DeleteParkingCard(id uint) error {
	card, err := s.GetParkingCardByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(card).Error
}
