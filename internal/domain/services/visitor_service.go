package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceVisitorService 定义访客服务接口
type InterfaceVisitorService interface {
	GetAllVisitors(actor *perms.Actor, page, pageSize int) ([]models.Visitor, int64, error)
	GetVisitorByID(id uint) (*models.Visitor, error)
	CreateVisitor(residentID uint, visitor *models.Visitor) error
	UpdateVisitor(actor *perms.Actor, id uint, updates map[string]interface{}) (*models.Visitor, error)
	DeleteVisitor(id uint) error
}

// VisitorService 提供访客相关的服务
type VisitorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisitorService 创建一个新的访客服务
func NewVisitorService(db *gorm.DB, cfg *config.Config) InterfaceVisitorService {
	return &VisitorService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllVisitors 获取访客列表，非管理人员只能看到自己登记的访客
func (s *VisitorService) GetAllVisitors(actor *perms.Actor, page, pageSize int) ([]models.Visitor, int64, error) {
	var visitors []models.Visitor
	var total int64

	query := perms.ScopeToResident(s.DB.Model(&models.Visitor{}).Where("active = ?", true), actor, "resident_id")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&visitors).Error; err != nil {
		return nil, 0, err
	}

	return visitors, total, nil
}

// 2. GetVisitorByID 根据ID获取访客
func (s *VisitorService) GetVisitorByID(id uint) (*models.Visitor, error) {
	var visitor models.Visitor
	if err := s.DB.Preload("Resident").Preload("ParkingCard").First(&visitor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrVisitorNotFound)
		}
		return nil, err
	}
	return &visitor, nil
}

// 3. CreateVisitor 为指定居民登记访客，审批标志初始为未通过
func (s *VisitorService) CreateVisitor(residentID uint, visitor *models.Visitor) error {
	var resident models.Resident
	if err := s.DB.First(&resident, residentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NewError(code.ErrResidentNotFound)
		}
		return err
	}

	// 验证身份证号唯一性
	var count int64
	if err := s.DB.Model(&models.Visitor{}).Where("identity_card = ?", visitor.IdentityCard).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrVisitorAlreadyExist)
	}

	visitor.ResidentID = residentID
	visitor.IsApproved = false
	visitor.Active = true
	return s.DB.Create(visitor).Error
}

// 4. UpdateVisitor 更新访客信息，审批标志仅限管理人员变更
func (s *VisitorService) UpdateVisitor(actor *perms.Actor, id uint, updates map[string]interface{}) (*models.Visitor, error) {
	visitor, err := s.GetVisitorByID(id)
	if err != nil {
		return nil, err
	}

	// 非管理人员提交的审批字段直接丢弃，保持原值
	if actor == nil || !actor.IsStaff {
		delete(updates, "is_approved")
	}

	// 如果更新身份证号，需要检查唯一性
	if identityCard, ok := updates["identity_card"].(string); ok && identityCard != visitor.IdentityCard {
		var count int64
		if err := s.DB.Model(&models.Visitor{}).Where("identity_card = ? AND id != ?", identityCard, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.NewError(code.ErrVisitorAlreadyExist)
		}
	}

	// 按ID更新，避免已加载的关联把外键改回旧值
	if err := s.DB.Model(&models.Visitor{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetVisitorByID(id)
}

// 5. DeleteVisitor 删除访客，级联删除其停车卡
func (s *VisitorService) DeleteVisitor(id uint) error {
	visitor, err := s.GetVisitorByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("visitor_id = ?", visitor.ID).Delete(&models.ParkingCard{}).Error; err != nil {
			return err
		}
		return tx.Delete(visitor).Error
	})
}
