package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InterfaceResidentService 定义居民服务接口
type InterfaceResidentService interface {
	GetAllResidents(page, pageSize int) ([]models.Resident, int64, error)
	GetResidentByID(id uint) (*models.Resident, error)
	CreateResident(resident *models.Resident) error
	UpdateResident(id uint, updates map[string]interface{}) (*models.Resident, error)
	DeleteResident(id uint) error
	GetResidentInvoices(residentID uint) ([]models.Invoice, error)
	GetResidentParkingCards(residentID uint) ([]models.ParkingCard, error)
	GetResidentLockerItem(residentID uint) (*models.LockerItem, error)
	GetResidentComplaints(residentID uint) ([]models.Complaint, error)
	GetResidentVisitors(residentID uint) ([]models.Visitor, error)
	GetResidentAnswers(residentID uint) ([]models.Answer, error)
}

// ResidentService 提供居民相关的服务
type ResidentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResidentService 创建一个新的居民服务
func NewResidentService(db *gorm.DB, cfg *config.Config) InterfaceResidentService {
	return &ResidentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllResidents 获取所有居民列表，支持分页
func (s *ResidentService) GetAllResidents(page, pageSize int) ([]models.Resident, int64, error) {
	var residents []models.Resident
	var total int64

	if err := s.DB.Model(&models.Resident{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Apartment").Limit(pageSize).Offset(offset).Find(&residents).Error; err != nil {
		return nil, 0, err
	}

	return residents, total, nil
}

// 2. GetResidentByID 根据ID获取居民
func (s *ResidentService) GetResidentByID(id uint) (*models.Resident, error) {
	var resident models.Resident
	if err := s.DB.Preload("Apartment").Preload("User").First(&resident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrResidentNotFound)
		}
		return nil, err
	}
	return &resident, nil
}

// 3. CreateResident 创建新居民。
// 关系为 owner 时在同一事务内完成户主分配：锁定公寓行，
// 公寓已有其他户主则整体失败，居民记录不会残留
func (s *ResidentService) CreateResident(resident *models.Resident) error {
	if !models.IsValidRelationship(resident.RelationshipToHead) {
		return code.NewErrorWithMessage(code.ErrValidation, "与户主关系取值不合法")
	}

	// 验证身份证号唯一性
	var count int64
	if err := s.DB.Model(&models.Resident{}).Where("identity_card = ?", resident.IdentityCard).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrResidentAlreadyExist)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// 锁定公寓行，防止并发写入产生两个户主
		var apartment models.Apartment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&apartment, resident.ApartmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.NewError(code.ErrApartmentNotFound)
			}
			return err
		}

		if resident.RelationshipToHead == models.RelationshipOwner && apartment.HouseholdHeadID != nil {
			return code.NewError(code.ErrHouseholdHeadConflict)
		}

		resident.Active = true
		if err := tx.Create(resident).Error; err != nil {
			return err
		}

		// 户主分配与居民写入同一事务提交
		if resident.RelationshipToHead == models.RelationshipOwner {
			if err := tx.Model(&apartment).Update("household_head_id", resident.ID).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// 4. UpdateResident 更新居民信息。关系改为 owner 时执行与创建相同的户主分配检查
func (s *ResidentService) UpdateResident(id uint, updates map[string]interface{}) (*models.Resident, error) {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return nil, err
	}

	// 关联账号只能通过账号注册流程建立
	delete(updates, "user_id")

	if relationship, ok := updates["relationship_to_head"].(string); ok && !models.IsValidRelationship(relationship) {
		return nil, code.NewErrorWithMessage(code.ErrValidation, "与户主关系取值不合法")
	}

	// 如果更新身份证号，需要检查唯一性
	if identityCard, ok := updates["identity_card"].(string); ok && identityCard != resident.IdentityCard {
		var count int64
		if err := s.DB.Model(&models.Resident{}).Where("identity_card = ? AND id != ?", identityCard, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.NewError(code.ErrResidentAlreadyExist)
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		relationship, changed := updates["relationship_to_head"].(string)
		becomesOwner := changed && relationship == models.RelationshipOwner

		// 搬家并升级户主时，校验的必须是本次更新指向的公寓
		targetApartmentID := resident.ApartmentID
		if raw, ok := toUint(updates["apartment_id"]); ok {
			targetApartmentID = raw
		}

		if becomesOwner || targetApartmentID != resident.ApartmentID {
			var apartment models.Apartment
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&apartment, targetApartmentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return code.NewError(code.ErrApartmentNotFound)
				}
				return err
			}

			if becomesOwner {
				// 公寓已有户主且不是本人时拒绝整个更新
				if apartment.HouseholdHeadID != nil && *apartment.HouseholdHeadID != resident.ID {
					return code.NewError(code.ErrHouseholdHeadConflict)
				}

				if err := tx.Model(&apartment).Update("household_head_id", resident.ID).Error; err != nil {
					return err
				}
			}
		}

		// 按ID更新，避免已加载的关联把外键改回旧值
		return tx.Model(&models.Resident{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetResidentByID(id)
}

// 5. DeleteResident 删除居民，级联清理户主引用
func (s *ResidentService) DeleteResident(id uint) error {
	resident, err := s.GetResidentByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// 如果该居民是户主，同时清空公寓的户主引用
		if err := tx.Model(&models.Apartment{}).
			Where("household_head_id = ?", resident.ID).
			Update("household_head_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(resident).Error
	})
}

// 6. GetResidentInvoices 获取指定居民的账单列表
func (s *ResidentService) GetResidentInvoices(residentID uint) ([]models.Invoice, error) {
	if _, err := s.GetResidentByID(residentID); err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	if err := s.DB.Where("resident_id = ?", residentID).Preload("FeeType").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// 7. GetResidentParkingCards 获取指定居民的停车卡列表
func (s *ResidentService) GetResidentParkingCards(residentID uint) ([]models.ParkingCard, error) {
	if _, err := s.GetResidentByID(residentID); err != nil {
		return nil, err
	}

	var cards []models.ParkingCard
	if err := s.DB.Where("resident_id = ?", residentID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// 8. GetResidentLockerItem 获取指定居民的储物柜及柜内包裹
func (s *ResidentService) GetResidentLockerItem(residentID uint) (*models.LockerItem, error) {
	if _, err := s.GetResidentByID(residentID); err != nil {
		return nil, err
	}

	var locker models.LockerItem
	if err := s.DB.Where("resident_id = ?", residentID).Preload("Items").First(&locker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrLockerNotFound)
		}
		return nil, err
	}
	return &locker, nil
}

// 9. GetResidentComplaints 获取指定居民的投诉列表
func (s *ResidentService) GetResidentComplaints(residentID uint) ([]models.Complaint, error) {
	if _, err := s.GetResidentByID(residentID); err != nil {
		return nil, err
	}

	var complaints []models.Complaint
	if err := s.DB.Where("resident_id = ?", residentID).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// 10. GetResidentVisitors 获取指定居民的访客列表
func (s *ResidentService) GetResidentVisitors(residentID uint) ([]models.Visitor, error) {
	if _, err := s.GetResidentByID(residentID); err != nil {
		return nil, err
	}

	var visitors []models.Visitor
	if err := s.DB.Where("resident_id = ?", residentID).Find(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}

// 11. GetResidentAnswers 获取指定居民账号提交的所有答案
func (s *ResidentService) GetResidentAnswers(residentID uint) ([]models.Answer, error) {
	resident, err := s.GetResidentByID(residentID)
	if err != nil {
		return nil, err
	}
	if resident.UserID == nil {
		return []models.Answer{}, nil
	}

	var answers []models.Answer
	if err := s.DB.
		Joins("JOIN survey_responses ON survey_responses.id = answers.response_id").
		Where("survey_responses.user_id = ?", *resident.UserID).
		Preload("Question").Preload("Choices").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
