package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceApartmentService 定义公寓服务接口
type InterfaceApartmentService interface {
	GetAllApartments(page, pageSize int) ([]models.Apartment, int64, error)
	GetApartmentByID(id uint) (*models.Apartment, error)
	CreateApartment(apartment *models.Apartment) error
	UpdateApartment(id uint, updates map[string]interface{}) (*models.Apartment, error)
	DeleteApartment(id uint) error
	GetApartmentResidents(apartmentID uint, page, pageSize int) ([]models.Resident, int64, error)
}

// ApartmentService 提供公寓相关的服务
type ApartmentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewApartmentService 创建一个新的公寓服务
func NewApartmentService(db *gorm.DB, cfg *config.Config) InterfaceApartmentService {
	return &ApartmentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllApartments 获取所有启用状态的公寓列表，支持分页
func (s *ApartmentService) GetAllApartments(page, pageSize int) ([]models.Apartment, int64, error) {
	var apartments []models.Apartment
	var total int64

	if err := s.DB.Model(&models.Apartment{}).Where("active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Where("active = ?", true).Preload("Building").Limit(pageSize).Offset(offset).Find(&apartments).Error; err != nil {
		return nil, 0, err
	}

	return apartments, total, nil
}

// 2. GetApartmentByID 根据ID获取公寓
func (s *ApartmentService) GetApartmentByID(id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	if err := s.DB.Preload("Building").First(&apartment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrApartmentNotFound)
		}
		return nil, err
	}
	return &apartment, nil
}

// 3. CreateApartment 创建新公寓
func (s *ApartmentService) CreateApartment(apartment *models.Apartment) error {
	// 楼层必须大于等于1
	if apartment.Floor < 1 {
		return code.NewErrorWithMessage(code.ErrValidation, "楼层必须大于等于1")
	}

	// 验证所属楼栋存在
	var building models.Building
	if err := s.DB.First(&building, apartment.BuildingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NewError(code.ErrBuildingNotFound)
		}
		return err
	}

	// 验证公寓编号在楼栋内唯一
	var count int64
	if err := s.DB.Model(&models.Apartment{}).Where("building_id = ? AND number = ?", apartment.BuildingID, apartment.Number).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrApartmentAlreadyExist)
	}

	apartment.Active = true
	return s.DB.Create(apartment).Error
}

// 4. UpdateApartment 更新公寓信息，户主字段只读，由居民写入路径维护
func (s *ApartmentService) UpdateApartment(id uint, updates map[string]interface{}) (*models.Apartment, error) {
	apartment, err := s.GetApartmentByID(id)
	if err != nil {
		return nil, err
	}

	// 户主只能通过居民的户主分配流程变更
	delete(updates, "household_head")
	delete(updates, "household_head_id")

	if floor, ok := updates["floor"].(float64); ok && floor < 1 {
		return nil, code.NewErrorWithMessage(code.ErrValidation, "楼层必须大于等于1")
	}

	// 如果更新公寓编号或楼栋，需要检查楼栋内唯一性
	number, hasNumber := updates["number"].(string)
	buildingID, hasBuildingID := toUint(updates["building_id"])

	if hasNumber || hasBuildingID {
		checkNumber := apartment.Number
		if hasNumber {
			checkNumber = number
		}
		checkBuildingID := apartment.BuildingID
		if hasBuildingID {
			checkBuildingID = buildingID
		}

		var count int64
		if err := s.DB.Model(&models.Apartment{}).Where("building_id = ? AND number = ? AND id != ?", checkBuildingID, checkNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.NewError(code.ErrApartmentAlreadyExist)
		}
	}

	// 按ID更新，避免已加载的关联把外键改回旧值
	if err := s.DB.Model(&models.Apartment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetApartmentByID(id)
}

// 5. DeleteApartment 停用公寓（软删除）
func (s *ApartmentService) DeleteApartment(id uint) error {
	apartment, err := s.GetApartmentByID(id)
	if err != nil {
		return err
	}

	return s.DB.Model(apartment).Update("active", false).Error
}

// 6. GetApartmentResidents 获取指定公寓内的居民列表
func (s *ApartmentService) GetApartmentResidents(apartmentID uint, page, pageSize int) ([]models.Resident, int64, error) {
	if _, err := s.GetApartmentByID(apartmentID); err != nil {
		return nil, 0, err
	}

	var residents []models.Resident
	var total int64

	query := s.DB.Model(&models.Resident{}).Where("apartment_id = ?", apartmentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&residents).Error; err != nil {
		return nil, 0, err
	}

	return residents, total, nil
}

// toUint 从更新映射中提取无符号整数，JSON解码的数值默认为float64
func toUint(v interface{}) (uint, bool) {
	switch value := v.(type) {
	case uint:
		return value, true
	case int:
		if value >= 0 {
			return uint(value), true
		}
	case float64:
		if value >= 0 {
			return uint(value), true
		}
	}
	return 0, false
}
