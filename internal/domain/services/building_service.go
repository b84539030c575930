package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceBuildingService 定义楼栋服务接口
type InterfaceBuildingService interface {
	GetAllBuildings(page, pageSize int) ([]models.Building, int64, error)
	GetBuildingByID(id uint) (*models.Building, error)
	CreateBuilding(building *models.Building) error
	UpdateBuilding(id uint, updates map[string]interface{}) (*models.Building, error)
	DeleteBuilding(id uint) error
	GetBuildingApartments(buildingID uint, page, pageSize int) ([]models.Apartment, int64, error)
}

// BuildingService 提供楼栋相关的服务
type BuildingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBuildingService 创建一个新的楼栋服务
func NewBuildingService(db *gorm.DB, cfg *config.Config) InterfaceBuildingService {
	return &BuildingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllBuildings 获取所有启用状态的楼栋列表，支持分页
func (s *BuildingService) GetAllBuildings(page, pageSize int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	// 获取总数
	if err := s.DB.Model(&models.Building{}).Where("active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := s.DB.Where("active = ?", true).Limit(pageSize).Offset(offset).Find(&buildings).Error; err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}

// 2. GetBuildingByID 根据ID获取楼栋
func (s *BuildingService) GetBuildingByID(id uint) (*models.Building, error) {
	var building models.Building
	if err := s.DB.First(&building, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrBuildingNotFound)
		}
		return nil, err
	}
	return &building, nil
}

// 3. CreateBuilding 创建新楼栋
func (s *BuildingService) CreateBuilding(building *models.Building) error {
	// 验证楼栋名称唯一性
	var count int64
	if err := s.DB.Model(&models.Building{}).Where("name = ?", building.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return code.NewError(code.ErrBuildingAlreadyExist)
	}

	building.Active = true
	return s.DB.Create(building).Error
}

// 4. UpdateBuilding 更新楼栋信息
func (s *BuildingService) UpdateBuilding(id uint, updates map[string]interface{}) (*models.Building, error) {
	building, err := s.GetBuildingByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新楼栋名称，需要检查唯一性
	if name, ok := updates["name"].(string); ok && name != building.Name {
		var count int64
		if err := s.DB.Model(&models.Building{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, code.NewError(code.ErrBuildingAlreadyExist)
		}
	}

	if err := s.DB.Model(&models.Building{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBuildingByID(id)
}

// 5. DeleteBuilding 停用楼栋（软删除）
func (s *BuildingService) DeleteBuilding(id uint) error {
	building, err := s.GetBuildingByID(id)
	if err != nil {
		return err
	}

	return s.DB.Model(building).Update("active", false).Error
}

// 6. GetBuildingApartments 获取指定楼栋下的公寓列表
func (s *BuildingService) GetBuildingApartments(buildingID uint, page, pageSize int) ([]models.Apartment, int64, error) {
	if _, err := s.GetBuildingByID(buildingID); err != nil {
		return nil, 0, err
	}

	var apartments []models.Apartment
	var total int64

	query := s.DB.Model(&models.Apartment{}).Where("building_id = ? AND active = ?", buildingID, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&apartments).Error; err != nil {
		return nil, 0, err
	}

	return apartments, total, nil
}
