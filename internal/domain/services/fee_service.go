package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// InterfaceFeeService 定义费用与账单服务接口
type InterfaceFeeService interface {
	GetAllFeeTypes(page, pageSize int) ([]models.FeeType, int64, error)
	GetFeeTypeByID(id uint) (*models.FeeType, error)
	CreateFeeType(feeType *models.FeeType) error
	UpdateFeeType(id uint, updates map[string]interface{}) (*models.FeeType, error)
	DeleteFeeType(id uint) error

	GetAllInvoices(actor *perms.Actor, page, pageSize int) ([]models.Invoice, int64, error)
	GetInvoiceByID(id uint) (*models.Invoice, error)
	CreateInvoice(invoice *models.Invoice) error
	UpdateInvoice(id uint, updates map[string]interface{}) (*models.Invoice, error)
	DeleteInvoice(id uint) error
	ExportInvoices() (*excelize.File, error)
}

// FeeService 提供费用类别和账单相关的服务
type FeeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFeeService 创建一个新的费用服务
func NewFeeService(db *gorm.DB, cfg *config.Config) InterfaceFeeService {
	return &FeeService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllFeeTypes 获取所有费用类别，支持分页
func (s *FeeService) GetAllFeeTypes(page, pageSize int) ([]models.FeeType, int64, error) {
	var feeTypes []models.FeeType
	var total int64

	if err := s.DB.Model(&models.FeeType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&feeTypes).Error; err != nil {
		return nil, 0, err
	}

	return feeTypes, total, nil
}

// 2. GetFeeTypeByID 根据ID获取费用类别
func (s *FeeService) GetFeeTypeByID(id uint) (*models.FeeType, error) {
	var feeType models.FeeType
	if err := s.DB.First(&feeType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrFeeTypeNotFound)
		}
		return nil, err
	}
	return &feeType, nil
}

// 3. CreateFeeType 创建新费用类别
func (s *FeeService) CreateFeeType(feeType *models.FeeType) error {
	return s.DB.Create(feeType).Error
}

// 4. UpdateFeeType 更新费用类别
func (s *FeeService) UpdateFeeType(id uint, updates map[string]interface{}) (*models.FeeType, error) {
	if _, err := s.GetFeeTypeByID(id); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.FeeType{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetFeeTypeByID(id)
}

// 5. DeleteFeeType 删除费用类别
func (s *FeeService) DeleteFeeType(id uint) error {
	feeType, err := s.GetFeeTypeByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(feeType).Error
}

// 6. GetAllInvoices 获取账单列表，非管理人员只能看到自己的账单
func (s *FeeService) GetAllInvoices(actor *perms.Actor, page, pageSize int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	query := perms.ScopeToResident(s.DB.Model(&models.Invoice{}), actor, "resident_id")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("FeeType").Limit(pageSize).Offset(offset).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// 7. GetInvoiceByID 根据ID获取账单详情
func (s *FeeService) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.DB.Preload("FeeType").Preload("Resident").Preload("Apartment").First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrInvoiceNotFound)
		}
		return nil, err
	}
	return &invoice, nil
}

// 8. CreateInvoice 创建新账单。
// 公寓由居民当前所属公寓推导，防止账单挂到不相干的公寓上
func (s *FeeService) CreateInvoice(invoice *models.Invoice) error {
	var resident models.Resident
	if err := s.DB.First(&resident, invoice.ResidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.NewError(code.ErrResidentNotFound)
		}
		return err
	}

	if _, err := s.GetFeeTypeByID(invoice.FeeTypeID); err != nil {
		return err
	}

	invoice.ApartmentID = resident.ApartmentID
	invoice.Paid = false
	return s.DB.Create(invoice).Error
}

// 9. UpdateInvoice 更新账单信息
func (s *FeeService) UpdateInvoice(id uint, updates map[string]interface{}) (*models.Invoice, error) {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return nil, err
	}

	// 公寓始终由居民推导
	delete(updates, "apartment_id")
	if raw, ok := toUint(updates["resident_id"]); ok && raw != invoice.ResidentID {
		var resident models.Resident
		if err := s.DB.First(&resident, raw).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.NewError(code.ErrResidentNotFound)
			}
			return nil, err
		}
		updates["apartment_id"] = resident.ApartmentID
	}

	// 按ID更新，避免已加载的关联把外键改回旧值
	if err := s.DB.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetInvoiceByID(id)
}

// 10. DeleteInvoice 删除账单
func (s *FeeService) DeleteInvoice(id uint) error {
	invoice, err := s.GetInvoiceByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(invoice).Error
}

// 11. ExportInvoices 导出全部账单为Excel，供管理人员对账
func (s *FeeService) ExportInvoices() (*excelize.File, error) {
	var invoices []models.Invoice
	if err := s.DB.Preload("FeeType").Preload("Resident").Preload("Apartment").Find(&invoices).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Invoices"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "居民", "公寓", "费用类别", "金额", "截止日期", "已缴清"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, invoice := range invoices {
		residentName := ""
		if invoice.Resident != nil {
			residentName = invoice.Resident.Name
		}
		apartmentNumber := ""
		if invoice.Apartment != nil {
			apartmentNumber = invoice.Apartment.Number
		}
		feeTypeName := ""
		if invoice.FeeType != nil {
			feeTypeName = invoice.FeeType.Name
		}

		values := []interface{}{
			invoice.ID,
			residentName,
			apartmentNumber,
			feeTypeName,
			invoice.Amount,
			invoice.DueDate.Format("2006-01-02"),
			invoice.Paid,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
