package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InterfacePaymentService 定义缴费服务接口
type InterfacePaymentService interface {
	GetAllPayments(actor *perms.Actor, page, pageSize int) ([]models.Payment, int64, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	CreatePayment(actor *perms.Actor, invoiceID uint, method, proofImage string) (*models.Payment, error)
	ReviewPayment(reviewerID, id uint, status string) (*models.Payment, error)
}

// PaymentService 提供缴费相关的服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService 创建一个新的缴费服务
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllPayments 获取缴费记录列表，非管理人员只能看到自己的
func (s *PaymentService) GetAllPayments(actor *perms.Actor, page, pageSize int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := perms.ScopeToResident(s.DB.Model(&models.Payment{}), actor, "resident_id")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Invoice").Preload("Invoice.FeeType").Limit(pageSize).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// 2. GetPaymentByID 根据ID获取缴费记录
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.Preload("Invoice").Preload("Invoice.FeeType").Preload("Resident").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrPaymentNotFound)
		}
		return nil, err
	}
	return &payment, nil
}

// 3. CreatePayment 居民提交缴费。
// 缴费人由当前账号关联的居民推导，账号未关联居民时拒绝；
// 可缴费的账单集合不包含已缴清的账单，引用已缴账单按不存在处理
func (s *PaymentService) CreatePayment(actor *perms.Actor, invoiceID uint, method, proofImage string) (*models.Payment, error) {
	if actor == nil {
		return nil, code.NewError(code.ErrTokenInvalid)
	}
	if !actor.HasResident() {
		return nil, code.NewError(code.ErrUserNoResident)
	}

	if !models.IsValidPaymentMethod(method) {
		return nil, code.NewErrorWithMessage(code.ErrValidation, "缴费方式取值不合法")
	}

	var payment *models.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 锁定账单行，防止并发提交重复缴费
		var invoice models.Invoice
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND paid = ?", invoiceID, false).
			First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return code.NewError(code.ErrInvoiceAlreadyPaid)
			}
			return err
		}

		payment = &models.Payment{
			Method:     method,
			ProofImage: proofImage,
			Status:     models.PaymentStatusPending,
			ResidentID: actor.ResidentID,
			InvoiceID:  invoice.ID,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetPaymentByID(payment.ID)
}

// 4. ReviewPayment 管理人员确认缴费。
// 通过时在同一事务内将对应账单标记为已缴清
func (s *PaymentService) ReviewPayment(reviewerID, id uint, status string) (*models.Payment, error) {
	if status != models.PaymentStatusApproved && status != models.PaymentStatusRejected {
		return nil, code.NewError(code.ErrPaymentStatusInvalid)
	}

	payment, err := s.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(payment).Update("status", status).Error; err != nil {
			return err
		}

		if status == models.PaymentStatusApproved {
			if err := tx.Model(&models.Invoice{}).Where("id = ?", payment.InvoiceID).Update("paid", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPaymentByID(id)
}
