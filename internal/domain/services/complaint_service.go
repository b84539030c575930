package services

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceComplaintService 定义投诉服务接口
type InterfaceComplaintService interface {
	GetAllComplaints(actor *perms.Actor, page, pageSize int) ([]models.Complaint, int64, error)
	GetComplaintByID(id uint) (*models.Complaint, error)
	CreateComplaint(actor *perms.Actor, complaint *models.Complaint) error
	UpdateComplaint(actor *perms.Actor, id uint, updates map[string]interface{}) (*models.Complaint, error)
	DeleteComplaint(id uint) error
	AddResponse(responderID, complaintID uint, content string) (*models.ComplaintResponse, error)
}

// ComplaintService 提供投诉相关的服务
type ComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewComplaintService 创建一个新的投诉服务
func NewComplaintService(db *gorm.DB, cfg *config.Config) InterfaceComplaintService {
	return &ComplaintService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllComplaints 获取投诉列表。
// 非管理人员在查询构造阶段就收窄到自己的投诉，不会扫到其他住户的数据
func (s *ComplaintService) GetAllComplaints(actor *perms.Actor, page, pageSize int) ([]models.Complaint, int64, error) {
	var complaints []models.Complaint
	var total int64

	query := perms.ScopeToResident(s.DB.Model(&models.Complaint{}), actor, "resident_id")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&complaints).Error; err != nil {
		return nil, 0, err
	}

	return complaints, total, nil
}

// 2. GetComplaintByID 根据ID获取投诉详情，附带管理人员的回复
func (s *ComplaintService) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.Preload("Responses").Preload("Responses.Responder").Preload("Resident").First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrComplaintNotFound)
		}
		return nil, err
	}
	return &complaint, nil
}

// 3. CreateComplaint 居民提交投诉，状态强制初始化为待处理
func (s *ComplaintService) CreateComplaint(actor *perms.Actor, complaint *models.Complaint) error {
	if actor == nil {
		return code.NewError(code.ErrTokenInvalid)
	}
	if !actor.HasResident() {
		return code.NewError(code.ErrUserNoResident)
	}

	complaint.ResidentID = actor.ResidentID
	complaint.Status = models.ComplaintStatusPending
	complaint.IsResolved = false
	return s.DB.Create(complaint).Error
}

// 4. UpdateComplaint 更新投诉。
// status 和 is_resolved 仅限管理人员变更，非管理人员提交的这两个字段直接丢弃，保持原值
func (s *ComplaintService) UpdateComplaint(actor *perms.Actor, id uint, updates map[string]interface{}) (*models.Complaint, error) {
	if _, err := s.GetComplaintByID(id); err != nil {
		return nil, err
	}

	if actor == nil || !actor.IsStaff {
		delete(updates, "status")
		delete(updates, "is_resolved")
	}

	// 投诉归属不可变更
	delete(updates, "resident_id")

	if status, ok := updates["status"].(string); ok {
		if status != models.ComplaintStatusPending && status != models.ComplaintStatusResolved {
			return nil, code.NewErrorWithMessage(code.ErrValidation, "投诉状态取值不合法")
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetComplaintByID(id)
}

// 5. DeleteComplaint 删除投诉，级联删除回复
func (s *ComplaintService) DeleteComplaint(id uint) error {
	complaint, err := s.GetComplaintByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("complaint_id = ?", complaint.ID).Delete(&models.ComplaintResponse{}).Error; err != nil {
			return err
		}
		return tx.Delete(complaint).Error
	})
}

// 6. AddResponse 管理人员回复投诉，回复人必须是管理账号
func (s *ComplaintService) AddResponse(responderID, complaintID uint, content string) (*models.ComplaintResponse, error) {
	if _, err := s.GetComplaintByID(complaintID); err != nil {
		return nil, err
	}

	var responder models.User
	if err := s.DB.First(&responder, responderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NewError(code.ErrUserNotFound)
		}
		return nil, err
	}
	if !responder.IsStaff {
		return nil, code.NewError(code.ErrResponderNotStaff)
	}

	response := models.ComplaintResponse{
		Content:     content,
		ComplaintID: complaintID,
		ResponderID: responderID,
	}
	if err := s.DB.Create(&response).Error; err != nil {
		return nil, err
	}

	return &response, nil
}
