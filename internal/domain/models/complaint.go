package models

// 投诉状态枚举
const (
	ComplaintStatusPending  = "pending"  // 待处理
	ComplaintStatusResolved = "resolved" // 已处理
)

// Complaint 表示居民提交的投诉
type Complaint struct {
	BaseModel
	Title      string `gorm:"type:varchar(255);not null" json:"title"`
	Content    string `gorm:"type:text" json:"content"`
	Status     string `gorm:"type:varchar(20);default:'pending'" json:"status"` // pending, resolved，仅限管理人员变更
	IsResolved bool   `gorm:"default:false" json:"is_resolved"`                 // 仅限管理人员变更

	ResidentID uint `gorm:"not null" json:"resident_id"` // 提交投诉的居民ID

	// Relations - 关联关系
	Resident  *Resident           `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Responses []ComplaintResponse `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE" json:"responses,omitempty"` // 工作人员的回复（一对多）
}

// ComplaintResponse 表示管理人员对投诉的回复
type ComplaintResponse struct {
	BaseModel
	Content string `gorm:"type:text;not null" json:"content"`

	ComplaintID uint `gorm:"not null" json:"complaint_id"` // 所属投诉ID
	ResponderID uint `gorm:"not null" json:"responder_id"` // 回复人账号ID，必须为管理人员

	// Relations - 关联关系
	Complaint *Complaint `gorm:"foreignKey:ComplaintID" json:"complaint,omitempty"`
	Responder *User      `gorm:"foreignKey:ResponderID" json:"responder,omitempty"`
}
