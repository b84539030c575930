package models

// 缴费方式枚举
const (
	PaymentMethodMomo  = "momo"
	PaymentMethodVNPay = "vnpay"
)

// 缴费状态枚举
const (
	PaymentStatusPending  = "pending"  // 待确认
	PaymentStatusApproved = "approved" // 已通过
	PaymentStatusRejected = "rejected" // 已拒绝
)

// Payment 表示居民针对某张未缴账单提交的缴费记录
type Payment struct {
	BaseModel
	Method     string `gorm:"type:varchar(20);not null" json:"method"`          // momo, vnpay
	ProofImage string `gorm:"type:varchar(255)" json:"proof_image"`             // 缴费凭证图片相对路径，序列化时解析为绝对URL
	Status     string `gorm:"type:varchar(20);default:'pending'" json:"status"` // pending, approved, rejected，仅限管理人员变更

	ResidentID uint `gorm:"not null" json:"resident_id"` // 缴费居民ID，由当前登录账号推导
	InvoiceID  uint `gorm:"not null" json:"invoice_id"`  // 对应账单ID，必须为未缴账单

	// Relations - 关联关系
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Invoice  *Invoice  `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

// IsValidPaymentMethod 检查缴费方式取值是否合法
func IsValidPaymentMethod(m string) bool {
	return m == PaymentMethodMomo || m == PaymentMethodVNPay
}
