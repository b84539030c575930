package models

import "time"

// FeeType 表示费用类别，如物业费、停车费
type FeeType struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Invoice 表示向居民收取某项费用的账单
type Invoice struct {
	BaseModel
	Amount  float64   `gorm:"not null" json:"amount"`
	DueDate time.Time `json:"due_date"`                  // 缴费截止日期
	Paid    bool      `gorm:"default:false" json:"paid"` // 是否已缴清

	ApartmentID uint `gorm:"not null" json:"apartment_id"` // 所属公寓ID，由居民推导，不能单独指定
	ResidentID  uint `gorm:"not null" json:"resident_id"`  // 账单对应的居民ID
	FeeTypeID   uint `gorm:"not null" json:"fee_type_id"`  // 费用类别ID

	// Relations - 关联关系
	Apartment *Apartment `gorm:"foreignKey:ApartmentID" json:"apartment,omitempty"`
	Resident  *Resident  `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	FeeType   *FeeType   `gorm:"foreignKey:FeeTypeID" json:"fee_type,omitempty"`
	Payments  []Payment  `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"payments,omitempty"` // 账单的缴费记录（一对多）
}
