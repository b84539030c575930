package models

// Visitor 表示居民的访客信息
type Visitor struct {
	BaseModel
	FullName               string `gorm:"type:varchar(100);not null" json:"full_name"`
	IdentityCard           string `gorm:"type:varchar(12);unique;not null" json:"identity_card"` // 身份证号，全局唯一
	Phone                  string `gorm:"type:varchar(10)" json:"phone"`
	RelationshipToResident string `gorm:"type:varchar(50)" json:"relationship_to_resident"` // 与居民的关系
	IsApproved             bool   `gorm:"default:false" json:"is_approved"`                 // 审批标志，仅限管理人员修改
	Active                 bool   `gorm:"default:true" json:"active"`

	ResidentID uint `gorm:"not null" json:"resident_id"` // 所属居民ID

	// Relations - 关联关系
	Resident    *Resident    `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	ParkingCard *ParkingCard `gorm:"foreignKey:VisitorID;constraint:OnDelete:CASCADE" json:"parking_card,omitempty"` // 访客的停车卡（一对一）
}
