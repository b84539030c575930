package models

import "time"

// 与户主的关系枚举
const (
	RelationshipOwner  = "owner"        // 户主
	RelationshipSpouse = "wife/husband" // 配偶
	RelationshipChild  = "child"        // 子女
	RelationshipParent = "parent"       // 父母
	RelationshipOther  = "other"        // 其他
)

// 性别枚举
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Resident 表示居民信息
type Resident struct {
	BaseModel
	Name               string    `gorm:"type:varchar(100);not null" json:"name"`
	IdentityCard       string    `gorm:"type:varchar(12);unique;not null" json:"identity_card"` // 身份证号，全局唯一
	Gender             string    `gorm:"type:varchar(6);default:'Male'" json:"gender"`          // Male, Female
	Birthday           time.Time `json:"birthday"`
	Phone              string    `gorm:"type:varchar(10)" json:"phone"`
	RelationshipToHead string    `gorm:"type:varchar(12);default:'other'" json:"relationship_to_head"` // owner, wife/husband, child, parent, other
	Active             bool      `gorm:"default:true" json:"active"`

	ApartmentID uint  `gorm:"not null" json:"apartment_id"` // 所属公寓ID
	UserID      *uint `gorm:"uniqueIndex" json:"user_id"`   // 关联的登录账号ID（一对一，可为空）

	// Relations - 关联关系
	Apartment  *Apartment  `gorm:"foreignKey:ApartmentID" json:"apartment,omitempty"` // 所属公寓（多对一）
	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	LockerItem *LockerItem `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"locker_item,omitempty"` // 居民的储物柜（一对一）
	Visitors   []Visitor   `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"visitors,omitempty"`    // 居民的访客（一对多）
	Invoices   []Invoice   `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"invoices,omitempty"`    // 居民的账单（一对多）
	Payments   []Payment   `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`    // 居民的缴费记录（一对多）
	Complaints []Complaint `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"complaints,omitempty"`  // 居民的投诉（一对多）
}

// IsValidRelationship 检查与户主关系取值是否合法
func IsValidRelationship(r string) bool {
	switch r {
	case RelationshipOwner, RelationshipSpouse, RelationshipChild, RelationshipParent, RelationshipOther:
		return true
	}
	return false
}
