package models

import "time"

// 包裹状态枚举
const (
	ItemStatusWaiting  = "waiting"  // 待领取
	ItemStatusReceived = "received" // 已领取
)

// LockerItem 表示居民的收件储物柜
type LockerItem struct {
	BaseModel
	LockerNumber string `gorm:"type:varchar(10);not null" json:"locker_number"` // 储物柜编号
	Description  string `gorm:"type:varchar(100)" json:"description"`

	ResidentID uint `gorm:"uniqueIndex;not null" json:"resident_id"` // 所属居民ID（一对一）

	// Relations - 关联关系
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Items    []Item    `gorm:"foreignKey:LockerItemID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 柜内包裹（一对多）
}

// Item 表示储物柜内的一件包裹
type Item struct {
	BaseModel
	NameItem        string     `gorm:"type:varchar(100);not null" json:"name_item"`
	DescriptionItem string     `gorm:"type:varchar(100)" json:"description_item"`
	Status          string     `gorm:"type:varchar(50);default:'waiting'" json:"status"` // waiting, received
	ReceivedAt      *time.Time `json:"received_at"`                                      // 领取时间，状态变为received时写入

	LockerItemID uint `gorm:"not null" json:"locker_item_id"` // 所属储物柜ID

	// Relations - 关联关系
	LockerItem *LockerItem `gorm:"foreignKey:LockerItemID" json:"locker_item,omitempty"`
}
