package models

import "errors"

// 车辆类型枚举
const (
	VehicleTypeCar       = "car"       // 汽车
	VehicleTypeMotorbike = "motorbike" // 摩托车
	VehicleTypeBike      = "bike"      // 自行车
	VehicleTypeOther     = "other"     // 其他
)

var (
	// ErrParkingCardNoOwner 停车卡没有所属人
	ErrParkingCardNoOwner = errors.New("停车卡必须属于居民或访客其中之一")
	// ErrParkingCardDualOwner 停车卡同时属于两个所属人
	ErrParkingCardDualOwner = errors.New("停车卡只能属于居民或访客其中之一，不能同时属于两者")
)

// ParkingCard 表示停车卡信息
type ParkingCard struct {
	BaseModel
	CardNumber   string `gorm:"type:varchar(10);unique;not null" json:"card_number"` // 卡号，全局唯一
	LicensePlate string `gorm:"type:varchar(20)" json:"license_plate"`               // 车牌号
	VehicleType  string `gorm:"type:varchar(20)" json:"vehicle_type"`                // car, motorbike, bike, other
	Color        string `gorm:"type:varchar(20);default:'white'" json:"color"`

	ResidentID *uint `gorm:"uniqueIndex" json:"resident_id"` // 所属居民ID（与VisitorID二选一）
	VisitorID  *uint `gorm:"uniqueIndex" json:"visitor_id"`  // 所属访客ID（与ResidentID二选一）

	// Relations - 关联关系
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Visitor  *Visitor  `gorm:"foreignKey:VisitorID" json:"visitor,omitempty"`
}

// ValidateOwner 校验停车卡恰好有一个所属人
func (p *ParkingCard) ValidateOwner() error {
	if p.ResidentID == nil && p.VisitorID == nil {
		return ErrParkingCardNoOwner
	}
	if p.ResidentID != nil && p.VisitorID != nil {
		return ErrParkingCardDualOwner
	}
	return nil
}

// IsValidVehicleType 检查车辆类型取值是否合法
func IsValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorbike, VehicleTypeBike, VehicleTypeOther:
		return true
	}
	return false
}
