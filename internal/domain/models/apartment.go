package models

// Apartment 表示公寓信息
type Apartment struct {
	BaseModel
	Number      string  `gorm:"type:varchar(10);not null;uniqueIndex:uk_apartment_number_building" json:"number"` // 公寓编号，同一楼栋内唯一
	Floor       uint    `gorm:"not null" json:"floor"`                                                            // 楼层，必须 >= 1
	Price       float64 `json:"price"`
	Area        float64 `json:"area"`
	Description string  `gorm:"type:text" json:"description"`
	Active      bool    `gorm:"default:true" json:"active"`

	BuildingID      uint  `gorm:"not null;uniqueIndex:uk_apartment_number_building" json:"building_id"` // 所属楼栋ID
	HouseholdHeadID *uint `gorm:"uniqueIndex" json:"household_head"`                                    // 户主居民ID（一对一，可为空）

	// Relations - 关联关系
	Building      *Building  `gorm:"foreignKey:BuildingID" json:"building,omitempty"`        // 所属楼栋（多对一）
	HouseholdHead *Resident  `gorm:"foreignKey:HouseholdHeadID" json:"-"`                    // 户主（一对一）
	Residents     []Resident `gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE" json:"residents,omitempty"` // 公寓内的居民（一对多）
	Invoices      []Invoice  `gorm:"foreignKey:ApartmentID;constraint:OnDelete:CASCADE" json:"invoices,omitempty"`  // 公寓的账单（一对多）
}
