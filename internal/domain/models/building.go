package models

// Building 表示楼栋信息
type Building struct {
	BaseModel
	Name           string  `gorm:"type:varchar(100);not null" json:"name"`    // 楼栋名称，如"A栋"
	Address        string  `gorm:"type:varchar(100);not null" json:"address"` // 楼栋地址
	Description    string  `gorm:"type:text" json:"description"`
	Area           float64 `json:"area"`                                   // 建筑面积
	TotalApartment float64 `json:"total_apartment"`                        // 申报的总户数
	Active         bool    `gorm:"default:true" json:"active"`             // 状态：true=启用，false=停用

	// Relations - 关联关系
	Apartments []Apartment `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"apartments,omitempty"` // 楼栋下的公寓（一对多）
}
