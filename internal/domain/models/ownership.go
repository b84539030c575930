package models

// 所有权描述接口：非管理人员只能访问与自己账号直接或间接关联的资源。
// 权限层通过类型断言探测资源实现了哪种关联方式。

// DirectlyOwned 资源直接引用账号
type DirectlyOwned interface {
	OwnerUserID() *uint
}

// ResidentOwned 资源通过居民引用账号
type ResidentOwned interface {
	OwnedResidentID() *uint
}

// ApartmentScoped 资源通过公寓间接关联账号
type ApartmentScoped interface {
	ScopedApartmentID() uint
}

// VisitorOwned 资源通过访客间接引用居民
type VisitorOwned interface {
	OwnedVisitorID() *uint
}

// OwnerUserID 账号本身属于对应的用户
func (u *User) OwnerUserID() *uint {
	id := u.ID
	return &id
}

// OwnerUserID 居民通过关联账号归属
func (r *Resident) OwnerUserID() *uint {
	return r.UserID
}

// ScopedApartmentID 公寓通过其居民归属
func (a *Apartment) ScopedApartmentID() uint {
	return a.ID
}

// OwnedResidentID 储物柜属于对应的居民
func (l *LockerItem) OwnedResidentID() *uint {
	id := l.ResidentID
	return &id
}

// OwnedResidentID 访客属于登记的居民
func (v *Visitor) OwnedResidentID() *uint {
	id := v.ResidentID
	return &id
}

// OwnedResidentID 停车卡可能属于居民，访客卡没有居民归属
func (p *ParkingCard) OwnedResidentID() *uint {
	return p.ResidentID
}

// OwnedVisitorID 访客卡通过登记该访客的居民归属
func (p *ParkingCard) OwnedVisitorID() *uint {
	return p.VisitorID
}

// OwnedResidentID 账单属于对应的居民
func (i *Invoice) OwnedResidentID() *uint {
	id := i.ResidentID
	return &id
}

// ScopedApartmentID 账单也可以通过所属公寓归属
func (i *Invoice) ScopedApartmentID() uint {
	return i.ApartmentID
}

// OwnedResidentID 缴费记录属于缴费的居民
func (p *Payment) OwnedResidentID() *uint {
	id := p.ResidentID
	return &id
}

// OwnedResidentID 投诉属于提交的居民
func (c *Complaint) OwnedResidentID() *uint {
	id := c.ResidentID
	return &id
}

// OwnerUserID 答卷属于提交的账号
func (s *SurveyResponse) OwnerUserID() *uint {
	id := s.UserID
	return &id
}
