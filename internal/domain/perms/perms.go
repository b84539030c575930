package perms

import (
	"errors"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"

	"gorm.io/gorm"
)

// Actor 描述当前请求的调用者
type Actor struct {
	UserID     uint
	IsStaff    bool
	ResidentID uint // 0 表示未关联居民
}

// ResolveActor 根据账号ID加载调用者信息，居民关联在每次请求时重新解析
func ResolveActor(db *gorm.DB, userID uint) (*Actor, error) {
	var user models.User
	if err := db.Preload("Resident").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}

	actor := &Actor{
		UserID:  user.ID,
		IsStaff: user.IsStaff,
	}
	if user.Resident != nil {
		actor.ResidentID = user.Resident.ID
	}
	return actor, nil
}

// HasResident 调用者是否关联了居民
func (a *Actor) HasResident() bool {
	return a != nil && a.ResidentID != 0
}

// CanAccess 对象级权限检查：管理人员放行一切，
// 其余调用者沿 直接账号引用 → 居民引用 → 访客引用 → 公寓间接关联 依次判定
func CanAccess(db *gorm.DB, actor *Actor, obj interface{}) bool {
	if actor == nil {
		return false
	}
	if actor.IsStaff {
		return true
	}

	// 对象直接引用账号
	if owned, ok := obj.(models.DirectlyOwned); ok {
		if uid := owned.OwnerUserID(); uid != nil && *uid == actor.UserID {
			return true
		}
	}

	// 对象通过居民引用账号
	if owned, ok := obj.(models.ResidentOwned); ok && actor.HasResident() {
		if rid := owned.OwnedResidentID(); rid != nil && *rid == actor.ResidentID {
			return true
		}
	}

	// 对象通过访客间接引用居民：访客卡归登记该访客的居民可见
	if owned, ok := obj.(models.VisitorOwned); ok && actor.HasResident() {
		if vid := owned.OwnedVisitorID(); vid != nil {
			var count int64
			if err := db.Model(&models.Visitor{}).
				Where("id = ? AND resident_id = ?", *vid, actor.ResidentID).
				Count(&count).Error; err == nil && count > 0 {
				return true
			}
		}
	}

	// 对象通过公寓间接关联：调用者的居民必须出现在该公寓中
	if scoped, ok := obj.(models.ApartmentScoped); ok {
		var count int64
		if err := db.Model(&models.Resident{}).
			Where("apartment_id = ? AND user_id = ?", scoped.ScopedApartmentID(), actor.UserID).
			Count(&count).Error; err == nil && count > 0 {
			return true
		}
	}

	return false
}

// ScopeToResident 列表级过滤：非管理人员只能看到自己居民的记录。
// 在查询构造阶段收窄范围，避免逐行做对象级检查
func ScopeToResident(query *gorm.DB, actor *Actor, column string) *gorm.DB {
	if actor == nil {
		return query.Where("1 = 0")
	}
	if actor.IsStaff {
		return query
	}
	return query.Where(column+" = ?", actor.ResidentID)
}

// ScopeToUser 列表级过滤：按账号ID收窄
func ScopeToUser(query *gorm.DB, actor *Actor, column string) *gorm.DB {
	if actor == nil {
		return query.Where("1 = 0")
	}
	if actor.IsStaff {
		return query
	}
	return query.Where(column+" = ?", actor.UserID)
}
