package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 表示登录账号信息
type User struct {
	BaseModel
	Username  string `gorm:"type:varchar(50);unique;not null" json:"username"` // 登录名，全局唯一
	Password  string `gorm:"type:varchar(100);not null" json:"-"`              // 不在JSON中暴露密码
	FirstName string `gorm:"type:varchar(50)" json:"first_name"`
	LastName  string `gorm:"type:varchar(50)" json:"last_name"`
	Avatar    string `gorm:"type:varchar(255)" json:"avatar"`     // 头像文件相对路径，序列化时解析为绝对URL
	IsStaff   bool   `gorm:"default:false" json:"is_staff"`       // 管理人员标志，拥有全部权限
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	// Relations - 关联关系
	Resident *Resident `gorm:"foreignKey:UserID" json:"resident,omitempty"` // 关联的居民（一对一，可为空）
}

// HashPassword 使用 bcrypt 对密码进行哈希处理
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash 比较密码和哈希值
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BeforeSave 是一个GORM钩子，在创建和保存记录前运行
func (u *User) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
