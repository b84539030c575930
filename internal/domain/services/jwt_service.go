package services

import (
	"fmt"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// 调用者角色枚举
const (
	RoleStaff    = "staff"    // 管理人员，绕过所有权检查
	RoleResident = "resident" // 普通住户账号
)

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(userID uint, role string, residentID *uint) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	Login(username, password string) (*LoginResult, error)
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token     string      `json:"token"`
	UserID    uint        `json:"user_id"`
	Role      string      `json:"role"`
	Username  string      `json:"username"`
	CreatedAt interface{} `json:"created_at"`
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	UserID     uint   `json:"user_id"`
	Role       string `json:"role"`
	ResidentID *uint  `json:"resident_id,omitempty"` // 关联的居民ID，未关联居民的账号为空
	jwt.RegisteredClaims
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "quanlychungcu",
		DB:        db,
	}
}

// 1. GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(userID uint, role string, residentID *uint) (string, error) {
	// 令牌有效期为24小时
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID:     userID,
		Role:       role,
		ResidentID: residentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2. ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3. Login 用户名密码登录，返回令牌和账号信息
func (s *JWTService) Login(username, password string) (*LoginResult, error) {
	var user models.User
	if err := s.DB.Preload("Resident").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, code.NewError(code.ErrUserNotFound)
	}

	if !user.IsActive {
		return nil, code.NewError(code.ErrUserNotFound)
	}

	if !models.CheckPasswordHash(password, user.Password) {
		return nil, code.NewError(code.ErrUserPasswordIncorrect)
	}

	role := RoleResident
	if user.IsStaff {
		role = RoleStaff
	}

	var residentID *uint
	if user.Resident != nil {
		residentID = &user.Resident.ID
	}

	token, err := s.GenerateToken(user.ID, role, residentID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		UserID:    user.ID,
		Role:      role,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}
