package services

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"

	"github.com/golang-jwt/jwt/v4"
)

func TestLoginReturnsTokenWithClaims(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)
	apartment := seedApartment(t, db)
	user := seedUser(t, db, "resident1", false)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	if err := db.Model(resident).Update("user_id", user.ID).Error; err != nil {
		t.Fatalf("关联居民账号失败: %v", err)
	}

	result, err := svc.Login("resident1", "password123")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	if result.Role != RoleResident {
		t.Fatalf("期望角色为 resident，实际为 %s", result.Role)
	}
	if result.UserID != user.ID {
		t.Fatalf("期望账号ID为 %d，实际为 %d", user.ID, result.UserID)
	}

	// 令牌中携带账号、角色和居民关联
	token, err := svc.ValidateToken(result.Token)
	if err != nil || !token.Valid {
		t.Fatalf("验证令牌失败: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("期望令牌声明为MapClaims")
	}
	if uint(claims["user_id"].(float64)) != user.ID {
		t.Fatalf("期望令牌中账号ID为 %d，实际为 %v", user.ID, claims["user_id"])
	}
	if claims["role"].(string) != RoleResident {
		t.Fatalf("期望令牌中角色为 resident，实际为 %v", claims["role"])
	}
	if uint(claims["resident_id"].(float64)) != resident.ID {
		t.Fatalf("期望令牌中居民ID为 %d，实际为 %v", resident.ID, claims["resident_id"])
	}
}

func TestLoginStaffRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)
	seedUser(t, db, "admin", true)

	result, err := svc.Login("admin", "password123")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if result.Role != RoleStaff {
		t.Fatalf("期望角色为 staff，实际为 %s", result.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)
	seedUser(t, db, "resident1", false)

	_, err := svc.Login("resident1", "wrong")
	assertCode(t, err, code.ErrUserPasswordIncorrect)
}

func TestLoginUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)

	_, err := svc.Login("ghost", "password123")
	assertCode(t, err, code.ErrUserNotFound)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(), db)
	user := seedUser(t, db, "resident1", false)
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatalf("停用账号失败: %v", err)
	}

	// 停用账号按不存在处理
	_, err := svc.Login("resident1", "password123")
	assertCode(t, err, code.ErrUserNotFound)
}
