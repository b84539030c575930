package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建内存数据库并迁移全部模型，每个测试用例互相隔离
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	// 内存库随连接销毁，限制为单连接保证所有操作落在同一个库上
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Apartment{},
		&models.Resident{},
		&models.LockerItem{},
		&models.Item{},
		&models.Visitor{},
		&models.ParkingCard{},
		&models.FeeType{},
		&models.Invoice{},
		&models.Payment{},
		&models.Complaint{},
		&models.ComplaintResponse{},
		&models.Survey{},
		&models.Question{},
		&models.Choice{},
		&models.SurveyResponse{},
		&models.Answer{},
	)
	if err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}

	return db
}

// newTestConfig 返回测试用配置
func newTestConfig() *config.Config {
	return &config.Config{
		ServerPort:   "8080",
		BaseURL:      "http://localhost:8080",
		UploadDir:    "uploads",
		JWTSecretKey: "test-secret-key",
	}
}

// seedApartment 创建一栋楼和一间公寓
func seedApartment(t *testing.T, db *gorm.DB) *models.Apartment {
	t.Helper()

	building := models.Building{Name: "A栋", Address: "测试路1号", Active: true}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("创建楼栋失败: %v", err)
	}

	apartment := models.Apartment{
		Number:     fmt.Sprintf("10%d", building.ID),
		Floor:      1,
		BuildingID: building.ID,
		Active:     true,
	}
	if err := db.Create(&apartment).Error; err != nil {
		t.Fatalf("创建公寓失败: %v", err)
	}
	return &apartment
}

// seedResident 在指定公寓内创建一名居民
func seedResident(t *testing.T, db *gorm.DB, apartmentID uint, identityCard, relationship string) *models.Resident {
	t.Helper()

	resident := models.Resident{
		Name:               "测试居民" + identityCard,
		IdentityCard:       identityCard,
		Gender:             models.GenderMale,
		Birthday:           time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		RelationshipToHead: relationship,
		Active:             true,
		ApartmentID:        apartmentID,
	}
	if err := db.Create(&resident).Error; err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}
	return &resident
}

// seedUser 创建登录账号，密码经过bcrypt哈希
func seedUser(t *testing.T, db *gorm.DB, username string, isStaff bool) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "password123",
		IsStaff:  isStaff,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}
	return &user
}

// assertCode 断言错误携带期望的业务错误码
func assertCode(t *testing.T, err error, want int) {
	t.Helper()

	if err == nil {
		t.Fatalf("期望错误码 %d，实际没有错误", want)
	}
	var coded *code.CodedError
	if !errors.As(err, &coded) {
		t.Fatalf("期望业务错误，实际为: %v", err)
	}
	if coded.Code != want {
		t.Fatalf("期望错误码 %d，实际为 %d", want, coded.Code)
	}
}
