package perms

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Apartment{},
		&models.Resident{},
		&models.Visitor{},
		&models.ParkingCard{},
		&models.SurveyResponse{},
	); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

// seedWorld 创建 账号→居民→公寓 的完整关联链
func seedWorld(t *testing.T, db *gorm.DB) (*models.User, *models.Resident, *models.Apartment) {
	t.Helper()

	user := models.User{Username: "resident1", Password: "password123", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}

	building := models.Building{Name: "A栋", Address: "测试路1号"}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("创建楼栋失败: %v", err)
	}
	apartment := models.Apartment{Number: "101", Floor: 1, BuildingID: building.ID}
	if err := db.Create(&apartment).Error; err != nil {
		t.Fatalf("创建公寓失败: %v", err)
	}

	resident := models.Resident{
		Name:         "居民",
		IdentityCard: "100000000001",
		ApartmentID:  apartment.ID,
		UserID:       &user.ID,
	}
	if err := db.Create(&resident).Error; err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}

	return &user, &resident, &apartment
}

func TestResolveActor(t *testing.T) {
	db := newTestDB(t)
	user, resident, _ := seedWorld(t, db)

	actor, err := ResolveActor(db, user.ID)
	if err != nil {
		t.Fatalf("解析调用者失败: %v", err)
	}
	if actor.UserID != user.ID || actor.ResidentID != resident.ID || actor.IsStaff {
		t.Fatalf("期望 user=%d resident=%d 非管理人员，实际为 %+v", user.ID, resident.ID, actor)
	}

	if _, err := ResolveActor(db, 999); err == nil {
		t.Fatal("期望不存在的账号解析失败")
	}
}

func TestCanAccessStaffBypass(t *testing.T) {
	db := newTestDB(t)
	_, resident, _ := seedWorld(t, db)

	staff := &Actor{UserID: 99, IsStaff: true}
	if !CanAccess(db, staff, resident) {
		t.Fatal("期望管理人员绕过所有权检查")
	}
}

func TestCanAccessDirectOwnership(t *testing.T) {
	db := newTestDB(t)
	user, _, _ := seedWorld(t, db)

	response := &models.SurveyResponse{UserID: user.ID}
	mine := &Actor{UserID: user.ID}
	other := &Actor{UserID: user.ID + 1}

	if !CanAccess(db, mine, response) {
		t.Fatal("期望答卷提交人可以访问自己的答卷")
	}
	if CanAccess(db, other, response) {
		t.Fatal("期望其他账号不能访问答卷")
	}
}

func TestCanAccessThroughResident(t *testing.T) {
	db := newTestDB(t)
	user, resident, _ := seedWorld(t, db)

	visitor := &models.Visitor{
		FullName:     "访客",
		IdentityCard: "200000000001",
		ResidentID:   resident.ID,
	}
	if err := db.Create(visitor).Error; err != nil {
		t.Fatalf("创建访客失败: %v", err)
	}

	mine := &Actor{UserID: user.ID, ResidentID: resident.ID}
	unrelated := &Actor{UserID: 50, ResidentID: resident.ID + 1}

	if !CanAccess(db, mine, visitor) {
		t.Fatal("期望居民可以访问自己的访客")
	}
	if CanAccess(db, unrelated, visitor) {
		t.Fatal("期望无关居民不能访问访客")
	}
}

func TestCanAccessThroughVisitor(t *testing.T) {
	db := newTestDB(t)
	user, resident, _ := seedWorld(t, db)

	visitor := &models.Visitor{
		FullName:     "访客",
		IdentityCard: "200000000001",
		ResidentID:   resident.ID,
	}
	if err := db.Create(visitor).Error; err != nil {
		t.Fatalf("创建访客失败: %v", err)
	}

	// 访客卡没有直接的居民归属，经由访客链路判定
	card := &models.ParkingCard{CardNumber: "PC001", VisitorID: &visitor.ID}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("创建停车卡失败: %v", err)
	}

	mine := &Actor{UserID: user.ID, ResidentID: resident.ID}
	if !CanAccess(db, mine, card) {
		t.Fatal("期望居民可以访问自己访客的停车卡")
	}

	unrelated := &Actor{UserID: 50, ResidentID: resident.ID + 1}
	if CanAccess(db, unrelated, card) {
		t.Fatal("期望无关居民不能访问访客的停车卡")
	}
}

func TestCanAccessApartmentScoped(t *testing.T) {
	db := newTestDB(t)
	user, resident, apartment := seedWorld(t, db)

	mine := &Actor{UserID: user.ID, ResidentID: resident.ID}
	if !CanAccess(db, mine, apartment) {
		t.Fatal("期望居民可以访问自己所在的公寓")
	}

	stranger := &Actor{UserID: 50}
	if CanAccess(db, stranger, apartment) {
		t.Fatal("期望无关账号不能访问公寓")
	}
}

func TestCanAccessNilActor(t *testing.T) {
	db := newTestDB(t)
	_, resident, _ := seedWorld(t, db)

	if CanAccess(db, nil, resident) {
		t.Fatal("期望空调用者被拒绝")
	}
}
