package services

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"

	"gorm.io/gorm"
)

func seedVisitor(t *testing.T, db *gorm.DB, residentID uint, identityCard string) *models.Visitor {
	t.Helper()

	visitor := models.Visitor{
		FullName:     "测试访客",
		IdentityCard: identityCard,
		ResidentID:   residentID,
		Active:       true,
	}
	if err := db.Create(&visitor).Error; err != nil {
		t.Fatalf("创建访客失败: %v", err)
	}
	return &visitor
}

func TestCreateParkingCardOwnerCombinations(t *testing.T) {
	db := newTestDB(t)
	svc := NewParkingService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	visitor := seedVisitor(t, db, resident.ID, "200000000001")

	// 无所属人
	noOwner := models.ParkingCard{CardNumber: "PC001", VehicleType: models.VehicleTypeCar}
	assertCode(t, svc.CreateParkingCard(&noOwner), code.ErrParkingCardOwner)

	// 同时属于居民和访客
	dual := models.ParkingCard{
		CardNumber:  "PC002",
		VehicleType: models.VehicleTypeCar,
		ResidentID:  &resident.ID,
		VisitorID:   &visitor.ID,
	}
	assertCode(t, svc.CreateParkingCard(&dual), code.ErrParkingCardOwner)

	// 只属于居民
	forResident := models.ParkingCard{
		CardNumber:  "PC003",
		VehicleType: models.VehicleTypeMotorbike,
		ResidentID:  &resident.ID,
	}
	if err := svc.CreateParkingCard(&forResident); err != nil {
		t.Fatalf("创建居民停车卡失败: %v", err)
	}

	// 只属于访客
	forVisitor := models.ParkingCard{
		CardNumber:  "PC004",
		VehicleType: models.VehicleTypeCar,
		VisitorID:   &visitor.ID,
	}
	if err := svc.CreateParkingCard(&forVisitor); err != nil {
		t.Fatalf("创建访客停车卡失败: %v", err)
	}
}

func TestCreateParkingCardDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewParkingService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	other := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)

	first := models.ParkingCard{CardNumber: "PC001", ResidentID: &resident.ID}
	if err := svc.CreateParkingCard(&first); err != nil {
		t.Fatalf("创建停车卡失败: %v", err)
	}

	dup := models.ParkingCard{CardNumber: "PC001", ResidentID: &other.ID}
	assertCode(t, svc.CreateParkingCard(&dup), code.ErrParkingCardAlreadyExist)
}

func TestCreateParkingCardOwnerMustExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewParkingService(db, newTestConfig())

	missing := uint(999)
	card := models.ParkingCard{CardNumber: "PC001", ResidentID: &missing}
	assertCode(t, svc.CreateParkingCard(&card), code.ErrResidentNotFound)

	card2 := models.ParkingCard{CardNumber: "PC002", VisitorID: &missing}
	assertCode(t, svc.CreateParkingCard(&card2), code.ErrVisitorNotFound)
}

func TestUpdateParkingCardOwnerSwap(t *testing.T) {
	db := newTestDB(t)
	svc := NewParkingService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	visitor := seedVisitor(t, db, resident.ID, "200000000001")

	card := models.ParkingCard{CardNumber: "PC001", ResidentID: &resident.ID}
	if err := svc.CreateParkingCard(&card); err != nil {
		t.Fatalf("创建停车卡失败: %v", err)
	}

	// 不清除居民就挂到访客，违反二选一
	_, err := svc.UpdateParkingCard(card.ID, map[string]interface{}{
		"visitor_id": visitor.ID,
	})
	assertCode(t, err, code.ErrParkingCardOwner)

	// 同时换人，先清空居民再指向访客
	updated, err := svc.UpdateParkingCard(card.ID, map[string]interface{}{
		"resident_id": nil,
		"visitor_id":  visitor.ID,
	})
	if err != nil {
		t.Fatalf("变更所属人失败: %v", err)
	}
	if updated.ResidentID != nil || updated.VisitorID == nil || *updated.VisitorID != visitor.ID {
		t.Fatalf("期望停车卡只属于访客 %d，实际为 resident=%v visitor=%v", visitor.ID, updated.ResidentID, updated.VisitorID)
	}
}

func TestUpdateParkingCardTransferResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewParkingService(db, newTestConfig())
	apartment := seedApartment(t, db)
	from := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	to := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)

	card := models.ParkingCard{CardNumber: "PC001", ResidentID: &from.ID}
	if err := svc.CreateParkingCard(&card); err != nil {
		t.Fatalf("创建停车卡失败: %v", err)
	}

	updated, err := svc.UpdateParkingCard(card.ID, map[string]interface{}{
		"resident_id": to.ID,
	})
	if err != nil {
		t.Fatalf("过户停车卡失败: %v", err)
	}
	if updated.ResidentID == nil || *updated.ResidentID != to.ID {
		t.Fatalf("期望停车卡过户给 %d，实际为 %v", to.ID, updated.ResidentID)
	}

	// 落库的外键必须真的变了
	var stored models.ParkingCard
	db.First(&stored, card.ID)
	if stored.ResidentID == nil || *stored.ResidentID != to.ID {
		t.Fatalf("期望落库所属人为 %d，实际为 %v", to.ID, stored.ResidentID)
	}
}

func TestGetAllParkingCardsScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewParkingService(db, newTestConfig())
	apartment := seedApartment(t, db)
	mine := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	neighbor := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)
	myVisitor := seedVisitor(t, db, mine.ID, "200000000001")

	cards := []models.ParkingCard{
		{CardNumber: "PC001", ResidentID: &mine.ID},
		{CardNumber: "PC002", ResidentID: &neighbor.ID},
		{CardNumber: "PC003", VisitorID: &myVisitor.ID},
	}
	for i := range cards {
		if err := svc.CreateParkingCard(&cards[i]); err != nil {
			t.Fatalf("创建停车卡失败: %v", err)
		}
	}

	// 普通居民只能看到自己的卡和自己访客的卡
	actor := &perms.Actor{UserID: 1, ResidentID: mine.ID}
	got, total, err := svc.GetAllParkingCards(actor, 1, 10)
	if err != nil {
		t.Fatalf("获取停车卡列表失败: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("期望看到2张卡，实际 total=%d len=%d", total, len(got))
	}

	// 管理人员看到全部
	staff := &perms.Actor{UserID: 2, IsStaff: true}
	_, total, err = svc.GetAllParkingCards(staff, 1, 10)
	if err != nil {
		t.Fatalf("获取停车卡列表失败: %v", err)
	}
	if total != 3 {
		t.Fatalf("期望管理人员看到3张卡，实际 %d", total)
	}
}
