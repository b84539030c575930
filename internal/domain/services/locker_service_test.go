package services

import (
	"testing"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
)

func TestCreateLockerItemOnePerResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockerService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	locker := models.LockerItem{LockerNumber: "L01", ResidentID: resident.ID}
	if err := svc.CreateLockerItem(&locker); err != nil {
		t.Fatalf("创建储物柜失败: %v", err)
	}

	// 每个居民只能有一个储物柜
	second := models.LockerItem{LockerNumber: "L02", ResidentID: resident.ID}
	assertCode(t, svc.CreateLockerItem(&second), code.ErrLockerAlreadyExist)
}

func TestCreateLockerItemResidentMustExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockerService(db, newTestConfig())

	locker := models.LockerItem{LockerNumber: "L01", ResidentID: 999}
	assertCode(t, svc.CreateLockerItem(&locker), code.ErrResidentNotFound)
}

func TestAddItemStartsWaiting(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockerService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	locker := models.LockerItem{LockerNumber: "L01", ResidentID: resident.ID}
	if err := svc.CreateLockerItem(&locker); err != nil {
		t.Fatalf("创建储物柜失败: %v", err)
	}

	// 客户端伪造的状态和时间在登记时被重置
	now := time.Now()
	item := models.Item{NameItem: "快递包裹", Status: models.ItemStatusReceived, ReceivedAt: &now}
	if err := svc.AddItem(locker.ID, &item); err != nil {
		t.Fatalf("登记包裹失败: %v", err)
	}

	if item.Status != models.ItemStatusWaiting {
		t.Fatalf("期望新包裹状态为 waiting，实际为 %s", item.Status)
	}
	if item.ReceivedAt != nil {
		t.Fatal("期望新包裹领取时间为空")
	}
}

func TestUpdateItemReceiveStampsTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockerService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	locker := models.LockerItem{LockerNumber: "L01", ResidentID: resident.ID}
	if err := svc.CreateLockerItem(&locker); err != nil {
		t.Fatalf("创建储物柜失败: %v", err)
	}
	item := models.Item{NameItem: "快递包裹"}
	if err := svc.AddItem(locker.ID, &item); err != nil {
		t.Fatalf("登记包裹失败: %v", err)
	}

	updated, err := svc.UpdateItem(locker.ID, item.ID, map[string]interface{}{
		"status": models.ItemStatusReceived,
	})
	if err != nil {
		t.Fatalf("更新包裹失败: %v", err)
	}

	if updated.Status != models.ItemStatusReceived {
		t.Fatalf("期望包裹状态为 received，实际为 %s", updated.Status)
	}
	if updated.ReceivedAt == nil {
		t.Fatal("期望状态变为 received 时写入领取时间")
	}
}

func TestUpdateItemInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockerService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	locker := models.LockerItem{LockerNumber: "L01", ResidentID: resident.ID}
	if err := svc.CreateLockerItem(&locker); err != nil {
		t.Fatalf("创建储物柜失败: %v", err)
	}
	item := models.Item{NameItem: "快递包裹"}
	if err := svc.AddItem(locker.ID, &item); err != nil {
		t.Fatalf("登记包裹失败: %v", err)
	}

	_, err := svc.UpdateItem(locker.ID, item.ID, map[string]interface{}{
		"status": "lost",
	})
	assertCode(t, err, code.ErrValidation)
}

func TestUpdateItemWrongLocker(t *testing.T) {
	db := newTestDB(t)
	svc := NewLockerService(db, newTestConfig())
	apartment := seedApartment(t, db)
	first := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	second := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)

	lockerA := models.LockerItem{LockerNumber: "L01", ResidentID: first.ID}
	lockerB := models.LockerItem{LockerNumber: "L02", ResidentID: second.ID}
	for _, locker := range []*models.LockerItem{&lockerA, &lockerB} {
		if err := svc.CreateLockerItem(locker); err != nil {
			t.Fatalf("创建储物柜失败: %v", err)
		}
	}
	item := models.Item{NameItem: "快递包裹"}
	if err := svc.AddItem(lockerA.ID, &item); err != nil {
		t.Fatalf("登记包裹失败: %v", err)
	}

	// 包裹必须通过其所属的储物柜访问
	_, err := svc.UpdateItem(lockerB.ID, item.ID, map[string]interface{}{
		"description_item": "改描述",
	})
	assertCode(t, err, code.ErrItemNotFound)
}
