package services

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
)

func TestCreateResidentAssignsHouseholdHead(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	owner := models.Resident{
		Name:               "户主",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOwner,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&owner); err != nil {
		t.Fatalf("创建户主失败: %v", err)
	}

	var updated models.Apartment
	if err := db.First(&updated, apartment.ID).Error; err != nil {
		t.Fatalf("读取公寓失败: %v", err)
	}
	if updated.HouseholdHeadID == nil || *updated.HouseholdHeadID != owner.ID {
		t.Fatalf("期望公寓户主为 %d，实际为 %v", owner.ID, updated.HouseholdHeadID)
	}
}

func TestCreateResidentSecondOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	first := models.Resident{
		Name:               "户主",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOwner,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&first); err != nil {
		t.Fatalf("创建第一个户主失败: %v", err)
	}

	second := models.Resident{
		Name:               "第二个户主",
		IdentityCard:       "100000000002",
		RelationshipToHead: models.RelationshipOwner,
		ApartmentID:        apartment.ID,
	}
	err := svc.CreateResident(&second)
	assertCode(t, err, code.ErrHouseholdHeadConflict)

	// 整体失败，居民记录不能残留
	var count int64
	db.Model(&models.Resident{}).Where("identity_card = ?", "100000000002").Count(&count)
	if count != 0 {
		t.Fatalf("期望第二个户主创建整体回滚，实际残留 %d 条记录", count)
	}
}

func TestUpdateResidentBecomeOwnerConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	owner := models.Resident{
		Name:               "户主",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOwner,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&owner); err != nil {
		t.Fatalf("创建户主失败: %v", err)
	}

	child := models.Resident{
		Name:               "子女",
		IdentityCard:       "100000000002",
		RelationshipToHead: models.RelationshipChild,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&child); err != nil {
		t.Fatalf("创建子女失败: %v", err)
	}

	_, err := svc.UpdateResident(child.ID, map[string]interface{}{
		"relationship_to_head": models.RelationshipOwner,
	})
	assertCode(t, err, code.ErrHouseholdHeadConflict)

	// 更新失败后原字段保持不变
	var unchanged models.Resident
	db.First(&unchanged, child.ID)
	if unchanged.RelationshipToHead != models.RelationshipChild {
		t.Fatalf("期望子女关系保持不变，实际为 %s", unchanged.RelationshipToHead)
	}
}

func TestUpdateResidentMoveApartment(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	aptA := seedApartment(t, db)
	aptB := seedApartment(t, db)

	resident := models.Resident{
		Name:               "搬家居民",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipChild,
		ApartmentID:        aptA.ID,
	}
	if err := svc.CreateResident(&resident); err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}

	updated, err := svc.UpdateResident(resident.ID, map[string]interface{}{
		"apartment_id": aptB.ID,
	})
	if err != nil {
		t.Fatalf("更新居民公寓失败: %v", err)
	}
	if updated.ApartmentID != aptB.ID {
		t.Fatalf("期望居民搬到公寓 %d，实际为 %d", aptB.ID, updated.ApartmentID)
	}

	// 落库的外键必须真的变了
	var stored models.Resident
	db.First(&stored, resident.ID)
	if stored.ApartmentID != aptB.ID {
		t.Fatalf("期望落库公寓为 %d，实际为 %d", aptB.ID, stored.ApartmentID)
	}
}

func TestUpdateResidentMoveAndPromoteConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	aptA := seedApartment(t, db)
	aptB := seedApartment(t, db)

	ownerB := models.Resident{
		Name:               "B公寓户主",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOwner,
		ApartmentID:        aptB.ID,
	}
	if err := svc.CreateResident(&ownerB); err != nil {
		t.Fatalf("创建B公寓户主失败: %v", err)
	}

	mover := models.Resident{
		Name:               "搬家居民",
		IdentityCard:       "100000000002",
		RelationshipToHead: models.RelationshipChild,
		ApartmentID:        aptA.ID,
	}
	if err := svc.CreateResident(&mover); err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}

	// 搬入已有户主的公寓并同时升级户主，冲突检查针对的是目标公寓
	_, err := svc.UpdateResident(mover.ID, map[string]interface{}{
		"apartment_id":         aptB.ID,
		"relationship_to_head": models.RelationshipOwner,
	})
	assertCode(t, err, code.ErrHouseholdHeadConflict)

	var unchanged models.Resident
	db.First(&unchanged, mover.ID)
	if unchanged.ApartmentID != aptA.ID {
		t.Fatalf("期望冲突后居民留在公寓 %d，实际为 %d", aptA.ID, unchanged.ApartmentID)
	}
}

func TestUpdateResidentMoveAndPromoteAssignsNewHead(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	aptA := seedApartment(t, db)
	aptB := seedApartment(t, db)

	mover := models.Resident{
		Name:               "搬家居民",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipChild,
		ApartmentID:        aptA.ID,
	}
	if err := svc.CreateResident(&mover); err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}

	updated, err := svc.UpdateResident(mover.ID, map[string]interface{}{
		"apartment_id":         aptB.ID,
		"relationship_to_head": models.RelationshipOwner,
	})
	if err != nil {
		t.Fatalf("搬家并升级户主失败: %v", err)
	}
	if updated.ApartmentID != aptB.ID || updated.RelationshipToHead != models.RelationshipOwner {
		t.Fatalf("期望居民搬入公寓 %d 并成为户主，实际公寓 %d 关系 %s",
			aptB.ID, updated.ApartmentID, updated.RelationshipToHead)
	}

	// 户主登记在目标公寓上
	var target models.Apartment
	db.First(&target, aptB.ID)
	if target.HouseholdHeadID == nil || *target.HouseholdHeadID != mover.ID {
		t.Fatalf("期望目标公寓户主为 %d，实际为 %v", mover.ID, target.HouseholdHeadID)
	}
}

func TestUpdateResidentMoveToMissingApartment(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	resident := models.Resident{
		Name:               "居民",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOther,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&resident); err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}

	_, err := svc.UpdateResident(resident.ID, map[string]interface{}{
		"apartment_id": uint(999),
	})
	assertCode(t, err, code.ErrApartmentNotFound)
}

func TestDeleteResidentClearsHouseholdHead(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	owner := models.Resident{
		Name:               "户主",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOwner,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&owner); err != nil {
		t.Fatalf("创建户主失败: %v", err)
	}

	if err := svc.DeleteResident(owner.ID); err != nil {
		t.Fatalf("删除户主失败: %v", err)
	}

	var updated models.Apartment
	db.First(&updated, apartment.ID)
	if updated.HouseholdHeadID != nil {
		t.Fatalf("期望删除户主后公寓户主引用被清空，实际为 %v", *updated.HouseholdHeadID)
	}
}

func TestCreateResidentDuplicateIdentityCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	first := models.Resident{
		Name:               "居民",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOther,
		ApartmentID:        apartment.ID,
	}
	if err := svc.CreateResident(&first); err != nil {
		t.Fatalf("创建居民失败: %v", err)
	}

	dup := models.Resident{
		Name:               "重复身份证",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOther,
		ApartmentID:        apartment.ID,
	}
	assertCode(t, svc.CreateResident(&dup), code.ErrResidentAlreadyExist)
}

func TestCreateResidentInvalidRelationship(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())
	apartment := seedApartment(t, db)

	resident := models.Resident{
		Name:               "居民",
		IdentityCard:       "100000000001",
		RelationshipToHead: "roommate",
		ApartmentID:        apartment.ID,
	}
	assertCode(t, svc.CreateResident(&resident), code.ErrValidation)
}

func TestCreateResidentApartmentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())

	resident := models.Resident{
		Name:               "居民",
		IdentityCard:       "100000000001",
		RelationshipToHead: models.RelationshipOther,
		ApartmentID:        999,
	}
	assertCode(t, svc.CreateResident(&resident), code.ErrApartmentNotFound)
}
