package services

import (
	"testing"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
)

func TestCreateInvoiceDerivesApartment(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	feeType := models.FeeType{Name: "物业费"}
	if err := db.Create(&feeType).Error; err != nil {
		t.Fatalf("创建费用类别失败: %v", err)
	}

	invoice := models.Invoice{
		Amount:      300,
		DueDate:     time.Now().AddDate(0, 1, 0),
		ResidentID:  resident.ID,
		FeeTypeID:   feeType.ID,
		ApartmentID: 999, // 客户端提交的公寓被忽略，以居民所属公寓为准
		Paid:        true,
	}
	if err := svc.CreateInvoice(&invoice); err != nil {
		t.Fatalf("创建账单失败: %v", err)
	}

	var stored models.Invoice
	db.First(&stored, invoice.ID)
	if stored.ApartmentID != apartment.ID {
		t.Fatalf("期望账单公寓由居民推导为 %d，实际为 %d", apartment.ID, stored.ApartmentID)
	}
	if stored.Paid {
		t.Fatal("期望新建账单为未缴清状态")
	}
}

func TestCreateInvoiceResidentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeService(db, newTestConfig())

	invoice := models.Invoice{
		Amount:     300,
		DueDate:    time.Now().AddDate(0, 1, 0),
		ResidentID: 999,
		FeeTypeID:  1,
	}
	assertCode(t, svc.CreateInvoice(&invoice), code.ErrResidentNotFound)
}

func TestUpdateInvoiceReassignResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeService(db, newTestConfig())
	aptA := seedApartment(t, db)
	aptB := seedApartment(t, db)
	r1 := seedResident(t, db, aptA.ID, "100000000001", models.RelationshipOwner)
	r2 := seedResident(t, db, aptB.ID, "100000000002", models.RelationshipOwner)
	invoice := seedInvoice(t, db, aptA.ID, r1.ID, false)

	updated, err := svc.UpdateInvoice(invoice.ID, map[string]interface{}{
		"resident_id": r2.ID,
	})
	if err != nil {
		t.Fatalf("更新账单居民失败: %v", err)
	}
	if updated.ResidentID != r2.ID {
		t.Fatalf("期望账单居民改为 %d，实际为 %d", r2.ID, updated.ResidentID)
	}
	// 公寓随新居民重新推导
	if updated.ApartmentID != aptB.ID {
		t.Fatalf("期望账单公寓重新推导为 %d，实际为 %d", aptB.ID, updated.ApartmentID)
	}

	var stored models.Invoice
	db.First(&stored, invoice.ID)
	if stored.ResidentID != r2.ID || stored.ApartmentID != aptB.ID {
		t.Fatalf("期望落库居民 %d 公寓 %d，实际居民 %d 公寓 %d",
			r2.ID, aptB.ID, stored.ResidentID, stored.ApartmentID)
	}
}

func TestUpdateInvoiceReassignToMissingResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)

	_, err := svc.UpdateInvoice(invoice.ID, map[string]interface{}{
		"resident_id": uint(999),
	})
	assertCode(t, err, code.ErrResidentNotFound)
}

func TestUpdateInvoiceApartmentNotDirectlyMutable(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeeService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)

	updated, err := svc.UpdateInvoice(invoice.ID, map[string]interface{}{
		"apartment_id": uint(999),
		"amount":       800.0,
	})
	if err != nil {
		t.Fatalf("更新账单失败: %v", err)
	}
	if updated.ApartmentID != apartment.ID {
		t.Fatalf("期望公寓保持 %d，实际为 %d", apartment.ID, updated.ApartmentID)
	}
	if updated.Amount != 800 {
		t.Fatalf("期望金额更新为 800，实际为 %v", updated.Amount)
	}
}
