package services

import (
	"testing"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"

	"gorm.io/gorm"
)

func seedInvoice(t *testing.T, db *gorm.DB, apartmentID, residentID uint, paid bool) *models.Invoice {
	t.Helper()

	feeType := models.FeeType{Name: "物业费"}
	if err := db.Create(&feeType).Error; err != nil {
		t.Fatalf("创建费用类别失败: %v", err)
	}

	invoice := models.Invoice{
		Amount:      500,
		DueDate:     time.Now().AddDate(0, 1, 0),
		Paid:        paid,
		ApartmentID: apartmentID,
		ResidentID:  residentID,
		FeeTypeID:   feeType.ID,
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("创建账单失败: %v", err)
	}
	return &invoice
}

func TestCreatePaymentAgainstUnpaidInvoice(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)

	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	payment, err := svc.CreatePayment(actor, invoice.ID, models.PaymentMethodMomo, "")
	if err != nil {
		t.Fatalf("提交缴费失败: %v", err)
	}

	// 缴费人由账号关联的居民推导，初始状态为待确认
	if payment.ResidentID != resident.ID {
		t.Fatalf("期望缴费人为 %d，实际为 %d", resident.ID, payment.ResidentID)
	}
	if payment.Status != models.PaymentStatusPending {
		t.Fatalf("期望初始状态为 pending，实际为 %s", payment.Status)
	}

	// 提交缴费不会直接标记账单已缴清
	var fresh models.Invoice
	db.First(&fresh, invoice.ID)
	if fresh.Paid {
		t.Fatal("期望账单在确认前保持未缴清状态")
	}
}

func TestCreatePaymentAgainstPaidInvoice(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, true)

	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	_, err := svc.CreatePayment(actor, invoice.ID, models.PaymentMethodVNPay, "")

	// 已缴清的账单不在可缴费范围内，按不存在处理
	assertCode(t, err, code.ErrInvoiceAlreadyPaid)
}

func TestCreatePaymentRequiresResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)

	// 账号未关联居民时拒绝
	actor := &perms.Actor{UserID: 1}
	_, err := svc.CreatePayment(actor, invoice.ID, models.PaymentMethodMomo, "")
	assertCode(t, err, code.ErrUserNoResident)
}

func TestCreatePaymentInvalidMethod(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)

	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	_, err := svc.CreatePayment(actor, invoice.ID, "cash", "")
	assertCode(t, err, code.ErrValidation)
}

func TestReviewPaymentApproveMarksInvoicePaid(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)
	staff := seedUser(t, db, "staff", true)

	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	payment, err := svc.CreatePayment(actor, invoice.ID, models.PaymentMethodMomo, "")
	if err != nil {
		t.Fatalf("提交缴费失败: %v", err)
	}

	reviewed, err := svc.ReviewPayment(staff.ID, payment.ID, models.PaymentStatusApproved)
	if err != nil {
		t.Fatalf("确认缴费失败: %v", err)
	}
	if reviewed.Status != models.PaymentStatusApproved {
		t.Fatalf("期望缴费状态为 approved，实际为 %s", reviewed.Status)
	}

	// 确认通过后对应账单同步标记为已缴清
	var fresh models.Invoice
	db.First(&fresh, invoice.ID)
	if !fresh.Paid {
		t.Fatal("期望确认通过后账单标记为已缴清")
	}
}

func TestReviewPaymentRejectKeepsInvoiceUnpaid(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	invoice := seedInvoice(t, db, apartment.ID, resident.ID, false)
	staff := seedUser(t, db, "staff", true)

	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	payment, err := svc.CreatePayment(actor, invoice.ID, models.PaymentMethodMomo, "")
	if err != nil {
		t.Fatalf("提交缴费失败: %v", err)
	}

	if _, err := svc.ReviewPayment(staff.ID, payment.ID, models.PaymentStatusRejected); err != nil {
		t.Fatalf("拒绝缴费失败: %v", err)
	}

	var fresh models.Invoice
	db.First(&fresh, invoice.ID)
	if fresh.Paid {
		t.Fatal("期望拒绝后账单保持未缴清状态")
	}
}

func TestReviewPaymentInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())

	_, err := svc.ReviewPayment(1, 1, "done")
	assertCode(t, err, code.ErrPaymentStatusInvalid)
}

func TestGetAllPaymentsScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db, newTestConfig())
	apartment := seedApartment(t, db)
	mine := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	neighbor := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)

	myInvoice := seedInvoice(t, db, apartment.ID, mine.ID, false)
	neighborInvoice := seedInvoice(t, db, apartment.ID, neighbor.ID, false)

	if _, err := svc.CreatePayment(&perms.Actor{UserID: 1, ResidentID: mine.ID}, myInvoice.ID, models.PaymentMethodMomo, ""); err != nil {
		t.Fatalf("提交缴费失败: %v", err)
	}
	if _, err := svc.CreatePayment(&perms.Actor{UserID: 2, ResidentID: neighbor.ID}, neighborInvoice.ID, models.PaymentMethodMomo, ""); err != nil {
		t.Fatalf("提交缴费失败: %v", err)
	}

	_, total, err := svc.GetAllPayments(&perms.Actor{UserID: 1, ResidentID: mine.ID}, 1, 10)
	if err != nil {
		t.Fatalf("获取缴费记录失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("期望普通居民只看到1条缴费记录，实际 %d", total)
	}

	_, total, err = svc.GetAllPayments(&perms.Actor{UserID: 3, IsStaff: true}, 1, 10)
	if err != nil {
		t.Fatalf("获取缴费记录失败: %v", err)
	}
	if total != 2 {
		t.Fatalf("期望管理人员看到2条缴费记录，实际 %d", total)
	}
}
