package services

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
)

func TestCreateVisitorAssignsHost(t *testing.T) {
	db := newTestDB(t)
	svc := NewVisitorService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	visitor := models.Visitor{
		FullName:     "访客",
		IdentityCard: "200000000001",
		IsApproved:   true, // 客户端伪造的审批标志被重置
	}
	if err := svc.CreateVisitor(resident.ID, &visitor); err != nil {
		t.Fatalf("登记访客失败: %v", err)
	}

	var stored models.Visitor
	db.First(&stored, visitor.ID)
	if stored.ResidentID != resident.ID {
		t.Fatalf("期望访客归属居民 %d，实际为 %d", resident.ID, stored.ResidentID)
	}
	if stored.IsApproved {
		t.Fatal("期望新访客的审批标志为未通过")
	}
}

func TestCreateVisitorHostMustExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewVisitorService(db, newTestConfig())

	visitor := models.Visitor{FullName: "访客", IdentityCard: "200000000001"}
	assertCode(t, svc.CreateVisitor(999, &visitor), code.ErrResidentNotFound)
}

func TestCreateVisitorDuplicateIdentityCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewVisitorService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	first := models.Visitor{FullName: "访客", IdentityCard: "200000000001"}
	if err := svc.CreateVisitor(resident.ID, &first); err != nil {
		t.Fatalf("登记访客失败: %v", err)
	}

	dup := models.Visitor{FullName: "重复访客", IdentityCard: "200000000001"}
	assertCode(t, svc.CreateVisitor(resident.ID, &dup), code.ErrVisitorAlreadyExist)
}

func TestUpdateVisitorReassignHost(t *testing.T) {
	db := newTestDB(t)
	svc := NewVisitorService(db, newTestConfig())
	apartment := seedApartment(t, db)
	from := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	to := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)
	visitor := seedVisitor(t, db, from.ID, "200000000001")

	staff := &perms.Actor{UserID: 1, IsStaff: true}
	updated, err := svc.UpdateVisitor(staff, visitor.ID, map[string]interface{}{
		"resident_id": to.ID,
	})
	if err != nil {
		t.Fatalf("变更访客归属失败: %v", err)
	}
	if updated.ResidentID != to.ID {
		t.Fatalf("期望访客改归居民 %d，实际为 %d", to.ID, updated.ResidentID)
	}

	// 落库的外键必须真的变了
	var stored models.Visitor
	db.First(&stored, visitor.ID)
	if stored.ResidentID != to.ID {
		t.Fatalf("期望落库归属为 %d，实际为 %d", to.ID, stored.ResidentID)
	}
}

func TestUpdateVisitorApprovalStaffOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewVisitorService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	visitor := seedVisitor(t, db, resident.ID, "200000000001")

	// 非管理人员提交的审批字段被丢弃
	owner := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	updated, err := svc.UpdateVisitor(owner, visitor.ID, map[string]interface{}{
		"is_approved": true,
		"phone":       "0901234567",
	})
	if err != nil {
		t.Fatalf("更新访客失败: %v", err)
	}
	if updated.IsApproved {
		t.Fatal("期望非管理人员无法变更审批标志")
	}
	if updated.Phone != "0901234567" {
		t.Fatalf("期望电话更新生效，实际为 %s", updated.Phone)
	}

	// 管理人员可以审批
	staff := &perms.Actor{UserID: 2, IsStaff: true}
	updated, err = svc.UpdateVisitor(staff, visitor.ID, map[string]interface{}{
		"is_approved": true,
	})
	if err != nil {
		t.Fatalf("审批访客失败: %v", err)
	}
	if !updated.IsApproved {
		t.Fatal("期望管理人员审批生效")
	}
}
