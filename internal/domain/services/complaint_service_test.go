package services

import (
	"testing"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
)

func TestCreateComplaintForcesPendingStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	complaint := models.Complaint{
		Title:   "电梯噪音",
		Content: "夜间电梯运行噪音过大",
		Status:  models.ComplaintStatusResolved, // 客户端伪造的状态
	}
	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	if err := svc.CreateComplaint(actor, &complaint); err != nil {
		t.Fatalf("提交投诉失败: %v", err)
	}

	if complaint.Status != models.ComplaintStatusPending {
		t.Fatalf("期望新投诉状态强制为 pending，实际为 %s", complaint.Status)
	}
	if complaint.ResidentID != resident.ID {
		t.Fatalf("期望投诉归属居民 %d，实际为 %d", resident.ID, complaint.ResidentID)
	}
}

func TestCreateComplaintRequiresResident(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(db, newTestConfig())

	complaint := models.Complaint{Title: "投诉", Content: "内容"}
	err := svc.CreateComplaint(&perms.Actor{UserID: 1}, &complaint)
	assertCode(t, err, code.ErrUserNoResident)
}

func TestUpdateComplaintNonStaffCannotChangeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	complaint := models.Complaint{Title: "电梯噪音", Content: "夜间噪音"}
	actor := &perms.Actor{UserID: 1, ResidentID: resident.ID}
	if err := svc.CreateComplaint(actor, &complaint); err != nil {
		t.Fatalf("提交投诉失败: %v", err)
	}

	// 非管理人员提交的状态字段被丢弃，其余字段正常更新
	updated, err := svc.UpdateComplaint(actor, complaint.ID, map[string]interface{}{
		"status":      models.ComplaintStatusResolved,
		"is_resolved": true,
		"content":     "补充说明：集中在凌晨时段",
	})
	if err != nil {
		t.Fatalf("更新投诉失败: %v", err)
	}

	if updated.Status != models.ComplaintStatusPending || updated.IsResolved {
		t.Fatalf("期望状态字段保持原值，实际 status=%s is_resolved=%v", updated.Status, updated.IsResolved)
	}
	if updated.Content != "补充说明：集中在凌晨时段" {
		t.Fatalf("期望内容更新成功，实际为 %s", updated.Content)
	}
}

func TestUpdateComplaintStaffCanResolve(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)

	complaint := models.Complaint{Title: "电梯噪音", Content: "夜间噪音"}
	if err := svc.CreateComplaint(&perms.Actor{UserID: 1, ResidentID: resident.ID}, &complaint); err != nil {
		t.Fatalf("提交投诉失败: %v", err)
	}

	staff := &perms.Actor{UserID: 2, IsStaff: true}
	updated, err := svc.UpdateComplaint(staff, complaint.ID, map[string]interface{}{
		"status":      models.ComplaintStatusResolved,
		"is_resolved": true,
	})
	if err != nil {
		t.Fatalf("更新投诉失败: %v", err)
	}
	if updated.Status != models.ComplaintStatusResolved || !updated.IsResolved {
		t.Fatalf("期望管理人员可以变更状态，实际 status=%s is_resolved=%v", updated.Status, updated.IsResolved)
	}
}

func TestAddResponseRequiresStaffResponder(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(db, newTestConfig())
	apartment := seedApartment(t, db)
	resident := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	staff := seedUser(t, db, "staff", true)
	normal := seedUser(t, db, "normal", false)

	complaint := models.Complaint{Title: "电梯噪音", Content: "夜间噪音"}
	if err := svc.CreateComplaint(&perms.Actor{UserID: normal.ID, ResidentID: resident.ID}, &complaint); err != nil {
		t.Fatalf("提交投诉失败: %v", err)
	}

	// 普通账号不能回复
	_, err := svc.AddResponse(normal.ID, complaint.ID, "我也有同感")
	assertCode(t, err, code.ErrResponderNotStaff)

	// 管理账号回复成功
	response, err := svc.AddResponse(staff.ID, complaint.ID, "已安排维保单位检查")
	if err != nil {
		t.Fatalf("回复投诉失败: %v", err)
	}
	if response.ComplaintID != complaint.ID || response.ResponderID != staff.ID {
		t.Fatalf("期望回复关联投诉 %d 和回复人 %d，实际为 %d 和 %d",
			complaint.ID, staff.ID, response.ComplaintID, response.ResponderID)
	}
}

func TestGetAllComplaintsScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewComplaintService(db, newTestConfig())
	apartment := seedApartment(t, db)
	mine := seedResident(t, db, apartment.ID, "100000000001", models.RelationshipOwner)
	neighbor := seedResident(t, db, apartment.ID, "100000000002", models.RelationshipChild)

	for i, resident := range []*models.Resident{mine, neighbor} {
		complaint := models.Complaint{Title: "投诉", Content: "内容"}
		if err := svc.CreateComplaint(&perms.Actor{UserID: uint(i + 1), ResidentID: resident.ID}, &complaint); err != nil {
			t.Fatalf("提交投诉失败: %v", err)
		}
	}

	_, total, err := svc.GetAllComplaints(&perms.Actor{UserID: 1, ResidentID: mine.ID}, 1, 10)
	if err != nil {
		t.Fatalf("获取投诉列表失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("期望普通居民只看到自己的1条投诉，实际 %d", total)
	}
}
