package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Chandana0048/campus-event-management/backend/config"
	"github.com/Chandana0048/campus-event-management/backend/internal/model"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
)

// errSQLiteRegistrationUnique 模拟 SQLite 驱动返回的唯一约束错误文本
var errSQLiteRegistrationUnique = errors.New("UNIQUE constraint failed: registrations.event_id, registrations.student_id")

// ── Mock CollegeRepository ──

type mockCollegeRepo struct {
	colleges map[uint]*model.College
	nextID   uint
}

func newMockCollegeRepo() *mockCollegeRepo {
	return &mockCollegeRepo{colleges: make(map[uint]*model.College)}
}

func (m *mockCollegeRepo) Create(_ context.Context, college *model.College) error {
	m.nextID++
	college.ID = m.nextID
	m.colleges[college.ID] = college
	return nil
}

func (m *mockCollegeRepo) GetByID(_ context.Context, id uint) (*model.College, error) {
	return m.colleges[id], nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students  map[uint]*model.Student
	nextID    uint
	createErr error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[uint]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	student.ID = m.nextID
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	return m.students[id], nil
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[uint]*model.Event
	nextID uint
	listed []model.EventWithStats
	filter repository.EventFilter
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[uint]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	m.nextID++
	event.ID = m.nextID
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id uint) (*model.Event, error) {
	return m.events[id], nil
}

func (m *mockEventRepo) ListWithStats(_ context.Context, filter repository.EventFilter) ([]model.EventWithStats, error) {
	m.filter = filter
	return m.listed, nil
}

// ── Mock RegistrationRepository ──

type mockRegistrationRepo struct {
	mu            sync.Mutex
	registrations []*model.Registration
	// hideExisting 为 true 时查询总返回空，模拟并发下两个请求同时通过查重
	hideExisting bool
}

func newMockRegistrationRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{}
}

func (m *mockRegistrationRepo) Create(_ context.Context, reg *model.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.registrations {
		if r.EventID == reg.EventID && r.StudentID == reg.StudentID {
			return errSQLiteRegistrationUnique
		}
	}
	reg.ID = uint(len(m.registrations) + 1)
	m.registrations = append(m.registrations, reg)
	return nil
}

func (m *mockRegistrationRepo) GetByEventAndStudent(_ context.Context, eventID, studentID uint) (*model.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hideExisting {
		return nil, nil
	}
	for _, r := range m.registrations {
		if r.EventID == eventID && r.StudentID == studentID {
			return r, nil
		}
	}
	return nil, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []*model.Attendance
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	att.ID = uint(len(m.records) + 1)
	m.records = append(m.records, att)
	return nil
}

// ── Mock FeedbackRepository ──

type mockFeedbackRepo struct {
	records []*model.Feedback
	calls   int
}

func (m *mockFeedbackRepo) Create(_ context.Context, fb *model.Feedback) error {
	m.calls++
	fb.ID = uint(len(m.records) + 1)
	m.records = append(m.records, fb)
	return nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	popularity    []model.EventPopularityRow
	participation []model.StudentParticipationRow
	top           []model.TopActiveStudentRow
	lastLimit     int
	err           error
}

func (m *mockReportRepo) EventPopularity(_ context.Context) ([]model.EventPopularityRow, error) {
	return m.popularity, m.err
}

func (m *mockReportRepo) StudentParticipation(_ context.Context) ([]model.StudentParticipationRow, error) {
	return m.participation, m.err
}

func (m *mockReportRepo) TopActiveStudents(_ context.Context, limit int) ([]model.TopActiveStudentRow, error) {
	m.lastLimit = limit
	if limit < len(m.top) {
		return m.top[:limit], m.err
	}
	return m.top, m.err
}

// ── Mock Recorder ──

type mockRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
	ratings  []int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{outcomes: make(map[string]int)}
}

func (m *mockRecorder) IncRegistration(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

func (m *mockRecorder) ObserveRating(rating int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratings = append(m.ratings, rating)
}

// ── 测试辅助 ──

type mockRepos struct {
	college      *mockCollegeRepo
	student      *mockStudentRepo
	event        *mockEventRepo
	registration *mockRegistrationRepo
	attendance   *mockAttendanceRepo
	feedback     *mockFeedbackRepo
	report       *mockReportRepo
}

// newMockRepository 构造未绑定数据库的 Repository，Transaction 直接执行回调
func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		college:      newMockCollegeRepo(),
		student:      newMockStudentRepo(),
		event:        newMockEventRepo(),
		registration: newMockRegistrationRepo(),
		attendance:   &mockAttendanceRepo{},
		feedback:     &mockFeedbackRepo{},
		report:       &mockReportRepo{},
	}
	repo := &repository.Repository{
		College:      m.college,
		Student:      m.student,
		Event:        m.event,
		Registration: m.registration,
		Attendance:   m.attendance,
		Feedback:     m.feedback,
		Report:       m.report,
	}
	return repo, m
}

func testConfig() *config.Config {
	return &config.Config{
		Feature: config.FeatureConfig{EnforceReferences: true},
		Report:  config.ReportConfig{DefaultLimit: 10, MaxLimit: 100},
	}
}
