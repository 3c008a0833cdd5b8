package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
	"github.com/Chandana0048/campus-event-management/backend/internal/testutil"
	pkgerrors "github.com/Chandana0048/campus-event-management/backend/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Fixtures
// ═══════════════════════════════════════════════════════════

type scenario struct {
	college    *model.College
	s1, s2, s3 *model.Student
	e1, e2     *model.Event
}

func newSQLiteRepo(t *testing.T) *repository.Repository {
	return repository.NewRepository(testutil.NewSQLiteDB(t))
}

func createStudent(t *testing.T, repo *repository.Repository, name, email, number string, collegeID *uint) *model.Student {
	t.Helper()
	s := &model.Student{Name: name, Email: email, StudentNumber: number, CollegeID: collegeID}
	require.NoError(t, repo.Student.Create(context.Background(), s))
	return s
}

func createEvent(t *testing.T, repo *repository.Repository, title, eventType string, date time.Time, collegeID *uint) *model.Event {
	t.Helper()
	e := &model.Event{Title: title, EventType: eventType, Date: date, Location: "Hall A", CollegeID: collegeID}
	require.NoError(t, repo.Event.Create(context.Background(), e))
	return e
}

func register(t *testing.T, repo *repository.Repository, e *model.Event, s *model.Student) {
	t.Helper()
	require.NoError(t, repo.Registration.Create(context.Background(), &model.Registration{EventID: e.ID, StudentID: s.ID}))
}

func attend(t *testing.T, repo *repository.Repository, e *model.Event, s *model.Student) {
	t.Helper()
	require.NoError(t, repo.Attendance.Create(context.Background(), &model.Attendance{EventID: e.ID, StudentID: s.ID}))
}

func rate(t *testing.T, repo *repository.Repository, e *model.Event, s *model.Student, rating int) {
	t.Helper()
	require.NoError(t, repo.Feedback.Create(context.Background(), &model.Feedback{EventID: e.ID, StudentID: s.ID, Rating: rating}))
}

// seedScenario C 学院下 3 名学生、2 个活动，报名/签到/评价按固定场景写入
func seedScenario(t *testing.T, repo *repository.Repository) scenario {
	t.Helper()
	ctx := context.Background()

	c := &model.College{Name: "College C", Location: "North Campus"}
	require.NoError(t, repo.College.Create(ctx, c))

	sc := scenario{college: c}
	sc.s1 = createStudent(t, repo, "S1", "s1@campus.edu", "STU001", &c.ID)
	sc.s2 = createStudent(t, repo, "S2", "s2@campus.edu", "STU002", &c.ID)
	sc.s3 = createStudent(t, repo, "S3", "s3@campus.edu", "STU003", &c.ID)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	sc.e1 = createEvent(t, repo, "E1", "workshop", base, &c.ID)
	sc.e2 = createEvent(t, repo, "E2", "seminar", base.AddDate(0, 0, 7), &c.ID)

	register(t, repo, sc.e1, sc.s1)
	register(t, repo, sc.e1, sc.s2)
	register(t, repo, sc.e2, sc.s1)
	register(t, repo, sc.e2, sc.s3)

	attend(t, repo, sc.e1, sc.s1)
	attend(t, repo, sc.e2, sc.s1)
	attend(t, repo, sc.e2, sc.s3)

	rate(t, repo, sc.e1, sc.s1, 5)
	rate(t, repo, sc.e2, sc.s1, 4)
	rate(t, repo, sc.e2, sc.s3, 3)

	return sc
}

// ═══════════════════════════════════════════════════════════
// Entity Store
// ═══════════════════════════════════════════════════════════

func TestGetByID_NotFoundReturnsNil(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	college, err := repo.College.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, college)

	student, err := repo.Student.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, student)

	event, err := repo.Event.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, event)

	reg, err := repo.Registration.GetByEventAndStudent(ctx, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, reg)
}

func TestStudentRepo_UniqueConstraints(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	createStudent(t, repo, "Alice", "alice@campus.edu", "STU100", nil)

	err := repo.Student.Create(ctx, &model.Student{Name: "Alice 2", Email: "alice@campus.edu", StudentNumber: "STU101"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUniqueViolation(err, repository.StudentEmailKey))
	assert.False(t, pkgerrors.IsUniqueViolation(err, repository.StudentNumberKey))

	err = repo.Student.Create(ctx, &model.Student{Name: "Bob", Email: "bob@campus.edu", StudentNumber: "STU100"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUniqueViolation(err, repository.StudentNumberKey))

	found, err := repo.Student.GetByEmail(ctx, "alice@campus.edu")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "STU100", found.StudentNumber)

	missing, err := repo.Student.GetByEmail(ctx, "nobody@campus.edu")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRegistrationRepo_DuplicatePair(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	s := createStudent(t, repo, "Alice", "alice@campus.edu", "STU100", nil)
	e := createEvent(t, repo, "Go Workshop", "workshop", time.Now(), nil)
	register(t, repo, e, s)

	err := repo.Registration.Create(ctx, &model.Registration{EventID: e.ID, StudentID: s.ID})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsUniqueViolation(err, repository.RegistrationPairKey))

	got, err := repo.Registration.GetByEventAndStudent(ctx, e.ID, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.ID, got.EventID)
}

func TestAttendanceAndFeedback_AllowDuplicates(t *testing.T) {
	repo := newSQLiteRepo(t)

	s := createStudent(t, repo, "Alice", "alice@campus.edu", "STU100", nil)
	e := createEvent(t, repo, "Go Workshop", "workshop", time.Now(), nil)

	attend(t, repo, e, s)
	attend(t, repo, e, s)
	rate(t, repo, e, s, 4)
	rate(t, repo, e, s, 2)

	rows, err := repo.Report.EventPopularity(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].AttendanceCount)
	require.NotNil(t, rows[0].AvgRating)
	assert.InDelta(t, 3.0, *rows[0].AvgRating, 1e-9)
}

func TestTransaction_RollbackOnError(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.College.Create(ctx, &model.College{Name: "Temp", Location: "Nowhere"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.College.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "回滚后不应留下记录")
}

func TestEventRepo_ListWithStats(t *testing.T) {
	repo := newSQLiteRepo(t)
	sc := seedScenario(t, repo)
	ctx := context.Background()

	other := &model.College{Name: "College D", Location: "South Campus"}
	require.NoError(t, repo.College.Create(ctx, other))
	createEvent(t, repo, "E3", "workshop", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), &other.ID)

	t.Run("按日期倒序", func(t *testing.T) {
		events, err := repo.Event.ListWithStats(ctx, repository.EventFilter{})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{"E2", "E1", "E3"}, []string{events[0].Title, events[1].Title, events[2].Title})

		assert.Equal(t, int64(2), events[0].RegistrationCount)
		assert.Equal(t, int64(2), events[0].AttendanceCount)
		require.NotNil(t, events[0].AvgRating)
		assert.InDelta(t, 3.5, *events[0].AvgRating, 1e-9)

		assert.Equal(t, int64(0), events[2].RegistrationCount)
		assert.Nil(t, events[2].AvgRating)
	})

	t.Run("按学院过滤", func(t *testing.T) {
		events, err := repo.Event.ListWithStats(ctx, repository.EventFilter{CollegeID: &sc.college.ID})
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("按类型过滤", func(t *testing.T) {
		events, err := repo.Event.ListWithStats(ctx, repository.EventFilter{EventType: "workshop"})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "E1", events[0].Title)
		assert.Equal(t, "E3", events[1].Title)
	})

	t.Run("组合过滤", func(t *testing.T) {
		events, err := repo.Event.ListWithStats(ctx, repository.EventFilter{CollegeID: &other.ID, EventType: "seminar"})
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
