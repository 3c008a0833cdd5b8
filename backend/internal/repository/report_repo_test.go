package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandana0048/campus-event-management/backend/internal/model"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
)

func assertScenarioReports(t *testing.T, repo *repository.Repository, sc scenario) {
	t.Helper()
	ctx := context.Background()

	pop, err := repo.Report.EventPopularity(ctx)
	require.NoError(t, err)
	require.Len(t, pop, 2)
	byEvent := map[uint]model.EventPopularityRow{}
	for _, row := range pop {
		byEvent[row.EventID] = row
	}
	e1, e2 := byEvent[sc.e1.ID], byEvent[sc.e2.ID]
	assert.Equal(t, int64(2), e1.RegistrationCount)
	assert.Equal(t, int64(1), e1.AttendanceCount)
	require.NotNil(t, e1.AvgRating)
	assert.InDelta(t, 5.0, *e1.AvgRating, 1e-9)
	assert.Equal(t, "workshop", e1.EventType)
	assert.Equal(t, int64(2), e2.RegistrationCount)
	assert.Equal(t, int64(2), e2.AttendanceCount)
	require.NotNil(t, e2.AvgRating)
	assert.InDelta(t, 3.5, *e2.AvgRating, 1e-9)

	part, err := repo.Report.StudentParticipation(ctx)
	require.NoError(t, err)
	require.Len(t, part, 3)
	assert.Equal(t, sc.s1.ID, part[0].StudentID)
	assert.Equal(t, int64(2), part[0].EventsAttended)
	assert.Equal(t, int64(2), part[0].TotalRegistrations)
	assert.Equal(t, sc.s3.ID, part[1].StudentID)
	assert.Equal(t, int64(1), part[1].EventsAttended)
	assert.Equal(t, int64(1), part[1].TotalRegistrations)
	assert.Equal(t, sc.s2.ID, part[2].StudentID)
	assert.Equal(t, int64(0), part[2].EventsAttended)
	assert.Equal(t, int64(1), part[2].TotalRegistrations)

	top, err := repo.Report.TopActiveStudents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, sc.s1.ID, top[0].StudentID)
	assert.Equal(t, "s1@campus.edu", top[0].Email)
	require.NotNil(t, top[0].AvgRatingGiven)
	assert.InDelta(t, 4.5, *top[0].AvgRatingGiven, 1e-9)
	assert.Equal(t, sc.s3.ID, top[1].StudentID)
}

func TestReportRepo_Scenario(t *testing.T) {
	repo := newSQLiteRepo(t)
	sc := seedScenario(t, repo)
	assertScenarioReports(t, repo, sc)
}

func TestReportRepo_EventPopularityOrdering(t *testing.T) {
	repo := newSQLiteRepo(t)

	students := make([]*model.Student, 4)
	for i := range students {
		students[i] = createStudent(t, repo,
			fmt.Sprintf("Student %d", i),
			fmt.Sprintf("student%d@campus.edu", i),
			fmt.Sprintf("STU%03d", i), nil)
	}

	// 报名数依次为 3, 4, 3, 2
	counts := []int{3, 4, 3, 2}
	events := make([]*model.Event, len(counts))
	for i, n := range counts {
		events[i] = createEvent(t, repo, fmt.Sprintf("Event %d", i), "talk", time.Now(), nil)
		for j := 0; j < n; j++ {
			register(t, repo, events[i], students[j])
		}
	}

	rows, err := repo.Report.EventPopularity(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, events[1].ID, rows[0].EventID)
	assert.Equal(t, int64(4), rows[0].RegistrationCount)
	assert.ElementsMatch(t, []uint{events[0].ID, events[2].ID}, []uint{rows[1].EventID, rows[2].EventID})
	assert.Equal(t, int64(3), rows[1].RegistrationCount)
	assert.Equal(t, int64(3), rows[2].RegistrationCount)
	assert.Equal(t, events[3].ID, rows[3].EventID)
	assert.Equal(t, int64(2), rows[3].RegistrationCount)
}

func TestReportRepo_NullAverages(t *testing.T) {
	repo := newSQLiteRepo(t)

	s := createStudent(t, repo, "Quiet", "quiet@campus.edu", "STU900", nil)
	e := createEvent(t, repo, "No Feedback", "seminar", time.Now(), nil)
	register(t, repo, e, s)
	attend(t, repo, e, s)

	pop, err := repo.Report.EventPopularity(context.Background())
	require.NoError(t, err)
	require.Len(t, pop, 1)
	assert.Nil(t, pop[0].AvgRating, "无评价时平均分应为 null 而非 0")
	assert.Equal(t, int64(1), pop[0].AttendanceCount)

	top, err := repo.Report.TopActiveStudents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Nil(t, top[0].AvgRatingGiven)
	assert.Equal(t, int64(1), top[0].EventsAttended)
}

func TestReportRepo_EmptyStore(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	pop, err := repo.Report.EventPopularity(ctx)
	require.NoError(t, err)
	assert.Empty(t, pop)

	part, err := repo.Report.StudentParticipation(ctx)
	require.NoError(t, err)
	assert.Empty(t, part)
}
