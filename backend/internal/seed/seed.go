// Package seed 向数据库写入演示数据，全部写入都经过 Service 层
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/service"
)

// Summary 写入结果统计
type Summary struct {
	Colleges        int
	Students        int
	Events          int
	Registrations   int
	Attendance      int
	Feedback        int
	SkippedStudents int // 邮箱或学号冲突未写入的学生数
	Duplicates      int // 重复报名跳过次数
}

// Result 样例数据中各实体的 ID，供后续生成数据引用
type Result struct {
	Summary
	CollegeIDs []uint
	StudentIDs []uint
	EventIDs   []uint
}

type sampleEvent struct {
	title       string
	description string
	eventType   string
	daysAhead   int
	location    string
	capacity    int
	college     int
}

type sampleFeedback struct {
	student int
	rating  int
	comment string
}

// ── 样例数据 ──

var sampleColleges = []dto.CreateCollegeRequest{
	{Name: "Tech University", Location: "San Francisco, CA"},
	{Name: "State College", Location: "Austin, TX"},
	{Name: "Engineering Institute", Location: "Boston, MA"},
}

// college 为 sampleColleges 下标
var sampleStudents = []struct {
	name, email, number string
	college             int
}{
	{"Alice Johnson", "alice@tech.edu", "TU001", 0},
	{"Bob Smith", "bob@state.edu", "SC001", 1},
	{"Carol Davis", "carol@eng.edu", "EI001", 2},
	{"David Wilson", "david@tech.edu", "TU002", 0},
	{"Eva Brown", "eva@state.edu", "SC002", 1},
	{"Frank Miller", "frank@eng.edu", "EI002", 2},
}

var sampleEvents = []sampleEvent{
	{"Python Workshop", "Learn Python programming fundamentals", "workshop", 7, "Computer Lab A", 30, 0},
	{"Data Science Seminar", "Introduction to data science and machine learning", "seminar", 14, "Auditorium", 100, 1},
	{"Hackathon 2024", "24-hour coding competition", "competition", 21, "Conference Center", 50, 2},
	{"Web Development Bootcamp", "Full-stack web development intensive", "workshop", 30, "Tech Hub", 25, 0},
}

// 下标：活动 → 学生
var sampleRegistrations = [][]int{
	{0, 3, 1},
	{1, 4, 2, 0},
	{2, 5, 1},
	{0, 3},
}

var sampleAttendance = [][]int{
	{0, 3},
	{1, 4, 2},
	{2, 5},
}

var sampleFeedbacks = [][]sampleFeedback{
	{
		{0, 5, "Excellent workshop! Very informative."},
		{3, 4, "Good content, could use more hands-on practice."},
	},
	{
		{1, 5, "Amazing seminar, learned a lot!"},
		{4, 3, "Interesting but too theoretical."},
		{2, 4, "Good overview of data science concepts."},
	},
	{
		{2, 5, "Challenging but fun! Great experience."},
		{5, 4, "Well organized, good prizes."},
	},
}

// Load 写入固定样例数据：3 个学院、6 名学生、4 个活动及其报名、签到与评价
// 活动日期以 now 为基准向后推算
func Load(ctx context.Context, svc *service.Service, now time.Time, logger *zap.Logger) (*Result, error) {
	res := &Result{}

	for i := range sampleColleges {
		college, err := svc.College.Create(ctx, &sampleColleges[i])
		if err != nil {
			return nil, fmt.Errorf("创建学院 %s 失败: %w", sampleColleges[i].Name, err)
		}
		res.CollegeIDs = append(res.CollegeIDs, college.ID)
		res.Colleges++
	}

	for _, s := range sampleStudents {
		collegeID := res.CollegeIDs[s.college]
		student, err := svc.Student.Create(ctx, &dto.CreateStudentRequest{
			Name:      s.name,
			Email:     s.email,
			StudentID: s.number,
			CollegeID: &collegeID,
		})
		if err != nil {
			return nil, fmt.Errorf("创建学生 %s 失败: %w", s.name, err)
		}
		res.StudentIDs = append(res.StudentIDs, student.ID)
		res.Students++
	}

	for _, e := range sampleEvents {
		description := e.description
		capacity := e.capacity
		collegeID := res.CollegeIDs[e.college]
		event, err := svc.Event.Create(ctx, &dto.CreateEventRequest{
			Title:           e.title,
			Description:     &description,
			EventType:       e.eventType,
			Date:            now.AddDate(0, 0, e.daysAhead),
			Location:        e.location,
			MaxParticipants: &capacity,
			CollegeID:       &collegeID,
		})
		if err != nil {
			return nil, fmt.Errorf("创建活动 %s 失败: %w", e.title, err)
		}
		res.EventIDs = append(res.EventIDs, event.ID)
		res.Events++
	}

	for ei, students := range sampleRegistrations {
		for _, si := range students {
			if err := register(ctx, svc, res.EventIDs[ei], res.StudentIDs[si], &res.Summary, logger); err != nil {
				return nil, err
			}
		}
	}

	for ei, students := range sampleAttendance {
		for _, si := range students {
			_, err := svc.Participation.MarkAttendance(ctx, res.EventIDs[ei], &dto.AttendanceRequest{StudentID: res.StudentIDs[si]})
			if err != nil {
				return nil, fmt.Errorf("签到失败: %w", err)
			}
			res.Attendance++
		}
	}

	for ei, feedbacks := range sampleFeedbacks {
		for _, fb := range feedbacks {
			comment := fb.comment
			_, err := svc.Participation.SubmitFeedback(ctx, res.EventIDs[ei], &dto.FeedbackRequest{
				StudentID: res.StudentIDs[fb.student],
				Rating:    fb.rating,
				Comment:   &comment,
			})
			if err != nil {
				return nil, fmt.Errorf("提交评价失败: %w", err)
			}
			res.Feedback++
		}
	}

	logger.Info("样例数据写入完成",
		zap.Int("colleges", res.Colleges),
		zap.Int("students", res.Students),
		zap.Int("events", res.Events),
		zap.Int("registrations", res.Registrations),
	)
	return res, nil
}

// Fake 生成 n 名随机学生，并为每名学生随机报名、签到、评价若干活动
// 邮箱或学号冲突、重复报名均记录日志后跳过
func Fake(ctx context.Context, svc *service.Service, base *Result, n int, seed uint64, logger *zap.Logger) (*Summary, error) {
	if len(base.CollegeIDs) == 0 || len(base.EventIDs) == 0 {
		return nil, errors.New("生成数据前需先写入学院与活动")
	}

	f := gofakeit.New(seed)
	sum := &Summary{}

	for i := 0; i < n; i++ {
		collegeID := base.CollegeIDs[f.Number(0, len(base.CollegeIDs)-1)]
		student, err := svc.Student.Create(ctx, &dto.CreateStudentRequest{
			Name:      f.Name(),
			Email:     f.Email(),
			StudentID: f.Numerify("FK######"),
			CollegeID: &collegeID,
		})
		if errors.Is(err, service.ErrConstraintViolation) {
			logger.Warn("生成学生冲突，已跳过", zap.Error(err))
			sum.SkippedStudents++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("创建学生失败: %w", err)
		}
		sum.Students++

		for j := f.Number(1, 2); j > 0; j-- {
			eventID := base.EventIDs[f.Number(0, len(base.EventIDs)-1)]
			if err := register(ctx, svc, eventID, student.ID, sum, logger); err != nil {
				return nil, err
			}
			if !f.Bool() {
				continue
			}
			if _, err := svc.Participation.MarkAttendance(ctx, eventID, &dto.AttendanceRequest{StudentID: student.ID}); err != nil {
				return nil, fmt.Errorf("签到失败: %w", err)
			}
			sum.Attendance++

			comment := f.Sentence(6)
			if _, err := svc.Participation.SubmitFeedback(ctx, eventID, &dto.FeedbackRequest{
				StudentID: student.ID,
				Rating:    f.Number(1, 5),
				Comment:   &comment,
			}); err != nil {
				return nil, fmt.Errorf("提交评价失败: %w", err)
			}
			sum.Feedback++
		}
	}

	logger.Info("随机数据写入完成",
		zap.Int("students", sum.Students),
		zap.Int("registrations", sum.Registrations),
		zap.Int("skipped_students", sum.SkippedStudents),
	)
	return sum, nil
}

// register 报名；重复报名不视为失败
func register(ctx context.Context, svc *service.Service, eventID, studentID uint, sum *Summary, logger *zap.Logger) error {
	_, err := svc.Participation.Register(ctx, eventID, &dto.RegistrationRequest{StudentID: studentID})
	switch {
	case errors.Is(err, service.ErrDuplicateRegistration):
		logger.Info("重复报名，已跳过", zap.Uint("event_id", eventID), zap.Uint("student_id", studentID))
		sum.Duplicates++
		return nil
	case err != nil:
		return fmt.Errorf("报名失败: %w", err)
	}
	sum.Registrations++
	return nil
}
