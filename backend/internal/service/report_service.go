package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Chandana0048/campus-event-management/backend/config"
	"github.com/Chandana0048/campus-event-management/backend/internal/dto"
	"github.com/Chandana0048/campus-event-management/backend/internal/repository"
)

// 导出工作簿的 Sheet 名称
const (
	SheetEventPopularity      = "活动热度"
	SheetStudentParticipation = "学生参与度"
	SheetTopActiveStudents    = "活跃学生"
)

// ReportService 报表业务接口
//
// 设计说明：
//   - 三张报表均为只读聚合，每次调用实时计算，不缓存
//   - 排序字段相同的行之间顺序不保证
//   - 平均分无数据时为 null，不以 0 代替
type ReportService interface {
	EventPopularity(ctx context.Context) ([]dto.EventPopularityItem, error)
	StudentParticipation(ctx context.Context) ([]dto.StudentParticipationItem, error)
	// TopActiveStudents limit 需在 1 到 report.max_limit 之间，超出范围返回 ErrInvalidArgument
	TopActiveStudents(ctx context.Context, limit int) ([]dto.TopActiveStudentItem, error)
	// Export 将三张报表导出为一个 .xlsx 工作簿
	Export(ctx context.Context, limit int) (*bytes.Buffer, string, error)
}

type reportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── Event Popularity ──────────────────────

func (s *reportService) EventPopularity(ctx context.Context) ([]dto.EventPopularityItem, error) {
	rows, err := s.repo.Report.EventPopularity(ctx)
	if err != nil {
		s.logger.Error("查询活动热度报表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.EventPopularityItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.EventPopularityItem{
			EventID:           r.EventID,
			Title:             r.Title,
			EventType:         r.EventType,
			RegistrationCount: r.RegistrationCount,
			AttendanceCount:   r.AttendanceCount,
			AvgRating:         r.AvgRating,
		})
	}
	return items, nil
}

// ────────────────────── Student Participation ──────────────────────

func (s *reportService) StudentParticipation(ctx context.Context) ([]dto.StudentParticipationItem, error) {
	rows, err := s.repo.Report.StudentParticipation(ctx)
	if err != nil {
		s.logger.Error("查询学生参与度报表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.StudentParticipationItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StudentParticipationItem{
			StudentID:          r.StudentID,
			Name:               r.Name,
			Email:              r.Email,
			EventsAttended:     r.EventsAttended,
			TotalRegistrations: r.TotalRegistrations,
		})
	}
	return items, nil
}

// ────────────────────── Top Active Students ──────────────────────

func (s *reportService) TopActiveStudents(ctx context.Context, limit int) ([]dto.TopActiveStudentItem, error) {
	if err := s.validateLimit(limit); err != nil {
		return nil, err
	}

	rows, err := s.repo.Report.TopActiveStudents(ctx, limit)
	if err != nil {
		s.logger.Error("查询活跃学生报表失败", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}

	items := make([]dto.TopActiveStudentItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopActiveStudentItem{
			StudentID:      r.StudentID,
			Name:           r.Name,
			Email:          r.Email,
			EventsAttended: r.EventsAttended,
			AvgRatingGiven: r.AvgRatingGiven,
		})
	}
	return items, nil
}

func (s *reportService) validateLimit(limit int) error {
	if limit < 1 || limit > s.cfg.Report.MaxLimit {
		return classify(ErrLimitOutOfRange, ErrInvalidArgument)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Export — 三张报表导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：每张报表一个 Sheet，第 1 行为表头
// 平均分为 null 时单元格写入 "-"
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *reportService) Export(ctx context.Context, limit int) (*bytes.Buffer, string, error) {
	if err := s.validateLimit(limit); err != nil {
		return nil, "", err
	}

	popularity, err := s.EventPopularity(ctx)
	if err != nil {
		return nil, "", err
	}
	participation, err := s.StudentParticipation(ctx)
	if err != nil {
		return nil, "", err
	}
	top, err := s.TopActiveStudents(ctx, limit)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 1. 活动热度
	popRows := make([][]interface{}, 0, len(popularity))
	for _, p := range popularity {
		popRows = append(popRows, []interface{}{
			p.EventID, p.Title, p.EventType, p.RegistrationCount, p.AttendanceCount, ratingCell(p.AvgRating),
		})
	}
	if err := writeSheet(f, SheetEventPopularity, headerStyle,
		[]string{"活动ID", "标题", "类型", "报名数", "签到数", "平均评分"}, popRows); err != nil {
		s.logger.Error("写入活动热度 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 2. 学生参与度
	partRows := make([][]interface{}, 0, len(participation))
	for _, p := range participation {
		partRows = append(partRows, []interface{}{
			p.StudentID, p.Name, p.Email, p.EventsAttended, p.TotalRegistrations,
		})
	}
	if err := writeSheet(f, SheetStudentParticipation, headerStyle,
		[]string{"学生ID", "姓名", "邮箱", "签到次数", "报名次数"}, partRows); err != nil {
		s.logger.Error("写入学生参与度 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 3. 活跃学生
	topRows := make([][]interface{}, 0, len(top))
	for _, t := range top {
		topRows = append(topRows, []interface{}{
			t.StudentID, t.Name, t.Email, t.EventsAttended, ratingCell(t.AvgRatingGiven),
		})
	}
	if err := writeSheet(f, SheetTopActiveStudents, headerStyle,
		[]string{"学生ID", "姓名", "邮箱", "签到次数", "平均给分"}, topRows); err != nil {
		s.logger.Error("写入活跃学生 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 删除默认 Sheet1
	if idx, err := f.GetSheetIndex(SheetEventPopularity); err == nil {
		f.SetActiveSheet(idx)
	}
	f.DeleteSheet("Sheet1")

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("campus_reports_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// writeSheet 新建 Sheet 并写入表头与数据行
func writeSheet(f *excelize.File, name string, headerStyle int, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	for i, h := range headers {
		c := cell(i+1, 1)
		if err := f.SetCellValue(name, c, h); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(name, col, col, 18)
	}
	_ = f.SetCellStyle(name, cell(1, 1), cell(len(headers), 1), headerStyle)

	for r, row := range rows {
		for c, v := range row {
			if err := f.SetCellValue(name, cell(c+1, r+2), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func ratingCell(v *float64) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}
