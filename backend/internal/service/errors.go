package service

import (
	"errors"
	"fmt"
)

// ── 错误分类 ──
// Handler 通过 errors.Is 按分类映射 HTTP 状态码，按具体错误选择业务码与提示

var (
	ErrNotFound              = errors.New("记录不存在")
	ErrReferenceNotFound     = errors.New("关联记录不存在")
	ErrConstraintViolation   = errors.New("违反唯一性约束")
	ErrDuplicateRegistration = errors.New("该学生已报名此活动")
	ErrInvalidRating         = errors.New("评分必须在 1-5 之间")
	ErrInvalidArgument       = errors.New("参数不合法")
)

// ── 具体业务错误 ──

var (
	ErrCollegeNotFound     = errors.New("学院不存在")
	ErrStudentNotFound     = errors.New("学生不存在")
	ErrEventNotFound       = errors.New("活动不存在")
	ErrStudentEmailExists  = errors.New("该邮箱已被使用")
	ErrStudentNumberExists = errors.New("该学号已被使用")
	ErrCommentTooLong      = errors.New("评价内容不能超过 500 字")
	ErrLimitOutOfRange     = errors.New("limit 超出允许范围")
	ErrExportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// classify 组合具体错误与分类错误，errors.Is 对二者均成立
func classify(specific, kind error) error {
	return fmt.Errorf("%w: %w", specific, kind)
}

// isBusinessError 判断 err 是否已归入上述分类（无需再按存储错误解析）
func isBusinessError(err error) bool {
	for _, kind := range []error{
		ErrNotFound,
		ErrReferenceNotFound,
		ErrConstraintViolation,
		ErrDuplicateRegistration,
		ErrInvalidRating,
		ErrInvalidArgument,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
