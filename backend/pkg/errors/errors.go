// Package errors 对数据库驱动返回的约束错误做统一识别
// 同时覆盖 PostgreSQL（pgconn.PgError）与 SQLite（错误文本）两种驱动
package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// UniqueKey 描述一个唯一约束
// Constraint 用于匹配 PostgreSQL 约束名；Table/Columns 用于匹配 SQLite 错误文本
type UniqueKey struct {
	Constraint string
	Table      string
	Columns    []string
}

// sqliteTarget 生成 SQLite 报错中的列清单，如 "registrations.event_id, registrations.student_id"
func (k UniqueKey) sqliteTarget() string {
	cols := make([]string, len(k.Columns))
	for i, c := range k.Columns {
		cols[i] = k.Table + "." + c
	}
	return strings.Join(cols, ", ")
}

// IsUniqueViolation 判断 err 是否为指定唯一约束的冲突
func IsUniqueViolation(err error, key UniqueKey) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == key.Constraint
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return strings.Contains(msg, "UNIQUE constraint failed: "+key.sqliteTarget())
	}
	// 开启 TranslateError 后只剩 gorm.ErrDuplicatedKey，无法区分具体约束
	return false
}

// IsAnyUniqueViolation 判断 err 是否为任意唯一约束冲突
func IsAnyUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") || errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation 判断 err 是否为外键约束冲突
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed") || errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsCheckViolation 判断 err 是否为 CHECK 约束冲突
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCheckViolation
	}
	return strings.Contains(err.Error(), "CHECK constraint failed") || errors.Is(err, gorm.ErrCheckConstraintViolated)
}
