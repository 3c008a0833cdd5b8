package repository

import pkgerrors "github.com/Chandana0048/campus-event-management/backend/pkg/errors"

// 唯一约束定义，约束名与迁移脚本、模型标签保持一致
var (
	StudentEmailKey = pkgerrors.UniqueKey{
		Constraint: "uq_students_email",
		Table:      "students",
		Columns:    []string{"email"},
	}
	StudentNumberKey = pkgerrors.UniqueKey{
		Constraint: "uq_students_student_id",
		Table:      "students",
		Columns:    []string{"student_id"},
	}
	RegistrationPairKey = pkgerrors.UniqueKey{
		Constraint: "uq_registrations_event_student",
		Table:      "registrations",
		Columns:    []string{"event_id", "student_id"},
	}
)
