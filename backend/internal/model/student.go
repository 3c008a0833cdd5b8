package model

// Student 学生表 — 对应 students
// email 与 student_id（学号）全局唯一
type Student struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null"                                   json:"name"`
	Email         string `gorm:"type:varchar(200);not null;uniqueIndex:uq_students_email"     json:"email"`
	StudentNumber string `gorm:"column:student_id;type:varchar(50);not null;uniqueIndex:uq_students_student_id" json:"student_id"`
	CollegeID     *uint  `gorm:"index"                                                        json:"college_id"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
