package model

// College 学院表 — 对应 colleges
type College struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null;index" json:"name"`
	Location string `gorm:"type:varchar(200);not null"       json:"location"`
}

// TableName 指定表名
func (College) TableName() string { return "colleges" }
