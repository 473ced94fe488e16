package model

import "encoding/json"

// GradebookRecord 成绩册文档的持久化行，每个 owner 一行，整体覆盖写入
type GradebookRecord struct {
	BaseModel
	OwnerID string          `gorm:"uniqueIndex;size:64;not null" json:"ownerId"`
	Data    json.RawMessage `gorm:"type:json" json:"data"`
}

func (GradebookRecord) TableName() string {
	return "gradebook_records"
}
