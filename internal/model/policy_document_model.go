package model

import "time"

type PolicyDocument struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	Source     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title      string    `gorm:"type:varchar(255)"`
	Category   string    `gorm:"type:varchar(48);index"`
	Content    string    `gorm:"type:text"`
	ChunkCount int       `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (PolicyDocument) TableName() string {
	return "policy_documents"
}
