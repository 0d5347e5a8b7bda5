package model

import (
	"time"

	"gorm.io/datatypes"
)

type QueryLog struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	SessionId      string         `gorm:"type:varchar(64);not null;index"`
	EmployeeId     string         `gorm:"type:varchar(32);index"`
	Department     string         `gorm:"type:varchar(64)"`
	Role           string         `gorm:"type:varchar(32)"`
	QueryText      string         `gorm:"type:text;not null"`
	Category       string         `gorm:"type:varchar(48);index"`
	Intent         string         `gorm:"type:text"`
	ResponseText   string         `gorm:"type:text"`
	Confidence     float64        `gorm:"type:double precision"`
	Escalated      bool           `gorm:"default:false;index"`
	EscalationType string         `gorm:"type:varchar(32)"`
	SourcesUsed    datatypes.JSON `gorm:"type:jsonb"`
	ResponseTimeMs int64
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (QueryLog) TableName() string {
	return "query_logs"
}
