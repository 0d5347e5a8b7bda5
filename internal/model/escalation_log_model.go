package model

import "time"

type EscalationLog struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	SessionId      string    `gorm:"type:varchar(64);not null;index"`
	EmployeeId     string    `gorm:"type:varchar(32);index"`
	QueryText      string    `gorm:"type:text;not null"`
	Category       string    `gorm:"type:varchar(48)"`
	EscalationType string    `gorm:"type:varchar(32);not null;index"`
	Reason         string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(16);default:'pending';index"`
	ResolvedBy     string    `gorm:"type:varchar(32)"`
	ResolutionNote string    `gorm:"type:text"`
	ResolvedAt     *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (EscalationLog) TableName() string {
	return "escalation_logs"
}
