package model

import "time"

// FAQPattern aggregates repeated queries per category so HR can spot
// documentation gaps.
type FAQPattern struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	Category      string    `gorm:"type:varchar(48);not null;index"`
	QueryPattern  string    `gorm:"type:text;not null"`
	HitCount      int       `gorm:"default:1"`
	AvgConfidence float64   `gorm:"type:double precision"`
	LastSeenAt    time.Time `gorm:"autoUpdateTime"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (FAQPattern) TableName() string {
	return "faq_patterns"
}
