package model

import "time"

type QueryFeedback struct {
	Id         uint      `gorm:"primaryKey;autoIncrement"`
	SessionId  string    `gorm:"type:varchar(64);index;not null"`
	EmployeeId string    `gorm:"type:varchar(64);index"`
	Helpful    bool      `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (QueryFeedback) TableName() string {
	return "query_feedbacks"
}
