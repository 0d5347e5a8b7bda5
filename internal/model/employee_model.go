package model

import "time"

type Employee struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	EmployeeCode string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(128);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Department   string    `gorm:"type:varchar(64)"`
	Role         string    `gorm:"type:varchar(32);default:'employee'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
