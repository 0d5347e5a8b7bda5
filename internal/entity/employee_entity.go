package entity

import "time"

type Employee struct {
	Id           uint
	EmployeeCode string
	Name         string
	Email        string
	PasswordHash string
	Department   string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
