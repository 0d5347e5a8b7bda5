package mapper

import (
	"time"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/model"
)

type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

func (m *EmployeeMapper) ToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:           e.Id,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Department:   e.Department,
		Role:         e.Role,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    optionalTime(e.UpdatedAt),
	}
}

func (m *EmployeeMapper) ToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}
	return &model.Employee{
		Id:           e.Id,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Department:   e.Department,
		Role:         e.Role,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
