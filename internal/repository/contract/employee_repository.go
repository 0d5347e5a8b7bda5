package contract

import (
	"context"

	"hr-assist-be/internal/entity"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	FindByCode(ctx context.Context, employeeCode string) (*entity.Employee, error)
}
