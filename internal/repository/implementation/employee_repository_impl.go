package implementation

import (
	"context"
	"errors"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/mapper"
	"hr-assist-be/internal/model"
	"hr-assist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmployeeMapper
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.ToModel(employee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var m model.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmployeeRepositoryImpl) FindByCode(ctx context.Context, employeeCode string) (*entity.Employee, error) {
	var m model.Employee
	err := r.db.WithContext(ctx).Where("employee_code = ?", employeeCode).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
