package service

import (
	"context"
	"time"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/pkg/logger"
	"hr-assist-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.EmployeeProfile, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	employeeRepo contract.EmployeeRepository
	jwtSecret    string
	tokenTTL     time.Duration
	logger       logger.ILogger
}

func NewAuthService(employeeRepo contract.EmployeeRepository, jwtSecret string, tokenTTLMin int, log logger.ILogger) IAuthService {
	return &authService{
		employeeRepo: employeeRepo,
		jwtSecret:    jwtSecret,
		tokenTTL:     time.Duration(tokenTTLMin) * time.Minute,
		logger:       log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.EmployeeProfile, error) {
	existing, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "employee"
	}

	employee := &entity.Employee{
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Department:   req.Department,
		Role:         role,
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("Auth", "Employee registered", map[string]interface{}{
		"employee_code": employee.EmployeeCode,
		"role":          employee.Role,
	})

	return &dto.EmployeeProfile{
		EmployeeCode: employee.EmployeeCode,
		Name:         employee.Name,
		Email:        employee.Email,
		Department:   employee.Department,
		Role:         employee.Role,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"employee_id": employee.EmployeeCode,
		"role":        employee.Role,
		"email":       employee.Email,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signed,
		Employee: dto.EmployeeProfile{
			EmployeeCode: employee.EmployeeCode,
			Name:         employee.Name,
			Email:        employee.Email,
			Department:   employee.Department,
			Role:         employee.Role,
		},
	}, nil
}
