package dto

type RegisterRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Department   string `json:"department"`
	Role         string `json:"role" validate:"omitempty,oneof=employee manager hr_admin hr_manager executive"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmployeeProfile struct {
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Role         string `json:"role"`
}

type LoginResponse struct {
	Token    string          `json:"token"`
	Employee EmployeeProfile `json:"employee"`
}
