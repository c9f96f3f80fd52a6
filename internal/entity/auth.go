package entity

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	jwt.RegisteredClaims

	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	EmployeeID  uint64 `json:"employee_id"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

type Profile struct {
	ID           uint64  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	JobName      string  `json:"job_name"`
	DepartmentID *uint64 `json:"department_id"`
	Role         string  `json:"role"`
}

type SetPasswordRequest struct {
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
