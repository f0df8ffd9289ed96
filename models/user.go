package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
)

type User struct {
	ID              int        `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	RollNumber      string     `json:"roll_number"`
	DOB             *time.Time `json:"dob,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Verified        bool       `json:"verified"`
	VerificationPin *string    `json:"-"`
	PinExpiry       *time.Time `json:"-"`
	Role            string     `json:"role"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UserInfo is the minimal projection returned after verification.
type UserInfo struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
