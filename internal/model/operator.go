package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role codes as constants
const (
	RoleAdmin = "ADMIN"
	RoleClerk = "CLERK"
)

// Privilege codes checked by the auth middleware.
const (
	PrivSaleCreate    = "sale:create"
	PrivProductWrite  = "product:write"
	PrivClientWrite   = "client:write"
	PrivEmployeeWrite = "employee:write"
	PrivUserWrite     = "user:write"
)

// RolePrivileges maps every role to the privileges it grants.
var RolePrivileges = map[string][]string{
	RoleAdmin: {PrivSaleCreate, PrivProductWrite, PrivClientWrite, PrivEmployeeWrite, PrivUserWrite},
	RoleClerk: {PrivSaleCreate, PrivClientWrite},
}

// Operator is an authenticated staff account allowed to call the API.
type Operator struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName     string     `gorm:"type:varchar(255)" json:"full_name"`
	RoleCode     string     `gorm:"type:varchar(20);not null;default:'CLERK'" json:"role_code"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	TokenVersion string     `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// SetPassword hashes and sets the operator's password
func (o *Operator) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (o *Operator) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.Password), []byte(password)) == nil
}

// Privileges returns the privilege codes granted by the operator's role.
func (o *Operator) Privileges() []string {
	return RolePrivileges[o.RoleCode]
}

type OperatorResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	RoleCode    string     `json:"role_code"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	Privileges  []string   `json:"privileges"`
}

func (o *Operator) ToResponse() OperatorResponse {
	return OperatorResponse{
		ID:          o.ID,
		Email:       o.Email,
		FullName:    o.FullName,
		RoleCode:    o.RoleCode,
		IsActive:    o.IsActive,
		LastLoginAt: o.LastLoginAt,
		Privileges:  o.Privileges(),
	}
}
