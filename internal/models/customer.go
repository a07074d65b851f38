package models

import (
	"time"
)

// Customer roles
const (
	RoleCustomer = "CUSTOMER"
	RoleEmployee = "EMPLOYEE"
)

type Customer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Surname    string    `gorm:"not null" json:"surname"`
	NationalID string    `gorm:"column:tckn;size:11;uniqueIndex;not null" json:"tckn"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"not null;default:'CUSTOMER'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Actor identifies the authenticated caller of an operation. It is resolved
// from the request's JWT claims, never persisted.
type Actor struct {
	CustomerID uint
	Role       string
}

func (a Actor) IsEmployee() bool {
	return a.Role == RoleEmployee
}
