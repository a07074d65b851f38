package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are the JWT claims carried by access and refresh tokens.
type UserClaims struct {
	jwt.RegisteredClaims
	CustomerID uint   `json:"customer_id"`
	NationalID string `json:"tckn"`
	Role       string `json:"role"`
}

func (c *UserClaims) Actor() Actor {
	return Actor{CustomerID: c.CustomerID, Role: c.Role}
}
