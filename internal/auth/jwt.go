package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleGerente Role = "gerente" // controlo completo
	RoleEquipa  Role = "equipa"  // só registo de saídas
)

type JWTCustomClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, role Role) (string, error) {
	claims := &JWTCustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)), // um turno
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
