package auth

import (
	"time"

	"lanchonete-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	PessoaID uint         `json:"pessoa_id"`
	Email    string       `json:"email"`
	Papel    models.Papel `json:"papel"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, pessoa *models.Pessoa) (string, error) {
	claims := &JWTCustomClaims{
		PessoaID: pessoa.ID,
		Email:    pessoa.Email,
		Papel:    pessoa.Papel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1 dia
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
