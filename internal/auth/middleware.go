package auth

import (
	"fmt"
	"strings"

	"lanchonete-backend/internal/config"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxPessoaIDKey = "pessoa_id"
	CtxPapelKey    = "papel"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Header Authorization ausente")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Formato do Authorization deve ser 'Bearer <token>'")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inválido")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Não foi possível decodificar o token")
		}

		c.Locals(CtxPessoaIDKey, claims.PessoaID)
		c.Locals(CtxPapelKey, claims.Papel)

		return c.Next()
	}
}

func RequirePapel(permitidos ...models.Papel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papelVal := c.Locals(CtxPapelKey)
		papel, ok := papelVal.(models.Papel)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o papel do usuário")
		}

		for _, p := range permitidos {
			if p == papel {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Você não tem permissão para esta operação")
	}
}
