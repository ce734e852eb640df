package menu

import (
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateLancheRequest struct {
	Nome      string  `json:"nome_lanche"`
	Descricao string  `json:"descricao_lanche"`
	Valor     float64 `json:"valor_lanche"`
}

type UpdateLancheRequest struct {
	Nome       *string  `json:"nome_lanche"`
	Descricao  *string  `json:"descricao_lanche"`
	Valor      *float64 `json:"valor_lanche"`
	Disponivel *bool    `json:"disponivel"`
}

type LancheResponse struct {
	ID         uint    `json:"id_lanche"`
	Nome       string  `json:"nome_lanche"`
	Descricao  string  `json:"descricao_lanche"`
	Valor      float64 `json:"valor_lanche"`
	Disponivel bool    `json:"disponivel"`
}

func lancheToResponse(l *models.Lanche) LancheResponse {
	return LancheResponse{
		ID:         l.ID,
		Nome:       l.Nome,
		Descricao:  l.Descricao,
		Valor:      l.Valor.InexactFloat64(),
		Disponivel: l.Disponivel,
	}
}

// POST /api/lanches
func CreateLancheHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLancheRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome == "" || body.Descricao == "" || body.Valor <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Preencher todos os campos")
		}

		lanche := models.Lanche{
			Nome:       body.Nome,
			Descricao:  body.Descricao,
			Valor:      decimal.NewFromFloat(body.Valor),
			Disponivel: true,
		}

		if err := database.DB.Create(&lanche).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o lanche")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": "Cadastrado com sucesso",
			"lanches": lancheToResponse(&lanche),
		})
	}
}

// GET /api/lanches
func ListLanchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lanches []models.Lanche
		if err := database.DB.Order("nome").Find(&lanches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os lanches")
		}

		resp := make([]LancheResponse, 0, len(lanches))
		for i := range lanches {
			resp = append(resp, lancheToResponse(&lanches[i]))
		}
		return c.JSON(fiber.Map{"lanches": resp})
	}
}

// PUT /api/lanches/:id
// Único lugar onde a disponibilidade volta a true: reativar um lanche
// desativado pela falta de insumo é sempre decisão manual.
func UpdateLancheHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdateLancheRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var lanche models.Lanche
		if err := database.DB.First(&lanche, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lanche não encontrado")
		}

		if body.Nome != nil {
			lanche.Nome = *body.Nome
		}
		if body.Descricao != nil {
			lanche.Descricao = *body.Descricao
		}
		if body.Valor != nil {
			if *body.Valor <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "valor_lanche deve ser maior que zero")
			}
			lanche.Valor = decimal.NewFromFloat(*body.Valor)
		}
		if body.Disponivel != nil {
			lanche.Disponivel = *body.Disponivel
		}

		if err := database.DB.Save(&lanche).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o lanche")
		}

		return c.JSON(fiber.Map{
			"success": "Lanche atualizado com sucesso",
			"lanche":  lancheToResponse(&lanche),
		})
	}
}
