package menu

import (
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"
	"lanchonete-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateBebidaRequest struct {
	Nome        string  `json:"nome_bebida"`
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	CategoriaID uint    `json:"id_categoria"`
}

type UpdateBebidaRequest struct {
	Nome       *string  `json:"nome_bebida"`
	Descricao  *string  `json:"descricao"`
	Valor      *float64 `json:"valor"`
	Quantidade *int     `json:"quantidade"`
}

type BebidaResponse struct {
	ID          uint    `json:"id_bebida"`
	Nome        string  `json:"nome_bebida"`
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
	CategoriaID uint    `json:"id_categoria"`
	Quantidade  int     `json:"quantidade"`
	Disponivel  bool    `json:"disponivel"`
}

func bebidaToResponse(b *models.Bebida) BebidaResponse {
	return BebidaResponse{
		ID:          b.ID,
		Nome:        b.Nome,
		Descricao:   b.Descricao,
		Valor:       b.Valor.InexactFloat64(),
		CategoriaID: b.CategoriaID,
		Quantidade:  b.Quantidade,
		Disponivel:  b.Disponivel,
	}
}

// POST /api/bebidas
// Bebida nova entra com estoque zero; quem enche é a entrada.
func CreateBebidaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBebidaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome == "" || body.Valor <= 0 || body.CategoriaID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Preencher todos os campos")
		}

		var categoria models.Categoria
		if err := database.DB.First(&categoria, "id = ?", body.CategoriaID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Categoria não encontrada")
		}

		bebida := models.Bebida{
			Nome:        body.Nome,
			Descricao:   body.Descricao,
			Valor:       decimal.NewFromFloat(body.Valor),
			CategoriaID: body.CategoriaID,
			Quantidade:  0,
			Disponivel:  false,
		}

		if err := database.DB.Create(&bebida).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar a bebida")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": "Bebida cadastrada com sucesso",
			"bebida":  bebidaToResponse(&bebida),
		})
	}
}

// GET /api/bebidas
func ListBebidasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var bebidas []models.Bebida
		if err := database.DB.Order("nome").Find(&bebidas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as bebidas")
		}

		resp := make([]BebidaResponse, 0, len(bebidas))
		for i := range bebidas {
			resp = append(resp, bebidaToResponse(&bebidas[i]))
		}
		return c.JSON(fiber.Map{"bebidas": resp})
	}
}

// PUT /api/bebidas/:id
// Edição direta da contagem recalcula a disponibilidade: para bebida a
// regra é simétrica (disponível sse quantidade acima do limite).
func UpdateBebidaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdateBebidaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var bebida models.Bebida
		if err := database.DB.First(&bebida, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bebida não encontrada")
		}

		if body.Nome != nil {
			bebida.Nome = *body.Nome
		}
		if body.Descricao != nil {
			bebida.Descricao = *body.Descricao
		}
		if body.Valor != nil {
			if *body.Valor <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "valor deve ser maior que zero")
			}
			bebida.Valor = decimal.NewFromFloat(*body.Valor)
		}
		if body.Quantidade != nil {
			if *body.Quantidade < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "quantidade não pode ser negativa")
			}
			bebida.Quantidade = *body.Quantidade
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&bebida).Error; err != nil {
				return err
			}
			return stock.AtualizaDisponibilidadeBebida(tx, bebida.ID)
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a bebida")
		}

		// relê a linha para devolver a disponibilidade recalculada
		if err := database.DB.First(&bebida, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a bebida")
		}

		return c.JSON(fiber.Map{
			"success": "Bebida atualizada com sucesso",
			"bebida":  bebidaToResponse(&bebida),
		})
	}
}
