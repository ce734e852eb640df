package stock

import (
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateInsumoRequest struct {
	Nome        string  `json:"nome_insumo"`
	Custo       float64 `json:"custo"`
	CategoriaID uint    `json:"categoria_id"`
	QtdInsumo   int     `json:"qtd_insumo"`
}

type UpdateInsumoRequest struct {
	Nome        *string  `json:"nome_insumo"`
	QtdInsumo   *int     `json:"qtd_insumo"`
	Custo       *float64 `json:"custo"`
	CategoriaID *uint    `json:"categoria_id"`
}

type InsumoResponse struct {
	ID          uint    `json:"id_insumo"`
	Nome        string  `json:"nome_insumo"`
	QtdInsumo   int     `json:"qtd_insumo"`
	Custo       float64 `json:"custo"`
	CategoriaID uint    `json:"categoria_id"`
}

func insumoToResponse(i *models.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:          i.ID,
		Nome:        i.Nome,
		QtdInsumo:   i.QtdInsumo,
		Custo:       i.Custo.InexactFloat64(),
		CategoriaID: i.CategoriaID,
	}
}

// POST /api/insumos
func CreateInsumoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInsumoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome == "" || body.CategoriaID == 0 || body.Custo <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "nome_insumo, categoria_id e custo são obrigatórios")
		}
		if body.QtdInsumo < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "qtd_insumo não pode ser negativa")
		}

		var categoria models.Categoria
		if err := database.DB.First(&categoria, "id = ?", body.CategoriaID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Categoria não encontrada")
		}

		insumo := models.Insumo{
			Nome:        body.Nome,
			QtdInsumo:   body.QtdInsumo,
			Custo:       decimal.NewFromFloat(body.Custo),
			CategoriaID: body.CategoriaID,
		}

		if err := database.DB.Create(&insumo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o insumo")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": "Insumo cadastrado com sucesso",
			"insumos": insumoToResponse(&insumo),
		})
	}
}

// GET /api/insumos
func ListInsumosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var insumos []models.Insumo
		if err := database.DB.Order("nome").Find(&insumos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os insumos")
		}

		resp := make([]InsumoResponse, 0, len(insumos))
		for i := range insumos {
			resp = append(resp, insumoToResponse(&insumos[i]))
		}
		return c.JSON(fiber.Map{"insumos": resp})
	}
}

// GET /api/insumos/:id
func GetInsumoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var insumo models.Insumo
		if err := database.DB.First(&insumo, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Insumo não encontrado")
		}
		return c.JSON(fiber.Map{"insumo": insumoToResponse(&insumo)})
	}
}

// PUT /api/insumos/:id
// Edição direta do estoque também passa pela política: se a quantidade
// nova ficar no limite ou abaixo, os lanches dependentes são desativados.
func UpdateInsumoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdateInsumoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var insumo models.Insumo
		if err := database.DB.First(&insumo, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Insumo não encontrado")
		}

		if body.Nome != nil {
			insumo.Nome = *body.Nome
		}
		if body.QtdInsumo != nil {
			if *body.QtdInsumo < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "qtd_insumo não pode ser negativa")
			}
			insumo.QtdInsumo = *body.QtdInsumo
		}
		if body.Custo != nil {
			insumo.Custo = decimal.NewFromFloat(*body.Custo)
		}
		if body.CategoriaID != nil {
			var categoria models.Categoria
			if err := database.DB.First(&categoria, "id = ?", *body.CategoriaID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Categoria não encontrada")
			}
			insumo.CategoriaID = *body.CategoriaID
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&insumo).Error; err != nil {
				return err
			}
			return AplicaPoliticaEstoqueBaixo(tx, insumo.ID)
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o insumo")
		}

		return c.JSON(fiber.Map{
			"success": "Insumo atualizado com sucesso",
			"insumo":  insumoToResponse(&insumo),
		})
	}
}
