package menu

import (
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CategoriaRequest struct {
	Nome string `json:"nome_categoria"`
}

type CategoriaResponse struct {
	ID   uint   `json:"id_categoria"`
	Nome string `json:"nome_categoria"`
}

// POST /api/categorias
func CreateCategoriaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoriaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Preencher todos os campos")
		}

		categoria := models.Categoria{Nome: body.Nome}
		if err := database.DB.Create(&categoria).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar a categoria")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":    "Categoria cadastrada com sucesso",
			"categorias": CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome},
		})
	}
}

// GET /api/categorias
func ListCategoriasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categorias []models.Categoria
		if err := database.DB.Order("nome").Find(&categorias).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as categorias")
		}

		resp := make([]CategoriaResponse, 0, len(categorias))
		for _, cat := range categorias {
			resp = append(resp, CategoriaResponse{ID: cat.ID, Nome: cat.Nome})
		}
		return c.JSON(fiber.Map{"categorias": resp})
	}
}

// PUT /api/categorias/:id
func UpdateCategoriaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body CategoriaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Nome == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Preencher todos os campos")
		}

		var categoria models.Categoria
		if err := database.DB.First(&categoria, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Categoria não encontrada")
		}

		categoria.Nome = body.Nome
		if err := database.DB.Save(&categoria).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a categoria")
		}

		return c.JSON(fiber.Map{
			"success":   "Categoria atualizada com sucesso",
			"categoria": CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome},
		})
	}
}
