package menu

import (
	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateLancheInsumoRequest struct {
	LancheID  uint `json:"lanche_id"`
	InsumoID  uint `json:"insumo_id"`
	QtdInsumo int  `json:"qtd_insumo"`
}

type LancheInsumoResponse struct {
	ID        uint `json:"id_lanche_insumo"`
	LancheID  uint `json:"lanche_id"`
	InsumoID  uint `json:"insumo_id"`
	QtdInsumo int  `json:"qtd_insumo"`
}

func lancheInsumoToResponse(li *models.LancheInsumo) LancheInsumoResponse {
	return LancheInsumoResponse{
		ID:        li.ID,
		LancheID:  li.LancheID,
		InsumoID:  li.InsumoID,
		QtdInsumo: li.QtdInsumo,
	}
}

// POST /api/lanche-insumos
// Vincula um insumo à receita do lanche. Cada par lanche/insumo só
// pode existir uma vez.
func CreateLancheInsumoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLancheInsumoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.LancheID == 0 || body.InsumoID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Campos obrigatórios não informados")
		}
		if body.QtdInsumo <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantidade deve ser maior que zero")
		}

		var lanche models.Lanche
		if err := database.DB.First(&lanche, "id = ?", body.LancheID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lanche não encontrado")
		}
		var insumo models.Insumo
		if err := database.DB.First(&insumo, "id = ?", body.InsumoID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Insumo não encontrado")
		}

		var count int64
		database.DB.Model(&models.LancheInsumo{}).
			Where("lanche_id = ? AND insumo_id = ?", body.LancheID, body.InsumoID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Esse insumo já está vinculado a esse lanche")
		}

		item := models.LancheInsumo{
			LancheID:  body.LancheID,
			InsumoID:  body.InsumoID,
			QtdInsumo: body.QtdInsumo,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível vincular o insumo")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success":       "Insumo adicionado à receita do lanche com sucesso",
			"lanche_insumo": lancheInsumoToResponse(&item),
		})
	}
}

// GET /api/lanche-insumos
func ListLancheInsumosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var itens []models.LancheInsumo
		if err := database.DB.Find(&itens).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os vínculos")
		}

		resp := make([]LancheInsumoResponse, 0, len(itens))
		for i := range itens {
			resp = append(resp, lancheInsumoToResponse(&itens[i]))
		}
		return c.JSON(fiber.Map{"lanche_insumos": resp})
	}
}

type ReceitaItemResponse struct {
	InsumoID   uint   `json:"insumo_id"`
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// GET /api/lanches/:id/receita
// Receita base do lanche com os nomes dos insumos, para a tela de
// montagem do cardápio.
func GetReceitaLancheHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var lanche models.Lanche
		if err := database.DB.First(&lanche, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Lanche não encontrado")
		}

		var itens []models.LancheInsumo
		if err := database.DB.Preload("Insumo").
			Where("lanche_id = ?", id).
			Find(&itens).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar a receita")
		}

		receita := make([]ReceitaItemResponse, 0, len(itens))
		for _, item := range itens {
			receita = append(receita, ReceitaItemResponse{
				InsumoID:   item.InsumoID,
				Nome:       item.Insumo.Nome,
				Quantidade: item.QtdInsumo,
			})
		}

		return c.JSON(fiber.Map{
			"lanche":  lanche.Nome,
			"receita": receita,
		})
	}
}

type DeleteLancheInsumoRequest struct {
	LancheID uint `json:"lanche_id"`
	InsumoID uint `json:"insumo_id"`
}

// DELETE /api/lanche-insumos
// Desvincular insumo de receita é a única remoção física do catálogo.
func DeleteLancheInsumoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DeleteLancheInsumoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.LancheID == 0 || body.InsumoID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Campos obrigatórios não informados")
		}

		res := database.DB.
			Where("lanche_id = ? AND insumo_id = ?", body.LancheID, body.InsumoID).
			Delete(&models.LancheInsumo{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível remover o vínculo")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Vínculo não encontrado")
		}

		return c.JSON(fiber.Map{"success": "Insumo removido da receita com sucesso"})
	}
}
