package stock

import (
	"errors"
	"time"

	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateEntradaRequest struct {
	NotaFiscal string  `json:"nota_fiscal"`
	Data       string  `json:"data_entrada"` // "2025-12-09"
	Qtd        int     `json:"qtd_entrada"`
	Valor      float64 `json:"valor_entrada"`
	InsumoID   *uint   `json:"insumo_id"`
	BebidaID   *uint   `json:"bebida_id"`
}

type EntradaResponse struct {
	ID         uint    `json:"id_entrada"`
	NotaFiscal string  `json:"nota_fiscal"`
	Data       string  `json:"data_entrada"`
	Qtd        int     `json:"qtd_entrada"`
	Valor      float64 `json:"valor_entrada"`
	InsumoID   *uint   `json:"insumo_id,omitempty"`
	BebidaID   *uint   `json:"bebida_id,omitempty"`
}

func entradaToResponse(e *models.Entrada) EntradaResponse {
	return EntradaResponse{
		ID:         e.ID,
		NotaFiscal: e.NotaFiscal,
		Data:       e.Data.Format("2006-01-02"),
		Qtd:        e.Qtd,
		Valor:      e.Valor.InexactFloat64(),
		InsumoID:   e.InsumoID,
		BebidaID:   e.BebidaID,
	}
}

// POST /api/entradas
// A entrada repõe o estoque do insumo OU da bebida e fica registrada
// como histórico imutável.
func CreateEntradaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEntradaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.NotaFiscal == "" || body.Data == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Preencha todos os campos")
		}
		if body.Qtd <= 0 || body.Valor <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quantidade e valor devem ser maiores que zero")
		}
		if body.InsumoID != nil && body.BebidaID != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Insira apenas o ID de um item")
		}
		if body.InsumoID == nil && body.BebidaID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Informe insumo_id ou bebida_id")
		}

		data, err := time.Parse("2006-01-02", body.Data)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Formato de data deve ser 'YYYY-MM-DD'")
		}

		entrada := models.Entrada{
			NotaFiscal: body.NotaFiscal,
			Data:       data,
			Qtd:        body.Qtd,
			Valor:      decimal.NewFromFloat(body.Valor),
			InsumoID:   body.InsumoID,
			BebidaID:   body.BebidaID,
		}

		if entrada.InsumoID != nil {
			err = ReporInsumo(database.DB, &entrada)
		} else {
			err = ReporBebida(database.DB, &entrada)
		}
		switch {
		case errors.Is(err, ErrInsumoNaoEncontrado), errors.Is(err, ErrBebidaNaoEncontrada):
			return fiber.NewError(fiber.StatusBadRequest, "Não encontrado")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar entrada")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": "Entrada cadastrada com sucesso",
			"entrada": entradaToResponse(&entrada),
		})
	}
}

// GET /api/entradas
func ListEntradasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var entradas []models.Entrada
		if err := database.DB.Order("data DESC, created_at DESC").Find(&entradas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as entradas")
		}

		resp := make([]EntradaResponse, 0, len(entradas))
		for i := range entradas {
			resp = append(resp, entradaToResponse(&entradas[i]))
		}
		return c.JSON(fiber.Map{"entradas": resp})
	}
}
