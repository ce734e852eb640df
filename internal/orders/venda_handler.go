package orders

import (
	"fmt"
	"time"

	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"
	"lanchonete-backend/internal/recipe"

	"github.com/gofiber/fiber/v2"
)

type CriarVendaRequest struct {
	LancheID       uint           `json:"lanche_id"`
	PessoaID       uint           `json:"pessoa_id"`
	QtdLanche      int            `json:"qtd_lanche"`
	DataVenda      string         `json:"data_venda"` // "2025-12-09"
	Detalhamento   string         `json:"detalhamento"`
	Endereco       string         `json:"endereco"`
	FormaPagamento string         `json:"forma_pagamento"`
	Observacoes    recipe.Ajustes `json:"observacoes"`
}

type VendaResponse struct {
	ID             uint           `json:"id_venda"`
	Codigo         string         `json:"codigo"`
	Data           string         `json:"data_venda"`
	Valor          float64        `json:"valor_venda"`
	Ativa          bool           `json:"status_venda"`
	Endereco       string         `json:"endereco"`
	FormaPagamento string         `json:"forma_pagamento"`
	LancheID       uint           `json:"lanche_id"`
	PessoaID       uint           `json:"pessoa_id"`
	Detalhamento   string         `json:"detalhamento"`
	AjustesReceita recipe.Receita `json:"ajustes_receita"`
}

func vendaToResponse(v *models.Venda, receita recipe.Receita) VendaResponse {
	return VendaResponse{
		ID:             v.ID,
		Codigo:         v.Codigo,
		Data:           v.Data.Format("2006-01-02"),
		Valor:          v.Valor.InexactFloat64(),
		Ativa:          v.Ativa,
		Endereco:       v.Endereco,
		FormaPagamento: v.FormaPagamento,
		LancheID:       v.LancheID,
		PessoaID:       v.PessoaID,
		Detalhamento:   v.Detalhamento,
		AjustesReceita: receita,
	}
}

// POST /api/vendas
// O valor da venda é calculado no servidor a partir do preço do
// lanche; a baixa de estoque é a mesma do pedido.
func CreateVendaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CriarVendaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Endereco == "" || body.FormaPagamento == "" {
			return fiber.NewError(fiber.StatusBadRequest, "endereco e forma_pagamento são obrigatórios")
		}
		if body.QtdLanche == 0 {
			body.QtdLanche = 1
		}

		var data time.Time
		if body.DataVenda != "" {
			d, err := time.Parse("2006-01-02", body.DataVenda)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Formato de data deve ser 'YYYY-MM-DD'")
			}
			data = d
		}

		vendas, receita, err := RegistrarVenda(database.DB, VendaInput{
			LancheID:       body.LancheID,
			Quantidade:     body.QtdLanche,
			PessoaID:       body.PessoaID,
			Detalhamento:   body.Detalhamento,
			Endereco:       body.Endereco,
			FormaPagamento: body.FormaPagamento,
			Ajustes:        body.Observacoes,
			Data:           data,
		})
		if err != nil {
			return mapCoordinatorError(err)
		}

		resp := make([]VendaResponse, 0, len(vendas))
		for i := range vendas {
			resp = append(resp, vendaToResponse(&vendas[i], receita))
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": fmt.Sprintf("%d vendas registradas com sucesso", len(resp)),
			"vendas":  resp,
		})
	}
}

// GET /api/vendas
func ListVendasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var vendas []models.Venda
		if err := database.DB.Order("data DESC, id DESC").Find(&vendas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as vendas")
		}

		resp := make([]VendaResponse, 0, len(vendas))
		for i := range vendas {
			receita, err := recipe.ParseBlob(vendas[i].AjustesReceita)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Registro de venda corrompido")
			}
			resp = append(resp, vendaToResponse(&vendas[i], receita))
		}
		return c.JSON(fiber.Map{"vendas": resp})
	}
}

type UpdateVendaStatusRequest struct {
	Ativa *bool `json:"status_venda"`
}

// PUT /api/vendas/:id
// A venda é imutável depois de criada; só o cancelamento (status) muda.
func UpdateVendaStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdateVendaStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.Ativa == nil {
			return fiber.NewError(fiber.StatusBadRequest, "status_venda é obrigatório")
		}

		var venda models.Venda
		if err := database.DB.First(&venda, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Venda não encontrada")
		}

		venda.Ativa = *body.Ativa
		if err := database.DB.Save(&venda).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar a venda")
		}

		receita, err := recipe.ParseBlob(venda.AjustesReceita)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Registro de venda corrompido")
		}
		return c.JSON(fiber.Map{
			"success": "Venda atualizada com sucesso",
			"venda":   vendaToResponse(&venda, receita),
		})
	}
}
