package orders

import (
	"errors"
	"fmt"
	"time"

	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"
	"lanchonete-backend/internal/recipe"
	"lanchonete-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type CriarPedidoRequest struct {
	NumeroMesa   *int           `json:"numero_mesa"`
	LancheID     *uint          `json:"id_lanche"`
	BebidaID     *uint          `json:"id_bebida"`
	QtdLanche    int            `json:"qtd_lanche"`
	PessoaID     uint           `json:"id_pessoa"`
	Detalhamento string         `json:"detalhamento"`
	DataPedido   string         `json:"data_pedido"` // "2025-12-09 18:30:00", opcional
	Observacoes  recipe.Ajustes `json:"observacoes"`
}

type PedidoResponse struct {
	ID             uint           `json:"id_pedido"`
	NumeroMesa     *int           `json:"numero_da_mesa"`
	LancheID       *uint          `json:"id_lanche"`
	BebidaID       *uint          `json:"id_bebida"`
	PessoaID       uint           `json:"id_pessoa"`
	Detalhamento   string         `json:"detalhamento"`
	AjustesReceita recipe.Receita `json:"ajustes_receita"`
	Pronto         bool           `json:"status"`
	Fechado        bool           `json:"status_pago"`
	Data           string         `json:"data_venda"`
}

func pedidoToResponse(p *models.Pedido, receita recipe.Receita) PedidoResponse {
	return PedidoResponse{
		ID:             p.ID,
		NumeroMesa:     p.NumeroMesa,
		LancheID:       p.LancheID,
		BebidaID:       p.BebidaID,
		PessoaID:       p.PessoaID,
		Detalhamento:   p.Detalhamento,
		AjustesReceita: receita,
		Pronto:         p.Pronto,
		Fechado:        p.Fechado,
		Data:           p.Data.Format("2006-01-02 15:04:05"),
	}
}

// mapCoordinatorError traduz os erros tipados do coordenador para o
// status HTTP e a mensagem certos.
func mapCoordinatorError(err error) error {
	var insuficiente *stock.EstoqueInsuficienteError
	var insumoAusente *InsumoNaoEncontradoError

	switch {
	case errors.Is(err, ErrItemObrigatorio),
		errors.Is(err, ErrQuantidadeInvalida),
		errors.Is(err, ErrPessoaObrigatoria):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, recipe.ErrSemReceita):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &insuficiente):
		return fiber.NewError(fiber.StatusBadRequest, insuficiente.Error())
	case errors.Is(err, recipe.ErrLancheNaoEncontrado),
		errors.Is(err, ErrBebidaNaoEncontrada),
		errors.Is(err, ErrPessoaNaoEncontrada):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &insumoAusente):
		return fiber.NewError(fiber.StatusNotFound, insumoAusente.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao processar a operação")
	}
}

// POST /api/pedidos
func CreatePedidoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CriarPedidoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.QtdLanche == 0 {
			body.QtdLanche = 1
		}

		var data time.Time
		if body.DataPedido != "" {
			d, err := time.Parse("2006-01-02 15:04:05", body.DataPedido)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Formato de data deve ser 'YYYY-MM-DD HH:MM:SS'")
			}
			data = d
		}

		pedidos, receita, err := RegistrarPedido(database.DB, PedidoInput{
			NumeroMesa:   body.NumeroMesa,
			LancheID:     body.LancheID,
			BebidaID:     body.BebidaID,
			Quantidade:   body.QtdLanche,
			PessoaID:     body.PessoaID,
			Detalhamento: body.Detalhamento,
			Ajustes:      body.Observacoes,
			Data:         data,
		})
		if err != nil {
			return mapCoordinatorError(err)
		}

		resp := make([]PedidoResponse, 0, len(pedidos))
		for i := range pedidos {
			resp = append(resp, pedidoToResponse(&pedidos[i], receita))
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": fmt.Sprintf("%d pedido(s) registrado(s) com sucesso", len(pedidos)),
			"pedidos": resp,
		})
	}
}

// GET /api/pedidos
func ListPedidosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var pedidos []models.Pedido
		if err := database.DB.Order("data DESC, id DESC").Find(&pedidos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os pedidos")
		}

		resp := make([]PedidoResponse, 0, len(pedidos))
		for i := range pedidos {
			receita, err := recipe.ParseBlob(pedidos[i].AjustesReceita)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Registro de pedido corrompido")
			}
			resp = append(resp, pedidoToResponse(&pedidos[i], receita))
		}
		return c.JSON(fiber.Map{"pedidos": resp})
	}
}

type UpdatePedidoStatusRequest struct {
	Pronto  *bool `json:"status"`
	Fechado *bool `json:"status_fechado"`
}

// PUT /api/pedidos/:id
// Só transições de status: criado -> pronto -> fechado. O coordenador
// nunca avança status sozinho; quem avança é a cozinha e o salão.
func UpdatePedidoStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}

		var body UpdatePedidoStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		var pedido models.Pedido
		if err := database.DB.First(&pedido, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pedido não encontrado")
		}

		if body.Pronto != nil {
			if !*body.Pronto && pedido.Pronto {
				return fiber.NewError(fiber.StatusBadRequest, "Pedido pronto não volta a ficar pendente")
			}
			pedido.Pronto = *body.Pronto
		}
		if body.Fechado != nil {
			if !*body.Fechado && pedido.Fechado {
				return fiber.NewError(fiber.StatusBadRequest, "Pedido fechado não reabre")
			}
			if *body.Fechado && !pedido.Pronto {
				return fiber.NewError(fiber.StatusBadRequest, "Pedido só fecha depois de pronto")
			}
			pedido.Fechado = *body.Fechado
		}

		if err := database.DB.Save(&pedido).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o pedido")
		}

		receita, err := recipe.ParseBlob(pedido.AjustesReceita)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Registro de pedido corrompido")
		}
		return c.JSON(fiber.Map{
			"success": "Pedido atualizado com sucesso",
			"pedido":  pedidoToResponse(&pedido, receita),
		})
	}
}

type FecharMesaRequest struct {
	NumeroMesa int `json:"numero_mesa"`
}

// PUT /api/pedidos/mesa
// Fecha a conta: todos os pedidos prontos e abertos da mesa.
func FecharMesaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body FecharMesaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if body.NumeroMesa <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "numero_mesa é obrigatório")
		}

		var pedidos []models.Pedido
		if err := database.DB.
			Where("numero_mesa = ? AND pronto = ? AND fechado = ?", body.NumeroMesa, true, false).
			Find(&pedidos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível buscar os pedidos da mesa")
		}
		if len(pedidos) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Nenhum pedido pronto e aberto para essa mesa")
		}

		ids := make([]uint, 0, len(pedidos))
		for i := range pedidos {
			ids = append(ids, pedidos[i].ID)
			pedidos[i].Fechado = true
		}
		if err := database.DB.Model(&models.Pedido{}).
			Where("id IN ?", ids).
			Update("fechado", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível fechar a mesa")
		}

		resp := make([]PedidoResponse, 0, len(pedidos))
		for i := range pedidos {
			receita, err := recipe.ParseBlob(pedidos[i].AjustesReceita)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Registro de pedido corrompido")
			}
			resp = append(resp, pedidoToResponse(&pedidos[i], receita))
		}
		return c.JSON(fiber.Map{
			"success": fmt.Sprintf("%d pedido(s) fechado(s)", len(resp)),
			"pedidos": resp,
		})
	}
}
