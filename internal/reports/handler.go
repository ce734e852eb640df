package reports

import (
	"sort"

	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"
	"lanchonete-backend/internal/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ReceitaInsumoResponse struct {
	InsumoID   uint   `json:"insumo_id"`
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

type VendaReceitaResponse struct {
	VendaID         uint                    `json:"venda_id"`
	Lanche          string                  `json:"lanche"`
	PessoaID        uint                    `json:"pessoa_id"`
	ReceitaCompleta []ReceitaInsumoResponse `json:"receita_completa"`
}

// GET /api/vendas/receitas
// Visão da cozinha: para cada venda ativa, a receita base do lanche
// sobreposta pelos ajustes gravados na venda, com os nomes dos
// insumos resolvidos.
func VendasReceitasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var vendas []models.Venda
		if err := database.DB.Preload("Lanche").
			Where("ativa = ?", true).
			Find(&vendas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as vendas")
		}

		resp := make([]VendaReceitaResponse, 0, len(vendas))
		for i := range vendas {
			venda := &vendas[i]

			var linhas []models.LancheInsumo
			if err := database.DB.Where("lanche_id = ?", venda.LancheID).
				Find(&linhas).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar a receita")
			}

			receita := make(recipe.Receita, len(linhas))
			for _, linha := range linhas {
				receita[linha.InsumoID] = linha.QtdInsumo
			}

			// os ajustes gravados na venda sobrescrevem (ou acrescentam)
			ajustes, err := recipe.ParseBlob(venda.AjustesReceita)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Registro de venda corrompido")
			}
			for id, qtd := range ajustes {
				receita[id] = qtd
			}

			ids := make([]uint, 0, len(receita))
			for id := range receita {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

			completa := make([]ReceitaInsumoResponse, 0, len(ids))
			for _, id := range ids {
				var insumo models.Insumo
				if err := database.DB.First(&insumo, "id = ?", id).Error; err != nil {
					// insumo removido do cadastro depois da venda
					continue
				}
				completa = append(completa, ReceitaInsumoResponse{
					InsumoID:   insumo.ID,
					Nome:       insumo.Nome,
					Quantidade: receita[id],
				})
			}

			resp = append(resp, VendaReceitaResponse{
				VendaID:         venda.ID,
				Lanche:          venda.Lanche.Nome,
				PessoaID:        venda.PessoaID,
				ReceitaCompleta: completa,
			})
		}

		return c.JSON(fiber.Map{"vendas_receitas": resp})
	}
}

type ResumoMensalResponse struct {
	Mes         string  `json:"mes"` // "2025-12"
	TotalVendas int     `json:"total_vendas"`
	Faturamento float64 `json:"faturamento"`
}

// GET /api/vendas/resumo-mensal
// Faturamento por mês sobre as vendas ativas. Soma em decimal para os
// centavos fecharem.
func ResumoMensalVendasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var vendas []models.Venda
		if err := database.DB.Where("ativa = ?", true).Find(&vendas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as vendas")
		}

		totais := make(map[string]decimal.Decimal)
		contagens := make(map[string]int)
		for i := range vendas {
			mes := vendas[i].Data.Format("2006-01")
			totais[mes] = totais[mes].Add(vendas[i].Valor)
			contagens[mes]++
		}

		meses := make([]string, 0, len(totais))
		for mes := range totais {
			meses = append(meses, mes)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(meses)))

		resp := make([]ResumoMensalResponse, 0, len(meses))
		for _, mes := range meses {
			resp = append(resp, ResumoMensalResponse{
				Mes:         mes,
				TotalVendas: contagens[mes],
				Faturamento: totais[mes].InexactFloat64(),
			})
		}

		return c.JSON(fiber.Map{"resumo_mensal": resp})
	}
}
