package orders

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"lanchonete-backend/internal/models"
	"lanchonete-backend/internal/recipe"
	"lanchonete-backend/internal/stock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemObrigatorio     = errors.New("informe id_lanche ou id_bebida")
	ErrQuantidadeInvalida  = errors.New("quantidade deve ser pelo menos 1")
	ErrPessoaObrigatoria   = errors.New("id_pessoa é obrigatório")
	ErrPessoaNaoEncontrada = errors.New("pessoa não encontrada")
	ErrBebidaNaoEncontrada = errors.New("bebida não encontrada")
)

// InsumoNaoEncontradoError: a receita referencia um insumo que não
// existe mais no cadastro.
type InsumoNaoEncontradoError struct {
	ID uint
}

func (e *InsumoNaoEncontradoError) Error() string {
	return fmt.Sprintf("Insumo ID %d não encontrado", e.ID)
}

type PedidoInput struct {
	NumeroMesa   *int
	LancheID     *uint
	BebidaID     *uint
	Quantidade   int
	PessoaID     uint
	Detalhamento string
	Ajustes      recipe.Ajustes
	Data         time.Time
}

type VendaInput struct {
	LancheID       uint
	Quantidade     int
	PessoaID       uint
	Detalhamento   string
	Endereco       string
	FormaPagamento string
	Ajustes        recipe.Ajustes
	Data           time.Time
}

// RegistrarPedido é a operação central do sistema: resolve a receita
// efetiva do lanche, valida e dá baixa no estoque de todos os insumos
// e cria um registro de pedido por unidade, tudo dentro de uma única
// transação. Qualquer falha em qualquer etapa desfaz tudo: nenhum
// estoque muda e nenhum pedido é gravado.
func RegistrarPedido(db *gorm.DB, in PedidoInput) ([]models.Pedido, recipe.Receita, error) {
	if in.LancheID == nil && in.BebidaID == nil {
		return nil, nil, ErrItemObrigatorio
	}
	if in.Quantidade < 1 {
		return nil, nil, ErrQuantidadeInvalida
	}
	if in.PessoaID == 0 {
		return nil, nil, ErrPessoaObrigatoria
	}

	var pedidos []models.Pedido
	var receita recipe.Receita

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := verificaPessoa(tx, in.PessoaID); err != nil {
			return err
		}
		if in.BebidaID != nil {
			if err := verificaBebida(tx, *in.BebidaID); err != nil {
				return err
			}
		}

		// Bebida não consome insumo no pedido: o estoque dela só muda
		// por entradas e edições diretas.
		blob := ""
		if in.LancheID != nil {
			r, err := recipe.Resolve(tx, *in.LancheID, in.Ajustes)
			if err != nil {
				return err
			}
			if err := baixaReceita(tx, r, in.Quantidade); err != nil {
				return err
			}
			b, err := r.Blob()
			if err != nil {
				return err
			}
			receita = r
			blob = b
		}

		data := in.Data
		if data.IsZero() {
			data = time.Now()
		}

		pedidos = make([]models.Pedido, 0, in.Quantidade)
		for i := 0; i < in.Quantidade; i++ {
			pedido := models.Pedido{
				NumeroMesa:     in.NumeroMesa,
				LancheID:       in.LancheID,
				BebidaID:       in.BebidaID,
				PessoaID:       in.PessoaID,
				Detalhamento:   in.Detalhamento,
				AjustesReceita: blob,
				Pronto:         false,
				Fechado:        false,
				Data:           data,
			}
			if err := tx.Create(&pedido).Error; err != nil {
				return err
			}
			pedidos = append(pedidos, pedido)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return pedidos, receita, nil
}

// RegistrarVenda segue o mesmo fluxo de baixa de estoque do pedido.
// O valor de cada venda é sempre o preço cadastrado do lanche; o
// cliente nunca manda valor. Cada unidade vira uma venda com código
// de cupom próprio.
func RegistrarVenda(db *gorm.DB, in VendaInput) ([]models.Venda, recipe.Receita, error) {
	if in.LancheID == 0 {
		return nil, nil, ErrItemObrigatorio
	}
	if in.Quantidade < 1 {
		return nil, nil, ErrQuantidadeInvalida
	}
	if in.PessoaID == 0 {
		return nil, nil, ErrPessoaObrigatoria
	}

	var vendas []models.Venda
	var receita recipe.Receita

	err := db.Transaction(func(tx *gorm.DB) error {
		var lanche models.Lanche
		if err := tx.First(&lanche, "id = ?", in.LancheID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return recipe.ErrLancheNaoEncontrado
			}
			return err
		}
		if err := verificaPessoa(tx, in.PessoaID); err != nil {
			return err
		}

		r, err := recipe.Resolve(tx, in.LancheID, in.Ajustes)
		if err != nil {
			return err
		}
		if err := baixaReceita(tx, r, in.Quantidade); err != nil {
			return err
		}
		blob, err := r.Blob()
		if err != nil {
			return err
		}
		receita = r

		data := in.Data
		if data.IsZero() {
			data = time.Now()
		}

		vendas = make([]models.Venda, 0, in.Quantidade)
		for i := 0; i < in.Quantidade; i++ {
			venda := models.Venda{
				Codigo:         uuid.NewString(),
				Data:           data,
				Valor:          lanche.Valor,
				Ativa:          true,
				Endereco:       in.Endereco,
				FormaPagamento: in.FormaPagamento,
				LancheID:       in.LancheID,
				PessoaID:       in.PessoaID,
				Detalhamento:   in.Detalhamento,
				AjustesReceita: blob,
			}
			if err := tx.Create(&venda).Error; err != nil {
				return err
			}
			vendas = append(vendas, venda)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return vendas, receita, nil
}

// baixaReceita valida a suficiência de todos os insumos da receita
// antes de tocar em qualquer linha e só então dá as baixas, em ordem
// crescente de ID para que baixas concorrentes toquem as mesmas linhas
// sempre na mesma ordem.
func baixaReceita(tx *gorm.DB, receita recipe.Receita, unidades int) error {
	ids := make([]uint, 0, len(receita))
	for id := range receita {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		ok, err := stock.Suficiente(tx, id, receita[id]*unidades)
		if err != nil {
			if errors.Is(err, stock.ErrInsumoNaoEncontrado) {
				return &InsumoNaoEncontradoError{ID: id}
			}
			return err
		}
		if !ok {
			var insumo models.Insumo
			if err := tx.First(&insumo, "id = ?", id).Error; err != nil {
				return err
			}
			return &stock.EstoqueInsuficienteError{Insumo: insumo.Nome}
		}
	}

	for _, id := range ids {
		if err := stock.Baixa(tx, id, receita[id]*unidades); err != nil {
			return err
		}
	}
	return nil
}

func verificaPessoa(tx *gorm.DB, pessoaID uint) error {
	var pessoa models.Pessoa
	if err := tx.First(&pessoa, "id = ?", pessoaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPessoaNaoEncontrada
		}
		return err
	}
	return nil
}

func verificaBebida(tx *gorm.DB, bebidaID uint) error {
	var bebida models.Bebida
	if err := tx.First(&bebida, "id = ?", bebidaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBebidaNaoEncontrada
		}
		return err
	}
	return nil
}
