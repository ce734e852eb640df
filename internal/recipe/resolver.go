package recipe

import (
	"encoding/json"
	"errors"
	"strconv"

	"lanchonete-backend/internal/models"

	"gorm.io/gorm"
)

// MultiplicadorPorcao converte a "porção" informada pelo cliente nos
// ajustes para a menor unidade do insumo. Constante do domínio, não é
// configurável.
const MultiplicadorPorcao = 100

var (
	ErrLancheNaoEncontrado = errors.New("lanche não encontrado")
	ErrSemReceita          = errors.New("esse lanche não tem receita cadastrada")
)

type ItemAjuste struct {
	InsumoID uint `json:"insumo_id"`
	Qtd      int  `json:"qtd"`
}

// Ajustes são as observações do cliente para uma unidade do lanche:
// porções a adicionar ou remover em relação à receita base.
type Ajustes struct {
	Adicionar []ItemAjuste `json:"adicionar"`
	Remover   []ItemAjuste `json:"remover"`
}

// Receita é a receita efetiva por unidade: insumo -> quantidade na
// menor unidade do insumo.
type Receita map[uint]int

// Resolve monta a receita efetiva de um lanche aplicando os ajustes
// sobre a receita base. As remoções operam sobre o mapa base (nunca
// sobre insumos introduzidos por adições na mesma chamada) e o
// resultado nunca fica negativo; as adições vêm depois e criam a
// entrada se o insumo não estiver na receita.
func Resolve(db *gorm.DB, lancheID uint, ajustes Ajustes) (Receita, error) {
	var lanche models.Lanche
	if err := db.First(&lanche, "id = ?", lancheID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLancheNaoEncontrado
		}
		return nil, err
	}

	var linhas []models.LancheInsumo
	if err := db.Where("lanche_id = ?", lancheID).Find(&linhas).Error; err != nil {
		return nil, err
	}
	if len(linhas) == 0 {
		// Lanche sem receita é erro de cadastro: não dá para lançar pedido
		return nil, ErrSemReceita
	}

	receita := make(Receita, len(linhas))
	for _, linha := range linhas {
		receita[linha.InsumoID] = linha.QtdInsumo
	}

	for _, rem := range ajustes.Remover {
		qtd, ok := receita[rem.InsumoID]
		if !ok {
			// remover só se aplica a insumo que o lanche já usa
			continue
		}
		novo := qtd - rem.Qtd*MultiplicadorPorcao
		if novo < 0 {
			novo = 0
		}
		receita[rem.InsumoID] = novo
	}

	for _, add := range ajustes.Adicionar {
		receita[add.InsumoID] += add.Qtd * MultiplicadorPorcao
	}

	return receita, nil
}

// Blob serializa a receita efetiva no formato persistido: objeto JSON
// com os IDs dos insumos como chaves string (a coluna é texto).
func (r Receita) Blob() (string, error) {
	m := make(map[string]int, len(r))
	for id, qtd := range r {
		m[strconv.FormatUint(uint64(id), 10)] = qtd
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseBlob faz o caminho inverso de Blob, devolvendo o mapa com
// chaves inteiras usado internamente e ecoado na API.
func ParseBlob(blob string) (Receita, error) {
	if blob == "" {
		return Receita{}, nil
	}
	var m map[string]int
	if err := json.Unmarshal([]byte(blob), &m); err != nil {
		return nil, err
	}
	receita := make(Receita, len(m))
	for k, qtd := range m {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return nil, err
		}
		receita[uint(id)] = qtd
	}
	return receita, nil
}
