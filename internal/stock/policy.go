package stock

import (
	"errors"

	"lanchonete-backend/internal/models"

	"gorm.io/gorm"
)

// LimiteEstoqueBaixo é o piso a partir do qual (inclusive) os lanches
// que usam o insumo ficam indisponíveis. Constante do domínio.
const LimiteEstoqueBaixo = 5

// AplicaPoliticaEstoqueBaixo desativa todos os lanches cuja receita
// referencia o insumo quando o estoque dele fica em LimiteEstoqueBaixo
// ou menos. A cascata é de mão única: subir o estoque de novo não
// reativa nada aqui.
func AplicaPoliticaEstoqueBaixo(db *gorm.DB, insumoID uint) error {
	var insumo models.Insumo
	if err := db.First(&insumo, "id = ?", insumoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInsumoNaoEncontrado
		}
		return err
	}

	if insumo.QtdInsumo > LimiteEstoqueBaixo {
		return nil
	}

	sub := db.Model(&models.LancheInsumo{}).
		Select("lanche_id").
		Where("insumo_id = ?", insumoID)

	return db.Model(&models.Lanche{}).
		Where("id IN (?)", sub).
		Update("disponivel", false).Error
}

// AtualizaDisponibilidadeBebida recalcula a flag da bebida a partir da
// própria contagem: disponível se e somente se quantidade acima do
// limite. Bebida não tem receita, então não há cascata.
func AtualizaDisponibilidadeBebida(db *gorm.DB, bebidaID uint) error {
	var bebida models.Bebida
	if err := db.First(&bebida, "id = ?", bebidaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBebidaNaoEncontrada
		}
		return err
	}

	disponivel := bebida.Quantidade > LimiteEstoqueBaixo
	if bebida.Disponivel == disponivel {
		return nil
	}
	return db.Model(&models.Bebida{}).
		Where("id = ?", bebidaID).
		Update("disponivel", disponivel).Error
}
