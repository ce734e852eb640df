package stock

import (
	"errors"
	"fmt"

	"lanchonete-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInsumoNaoEncontrado = errors.New("insumo não encontrado")
	ErrBebidaNaoEncontrada = errors.New("bebida não encontrada")
)

// EstoqueInsuficienteError identifica o insumo pelo nome para a
// mensagem ao usuário.
type EstoqueInsuficienteError struct {
	Insumo string
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("Estoque insuficiente para: %s", e.Insumo)
}

// Suficiente informa se o insumo tem pelo menos qtd em estoque.
func Suficiente(db *gorm.DB, insumoID uint, qtd int) (bool, error) {
	var insumo models.Insumo
	if err := db.First(&insumo, "id = ?", insumoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrInsumoNaoEncontrado
		}
		return false, err
	}
	return insumo.QtdInsumo >= qtd, nil
}

// Baixa decrementa o estoque do insumo. O decremento é condicionado no
// próprio UPDATE (qtd_insumo >= qtd), então duas baixas concorrentes
// nunca deixam o estoque negativo: a que perder a corrida não casa
// nenhuma linha e recebe EstoqueInsuficienteError. Depois de uma baixa
// bem-sucedida a política de estoque baixo é aplicada.
func Baixa(db *gorm.DB, insumoID uint, qtd int) error {
	if qtd < 0 {
		return fmt.Errorf("quantidade de baixa negativa: %d", qtd)
	}
	if qtd == 0 {
		return nil
	}

	res := db.Model(&models.Insumo{}).
		Where("id = ? AND qtd_insumo >= ?", insumoID, qtd).
		UpdateColumn("qtd_insumo", gorm.Expr("qtd_insumo - ?", qtd))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var insumo models.Insumo
		if err := db.First(&insumo, "id = ?", insumoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInsumoNaoEncontrado
			}
			return err
		}
		return &EstoqueInsuficienteError{Insumo: insumo.Nome}
	}

	return AplicaPoliticaEstoqueBaixo(db, insumoID)
}

// ReporInsumo incrementa o estoque do insumo e grava a entrada.
// A reposição nunca reativa lanches desativados pela política de
// estoque baixo: reativar é decisão manual do admin.
func ReporInsumo(db *gorm.DB, entrada *models.Entrada) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Insumo{}).
			Where("id = ?", *entrada.InsumoID).
			UpdateColumn("qtd_insumo", gorm.Expr("qtd_insumo + ?", entrada.Qtd))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsumoNaoEncontrado
		}
		return tx.Create(entrada).Error
	})
}

// ReporBebida incrementa a contagem da bebida, grava a entrada e
// recalcula a disponibilidade (para bebida a regra é simétrica).
func ReporBebida(db *gorm.DB, entrada *models.Entrada) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Bebida{}).
			Where("id = ?", *entrada.BebidaID).
			UpdateColumn("quantidade", gorm.Expr("quantidade + ?", entrada.Qtd))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBebidaNaoEncontrada
		}
		if err := AtualizaDisponibilidadeBebida(tx, *entrada.BebidaID); err != nil {
			return err
		}
		return tx.Create(entrada).Error
	})
}
