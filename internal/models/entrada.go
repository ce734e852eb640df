package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada registra uma reposição de estoque (nota de entrada) de um
// insumo OU de uma bebida, nunca dos dois. Registro imutável: é só
// criado, nunca editado.
type Entrada struct {
	ID         uint            `gorm:"primaryKey"`
	NotaFiscal string          `gorm:"size:20;index"`
	Data       time.Time       `gorm:"index;not null"`
	Qtd        int             `gorm:"not null"`
	Valor      decimal.Decimal `gorm:"type:numeric;not null"`
	InsumoID   *uint           `gorm:"index"`
	Insumo     *Insumo
	BebidaID   *uint `gorm:"index"`
	Bebida     *Bebida
	CreatedAt  time.Time
}
