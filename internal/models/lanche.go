package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Lanche struct {
	ID         uint            `gorm:"primaryKey"`
	Nome       string          `gorm:"size:100;not null;index"`
	Descricao  string          `gorm:"size:255"`
	Valor      decimal.Decimal `gorm:"type:numeric;not null"`
	Disponivel bool            `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LancheInsumo vincula um insumo à receita de um lanche.
// QtdInsumo é a quantidade base por unidade do lanche, na menor
// unidade do insumo.
type LancheInsumo struct {
	ID        uint `gorm:"primaryKey"`
	LancheID  uint `gorm:"index;not null;uniqueIndex:idx_lanche_insumo"`
	Lanche    Lanche
	InsumoID  uint `gorm:"index;not null;uniqueIndex:idx_lanche_insumo"`
	Insumo    Insumo
	QtdInsumo int `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
