package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insumo é um ingrediente consumido pelas receitas dos lanches.
// QtdInsumo é mantida na menor unidade do insumo (ex: gramas) e só
// é alterada pelo livro de estoque (pacote stock).
type Insumo struct {
	ID          uint            `gorm:"primaryKey"`
	Nome        string          `gorm:"size:100;not null;index"`
	QtdInsumo   int             `gorm:"not null;default:0"`
	Custo       decimal.Decimal `gorm:"type:numeric;not null"`
	CategoriaID uint            `gorm:"index;not null"`
	Categoria   Categoria
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
