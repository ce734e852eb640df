package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bebida não tem receita: o estoque é a própria contagem em Quantidade.
type Bebida struct {
	ID          uint            `gorm:"primaryKey"`
	Nome        string          `gorm:"size:100;not null;index"`
	Descricao   string          `gorm:"size:255"`
	Valor       decimal.Decimal `gorm:"type:numeric;not null"`
	CategoriaID uint            `gorm:"index;not null"`
	Categoria   Categoria
	Quantidade  int  `gorm:"not null;default:0"`
	Disponivel  bool `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
