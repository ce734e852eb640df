package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda é o registro finalizado de uma unidade vendida. Valor é sempre
// calculado no servidor a partir do preço do lanche. Codigo é o código
// do cupom (uuid) gerado na criação.
type Venda struct {
	ID             uint            `gorm:"primaryKey"`
	Codigo         string          `gorm:"size:36;uniqueIndex;not null"`
	Data           time.Time       `gorm:"index;not null"`
	Valor          decimal.Decimal `gorm:"type:numeric;not null"`
	Ativa          bool            `gorm:"not null;default:true;index"`
	Endereco       string          `gorm:"size:255;not null"`
	FormaPagamento string          `gorm:"size:30;not null"`
	LancheID       uint            `gorm:"index;not null"`
	Lanche         Lanche
	PessoaID       uint `gorm:"index;not null"`
	Pessoa         Pessoa
	Detalhamento   string `gorm:"size:255"`
	AjustesReceita string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
