package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Papel string

const (
	PapelAdmin   Papel = "admin"
	PapelGarcom  Papel = "garcom"
	PapelCozinha Papel = "cozinha"
	PapelCliente Papel = "cliente"
)

// Pessoa é funcionário ou cliente; também é a conta de login.
type Pessoa struct {
	ID        uint    `gorm:"primaryKey"`
	Nome      string  `gorm:"size:100;not null"`
	CPF       *string `gorm:"size:11;index"` // obrigatório apenas para admin
	Email     string  `gorm:"size:100;uniqueIndex;not null"`
	SenhaHash string  `gorm:"size:255;not null"`
	Papel     Papel   `gorm:"size:20;not null"`
	Salario   decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Status    string  `gorm:"size:20;not null;default:Ativo"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
