package models

import "time"

// Pedido é uma unidade de lanche/bebida lançada para a cozinha.
// AjustesReceita guarda a receita efetiva cobrada do estoque como JSON
// com chaves string (coluna de texto), para auditoria e para a tela da
// cozinha. Criado somente pelo coordenador de pedidos; depois de criado
// só os status mudam.
type Pedido struct {
	ID             uint `gorm:"primaryKey"`
	NumeroMesa     *int `gorm:"index"`
	LancheID       *uint
	Lanche         *Lanche
	BebidaID       *uint
	Bebida         *Bebida
	PessoaID       uint `gorm:"index;not null"`
	Pessoa         Pessoa
	Detalhamento   string    `gorm:"size:255"`
	AjustesReceita string    `gorm:"type:text"`
	Pronto         bool      `gorm:"not null;default:false;index"`
	Fechado        bool      `gorm:"not null;default:false;index"`
	Data           time.Time `gorm:"index;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
