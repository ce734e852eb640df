package stock

import (
	"errors"
	"strings"
	"testing"
	"time"

	"lanchonete-backend/internal/database"
	"lanchonete-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func abreBancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("não foi possível abrir o sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("não foi possível migrar o schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func criaInsumo(t *testing.T, db *gorm.DB, nome string, qtd int) *models.Insumo {
	t.Helper()
	categoria := models.Categoria{Nome: "Geral " + nome}
	if err := db.Create(&categoria).Error; err != nil {
		t.Fatalf("não foi possível criar a categoria: %v", err)
	}
	insumo := models.Insumo{
		Nome:        nome,
		QtdInsumo:   qtd,
		Custo:       decimal.NewFromFloat(1),
		CategoriaID: categoria.ID,
	}
	if err := db.Create(&insumo).Error; err != nil {
		t.Fatalf("não foi possível criar o insumo: %v", err)
	}
	return &insumo
}

func qtdInsumo(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var insumo models.Insumo
	if err := db.First(&insumo, "id = ?", id).Error; err != nil {
		t.Fatalf("não foi possível reler o insumo: %v", err)
	}
	return insumo.QtdInsumo
}

func TestSuficiente(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "pao", 100)

	ok, err := Suficiente(db, insumo.ID, 100)
	if err != nil {
		t.Fatalf("Suficiente retornou erro: %v", err)
	}
	if !ok {
		t.Fatal("estoque exato deveria ser suficiente")
	}

	ok, err = Suficiente(db, insumo.ID, 101)
	if err != nil {
		t.Fatalf("Suficiente retornou erro: %v", err)
	}
	if ok {
		t.Fatal("101 não deveria caber em 100")
	}

	if _, err := Suficiente(db, 404, 1); err != ErrInsumoNaoEncontrado {
		t.Fatalf("esperava ErrInsumoNaoEncontrado, veio %v", err)
	}
}

func TestBaixaDecrementa(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "pao", 100)

	if err := Baixa(db, insumo.ID, 30); err != nil {
		t.Fatalf("Baixa retornou erro: %v", err)
	}
	if got := qtdInsumo(t, db, insumo.ID); got != 70 {
		t.Fatalf("esperava 70 em estoque, veio %d", got)
	}
}

func TestBaixaInsuficienteNaoAltera(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "carne", 20)

	err := Baixa(db, insumo.ID, 30)
	var insuficiente *EstoqueInsuficienteError
	if !errors.As(err, &insuficiente) {
		t.Fatalf("esperava EstoqueInsuficienteError, veio %v", err)
	}
	if insuficiente.Insumo != "carne" {
		t.Fatalf("erro deveria nomear o insumo, veio %q", insuficiente.Insumo)
	}
	if got := qtdInsumo(t, db, insumo.ID); got != 20 {
		t.Fatalf("estoque não deveria mudar, veio %d", got)
	}
}

func TestBaixaExataZera(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "queijo", 50)

	if err := Baixa(db, insumo.ID, 50); err != nil {
		t.Fatalf("baixa do estoque exato deveria passar: %v", err)
	}
	if got := qtdInsumo(t, db, insumo.ID); got != 0 {
		t.Fatalf("esperava 0 em estoque, veio %d", got)
	}
}

func TestBaixaInsumoInexistente(t *testing.T) {
	db := abreBancoDeTeste(t)

	if err := Baixa(db, 404, 1); err != ErrInsumoNaoEncontrado {
		t.Fatalf("esperava ErrInsumoNaoEncontrado, veio %v", err)
	}
}

func TestBaixaDisparaPoliticaEstoqueBaixo(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "queijo", 6)

	lanche := models.Lanche{Nome: "X-Queijo", Valor: decimal.NewFromFloat(20), Disponivel: true}
	if err := db.Create(&lanche).Error; err != nil {
		t.Fatalf("não foi possível criar o lanche: %v", err)
	}
	outro := models.Lanche{Nome: "Misto", Valor: decimal.NewFromFloat(15), Disponivel: true}
	if err := db.Create(&outro).Error; err != nil {
		t.Fatalf("não foi possível criar o lanche: %v", err)
	}
	linha := models.LancheInsumo{LancheID: lanche.ID, InsumoID: insumo.ID, QtdInsumo: 100}
	if err := db.Create(&linha).Error; err != nil {
		t.Fatalf("não foi possível criar a linha de receita: %v", err)
	}

	// 6 - 2 = 4, abaixo do limite: só o lanche que usa queijo cai
	if err := Baixa(db, insumo.ID, 2); err != nil {
		t.Fatalf("Baixa retornou erro: %v", err)
	}

	var atual models.Lanche
	if err := db.First(&atual, "id = ?", lanche.ID).Error; err != nil {
		t.Fatalf("não foi possível reler o lanche: %v", err)
	}
	if atual.Disponivel {
		t.Fatal("lanche que usa o insumo deveria ficar indisponível")
	}

	var outroAtual models.Lanche
	if err := db.First(&outroAtual, "id = ?", outro.ID).Error; err != nil {
		t.Fatalf("não foi possível reler o lanche: %v", err)
	}
	if !outroAtual.Disponivel {
		t.Fatal("lanche sem o insumo não deveria ser afetado")
	}
}

func TestBaixaAcimaDoLimiteNaoDesativa(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "pao", 100)

	lanche := models.Lanche{Nome: "X-Burger", Valor: decimal.NewFromFloat(25), Disponivel: true}
	if err := db.Create(&lanche).Error; err != nil {
		t.Fatalf("não foi possível criar o lanche: %v", err)
	}
	linha := models.LancheInsumo{LancheID: lanche.ID, InsumoID: insumo.ID, QtdInsumo: 100}
	if err := db.Create(&linha).Error; err != nil {
		t.Fatalf("não foi possível criar a linha de receita: %v", err)
	}

	if err := Baixa(db, insumo.ID, 10); err != nil {
		t.Fatalf("Baixa retornou erro: %v", err)
	}

	var atual models.Lanche
	if err := db.First(&atual, "id = ?", lanche.ID).Error; err != nil {
		t.Fatalf("não foi possível reler o lanche: %v", err)
	}
	if !atual.Disponivel {
		t.Fatal("estoque em 90 não deveria desativar o lanche")
	}
}

func TestReporInsumoNaoReativaLanche(t *testing.T) {
	db := abreBancoDeTeste(t)
	insumo := criaInsumo(t, db, "carne", 6)

	lanche := models.Lanche{Nome: "X-Burger", Valor: decimal.NewFromFloat(25), Disponivel: true}
	if err := db.Create(&lanche).Error; err != nil {
		t.Fatalf("não foi possível criar o lanche: %v", err)
	}
	linha := models.LancheInsumo{LancheID: lanche.ID, InsumoID: insumo.ID, QtdInsumo: 100}
	if err := db.Create(&linha).Error; err != nil {
		t.Fatalf("não foi possível criar a linha de receita: %v", err)
	}

	if err := Baixa(db, insumo.ID, 3); err != nil {
		t.Fatalf("Baixa retornou erro: %v", err)
	}

	entrada := models.Entrada{
		NotaFiscal: "NF-001",
		Data:       time.Now(),
		Qtd:        100,
		Valor:      decimal.NewFromFloat(50),
		InsumoID:   &insumo.ID,
	}
	if err := ReporInsumo(db, &entrada); err != nil {
		t.Fatalf("ReporInsumo retornou erro: %v", err)
	}
	if got := qtdInsumo(t, db, insumo.ID); got != 103 {
		t.Fatalf("esperava 103 em estoque, veio %d", got)
	}

	// a reposição nunca reativa: é decisão manual do admin
	var atual models.Lanche
	if err := db.First(&atual, "id = ?", lanche.ID).Error; err != nil {
		t.Fatalf("não foi possível reler o lanche: %v", err)
	}
	if atual.Disponivel {
		t.Fatal("reposição não deveria reativar o lanche")
	}

	var entradas []models.Entrada
	if err := db.Find(&entradas).Error; err != nil {
		t.Fatalf("não foi possível listar as entradas: %v", err)
	}
	if len(entradas) != 1 {
		t.Fatalf("esperava 1 entrada registrada, veio %d", len(entradas))
	}
}

func TestReporInsumoInexistente(t *testing.T) {
	db := abreBancoDeTeste(t)

	id := uint(404)
	entrada := models.Entrada{
		NotaFiscal: "NF-002",
		Data:       time.Now(),
		Qtd:        10,
		Valor:      decimal.NewFromFloat(5),
		InsumoID:   &id,
	}
	if err := ReporInsumo(db, &entrada); err != ErrInsumoNaoEncontrado {
		t.Fatalf("esperava ErrInsumoNaoEncontrado, veio %v", err)
	}

	var total int64
	if err := db.Model(&models.Entrada{}).Count(&total).Error; err != nil {
		t.Fatalf("não foi possível contar as entradas: %v", err)
	}
	if total != 0 {
		t.Fatalf("entrada não deveria ser gravada, veio %d", total)
	}
}

func TestReporBebidaRecalculaDisponibilidade(t *testing.T) {
	db := abreBancoDeTeste(t)

	categoria := models.Categoria{Nome: "Bebidas"}
	if err := db.Create(&categoria).Error; err != nil {
		t.Fatalf("não foi possível criar a categoria: %v", err)
	}
	bebida := models.Bebida{
		Nome:        "Guaraná",
		Valor:       decimal.NewFromFloat(6),
		CategoriaID: categoria.ID,
		Quantidade:  0,
		Disponivel:  false,
	}
	if err := db.Create(&bebida).Error; err != nil {
		t.Fatalf("não foi possível criar a bebida: %v", err)
	}

	entrada := models.Entrada{
		NotaFiscal: "NF-003",
		Data:       time.Now(),
		Qtd:        24,
		Valor:      decimal.NewFromFloat(60),
		BebidaID:   &bebida.ID,
	}
	if err := ReporBebida(db, &entrada); err != nil {
		t.Fatalf("ReporBebida retornou erro: %v", err)
	}

	var atual models.Bebida
	if err := db.First(&atual, "id = ?", bebida.ID).Error; err != nil {
		t.Fatalf("não foi possível reler a bebida: %v", err)
	}
	if atual.Quantidade != 24 {
		t.Fatalf("esperava 24 em estoque, veio %d", atual.Quantidade)
	}
	// bebida é simétrica: acima do limite volta a ficar disponível
	if !atual.Disponivel {
		t.Fatal("bebida acima do limite deveria ficar disponível")
	}
}

func TestAtualizaDisponibilidadeBebidaNoLimite(t *testing.T) {
	db := abreBancoDeTeste(t)

	categoria := models.Categoria{Nome: "Bebidas"}
	if err := db.Create(&categoria).Error; err != nil {
		t.Fatalf("não foi possível criar a categoria: %v", err)
	}
	bebida := models.Bebida{
		Nome:        "Suco",
		Valor:       decimal.NewFromFloat(8),
		CategoriaID: categoria.ID,
		Quantidade:  LimiteEstoqueBaixo,
		Disponivel:  true,
	}
	if err := db.Create(&bebida).Error; err != nil {
		t.Fatalf("não foi possível criar a bebida: %v", err)
	}

	if err := AtualizaDisponibilidadeBebida(db, bebida.ID); err != nil {
		t.Fatalf("AtualizaDisponibilidadeBebida retornou erro: %v", err)
	}

	var atual models.Bebida
	if err := db.First(&atual, "id = ?", bebida.ID).Error; err != nil {
		t.Fatalf("não foi possível reler a bebida: %v", err)
	}
	if atual.Disponivel {
		t.Fatal("quantidade igual ao limite deveria deixar a bebida indisponível")
	}
}
