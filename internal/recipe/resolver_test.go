package recipe

import (
	"strings"
	"testing"

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

func criaLancheComReceita(t *testing.T, db *gorm.DB, receita map[string]int) (uint, map[string]uint) {
	t.Helper()

	categoria := models.Categoria{Nome: "Geral"}
	if err := db.Create(&categoria).Error; err != nil {
		t.Fatalf("não foi possível criar a categoria: %v", err)
	}

	lanche := models.Lanche{
		Nome:       "X-Burger",
		Descricao:  "Pão e carne",
		Valor:      decimal.NewFromFloat(25.5),
		Disponivel: true,
	}
	if err := db.Create(&lanche).Error; err != nil {
		t.Fatalf("não foi possível criar o lanche: %v", err)
	}

	ids := make(map[string]uint, len(receita))
	for nome, qtd := range receita {
		insumo := models.Insumo{
			Nome:        nome,
			QtdInsumo:   10000,
			Custo:       decimal.NewFromFloat(1),
			CategoriaID: categoria.ID,
		}
		if err := db.Create(&insumo).Error; err != nil {
			t.Fatalf("não foi possível criar o insumo %s: %v", nome, err)
		}
		ids[nome] = insumo.ID

		linha := models.LancheInsumo{LancheID: lanche.ID, InsumoID: insumo.ID, QtdInsumo: qtd}
		if err := db.Create(&linha).Error; err != nil {
			t.Fatalf("não foi possível criar a linha de receita: %v", err)
		}
	}

	return lanche.ID, ids
}

func TestResolveReceitaBase(t *testing.T) {
	db := abreBancoDeTeste(t)
	lancheID, ids := criaLancheComReceita(t, db, map[string]int{"pao": 100, "carne": 100})

	receita, err := Resolve(db, lancheID, Ajustes{})
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	if len(receita) != 2 {
		t.Fatalf("esperava 2 insumos, veio %d", len(receita))
	}
	if receita[ids["pao"]] != 100 || receita[ids["carne"]] != 100 {
		t.Fatalf("receita base errada: %v", receita)
	}
}

func TestResolveRemoverComPiso(t *testing.T) {
	db := abreBancoDeTeste(t)
	lancheID, ids := criaLancheComReceita(t, db, map[string]int{"pao": 100, "carne": 100})

	// remover 1 porção (100 unidades) zera a carne; remover além disso
	// nunca fica negativo
	receita, err := Resolve(db, lancheID, Ajustes{
		Remover: []ItemAjuste{{InsumoID: ids["carne"], Qtd: 1}},
	})
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	if receita[ids["carne"]] != 0 {
		t.Fatalf("carne deveria ser 0, veio %d", receita[ids["carne"]])
	}
	if receita[ids["pao"]] != 100 {
		t.Fatalf("pao deveria continuar 100, veio %d", receita[ids["pao"]])
	}

	receita, err = Resolve(db, lancheID, Ajustes{
		Remover: []ItemAjuste{{InsumoID: ids["carne"], Qtd: 5}},
	})
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	if receita[ids["carne"]] != 0 {
		t.Fatalf("remoção em excesso deveria dar 0, veio %d", receita[ids["carne"]])
	}
}

func TestResolveAdicionarCriaEntrada(t *testing.T) {
	db := abreBancoDeTeste(t)
	lancheID, ids := criaLancheComReceita(t, db, map[string]int{"pao": 100})

	categoria := models.Categoria{Nome: "Extras"}
	if err := db.Create(&categoria).Error; err != nil {
		t.Fatalf("não foi possível criar a categoria: %v", err)
	}
	bacon := models.Insumo{Nome: "bacon", QtdInsumo: 500, Custo: decimal.NewFromFloat(2), CategoriaID: categoria.ID}
	if err := db.Create(&bacon).Error; err != nil {
		t.Fatalf("não foi possível criar o insumo: %v", err)
	}

	receita, err := Resolve(db, lancheID, Ajustes{
		Adicionar: []ItemAjuste{
			{InsumoID: ids["pao"], Qtd: 1},
			{InsumoID: bacon.ID, Qtd: 2},
		},
	})
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	if receita[ids["pao"]] != 200 {
		t.Fatalf("pao deveria ser 200, veio %d", receita[ids["pao"]])
	}
	if receita[bacon.ID] != 200 {
		t.Fatalf("bacon deveria entrar com 200, veio %d", receita[bacon.ID])
	}
}

func TestResolveRemoverIgnoraInsumoForaDaReceita(t *testing.T) {
	db := abreBancoDeTeste(t)
	lancheID, ids := criaLancheComReceita(t, db, map[string]int{"pao": 100})

	receita, err := Resolve(db, lancheID, Ajustes{
		Remover: []ItemAjuste{{InsumoID: 9999, Qtd: 1}},
	})
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	if len(receita) != 1 || receita[ids["pao"]] != 100 {
		t.Fatalf("remoção de insumo fora da receita deveria ser ignorada: %v", receita)
	}
}

func TestResolveRemoverNaoAlcancaAdicionados(t *testing.T) {
	db := abreBancoDeTeste(t)
	lancheID, _ := criaLancheComReceita(t, db, map[string]int{"pao": 100})

	categoria := models.Categoria{Nome: "Extras"}
	if err := db.Create(&categoria).Error; err != nil {
		t.Fatalf("não foi possível criar a categoria: %v", err)
	}
	bacon := models.Insumo{Nome: "bacon", QtdInsumo: 500, Custo: decimal.NewFromFloat(2), CategoriaID: categoria.ID}
	if err := db.Create(&bacon).Error; err != nil {
		t.Fatalf("não foi possível criar o insumo: %v", err)
	}

	// a remoção opera sobre a receita base: bacon só entra na fase de
	// adição, então a remoção dele não tem efeito
	receita, err := Resolve(db, lancheID, Ajustes{
		Adicionar: []ItemAjuste{{InsumoID: bacon.ID, Qtd: 1}},
		Remover:   []ItemAjuste{{InsumoID: bacon.ID, Qtd: 1}},
	})
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	if receita[bacon.ID] != 100 {
		t.Fatalf("bacon deveria ficar com 100, veio %d", receita[bacon.ID])
	}
}

func TestResolveDeterministico(t *testing.T) {
	db := abreBancoDeTeste(t)
	lancheID, ids := criaLancheComReceita(t, db, map[string]int{"pao": 100, "carne": 100, "queijo": 50})

	ajustes := Ajustes{
		Adicionar: []ItemAjuste{{InsumoID: ids["queijo"], Qtd: 1}},
		Remover:   []ItemAjuste{{InsumoID: ids["carne"], Qtd: 1}},
	}

	primeira, err := Resolve(db, lancheID, ajustes)
	if err != nil {
		t.Fatalf("Resolve retornou erro: %v", err)
	}
	for i := 0; i < 5; i++ {
		outra, err := Resolve(db, lancheID, ajustes)
		if err != nil {
			t.Fatalf("Resolve retornou erro: %v", err)
		}
		if len(outra) != len(primeira) {
			t.Fatalf("resultado mudou entre chamadas: %v vs %v", primeira, outra)
		}
		for id, qtd := range primeira {
			if outra[id] != qtd {
				t.Fatalf("resultado mudou entre chamadas: %v vs %v", primeira, outra)
			}
		}
	}
}

func TestResolveSemReceita(t *testing.T) {
	db := abreBancoDeTeste(t)

	lanche := models.Lanche{Nome: "Misto", Valor: decimal.NewFromFloat(10), Disponivel: true}
	if err := db.Create(&lanche).Error; err != nil {
		t.Fatalf("não foi possível criar o lanche: %v", err)
	}

	if _, err := Resolve(db, lanche.ID, Ajustes{}); err != ErrSemReceita {
		t.Fatalf("esperava ErrSemReceita, veio %v", err)
	}
}

func TestResolveLancheInexistente(t *testing.T) {
	db := abreBancoDeTeste(t)

	if _, err := Resolve(db, 42, Ajustes{}); err != ErrLancheNaoEncontrado {
		t.Fatalf("esperava ErrLancheNaoEncontrado, veio %v", err)
	}
}

func TestBlobIdaEVolta(t *testing.T) {
	receita := Receita{1: 100, 7: 0, 12: 300}

	blob, err := receita.Blob()
	if err != nil {
		t.Fatalf("Blob retornou erro: %v", err)
	}

	volta, err := ParseBlob(blob)
	if err != nil {
		t.Fatalf("ParseBlob retornou erro: %v", err)
	}
	if len(volta) != len(receita) {
		t.Fatalf("mapa mudou na ida e volta: %v vs %v", receita, volta)
	}
	for id, qtd := range receita {
		if volta[id] != qtd {
			t.Fatalf("mapa mudou na ida e volta: %v vs %v", receita, volta)
		}
	}
}

func TestParseBlobVazio(t *testing.T) {
	receita, err := ParseBlob("")
	if err != nil {
		t.Fatalf("ParseBlob retornou erro: %v", err)
	}
	if len(receita) != 0 {
		t.Fatalf("blob vazio deveria dar mapa vazio, veio %v", receita)
	}
}
