package database

import (
	"log"

	"lanchonete-backend/internal/config"
	"lanchonete-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	log.Println("Conexão com o banco estabelecida. Migration concluída.")
}

// Migrate aplica o schema. Separado do Init para os testes poderem
// migrar um banco SQLite em memória.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Pessoa{},
		&models.Categoria{},
		&models.Insumo{},
		&models.Lanche{},
		&models.LancheInsumo{},
		&models.Bebida{},
		&models.Entrada{},
		&models.Pedido{},
		&models.Venda{},
	)
}
