package database

import (
	"log"

	"cozinha-backend/internal/config"
	"cozinha-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível ligar à base de dados: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Product{},
		&models.Entry{},
		&models.Consumption{},
		&models.Snapshot{},
	)
	if err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	log.Println("Ligação à base de dados ok. Migration concluída.")
}
