package postgres

import (
	"log"

	"github.com/escrowline/dispute-service/internal/config"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.DisputeConfig) *gorm.DB {
	dsn := cfg.DisputeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.DisputeModel{}, &models.ArbiterModel{}, &models.DecisionModel{}, &models.EvidenceModel{})

	return db
}
