package repository

import (
	"errors"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/mappers"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultArbiterRepository struct {
	db *gorm.DB
}

func NewDefaultArbiterRepository(db *gorm.DB) *DefaultArbiterRepository {
	return &DefaultArbiterRepository{db: db}
}

func (r *DefaultArbiterRepository) CreateArbiter(arbiter *domain.Arbiter) error {
	arbiterModel := mappers.ToGORMArbiter(arbiter)
	return r.db.Create(&arbiterModel).Error
}

func (r *DefaultArbiterRepository) GetArbiterByID(arbiterID string) (*domain.Arbiter, error) {
	var arbiterModel models.ArbiterModel
	if err := r.db.Model(&models.ArbiterModel{}).Where("id = ?", arbiterID).First(&arbiterModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArbiterNotFound
		}
		return nil, err
	}
	return mappers.ToDomainArbiter(&arbiterModel), nil
}

func (r *DefaultArbiterRepository) SelectCandidates(specialization domain.ArbiterSpecialization, limit int) ([]*domain.Arbiter, error) {
	var arbiterModels []models.ArbiterModel
	if err := r.db.Model(&models.ArbiterModel{}).
		Where("is_active = ?", true).
		Where("specialization = ? OR specialization = ?", string(specialization), string(domain.SpecGeneral)).
		Order("rating DESC, cases_resolved DESC").
		Limit(limit).
		Find(&arbiterModels).Error; err != nil {
		return nil, err
	}

	arbiters := make([]*domain.Arbiter, len(arbiterModels))
	for i, arbiterModel := range arbiterModels {
		arbiters[i] = mappers.ToDomainArbiter(&arbiterModel)
	}
	return arbiters, nil
}

func (r *DefaultArbiterRepository) UpdateArbiterStats(arbiterID string, casesIncrement int, earned decimal.Decimal) error {
	res := r.db.Model(&models.ArbiterModel{}).
		Where("id = ?", arbiterID).
		Updates(map[string]interface{}{
			"cases_resolved": gorm.Expr("cases_resolved + ?", casesIncrement),
			"total_earned":   gorm.Expr("total_earned + ?", earned),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrArbiterNotFound
	}
	return nil
}
