package repository

import (
	"errors"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/mappers"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultDecisionRepository struct {
	db *gorm.DB
}

func NewDefaultDecisionRepository(db *gorm.DB) *DefaultDecisionRepository {
	return &DefaultDecisionRepository{db: db}
}

// CreateDecision writes the decision row and posts the arbiter's earnings in
// one transaction, so the stats can never drift from the recorded rulings.
func (r *DefaultDecisionRepository) CreateDecision(decision *domain.Decision, earned decimal.Decimal) error {
	decisionModel := mappers.ToGORMDecision(decision)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&decisionModel).Error; err != nil {
			return err
		}
		res := tx.Model(&models.ArbiterModel{}).
			Where("id = ?", decision.ArbiterID).
			Updates(map[string]interface{}{
				"cases_resolved": gorm.Expr("cases_resolved + ?", 1),
				"total_earned":   gorm.Expr("total_earned + ?", earned),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrArbiterNotFound
		}
		return nil
	})
}

func (r *DefaultDecisionRepository) GetLatestDecision(disputeID string) (*domain.Decision, error) {
	var decisionModel models.DecisionModel
	if err := r.db.Model(&models.DecisionModel{}).
		Where("dispute_id = ?", disputeID).
		Order("created_at DESC").
		First(&decisionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDecisionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDecision(&decisionModel), nil
}

func (r *DefaultDecisionRepository) MarkAppealed(decisionID string) error {
	return r.db.Model(&models.DecisionModel{}).
		Where("id = ?", decisionID).
		Update("is_appealed", true).Error
}
