package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/mappers"
	"github.com/escrowline/dispute-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	db *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{db: db}
}

func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute) error {
	disputeModel := mappers.ToGORMDispute(dispute)
	if err := r.db.Create(&disputeModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.db.Model(&models.DisputeModel{}).Where("id = ?", disputeID).First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

// SaveDispute is the compare-and-swap primitive: the row is updated only if
// its status still equals expectedStatus. Zero rows affected means another
// writer advanced the dispute first. The commercial terms fixed at creation
// never travel through a save.
func (r *DefaultDisputeRepository) SaveDispute(dispute *domain.Dispute, expectedStatus domain.DisputeStatus) error {
	disputeModel := mappers.ToGORMDispute(dispute)
	res := r.db.Model(&models.DisputeModel{}).
		Where("id = ? AND status = ?", dispute.ID, string(expectedStatus)).
		Select("*").
		Omit("id", "created_at", "initiator_id", "amount", "category", "deposit", "arbiter_fee").
		Updates(disputeModel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

// SetDepositPaid writes a single deposit flag in place. Unlike SaveDispute it
// carries no other columns, so concurrent payers cannot clobber each other's
// flag with a stale read.
func (r *DefaultDisputeRepository) SetDepositPaid(disputeID string, initiator bool, expectedStatus domain.DisputeStatus) error {
	column := "respondent_deposit_paid"
	if initiator {
		column = "initiator_deposit_paid"
	}
	res := r.db.Model(&models.DisputeModel{}).
		Where("id = ? AND status = ?", disputeID, string(expectedStatus)).
		Updates(map[string]interface{}{
			column:       true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *DefaultDisputeRepository) ListDueDeadlines(now time.Time) ([]*domain.Dispute, error) {
	timed := []string{
		string(domain.StatusEvidenceUpload),
		string(domain.StatusUnderReview),
		string(domain.StatusResolved),
	}
	var disputeModels []models.DisputeModel
	if err := r.db.Model(&models.DisputeModel{}).
		Where("status IN ?", timed).
		Where("deadline IS NOT NULL").
		Where("deadline < ?", now).
		Find(&disputeModels).Error; err != nil {
		return nil, err
	}
	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}
	return disputes, nil
}

func (r *DefaultDisputeRepository) GetDisputes(filter domain.GetDisputesFilter) ([]*domain.Dispute, int64, error) {
	query := r.db.Model(&models.DisputeModel{})

	if filter.UserID != nil {
		query = query.Where("initiator_id = ? OR respondent_id = ?", *filter.UserID, *filter.UserID)
	}
	if filter.ArbiterID != nil {
		query = query.Where("arbiter_id = ?", *filter.ArbiterID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	query = query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit)

	var disputeModels []models.DisputeModel
	if err := query.Find(&disputeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find dispute models: %w", err)
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}
	return disputes, total, nil
}
