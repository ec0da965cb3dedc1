package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ArbiterSpecialization string

const (
	SpecGoodsElectronics ArbiterSpecialization = "goods_electronics"
	SpecFreelanceIT      ArbiterSpecialization = "freelance_it"
	SpecRealEstate       ArbiterSpecialization = "real_estate"
	SpecCreative         ArbiterSpecialization = "creative"
	SpecGeneral          ArbiterSpecialization = "general"
)

func (s ArbiterSpecialization) Valid() bool {
	switch s {
	case SpecGoodsElectronics, SpecFreelanceIT, SpecRealEstate, SpecCreative, SpecGeneral:
		return true
	}
	return false
}

// SpecializationForCategory maps a dispute category to the arbiter
// specialization that covers it. Categories with no dedicated specialization
// fall back to GENERAL.
func SpecializationForCategory(category DisputeCategory) ArbiterSpecialization {
	switch category {
	case CategoryGoodsSale, CategorySharedPurchase:
		return SpecGoodsElectronics
	case CategoryFreelance:
		return SpecFreelanceIT
	case CategoryRental:
		return SpecRealEstate
	case CategoryServices:
		return SpecCreative
	default:
		return SpecGeneral
	}
}

type Arbiter struct {
	ID             string
	Specialization ArbiterSpecialization
	DepositAmount  decimal.Decimal
	Rating         float64
	CasesResolved  int
	TotalEarned    decimal.Decimal
	IsActive       bool
	RegisteredAt   time.Time
}

type ArbiterRepository interface {
	CreateArbiter(arbiter *Arbiter) error
	GetArbiterByID(arbiterID string) (*Arbiter, error)
	// SelectCandidates returns active arbiters whose specialization matches the
	// requested one or is GENERAL, ordered by rating then cases resolved, both
	// descending.
	SelectCandidates(specialization ArbiterSpecialization, limit int) ([]*Arbiter, error)
	// UpdateArbiterStats atomically increments the resolved counter and the
	// earnings accumulator.
	UpdateArbiterStats(arbiterID string, casesIncrement int, earned decimal.Decimal) error
}
