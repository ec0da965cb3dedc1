package escrow

import (
	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Ledger holds the configured escrow rates and bounds and derives every
// monetary figure of a dispute from its amount. All arithmetic is decimal;
// results are rounded half-up to the configured precision.
//
// Payout policy: the arbiter fee comes off the top, the initiator share is
// computed on the remaining pool and the respondent receives the exact
// remainder, so initiator + respondent + fee always equals the amount.
type Ledger struct {
	depositRate decimal.Decimal
	feeRate     decimal.Decimal
	minAmount   decimal.Decimal
	maxAmount   decimal.Decimal
	precision   int32
}

type Config struct {
	DepositRate       float64
	FeeRate           float64
	MinAmount         float64
	MaxAmount         float64
	RoundingPrecision int32
}

func NewLedger(cfg Config) *Ledger {
	return &Ledger{
		depositRate: decimal.NewFromFloat(cfg.DepositRate),
		feeRate:     decimal.NewFromFloat(cfg.FeeRate),
		minAmount:   decimal.NewFromFloat(cfg.MinAmount),
		maxAmount:   decimal.NewFromFloat(cfg.MaxAmount),
		precision:   cfg.RoundingPrecision,
	}
}

// ValidateAmount rejects amounts outside the configured [min, max] bounds.
func (l *Ledger) ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThan(l.minAmount) || amount.GreaterThan(l.maxAmount) {
		return domain.ErrAmountOutOfBounds
	}
	return nil
}

// Deposit is the refundable collateral each party posts.
func (l *Ledger) Deposit(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(l.depositRate).Round(l.precision)
}

// ArbiterFee is the commission paid to the arbiter from the disputed amount.
func (l *Ledger) ArbiterFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(l.feeRate).Round(l.precision)
}

// Payout splits the amount for a ruling of initiatorShare percent. The fee is
// deducted first; the respondent amount is derived by subtraction rather than
// rounded independently.
func (l *Ledger) Payout(amount decimal.Decimal, initiatorShare int) (initiator, respondent decimal.Decimal) {
	pool := amount.Sub(l.ArbiterFee(amount))
	share := decimal.NewFromInt(int64(initiatorShare)).Div(decimal.NewFromInt(100))
	initiator = pool.Mul(share).Round(l.precision)
	respondent = pool.Sub(initiator)
	return initiator, respondent
}
