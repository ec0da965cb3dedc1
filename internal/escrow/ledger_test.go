package escrow

import (
	"testing"

	"github.com/escrowline/dispute-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedger() *Ledger {
	return NewLedger(Config{
		DepositRate:       0.10,
		FeeRate:           0.07,
		MinAmount:         10,
		MaxAmount:         10000,
		RoundingPrecision: 2,
	})
}

func TestValidateAmountBounds(t *testing.T) {
	ledger := testLedger()

	assert.NoError(t, ledger.ValidateAmount(decimal.NewFromInt(10)))
	assert.NoError(t, ledger.ValidateAmount(decimal.NewFromInt(10000)))
	assert.NoError(t, ledger.ValidateAmount(decimal.NewFromFloat(149.99)))

	err := ledger.ValidateAmount(decimal.NewFromFloat(9.99))
	assert.ErrorIs(t, err, domain.ErrAmountOutOfBounds)

	err = ledger.ValidateAmount(decimal.NewFromFloat(10000.01))
	assert.ErrorIs(t, err, domain.ErrAmountOutOfBounds)
}

func TestDepositAndFeeRates(t *testing.T) {
	ledger := testLedger()

	amount := decimal.NewFromInt(200)
	assert.True(t, ledger.Deposit(amount).Equal(decimal.NewFromFloat(20.00)),
		"deposit: got %s", ledger.Deposit(amount))
	assert.True(t, ledger.ArbiterFee(amount).Equal(decimal.NewFromFloat(14.00)),
		"fee: got %s", ledger.ArbiterFee(amount))

	amount = decimal.NewFromInt(150)
	assert.True(t, ledger.Deposit(amount).Equal(decimal.NewFromFloat(15.00)))
	assert.True(t, ledger.ArbiterFee(amount).Equal(decimal.NewFromFloat(10.50)))
}

func TestPayoutSplit(t *testing.T) {
	ledger := testLedger()

	tests := []struct {
		name       string
		amount     decimal.Decimal
		share      int
		initiator  string
		respondent string
	}{
		{"even split", decimal.NewFromInt(200), 50, "93.00", "93.00"},
		{"sixty forty", decimal.NewFromInt(200), 60, "111.60", "74.40"},
		{"rounding half up", decimal.NewFromInt(150), 75, "104.63", "34.87"},
		{"full to initiator", decimal.NewFromInt(150), 100, "139.50", "0.00"},
		{"full to respondent", decimal.NewFromInt(150), 0, "0.00", "139.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initiator, respondent := ledger.Payout(tt.amount, tt.share)
			assert.Equal(t, tt.initiator, initiator.StringFixed(2))
			assert.Equal(t, tt.respondent, respondent.StringFixed(2))
		})
	}
}

func TestPayoutConservesAmount(t *testing.T) {
	ledger := testLedger()

	amounts := []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromFloat(33.33),
		decimal.NewFromInt(150),
		decimal.NewFromFloat(999.99),
		decimal.NewFromInt(10000),
	}
	for _, amount := range amounts {
		fee := ledger.ArbiterFee(amount)
		for share := 0; share <= 100; share++ {
			initiator, respondent := ledger.Payout(amount, share)
			total := initiator.Add(respondent).Add(fee)
			require.True(t, total.Equal(amount),
				"amount=%s share=%d: %s + %s + %s = %s",
				amount, share, initiator, respondent, fee, total)
			require.False(t, respondent.IsNegative(),
				"amount=%s share=%d: negative respondent %s", amount, share, respondent)
		}
	}
}
