package promotion

import (
	"flightdeals/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentType = errs.NewValidation("invalid payment type")
	ErrNegativePrice      = errs.NewValidation("price must not be negative")
	ErrNonPositiveMiles   = errs.NewValidation("miles must be positive")
	ErrMissingPrice       = errs.NewValidation("price is required for cash promotions")
	ErrMissingMiles       = errs.NewValidation("miles are required for miles promotions")
)

type PaymentType string

const (
	PaymentCash  PaymentType = "cash"
	PaymentMiles PaymentType = "miles"
)

var PaymentTypes = []PaymentType{PaymentCash, PaymentMiles}

// PaymentTerms is either Cash or Miles. A promotion never carries both.
type PaymentTerms interface {
	Type() PaymentType
	isPaymentTerms()
}

type Cash struct {
	Amount decimal.Decimal
}

func (Cash) Type() PaymentType { return PaymentCash }
func (Cash) isPaymentTerms()   {}

type Miles struct {
	Amount int64
}

func (Miles) Type() PaymentType { return PaymentMiles }
func (Miles) isPaymentTerms()   {}

func NewCash(amount decimal.Decimal) (Cash, error) {
	if amount.IsNegative() {
		return Cash{}, ErrNegativePrice
	}
	return Cash{Amount: amount}, nil
}

func NewMiles(amount int64) (Miles, error) {
	if amount <= 0 {
		return Miles{}, ErrNonPositiveMiles
	}
	return Miles{Amount: amount}, nil
}

// NewPaymentTerms builds the variant named by paymentType from whichever amount
// belongs to it. The other amount must be absent.
func NewPaymentTerms(paymentType string, price *decimal.Decimal, miles *int64) (PaymentTerms, error) {
	switch PaymentType(paymentType) {
	case PaymentCash:
		if price == nil || miles != nil {
			return nil, ErrMissingPrice
		}
		return NewCash(*price)
	case PaymentMiles:
		if miles == nil || price != nil {
			return nil, ErrMissingMiles
		}
		return NewMiles(*miles)
	default:
		return nil, ErrInvalidPaymentType
	}
}
