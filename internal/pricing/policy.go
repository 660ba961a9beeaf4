package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ошибки конфигурации курса
var (
	ErrInvalidUnit     = errors.New("pricing: contribution unit must be positive")
	ErrInvalidCredits  = errors.New("pricing: credits per unit must be positive")
	ErrInvalidBoxShare = errors.New("pricing: box share must be between zero and the contribution unit")
	ErrInvalidMinimum  = errors.New("pricing: minimum amount must be positive")
)

// Значения курса по умолчанию: 8€ дают 6 покеболов и 2€ в коробку
var (
	DefaultContributionUnit = decimal.NewFromInt(8)
	DefaultCreditsPerUnit   = int64(6)
	DefaultBoxSharePerUnit  = decimal.NewFromInt(2)
	DefaultMinAmount        = decimal.NewFromInt(1)
)

// moneyPlaces количество знаков после запятой для денежных сумм
const moneyPlaces = 2

// Settlement результат пересчета оплаченной суммы
type Settlement struct {
	Credits  int64
	BoxShare decimal.Decimal
}

// Policy описывает курс обмена денег на покеболы и долю коробки.
// Курс задается конфигурацией и не зашит в код.
type Policy struct {
	ContributionUnit decimal.Decimal
	CreditsPerUnit   int64
	BoxSharePerUnit  decimal.Decimal
	MinAmount        decimal.Decimal
}

// DefaultPolicy возвращает курс по умолчанию
func DefaultPolicy() Policy {
	return Policy{
		ContributionUnit: DefaultContributionUnit,
		CreditsPerUnit:   DefaultCreditsPerUnit,
		BoxSharePerUnit:  DefaultBoxSharePerUnit,
		MinAmount:        DefaultMinAmount,
	}
}

// Validate проверяет согласованность курса
func (p Policy) Validate() error {
	if !p.ContributionUnit.IsPositive() {
		return ErrInvalidUnit
	}
	if p.CreditsPerUnit <= 0 {
		return ErrInvalidCredits
	}
	if p.BoxSharePerUnit.IsNegative() || p.BoxSharePerUnit.GreaterThan(p.ContributionUnit) {
		return ErrInvalidBoxShare
	}
	if !p.MinAmount.IsPositive() {
		return ErrInvalidMinimum
	}
	return nil
}

// ComputeSettlement пересчитывает оплаченную сумму в покеболы и долю коробки.
// Покеболы округляются до целого, доля коробки до центов, половина всегда вверх.
// Отрицательная сумма считается нулевой.
func (p Policy) ComputeSettlement(amountPaid decimal.Decimal) Settlement {
	if amountPaid.IsNegative() {
		amountPaid = decimal.Zero
	}

	credits := amountPaid.
		Mul(decimal.NewFromInt(p.CreditsPerUnit)).
		Div(p.ContributionUnit).
		Round(0)

	boxShare := amountPaid.
		Mul(p.BoxSharePerUnit).
		Div(p.ContributionUnit).
		Round(moneyPlaces)

	return Settlement{
		Credits:  credits.IntPart(),
		BoxShare: boxShare,
	}
}

// AmountToCharge возвращает сумму к оплате за желаемое количество покеболов.
// Округление всегда вверх до центов, чтобы ComputeSettlement от результата
// давал не меньше запрошенного.
func (p Policy) AmountToCharge(desiredCredits int64) decimal.Decimal {
	if desiredCredits <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(desiredCredits).
		Mul(p.ContributionUnit).
		Div(decimal.NewFromInt(p.CreditsPerUnit)).
		RoundCeil(moneyPlaces)
}

// BelowMinimum сообщает, меньше ли сумма минимально допустимой
func (p Policy) BelowMinimum(amount decimal.Decimal) bool {
	return amount.LessThan(p.MinAmount)
}

// String возвращает краткое описание курса для логов
func (p Policy) String() string {
	return fmt.Sprintf("%s -> %d credits + %s box share (min %s)",
		p.ContributionUnit.String(), p.CreditsPerUnit, p.BoxSharePerUnit.String(), p.MinAmount.String())
}
