package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rykoi/storefront/internal/domain"
	"github.com/rykoi/storefront/internal/pricing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService реализует domain.CheckoutService
type CheckoutService struct {
	gateway  domain.PaymentGateway
	boxRepo  domain.BoxRepository
	userRepo domain.UserRepository
	policy   pricing.Policy
	currency string
	logger   *zap.Logger
}

// NewCheckoutService создает новый CheckoutService
func NewCheckoutService(
	gateway domain.PaymentGateway,
	boxRepo domain.BoxRepository,
	userRepo domain.UserRepository,
	policy pricing.Policy,
	currency string,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		boxRepo:  boxRepo,
		userRepo: userRepo,
		policy:   policy,
		currency: strings.ToLower(currency),
		logger:   logger,
	}
}

// StartCheckout создает сессию оплаты.
// Если сумма не задана, она считается по желаемому количеству покеболов.
// Покеболы и доля коробки всегда пересчитываются на сервере по текущему курсу.
func (s *CheckoutService) StartCheckout(ctx context.Context, input domain.CheckoutInput) (*domain.CheckoutSession, error) {
	amount, err := s.resolveAmount(input)
	if err != nil {
		return nil, err
	}

	computed := s.policy.ComputeSettlement(amount)

	if input.BoxID != nil {
		box, err := s.boxRepo.GetBoxByID(ctx, *input.BoxID)
		if err != nil {
			if errors.Is(err, domain.ErrBoxNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("checkout service: failed to get box %s: %w", *input.BoxID, err)
		}
		if !box.Status.AcceptsContributions() {
			return nil, domain.ErrBoxNotAcceptingFunds
		}
	}

	if input.UserID != nil {
		if _, err := s.userRepo.GetUserByID(ctx, *input.UserID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("checkout service: failed to get user %s: %w", *input.UserID, err)
		}
	}

	intent := domain.SettlementIntent{
		Version:    domain.SettlementIntentVersion,
		UserID:     input.UserID,
		BoxID:      input.BoxID,
		AmountPaid: amount,
		Credits:    computed.Credits,
		BoxShare:   computed.BoxShare,
		Currency:   s.currency,
	}

	session, err := s.gateway.CreateCheckout(ctx, domain.CheckoutRequest{
		Intent:         intent,
		IdempotencyKey: input.IdempotencyKey,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return nil, err
		}
		return nil, fmt.Errorf("checkout service: failed to create session for %s %s: %w", amount, s.currency, err)
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", session.SessionID),
		zap.String("amount", amount.StringFixed(2)),
		zap.Int64("credits", intent.Credits),
		zap.String("box_share", intent.BoxShare.StringFixed(2)),
		zap.Stringp("user_id", idString(input.UserID)),
		zap.Stringp("box_id", idString(input.BoxID)),
	)

	return session, nil
}

func (s *CheckoutService) resolveAmount(input domain.CheckoutInput) (decimal.Decimal, error) {
	var amount decimal.Decimal

	switch {
	case input.Amount != nil:
		amount = *input.Amount
		if !amount.Equal(amount.Round(2)) {
			return decimal.Zero, fmt.Errorf("%w: more than two decimal places", domain.ErrInvalidAmount)
		}
	case input.Credits != nil && *input.Credits > 0:
		amount = s.policy.AmountToCharge(*input.Credits)
	default:
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if s.policy.BelowMinimum(amount) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return amount, nil
}
