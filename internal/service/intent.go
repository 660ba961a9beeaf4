package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Ключи метаданных сессии, версия 1
const (
	metaVersion  = "v"
	metaUserID   = "user_id"
	metaBoxID    = "box_id"
	metaAmount   = "amount"
	metaCredits  = "credits"
	metaBoxShare = "box_share"
	metaCurrency = "currency"
)

// Ключи метаданных сессий, созданных до появления версии
const (
	legacyBoxID    = "boxId"
	legacyUserID   = "userId"
	legacyCredits  = "pokeballs"
	legacyBoxShare = "crowdfundAmount"
	legacyAmount   = "amountEuros"
)

// legacyCurrency валюта сессий без версии
const legacyCurrency = "eur"

// EncodeIntent сериализует намерение в метаданные сессии оплаты
func EncodeIntent(intent domain.SettlementIntent) map[string]string {
	meta := map[string]string{
		metaVersion:  strconv.Itoa(domain.SettlementIntentVersion),
		metaUserID:   optionalID(intent.UserID),
		metaBoxID:    optionalID(intent.BoxID),
		metaAmount:   intent.AmountPaid.StringFixed(2),
		metaCredits:  strconv.FormatInt(intent.Credits, 10),
		metaBoxShare: intent.BoxShare.StringFixed(2),
		metaCurrency: intent.Currency,
	}
	return meta
}

// DecodeIntent восстанавливает намерение из метаданных сессии.
// Метаданные без ключа версии читаются в старом формате.
func DecodeIntent(meta map[string]string) (domain.SettlementIntent, error) {
	if len(meta) == 0 {
		return domain.SettlementIntent{}, fmt.Errorf("%w: empty metadata", domain.ErrInvalidIntent)
	}

	raw, ok := meta[metaVersion]
	if !ok {
		return decodeLegacyIntent(meta)
	}

	version, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || version < 0 {
		return domain.SettlementIntent{}, fmt.Errorf("%w: version %q", domain.ErrInvalidIntent, raw)
	}

	switch {
	case version == 0:
		return decodeLegacyIntent(meta)
	case version > domain.SettlementIntentVersion:
		return domain.SettlementIntent{}, fmt.Errorf("%w: %d", domain.ErrUnsupportedIntentVersion, version)
	}

	return decodeIntentFields(meta, 1, intentKeys{
		userID:   metaUserID,
		boxID:    metaBoxID,
		amount:   metaAmount,
		credits:  metaCredits,
		boxShare: metaBoxShare,
	}, meta[metaCurrency])
}

func decodeLegacyIntent(meta map[string]string) (domain.SettlementIntent, error) {
	return decodeIntentFields(meta, 0, intentKeys{
		userID:   legacyUserID,
		boxID:    legacyBoxID,
		amount:   legacyAmount,
		credits:  legacyCredits,
		boxShare: legacyBoxShare,
	}, legacyCurrency)
}

type intentKeys struct {
	userID   string
	boxID    string
	amount   string
	credits  string
	boxShare string
}

func decodeIntentFields(meta map[string]string, version int, keys intentKeys, currency string) (domain.SettlementIntent, error) {
	intent := domain.SettlementIntent{Version: version}

	var err error
	if intent.UserID, err = parseOptionalID(meta[keys.userID]); err != nil {
		return domain.SettlementIntent{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidIntent, keys.userID, err)
	}
	if intent.BoxID, err = parseOptionalID(meta[keys.boxID]); err != nil {
		return domain.SettlementIntent{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidIntent, keys.boxID, err)
	}
	if intent.AmountPaid, err = parseMoney(meta, keys.amount); err != nil {
		return domain.SettlementIntent{}, err
	}
	if intent.BoxShare, err = parseMoney(meta, keys.boxShare); err != nil {
		return domain.SettlementIntent{}, err
	}

	credits, err := strconv.ParseInt(strings.TrimSpace(meta[keys.credits]), 10, 64)
	if err != nil || credits < 0 {
		return domain.SettlementIntent{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidIntent, keys.credits, meta[keys.credits])
	}
	intent.Credits = credits

	if intent.BoxShare.GreaterThan(intent.AmountPaid) {
		return domain.SettlementIntent{}, fmt.Errorf("%w: box share %s exceeds amount %s",
			domain.ErrInvalidIntent, intent.BoxShare, intent.AmountPaid)
	}

	intent.Currency = strings.ToLower(strings.TrimSpace(currency))
	if intent.Currency == "" {
		return domain.SettlementIntent{}, fmt.Errorf("%w: empty currency", domain.ErrInvalidIntent)
	}

	return intent, nil
}

func parseMoney(meta map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := meta[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: missing %s", domain.ErrInvalidIntent, key)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s %q", domain.ErrInvalidIntent, key, raw)
	}

	return value, nil
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, nil
	}

	return &id, nil
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
