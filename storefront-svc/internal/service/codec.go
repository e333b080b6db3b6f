package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"overcooked-storefront/storefront-svc/internal/domain"
)

const cartSchemaVersion = 1

var (
	ErrCorruptCart            = errors.New("corrupt cart data")
	ErrUnsupportedCartVersion = errors.New("unsupported cart schema version")
)

type persistedCart struct {
	Version int               `json:"version"`
	Lines   []domain.CartLine `json:"lines"`
}

func EncodeCart(lines []domain.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(persistedCart{Version: cartSchemaVersion, Lines: lines})
}

// DecodeCart accepts the versioned envelope as well as the bare line array
// written before the envelope existed. Anything that would break a cart
// invariant is rejected as a whole.
func DecodeCart(data []byte) ([]domain.CartLine, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrCorruptCart)
	}

	var lines []domain.CartLine
	if data[0] == '[' {
		if err := json.Unmarshal(data, &lines); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
		}
	} else {
		var stored persistedCart
		if err := json.Unmarshal(data, &stored); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
		}
		if stored.Version != cartSchemaVersion {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedCartVersion, stored.Version)
		}
		lines = stored.Lines
	}

	seen := make(map[domain.LineKey]struct{}, len(lines))
	for i, line := range lines {
		if err := validateLine(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptCart, i, err)
		}
		if _, dup := seen[line.Key()]; dup {
			return nil, fmt.Errorf("%w: duplicate line %s/%s", ErrCorruptCart, line.ItemType, line.ItemID)
		}
		seen[line.Key()] = struct{}{}
	}
	return lines, nil
}

func validateLine(line domain.CartLine) error {
	switch {
	case line.ItemID == "":
		return errors.New("missing item id")
	case !line.ItemType.Valid():
		return fmt.Errorf("item type %q", line.ItemType)
	case line.Quantity < 1:
		return fmt.Errorf("quantity %d", line.Quantity)
	case line.UnitPrice.IsNegative():
		return errors.New("negative unit price")
	}
	return line.Promotion.Validate()
}
