package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMember = errors.New("invalid leaderboard member")

type ItemSales struct {
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// Member is the leaderboard key agg-svc scores the item under.
func (s ItemSales) Member() string {
	return s.ItemType + ":" + s.ItemID
}

// ParseMember splits a "<type>:<id>" leaderboard member.
func ParseMember(member string) (ItemSales, error) {
	itemType, id, ok := strings.Cut(member, ":")
	if !ok || itemType == "" || id == "" {
		return ItemSales{}, ErrInvalidMember
	}
	return ItemSales{ItemID: id, ItemType: itemType}, nil
}

type SalesReport struct {
	Period string      `json:"period"`
	Items  []ItemSales `json:"items"`
}

type RevenueReport struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}
