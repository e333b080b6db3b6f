package tests

import (
	"testing"

	"overcooked-storefront/storefront-svc/internal/domain"
	"overcooked-storefront/storefront-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCart_WritesVersionedEnvelope(t *testing.T) {
	data, err := service.EncodeCart(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"lines":[]}`, string(data))

	data, err = service.EncodeCart([]domain.CartLine{line("2.5", 2, nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"lines":[{"item_id":"1","item_type":"product","title":"","unit_price":"2.5","quantity":2}]}`, string(data))
}

func TestDecodeCart(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantLines int
		wantErr   error
	}{
		{
			name:      "versioned envelope",
			payload:   `{"version":1,"lines":[{"item_id":"1","item_type":"product","unit_price":"2.5","quantity":2}]}`,
			wantLines: 1,
		},
		{
			name:      "legacy bare array",
			payload:   ` [{"item_id":"1","item_type":"menu","unit_price":"9","quantity":1,"promotion":{"percent":"10"}}]`,
			wantLines: 1,
		},
		{name: "empty envelope", payload: `{"version":1,"lines":[]}`, wantLines: 0},
		{name: "blank", payload: "  ", wantErr: service.ErrCorruptCart},
		{name: "garbage", payload: `not json`, wantErr: service.ErrCorruptCart},
		{name: "future version", payload: `{"version":3,"lines":[]}`, wantErr: service.ErrUnsupportedCartVersion},
		{name: "missing version", payload: `{"lines":[]}`, wantErr: service.ErrUnsupportedCartVersion},
		{name: "negative price", payload: `[{"item_id":"1","item_type":"menu","unit_price":"-1","quantity":1}]`, wantErr: service.ErrCorruptCart},
		{name: "missing id", payload: `[{"item_type":"menu","unit_price":"1","quantity":1}]`, wantErr: service.ErrCorruptCart},
		{name: "bad promotion", payload: `[{"item_id":"1","item_type":"menu","unit_price":"1","quantity":1,"promotion":{"percent":"150"}}]`, wantErr: service.ErrCorruptCart},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			lines, err := service.DecodeCart([]byte(testCase.payload))
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, lines)
				return
			}
			require.NoError(t, err)
			assert.Len(t, lines, testCase.wantLines)
		})
	}
}

func TestDecodeCart_LegacyArrayKeepsPromotion(t *testing.T) {
	lines, err := service.DecodeCart([]byte(`[{"item_id":"4","item_type":"menu","title":"Set","unit_price":"9","quantity":2,"promotion":{"percent":"10"}}]`))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Promotion)
	assertDecimal(t, "10", lines[0].Promotion.Percent)
	assertDecimal(t, "16.2", lineTotal(lines[0]))
}
