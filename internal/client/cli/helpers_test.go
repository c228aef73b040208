package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmax/tgshop/internal/client/catalog"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "15.50 UAH", formatMoney(1550, "UAH"))
	assert.Equal(t, "0.05 EUR", formatMoney(5, "EUR"))
	// Пустая валюта падает обратно на гривну
	assert.Equal(t, "100.00 UAH", formatMoney(10000, ""))
}

func TestParseMinor(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "15.50", want: 1550},
		{input: "15.5", want: 1550},
		{input: "15", want: 1500},
		{input: " 0.05 ", want: 5},
		{input: "15.505", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "15.x5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseMinor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	_, err := parseID("not-a-uuid", "product")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product")

	id, err := parseID(" 6f1c7a44-3f1d-4f5c-9a34-5d9a1b2c3d4e ", "product")
	require.NoError(t, err)
	assert.Equal(t, "6f1c7a44-3f1d-4f5c-9a34-5d9a1b2c3d4e", id.String())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b ,c"))
	assert.Equal(t, []string{"one"}, splitList("one"))
	assert.Nil(t, splitList(" , ,"))
	assert.Nil(t, splitList(""))
}

func TestParseSortMode(t *testing.T) {
	mode, err := parseSortMode("price-asc")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortPriceAsc, mode)

	_, err = parseSortMode("by-color")
	require.Error(t, err)
}
