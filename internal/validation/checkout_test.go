package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{
			name:  "plain digits",
			phone: "0671234567",
		},
		{
			name:  "international with plus",
			phone: "+380671234567",
		},
		{
			name:  "separators allowed",
			phone: "+38 (067) 123-45-67",
		},
		{
			name:    "empty",
			phone:   "",
			wantErr: true,
		},
		{
			name:    "too short",
			phone:   "12345",
			wantErr: true,
		},
		{
			name:    "letters",
			phone:   "phone123456",
			wantErr: true,
		},
		{
			name:    "plus in the middle",
			phone:   "067+1234567",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("Иван Петренко"))
	require.Error(t, ValidateName(""))
	require.Error(t, ValidateName("   "))
	require.Error(t, ValidateName(strings.Repeat("a", MaxNameLen+1)))
}

func TestValidateAddress(t *testing.T) {
	require.NoError(t, ValidateAddress("Киев, Крещатик 1, кв. 5"))
	require.Error(t, ValidateAddress("  "))
	require.Error(t, ValidateAddress(strings.Repeat("x", MaxAddressLen+1)))
}

func TestValidateComment(t *testing.T) {
	require.NoError(t, ValidateComment(""))
	require.NoError(t, ValidateComment("позвонить за час"))
	require.Error(t, ValidateComment(strings.Repeat("x", MaxCommentLen+1)))
}

func TestNormalizePromoCode(t *testing.T) {
	assert.Equal(t, "SALE10", NormalizePromoCode("  sale10 "))
	assert.Equal(t, "", NormalizePromoCode("   "))
}

func TestValidateCheckout(t *testing.T) {
	require.NoError(t, ValidateCheckout("Иван", "+380671234567", "Киев", ""))

	err := ValidateCheckout("", "+380671234567", "Киев", "")
	require.ErrorContains(t, err, "name")

	err = ValidateCheckout("Иван", "bad", "Киев", "")
	require.ErrorContains(t, err, "phone")

	err = ValidateCheckout("Иван", "+380671234567", "", "")
	require.ErrorContains(t, err, "address")
}
