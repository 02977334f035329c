package utils_test

import (
	"testing"

	"github.com/fbenitez/concesionaria_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatARS(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"whole million", "1000000", "1.000.000"},
		{"small amount", "950", "950"},
		{"with cents", "1234567.5", "1.234.567,50"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, utils.FormatARS(d))
		})
	}
}

func TestFormatARSWithSymbol(t *testing.T) {
	assert.Equal(t, "$ 6.000.000", utils.FormatARSWithSymbol(decimal.NewFromInt(6_000_000)))
}
