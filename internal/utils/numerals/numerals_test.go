package numerals_test

import (
	"testing"

	"github.com/fbenitez/concesionaria_app/internal/utils/numerals"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "cero"},
		{1, "uno"},
		{7, "siete"},
		{10, "diez"},
		{15, "quince"},
		{16, "dieciséis"},
		{19, "diecinueve"},
		{20, "veinte"},
		{21, "veintiuno"},
		{26, "veintiséis"},
		{29, "veintinueve"},
		{30, "treinta"},
		{31, "treinta y uno"},
		{47, "cuarenta y siete"},
		{90, "noventa"},
		{99, "noventa y nueve"},
		{100, "cien"},
		{101, "ciento uno"},
		{116, "ciento dieciséis"},
		{199, "ciento noventa y nueve"},
		{200, "doscientos"},
		{555, "quinientos cincuenta y cinco"},
		{700, "setecientos"},
		{999, "novecientos noventa y nueve"},
		{1000, "mil"},
		{1001, "mil uno"},
		{1994, "mil novecientos noventa y cuatro"},
		{2000, "dos mil"},
		{21000, "veintiún mil"},
		{31000, "treinta y un mil"},
		{100000, "cien mil"},
		{101000, "ciento un mil"},
		{131000, "ciento treinta y un mil"},
		{250000, "doscientos cincuenta mil"},
		{999999, "novecientos noventa y nueve mil novecientos noventa y nueve"},
		{1000000, "un millón"},
		{1000001, "un millón uno"},
		{2000000, "dos millones"},
		{2500000, "dos millones quinientos mil"},
		{21000000, "veintiún millones"},
		{201000000, "doscientos un millones"},
		{1001000000, "mil un millones"},
		{12345678, "doce millones trescientos cuarenta y cinco mil seiscientos setenta y ocho"},
		{1000000000, "mil millones"},
		{2026, "dos mil veintiséis"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, numerals.ToWords(tt.n))
		})
	}
}

func TestToWords_OutOfRange(t *testing.T) {
	// Out-of-range values fall back to digits so a bad input never blocks a
	// document from rendering.
	assert.Equal(t, "-1", numerals.ToWords(-1))
	assert.Equal(t, "1000000000000", numerals.ToWords(1_000_000_000_000))
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1000000", "UN MILLÓN"},
		{"1000000.99", "UN MILLÓN"}, // cents are never worded
		{"12000000", "DOCE MILLONES"},
		{"0", "CERO"},
		{"16", "DIECISÉIS"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, numerals.AmountInWords(d))
		})
	}
}
