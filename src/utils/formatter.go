package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

type Formatter struct {
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}

// FormatAtPrecision renders a value as fixed-decimal text the way the
// exchange expects order prices and quantities.
func (m *Formatter) FormatAtPrecision(value float64, precision int) string {
	if precision < 0 {
		precision = 0
	}

	return strconv.FormatFloat(value, 'f', precision, 64)
}

// PrecisionFromStep counts decimal digits in the textual tick/step
// size, trailing zeros included ("0.00100000" resolves to 8).
func (m *Formatter) PrecisionFromStep(step string) (int, error) {
	value, err := decimal.NewFromString(step)
	if err != nil {
		return 0, err
	}

	if value.Exponent() >= 0 {
		return 0, nil
	}

	return int(-value.Exponent()), nil
}
