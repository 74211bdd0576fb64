package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixed(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal(100.05, formatter.ToFixed(100.0521, 2))
	assertion.Equal(99.94, formatter.ToFixed(99.94000001, 2))
	assertion.Equal(0.00, formatter.ToFixed(0.05, 0))
}

func TestToFixedIsIdempotentAtPrecision(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	values := []float64{100.05, 0.05, 2000.10, 99.98}

	for _, value := range values {
		rounded := formatter.ToFixed(value, 2)
		assertion.Equal(rounded, formatter.ToFixed(rounded, 2))
	}
}

func TestFormatAtPrecision(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	assertion.Equal("0.050000", formatter.FormatAtPrecision(0.05, 6))
	assertion.Equal("2000.10", formatter.FormatAtPrecision(2000.1, 2))
	assertion.Equal("3", formatter.FormatAtPrecision(3.2, -1))
}

func TestPrecisionFromStep(t *testing.T) {
	assertion := assert.New(t)
	formatter := Formatter{}

	precision, err := formatter.PrecisionFromStep("0.00100000")
	assertion.NoError(err)
	assertion.Equal(8, precision)

	precision, err = formatter.PrecisionFromStep("0.001")
	assertion.NoError(err)
	assertion.Equal(3, precision)

	precision, err = formatter.PrecisionFromStep("1")
	assertion.NoError(err)
	assertion.Equal(0, precision)

	_, err = formatter.PrecisionFromStep("not-a-number")
	assertion.Error(err)
}
