package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Number accepts both string-encoded and raw float JSON scalars,
// which is how the exchange serializes prices and quantities.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	var strValue string
	err := json.Unmarshal(b, &strValue)
	if err == nil {
		floatValue, _ := strconv.ParseFloat(strValue, 64)
		*n = Number(floatValue)
		return nil
	}

	var floatValue float64
	err = json.Unmarshal(b, &floatValue)

	if err == nil {
		*n = Number(floatValue)
		return nil
	}

	return errors.New(fmt.Sprintf("Number: unsupported data type given, %s", err.Error()))
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%.12f", n.Value()))
}

func (n Number) Value() float64 {
	return float64(n)
}
