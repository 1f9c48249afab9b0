package enum

import (
	"encoding/json"
	"strings"
)

// TaxMode represents how tax relates to stated prices.
type TaxMode int

const (
	TaxModeExclusive TaxMode = 0
	TaxModeInclusive TaxMode = 1
)

func (t TaxMode) String() string {
	names := [...]string{"exclusive", "inclusive"}
	if int(t) < 0 || int(t) >= len(names) {
		return "exclusive"
	}
	return names[t]
}

// ParseTaxMode maps a stored mode string to a TaxMode. Anything that is
// not "inclusive" is treated as exclusive.
func ParseTaxMode(str string) TaxMode {
	if strings.EqualFold(str, "inclusive") {
		return TaxModeInclusive
	}
	return TaxModeExclusive
}

func (t TaxMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxMode(i)
		return nil
	}
	if strings.EqualFold(str, "inclusive") {
		*t = TaxModeInclusive
	} else {
		*t = TaxModeExclusive
	}
	return nil
}
