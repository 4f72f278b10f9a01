package money

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Amount is a currency amount in minor units (cents). Prices are stored
// in the database as decimal(10,2) strings and multiplied as integers,
// so derived totals never pick up binary float rounding.
type Amount int64

var hundred = big.NewRat(100, 1)

// Parse reads a decimal string like "199.00" or "199". Values with more
// than two fractional digits are rejected rather than rounded.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	r.Mul(r, hundred)
	if !r.IsInt() {
		return 0, fmt.Errorf("money: amount %q has sub-cent precision", s)
	}
	if !r.Num().IsInt64() {
		return 0, fmt.Errorf("money: amount %q out of range", s)
	}
	return Amount(r.Num().Int64()), nil
}

// MustParse is Parse for literals in seeds and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func FromCents(c int64) Amount { return Amount(c) }

func (a Amount) Cents() int64 { return int64(a) }

// Mul multiplies by a whole count (for example nights). Integer math,
// exact by construction.
func (a Amount) Mul(n int64) Amount { return Amount(int64(a) * n) }

func (a Amount) IsNegative() bool { return a < 0 }

// String renders the canonical decimal form, always with two fractional
// digits: "597.00", "-0.50".
func (a Amount) String() string {
	c := int64(a)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON emits the decimal string, matching how DRF-style APIs
// serialize decimal fields.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string ("199.00") or a bare number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores the decimal string; both postgres numeric and sqlite
// accept it.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = 0
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case int64:
		// Whole currency units from integer columns.
		*a = Amount(v * 100)
		return nil
	case float64:
		// Some drivers hand numerics back as floats; round to the cent.
		*a = Amount(math.Round(v * 100))
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
}

// GormDataType keeps the column at currency precision across dialects.
func (Amount) GormDataType() string { return "decimal(10,2)" }
