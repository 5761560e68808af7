package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits carried by every Money value.
const MoneyScale = 8

// moneyIntegerDigits is the number of digits left of the decimal point,
// matching NUMERIC(20,8) in the schema.
const moneyIntegerDigits = 12

// moneyMax is the first value that no longer fits in NUMERIC(20,8).
var moneyMax = decimal.New(1, moneyIntegerDigits)

var (
	// ErrMoneyOverflow indicates a value that does not fit in 20 total digits.
	ErrMoneyOverflow = errors.New("money overflow")
	// ErrMoneyPrecision indicates more than 8 fractional digits.
	ErrMoneyPrecision = errors.New("money precision exceeds 8 fractional digits")
	// ErrMoneyFormat indicates an unparseable monetary string.
	ErrMoneyFormat = errors.New("invalid money format")
)

// Money is a fixed-point decimal amount with 20 significant digits, 8 of them
// fractional. All arithmetic is exact; overflow and precision violations are
// reported instead of rounded away.
type Money struct {
	d decimal.Decimal
}

// Zero is the canonical zero amount.
var Zero = Money{}

// NewMoneyFromString parses a canonical decimal string into Money. It rejects
// NaN/Infinity forms, scientific notation, more than 8 fractional digits, and
// values outside NUMERIC(20,8).
func NewMoneyFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty string", ErrMoneyFormat)
	}
	if strings.ContainsAny(s, "eE") {
		return Money{}, fmt.Errorf("%w: exponent notation not allowed in %q", ErrMoneyFormat, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
	}
	return newMoneyChecked(d)
}

// NewMoneyFromInt builds a Money from a whole number of units.
func NewMoneyFromInt(v int64) (Money, error) {
	return newMoneyChecked(decimal.NewFromInt(v))
}

// MoneyFromDecimal wraps an already-validated decimal, such as one scanned
// from a NUMERIC(20,8) column. The schema enforces scale and range, so no
// checks are repeated here.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

func newMoneyChecked(d decimal.Decimal) (Money, error) {
	if d.Exponent() < -MoneyScale {
		return Money{}, fmt.Errorf("%w: %s", ErrMoneyPrecision, d.String())
	}
	if d.Abs().Cmp(moneyMax) >= 0 {
		return Money{}, fmt.Errorf("%w: %s", ErrMoneyOverflow, d.String())
	}
	return Money{d: d}, nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Add returns m + other, failing on overflow.
func (m Money) Add(other Money) (Money, error) {
	return newMoneyChecked(m.d.Add(other.d))
}

// Sub returns m - other, failing on overflow.
func (m Money) Sub(other Money) (Money, error) {
	return newMoneyChecked(m.d.Sub(other.d))
}

// Neg returns -m. Negation never overflows the symmetric NUMERIC range.
func (m Money) Neg() Money {
	return Money{d: m.d.Neg()}
}

// Cmp compares m against other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

// Equal reports whether the two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

// GreaterThanOrEqual reports m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.d.Cmp(other.d) >= 0
}

// IsNegative reports m < 0.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// IsZero reports m == 0.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsPositive reports m > 0.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// String formats the amount with exactly 8 fractional digits.
func (m Money) String() string {
	return m.d.StringFixed(MoneyScale)
}

// MarshalJSON emits the canonical string form.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrMoneyFormat, data)
		}
	}
	parsed, err := NewMoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer so Money binds as a NUMERIC parameter.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner for NUMERIC(20,8) columns.
func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return errors.New("cannot scan NULL into Money")
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMoneyFormat, v)
		}
		m.d = d
		return nil
	case []byte:
		return m.Scan(string(v))
	case int64:
		m.d = decimal.NewFromInt(v)
		return nil
	case float64:
		// Lossy source; only reachable with a misconfigured column type.
		m.d = decimal.NewFromFloat(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
}
