package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is the single currency all dollar columns are expressed in.
const Currency = money.USD

var printer = message.NewPrinter(language.English)

// FormatCurrency renders v as "$1,234.56".
func FormatCurrency(v float64) string {
	cents := decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
	return money.New(cents, Currency).Display()
}

// FormatPercent renders a fraction as a percentage with two decimals
// (0.025 -> "2.50%").
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}

// FormatNumber renders v with thousands separators and at most two decimals.
func FormatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Format renders a cell of this column. Absent values render blank; values
// that cannot be read as numbers in a numeric column render literally.
func (c Column) Format(v any) string {
	return FormatValue(c.Kind, v)
}

// FormatValue renders v according to kind.
func FormatValue(kind Kind, v any) string {
	if v == nil {
		return ""
	}
	if kind == KindText {
		return literal(v)
	}
	f, ok := ToFloat(v)
	if !ok {
		return literal(v)
	}
	switch kind {
	case KindCurrency:
		return FormatCurrency(f)
	case KindPercentage:
		return FormatPercent(f)
	default:
		return FormatNumber(f)
	}
}

// ToFloat reads numeric values from the types database drivers and JSON
// decoding produce.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case []byte:
		return parseNumeric(string(x))
	case string:
		return parseNumeric(x)
	}
	return 0, false
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func literal(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case bool:
		if x {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}

// FormatColumn renders v for the column named key. Columns outside the
// schema, such as aggregates, render numbers with grouping and everything
// else literally. Text that is a plain decimal, as drivers return NUMERIC
// values, counts as a number.
func FormatColumn(key string, v any) string {
	if c, ok := Lookup(key); ok {
		return c.Format(v)
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		if f, ok := decimalText(x); ok {
			return FormatNumber(f)
		}
		return x
	case []byte:
		if f, ok := decimalText(string(x)); ok {
			return FormatNumber(f)
		}
		return string(x)
	}
	return FormatValue(KindNumber, v)
}

// decimalText parses s only when it is a plain decimal literal.
func decimalText(s string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}
