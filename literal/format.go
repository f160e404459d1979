package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shibukawa/vecloc/location"
)

// Format renders a vector in literal syntax. Parse(Format(v)) yields an
// equivalent vector, except that empty and all-NA vectors come back logical.
func Format(v location.Vector) string {
	var (
		opening, closing = "[", "]"
		items            []string
	)

	switch x := v.(type) {
	case nil, *location.Absent:
		return "NULL"
	case *location.Integer:
		for _, e := range x.Values {
			if e == location.NAInteger {
				items = append(items, "NA")
			} else {
				items = append(items, strconv.Itoa(e))
			}
		}
	case *location.Double:
		for _, e := range x.Values {
			items = append(items, formatDouble(e))
		}
	case *location.Logical:
		for _, e := range x.Values {
			items = append(items, e.String())
		}
	case *location.Character:
		for _, e := range x.Values {
			if e.Valid {
				items = append(items, strconv.Quote(e.Value))
			} else {
				items = append(items, "NA")
			}
		}
	case *location.List:
		opening, closing = "{", "}"

		for _, e := range x.Values {
			items = append(items, formatAny(e))
		}
	}

	if names := v.ElementNames(); names != nil {
		for i := range items {
			if names[i] != "" {
				items[i] = formatName(names[i]) + " = " + items[i]
			}
		}
	}

	return opening + strings.Join(items, ", ") + closing
}

func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NA"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

func formatAny(v any) string {
	switch x := v.(type) {
	case nil:
		return "NA"
	case int:
		return strconv.Itoa(x)
	case float64:
		return formatDouble(x)
	case location.Bool:
		return x.String()
	case string:
		return strconv.Quote(x)
	default:
		return strconv.Quote(fmt.Sprint(x))
	}
}

func formatName(name string) string {
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return strconv.Quote(name)
	}

	switch name {
	case "NA", "TRUE", "FALSE", "NULL", "Inf", "NaN":
		return strconv.Quote(name)
	}

	return name
}
