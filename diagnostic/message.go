// Package diagnostic turns resolution failures into caller-facing messages.
package diagnostic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shibukawa/vecloc/location"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BulletKind selects the marker of a bullet line.
type BulletKind int

const (
	BulletCross BulletKind = iota
	BulletInfo
)

func (k BulletKind) marker() string {
	if k == BulletInfo {
		return "ℹ"
	}

	return "✖"
}

// Bullet is one detail line under a headline.
type Bullet struct {
	Kind BulletKind
	Text string
}

// Message is a rendered diagnostic.
type Message struct {
	Label    string
	Headline string
	Bullets  []Bullet
}

// String renders the message without color.
func (m Message) String() string {
	var sb strings.Builder

	if m.Label != "" {
		fmt.Fprintf(&sb, "Error (%s): %s", m.Label, m.Headline)
	} else {
		fmt.Fprintf(&sb, "Error: %s", m.Headline)
	}

	for _, b := range m.Bullets {
		fmt.Fprintf(&sb, "\n%s %s", b.Kind.marker(), b.Text)
	}

	return sb.String()
}

// Label returns the human label of a reason, e.g. "Out Of Bounds".
func Label(r location.Reason) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(r.String(), "_", " "))
}

const invalidSubscript = "Must subset elements with a valid subscript vector."

// Render builds the message for err. Errors that are not resolution
// failures render as their text.
func Render(err error) Message {
	e, ok := location.AsError(err)
	if !ok {
		return Message{Headline: err.Error()}
	}

	msg := Message{Label: Label(e.Reason)}

	switch e.Reason {
	case location.ReasonOutOfBounds:
		return outOfBounds(msg, e.Subscript, e.Size, e.Position)
	case location.ReasonNameNotFound:
		return nameNotFound(msg, e.Subscript, e.Names)
	case location.ReasonMixedSign:
		msg.Headline = invalidSubscript
		if e.HasMissing() {
			msg.Bullets = append(msg.Bullets, Bullet{BulletCross, "Negative locations can't have missing values."})
			msg.Bullets = append(msg.Bullets, Bullet{BulletInfo, fmt.Sprintf("Subscript has a missing value at location %d.", e.Position+1)})
		} else {
			msg.Bullets = append(msg.Bullets, Bullet{BulletCross, "Negative and positive locations can't be mixed."})
			msg.Bullets = append(msg.Bullets, Bullet{BulletInfo, fmt.Sprintf("Subscript has a positive value at location %d.", e.Position+1)})
		}
	case location.ReasonNegativeIndex:
		msg.Headline = invalidSubscript
		msg.Bullets = append(msg.Bullets, Bullet{BulletCross, "Subscript can't contain negative locations."})
		msg.Bullets = append(msg.Bullets, Bullet{BulletInfo, fmt.Sprintf("Subscript has a negative value at location %d.", e.Position+1)})
	case location.ReasonLength:
		msg.Headline = invalidSubscript
		msg.Bullets = append(msg.Bullets, Bullet{BulletInfo, "Logical subscripts must match the size of the indexed input."})
		msg.Bullets = append(msg.Bullets, Bullet{BulletCross, fmt.Sprintf("Input has size %d but subscript has size %d.", e.Size, e.Subscript.Len())})
	case location.ReasonShape:
		msg.Headline = invalidSubscript
		if d := e.Subscript.Dims(); d != 1 {
			msg.Bullets = append(msg.Bullets, Bullet{BulletCross, fmt.Sprintf("Subscript must be a simple vector, not one with %d dimensions.", d)})
		} else {
			msg.Bullets = append(msg.Bullets, Bullet{BulletCross, capitalize(e.Detail) + "."})
		}
	case location.ReasonType:
		msg.Headline = invalidSubscript
		msg.Bullets = append(msg.Bullets, Bullet{BulletCross, capitalize(e.Detail) + "."})
	case location.ReasonUnnamedContainer:
		msg.Headline = "Can't use character names to index an unnamed vector."
	default:
		msg.Headline = e.Error()
	}

	return msg
}

func outOfBounds(msg Message, subscript location.Vector, size, position int) Message {
	values := integerValues(subscript)

	// The failing element decides whether the subscript was being inverted.
	negate := false
	if position >= 0 && position < len(values) {
		negate = values[position] < 0
	} else {
		for _, v := range values {
			if v < 0 && v != location.NAInteger {
				negate = true
				break
			}
		}
	}

	var missing []string

	for _, v := range values {
		if v == location.NAInteger || (v < 0) != negate {
			continue
		}

		if v < 0 {
			v = -v
		}

		if v > size {
			missing = append(missing, strconv.Itoa(v))
		}
	}

	verb := "subset"
	if negate {
		verb = "negate"
	}

	msg.Headline = fmt.Sprintf("Can't %s elements that don't exist.", verb)

	if len(missing) > 0 {
		if len(missing) == 1 {
			msg.Bullets = append(msg.Bullets, Bullet{BulletCross, fmt.Sprintf("Location %s doesn't exist.", missing[0])})
		} else {
			msg.Bullets = append(msg.Bullets, Bullet{BulletCross, fmt.Sprintf("Locations %s don't exist.", enumerate(missing))})
		}
	}

	msg.Bullets = append(msg.Bullets, Bullet{BulletInfo, sizeSentence(size)})

	return msg
}

func nameNotFound(msg Message, subscript, names location.Vector) Message {
	msg.Headline = "Can't subset elements that don't exist."

	known := map[string]bool{}
	if chr, ok := names.(*location.Character); ok {
		for _, s := range chr.Values {
			if s.Valid {
				known[s.Value] = true
			}
		}
	}

	var missing []string

	if chr, ok := subscript.(*location.Character); ok {
		for _, s := range chr.Values {
			if s.Valid && !known[s.Value] {
				missing = append(missing, "`"+s.Value+"`")
			}
		}
	}

	switch len(missing) {
	case 0:
	case 1:
		msg.Bullets = append(msg.Bullets, Bullet{BulletCross, fmt.Sprintf("Element %s doesn't exist.", missing[0])})
	default:
		msg.Bullets = append(msg.Bullets, Bullet{BulletCross, fmt.Sprintf("Elements %s don't exist.", enumerate(missing))})
	}

	return msg
}

// integerValues reads the positions of an integer or integral double subscript.
func integerValues(v location.Vector) []int {
	switch x := v.(type) {
	case *location.Integer:
		return x.Values
	case *location.Double:
		out := make([]int, len(x.Values))
		for i, f := range x.Values {
			if math.IsNaN(f) {
				out[i] = location.NAInteger
			} else {
				out[i] = int(f)
			}
		}

		return out
	default:
		return nil
	}
}

func sizeSentence(size int) string {
	switch size {
	case 0:
		return "There are no elements."
	case 1:
		return "There is only 1 element."
	default:
		return fmt.Sprintf("There are only %d elements.", size)
	}
}

// enumerate joins items as "a, b and c". Long lists are cut short.
func enumerate(items []string) string {
	const limit = 5

	if len(items) > limit {
		return strings.Join(items[:limit], ", ") + fmt.Sprintf(" and %d more", len(items)-limit)
	}

	if len(items) == 1 {
		return items[0]
	}

	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
