// Package grid composes and validates the fixed 40x24 teletext character grid.
package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Grid geometry
const (
	Width      = 40
	Height     = 24
	HeaderRows = 2
	FooterRows = 2

	// ContentRows is what remains for page content once header and footer are placed
	ContentRows = Height - HeaderRows - FooterRows
)

// ErrLayoutInvariant is returned by Check for grids that are not exactly Height x Width
var ErrLayoutInvariant = errors.New("layout invariant violated")

// Alignment controls how content rows are laid out horizontally
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center" or "justify"
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Len returns the display length of s in characters
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to at most w characters
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Len(s) <= w {
		return s
	}
	r := []rune(s)
	return string(r[:w])
}

// PadRight pads s with spaces up to w characters. Longer strings are returned as is.
func PadRight(s string, w int) string {
	if n := Len(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// PadLeft right-justifies s in a field of w characters
func PadLeft(s string, w int) string {
	if n := Len(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

// Fit truncates then pads s to exactly w characters
func Fit(s string, w int) string {
	return PadRight(Truncate(s, w), w)
}

// CenterText centers s in w characters. An odd remainder goes to the right.
// Text at least w long is truncated, never centered.
func CenterText(s string, w int) string {
	n := Len(s)
	if n >= w {
		return Truncate(s, w)
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}

// JustifyText spreads the words of s across w characters. Extra spaces go to
// the leftmost gaps. A single word, or text that doesn't fit, is left aligned.
func JustifyText(s string, w int) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return Fit(strings.TrimSpace(s), w)
	}

	letters := 0
	for _, word := range words {
		letters += Len(word)
	}
	gaps := len(words) - 1
	spaces := w - letters
	if spaces < gaps {
		return Fit(s, w)
	}

	base, extra := spaces/gaps, spaces%gaps
	var b strings.Builder
	for i, word := range words {
		b.WriteString(word)
		if i == gaps {
			break
		}
		n := base
		if i < extra {
			n++
		}
		b.WriteString(strings.Repeat(" ", n))
	}
	return b.String()
}

// Align lays out one row at width w
func Align(s string, w int, a Alignment) string {
	switch a {
	case AlignCenter:
		return CenterText(strings.TrimSpace(s), w)
	case AlignJustify:
		return JustifyText(s, w)
	default:
		return Fit(s, w)
	}
}

// OptimizeSpacing returns exactly maxRows rows of exactly Width characters.
// Rows beyond maxRows are dropped; content producers paginate first.
func OptimizeSpacing(rows []string, maxRows int, a Alignment) []string {
	if maxRows <= 0 {
		return []string{}
	}
	out := make([]string, 0, maxRows)
	for i := 0; i < len(rows) && i < maxRows; i++ {
		out = append(out, Align(rows[i], Width, a))
	}
	for len(out) < maxRows {
		out = append(out, Blank())
	}
	return out
}

// Validate reports whether rows form a Height x Width grid. It never corrects.
func Validate(rows []string) bool {
	return Check(rows) == nil
}

// Check is Validate with a description of the first violation
func Check(rows []string) error {
	if len(rows) != Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrLayoutInvariant, len(rows), Height)
	}
	for i, row := range rows {
		if n := Len(row); n != Width {
			return fmt.Errorf("%w: row %d is %d characters, want %d", ErrLayoutInvariant, i, n, Width)
		}
	}
	return nil
}

// Normalize pads or truncates rows to exactly Height x Width
func Normalize(rows []string) []string {
	out := make([]string, Height)
	for i := range out {
		if i < len(rows) {
			out[i] = Fit(rows[i], Width)
		} else {
			out[i] = Blank()
		}
	}
	return out
}

// Rule returns a full-width line of r
func Rule(r rune) string {
	return strings.Repeat(string(r), Width)
}

// Blank returns an empty full-width row
func Blank() string {
	return strings.Repeat(" ", Width)
}
