package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/rop/either"
)

type Alignment int

const (
	Left Alignment = iota
	// CenterLeft centers and puts an odd leftover cell on the left.
	CenterLeft
	// CenterRight centers and puts an odd leftover cell on the right.
	CenterRight
	Right
)

var alignmentNames = map[Alignment]string{
	Left:        "left",
	CenterLeft:  "center-left",
	CenterRight: "center-right",
	Right:       "right",
}

func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "unknown"
}

func Alignments() []string {
	return []string{Left.String(), CenterLeft.String(), CenterRight.String(), Right.String()}
}

// ParseAlignment accepts the names returned by Alignments, case-insensitively.
func ParseAlignment(s string) rop.RwVE[Alignment, UnexpectedNames] {
	name := strings.ToLower(strings.TrimSpace(s))
	return either.FromError(ExpectNames([]string{name}, Alignments()...), func() Alignment {
		for a, n := range alignmentNames {
			if n == name {
				return a
			}
		}
		return Left
	})
}

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}

// Align pads s with pad up to width cells. Strings already at least width
// cells wide are returned unchanged.
func Align(s string, width int, alignment Alignment, pad rune) string {
	s = norm.NFC.String(s)
	padWidth := max(1, runewidth.RuneWidth(pad))
	missing := (width - runewidth.StringWidth(s)) / padWidth
	if missing <= 0 {
		return s
	}

	var left int
	switch alignment {
	case Right:
		left = missing
	case CenterLeft:
		left = missing - missing/2
	case CenterRight:
		left = missing / 2
	}

	padding := string(pad)
	return strings.Repeat(padding, left) + s + strings.Repeat(padding, missing-left)
}
