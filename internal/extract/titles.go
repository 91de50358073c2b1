// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pyhub-apps/pdfplumber-golang/pkg/pdf"
)

// TitleMatch is a text fragment matching the title pattern, paired with the
// top coordinate of the line it sits on (page-local, increasing downward).
type TitleMatch struct {
	Text string
	Top  float64
}

const (
	// lineTolerance groups characters whose tops differ by at most this
	// many points onto the same text line.
	lineTolerance = 2.0

	// wordGap is the horizontal distance between adjacent characters that
	// reads as a word break when the text layer carries no space glyph.
	wordGap = 1.5
)

// FindTitles reassembles the page's positioned characters into text lines
// and applies pattern to each line, returning every match with its vertical
// position in reading order. A page without matches yields an empty result,
// not an error.
func FindTitles(page Page, pattern *regexp.Regexp) []TitleMatch {
	var matches []TitleMatch
	for _, ln := range assembleLines(page.GetObjects().Chars) {
		for _, m := range pattern.FindAllString(ln.text, -1) {
			matches = append(matches, TitleMatch{Text: m, Top: ln.top})
		}
	}
	return matches
}

// textLine is one reassembled line of page text.
type textLine struct {
	top  float64
	text string
}

// assembleLines sorts characters top-to-bottom and splits them into lines
// wherever the vertical distance exceeds lineTolerance.
func assembleLines(chars []pdf.CharObject) []textLine {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]pdf.CharObject, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y0 < sorted[j].Y0
	})

	var lines []textLine
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].Y0-sorted[start].Y0 <= lineTolerance {
			continue
		}
		lines = append(lines, buildLine(sorted[start:i]))
		start = i
	}
	return lines
}

// buildLine orders one line's characters left-to-right and joins their text,
// inserting a space where the horizontal gap suggests a word break.
func buildLine(chars []pdf.CharObject) textLine {
	ordered := make([]pdf.CharObject, len(chars))
	copy(ordered, chars)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].X0 < ordered[j].X0
	})

	var b strings.Builder
	top := ordered[0].Y0
	for i, c := range ordered {
		if c.Y0 < top {
			top = c.Y0
		}
		if i > 0 && c.X0-ordered[i-1].X1 > wordGap {
			b.WriteByte(' ')
		}
		b.WriteString(c.Text)
	}
	return textLine{top: top, text: strings.TrimSpace(b.String())}
}
