package extractor

import (
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// lineTolerance is the vertical movement, in PDF units, that starts a new
	// line. Fixed-width statement layouts keep rows well apart, so a small
	// tolerance suffices without true column detection.
	lineTolerance = 2.0

	// wordGapFactor scales the font size into the horizontal gap that splits
	// glyphs into separate runs.
	wordGapFactor = 0.3
)

// extractLayout is the fallback strategy: decode page by page, group the
// positioned glyphs into text runs, and flush runs into lines whenever the
// vertical position moves beyond the tolerance. Output line order follows
// page and drawing order, which matches reading order on statement layouts.
func extractLayout(data []byte, password string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode: %v", r)
		}
	}()

	r, err := open(data, password)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		writeLines(&b, buildRuns(page.Content().Text))
	}

	return b.String(), nil
}

// textRun is a horizontally contiguous piece of text at one vertical
// position. The pdf library reports individual glyphs; runs restore the
// word-level granularity the line assembly works with.
type textRun struct {
	y float64
	s string
}

// buildRuns merges consecutive glyphs into runs. A new run starts when the
// vertical position moves beyond the line tolerance or the horizontal gap to
// the previous glyph exceeds a fraction of the font size.
func buildRuns(texts []pdf.Text) []textRun {
	var runs []textRun

	var (
		cur  strings.Builder
		curY float64
		endX float64
		size float64
	)

	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, textRun{y: curY, s: cur.String()})
			cur.Reset()
		}
	}

	for i, t := range texts {
		if i > 0 && (math.Abs(t.Y-curY) > lineTolerance || t.X-endX > wordGap(size)) {
			flush()
		}

		if cur.Len() == 0 {
			curY = t.Y
		}

		cur.WriteString(t.S)
		endX = t.X + t.W
		size = t.FontSize
	}

	flush()

	return runs
}

func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.0
	}

	return fontSize * wordGapFactor
}

// writeLines accumulates runs into lines: a run whose vertical position moved
// beyond the tolerance flushes the current buffer as a trimmed line; runs on
// the same line are joined with a single space. The trailing buffer of each
// page is flushed too, so lines never span pages.
func writeLines(b *strings.Builder, runs []textRun) {
	var (
		line  string
		lastY float64
		first = true
	)

	flush := func() {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			b.WriteString(trimmed)
			b.WriteByte('\n')
		}
	}

	for _, run := range runs {
		if !first && math.Abs(run.y-lastY) > lineTolerance {
			flush()
			line = run.s
		} else if line != "" && run.s != "" {
			line += " " + run.s
		} else {
			line += run.s
		}

		lastY = run.y
		first = false
	}

	flush()
}
