package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/patrickprogramme/substats/internal/subtitles"
	"github.com/patrickprogramme/substats/pkg/model"
)

// Range : minimum, maximum et moyenne d'une métrique, avec les répliques
// qui atteignent chaque extremum.
type Range[T int | float64] struct {
	Min     T
	Max     T
	Average T
	MinAt   Indices
	MaxAt   Indices
}

// Metrics : valeurs structurées du bloc général.
type Metrics struct {
	Entries        int
	FormatName     string
	FormatLength   int
	TextCharacters int
	TotalDuration  time.Duration
	TotalCPS       float64
	TotalWords     int

	ItalicTags    int
	BoldTags      int
	UnderlineTags int
	FontTags      int
	AlignmentTags int

	Language *Language

	LineLength       Range[int]
	LinesPerEntry    float64
	SingleLineLength Range[int]
	SingleLineWidth  *Range[int]    // nil si les largeurs sont désactivées
	Duration         Range[float64] // secondes
	CPS              Range[float64]
}

// valeurs calculées une fois par réplique, réutilisées pour les index
type entryValues struct {
	length      int
	durationMs  float64
	cps         float64
	lineLengths []int
	lineWidths  []int
}

func measureEntries(entries []subtitles.Entry, strategy Strategy, wm WidthMeasurer) []entryValues {
	out := make([]entryValues, len(entries))
	for i, e := range entries {
		v := entryValues{
			length:     CountCharacters(removeLineBreaks(e.Text), strategy),
			durationMs: float64(e.Duration().Milliseconds()),
			cps:        CharactersPerSecond(e, strategy),
		}
		for _, line := range e.Lines() {
			v.lineLengths = append(v.lineLengths, CountCharacters(line, strategy))
			if wm != nil {
				v.lineWidths = append(v.lineWidths, singleLineWidth(wm, line))
			}
		}
		out[i] = v
	}
	return out
}

// computeMetrics : passe unique sur les répliques. doc doit être non vide.
func computeMetrics(doc *subtitles.Document, opts Options, totalWords int) Metrics {
	entries := doc.Entries
	values := measureEntries(entries, opts.Strategy, opts.Width)
	n := len(entries)

	m := Metrics{Entries: n, TotalWords: totalWords}

	minLen, maxLen, sumLen := 99999999, 0, 0
	minSingle, maxSingle, sumSingle := 99999999, 0, 0
	minWidth, maxWidth, sumWidth := 99999999, 0, 0
	minDur, maxDur, sumDur := 100000000.0, 0.0, 0.0
	minCPS, maxCPS, sumCPS := 100000000.0, 0.0, 0.0
	singleLines := 0

	var all strings.Builder
	for _, v := range values {
		minLen = min(minLen, v.length)
		maxLen = max(maxLen, v.length)
		sumLen += v.length

		minDur = min(minDur, v.durationMs)
		maxDur = max(maxDur, v.durationMs)
		sumDur += v.durationMs

		minCPS = min(minCPS, v.cps)
		maxCPS = max(maxCPS, v.cps)
		sumCPS += v.cps

		for k, l := range v.lineLengths {
			minSingle = min(minSingle, l)
			maxSingle = max(maxSingle, l)
			sumSingle += l
			if opts.Width != nil {
				w := v.lineWidths[k]
				minWidth = min(minWidth, w)
				maxWidth = max(maxWidth, w)
				sumWidth += w
			}
			singleLines++
		}
	}
	for _, e := range entries {
		all.WriteString(e.Text)
	}
	allText := all.String()
	lower := strings.ToLower(allText)

	format := opts.Format
	if format == "" {
		format = doc.Format
	}
	if format == "" {
		format = model.FormatSRT
	}
	m.FormatName = format.FriendlyName()
	if src, err := doc.ToText(format); err == nil {
		m.FormatLength = utf8.RuneCountInString(src)
	}

	m.TextCharacters = CountCharacters(allText, opts.Strategy)
	m.TotalDuration = time.Duration(sumDur) * time.Millisecond
	if sumDur > 0 {
		m.TotalCPS = float64(m.TextCharacters) / (sumDur / 1000)
	}
	m.ItalicTags = CountTag(lower, "<i>")
	m.BoldTags = CountTag(lower, "<b>")
	m.UnderlineTags = CountTag(lower, "<u>")
	m.FontTags = CountTag(lower, "<font ")
	m.AlignmentTags = CountTag(lower, `{\an`)

	if opts.DetectLanguage {
		if lang, ok := DetectLanguage(entries); ok {
			m.Language = &lang
		}
	}

	m.LineLength = Range[int]{
		Min:     minLen,
		Max:     maxLen,
		Average: sumLen / n,
		MinAt:   collectIndices(n, func(i int) bool { return values[i].length == minLen }),
		MaxAt:   collectIndices(n, func(i int) bool { return values[i].length == maxLen }),
	}
	m.LinesPerEntry = float64(singleLines) / float64(n)

	m.SingleLineLength = Range[int]{
		Min:     minSingle,
		Max:     maxSingle,
		Average: sumSingle / singleLines,
		MinAt:   collectIndices(n, func(i int) bool { return anyEqual(values[i].lineLengths, minSingle) }),
		MaxAt:   collectIndices(n, func(i int) bool { return anyEqual(values[i].lineLengths, maxSingle) }),
	}

	if opts.Width != nil {
		m.SingleLineWidth = &Range[int]{
			Min:     minWidth,
			Max:     maxWidth,
			Average: sumWidth / singleLines,
			MinAt:   collectIndices(n, func(i int) bool { return anyEqual(values[i].lineWidths, minWidth) }),
			MaxAt:   collectIndices(n, func(i int) bool { return anyEqual(values[i].lineWidths, maxWidth) }),
		}
	}

	m.Duration = Range[float64]{
		Min:     minDur / 1000,
		Max:     maxDur / 1000,
		Average: sumDur / float64(n) / 1000,
		MinAt:   collectIndices(n, func(i int) bool { return nearlyEqual(values[i].durationMs, minDur) }),
		MaxAt:   collectIndices(n, func(i int) bool { return nearlyEqual(values[i].durationMs, maxDur) }),
	}
	m.CPS = Range[float64]{
		Min:     minCPS,
		Max:     maxCPS,
		Average: sumCPS / float64(n),
		MinAt:   collectIndices(n, func(i int) bool { return nearlyEqual(values[i].cps, minCPS) }),
		MaxAt:   collectIndices(n, func(i int) bool { return nearlyEqual(values[i].cps, maxCPS) }),
	}
	return m
}

// renderGeneral construit le bloc "General", sans espaces de début et de fin.
func renderGeneral(m Metrics, l Labels) string {
	var b strings.Builder
	line := func(tmpl string, args ...string) {
		b.WriteString(label(tmpl, args...))
		b.WriteString("\n")
	}
	extremum := func(tmpl, value string, ix Indices) {
		b.WriteString(label(tmpl, value))
		b.WriteString(" (")
		b.WriteString(ix.String())
		b.WriteString(")\n")
	}

	line(l.NumberOfLines, formatInt(m.Entries))
	line(l.LengthInFormat, m.FormatName, formatInt(m.FormatLength))
	line(l.CharactersInTextOnly, formatInt(m.TextCharacters))
	line(l.TotalDuration, model.TimeCodeFromDuration(m.TotalDuration).DisplayString())
	line(l.TotalCharsPerSecond, formatFloat(m.TotalCPS, 1))
	line(l.TotalWords, formatInt(m.TotalWords))
	line(l.NumberOfItalicTags, formatInt(m.ItalicTags))
	line(l.NumberOfBoldTags, formatInt(m.BoldTags))
	line(l.NumberOfUnderlineTags, formatInt(m.UnderlineTags))
	line(l.NumberOfFontTags, formatInt(m.FontTags))
	line(l.NumberOfAlignmentTags, formatInt(m.AlignmentTags))
	if m.Language != nil {
		line(l.DetectedLanguage, m.Language.Name, formatFloat(m.Language.Confidence, 2))
	}
	b.WriteString("\n")

	extremum(l.LineLengthMinimum, formatInt(m.LineLength.Min), m.LineLength.MinAt)
	extremum(l.LineLengthMaximum, formatInt(m.LineLength.Max), m.LineLength.MaxAt)
	line(l.LineLengthAverage, formatInt(m.LineLength.Average))
	line(l.LinesPerSubtitleAverage, formatFloat(m.LinesPerEntry, 1))
	b.WriteString("\n")

	extremum(l.SingleLineLengthMinimum, formatInt(m.SingleLineLength.Min), m.SingleLineLength.MinAt)
	extremum(l.SingleLineLengthMaximum, formatInt(m.SingleLineLength.Max), m.SingleLineLength.MaxAt)
	line(l.SingleLineLengthAverage, formatInt(m.SingleLineLength.Average))
	b.WriteString("\n")

	if w := m.SingleLineWidth; w != nil {
		extremum(l.SingleLineWidthMinimum, formatInt(w.Min), w.MinAt)
		extremum(l.SingleLineWidthMaximum, formatInt(w.Max), w.MaxAt)
		line(l.SingleLineWidthAverage, formatInt(w.Average))
		b.WriteString("\n")
	}

	extremum(l.DurationMinimum, formatFloat(m.Duration.Min, 3), m.Duration.MinAt)
	extremum(l.DurationMaximum, formatFloat(m.Duration.Max, 3), m.Duration.MaxAt)
	line(l.DurationAverage, formatFloat(m.Duration.Average, 3))
	b.WriteString("\n")

	extremum(l.CharactersPerSecondMinimum, formatFloat(m.CPS.Min, 3), m.CPS.MinAt)
	extremum(l.CharactersPerSecondMaximum, formatFloat(m.CPS.Max, 3), m.CPS.MaxAt)
	line(l.CharactersPerSecondAverage, formatFloat(m.CPS.Average, 3))

	return strings.TrimSpace(b.String())
}

func label(tmpl string, args ...string) string {
	a := make([]any, len(args))
	for i, s := range args {
		a[i] = s
	}
	return fmt.Sprintf(tmpl, a...)
}

func formatInt(n int) string {
	return humanize.Comma(int64(n))
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func removeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}
