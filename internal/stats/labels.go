package stats

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Labels contient les libellés du rapport. Chaque libellé est un gabarit
// printf dont les %s reçoivent des nombres déjà formatés ; seuls %s et %%
// sont acceptés (voir checkPlaceholders).
type Labels struct {
	NothingFound string `yaml:"nothing_found"`

	NumberOfLines         string `yaml:"number_of_lines"`
	LengthInFormat        string `yaml:"length_in_format"`
	CharactersInTextOnly  string `yaml:"characters_in_text_only"`
	TotalDuration         string `yaml:"total_duration"`
	TotalCharsPerSecond   string `yaml:"total_chars_per_second"`
	TotalWords            string `yaml:"total_words"`
	NumberOfItalicTags    string `yaml:"italic_tags"`
	NumberOfBoldTags      string `yaml:"bold_tags"`
	NumberOfUnderlineTags string `yaml:"underline_tags"`
	NumberOfFontTags      string `yaml:"font_tags"`
	NumberOfAlignmentTags string `yaml:"alignment_tags"`
	DetectedLanguage      string `yaml:"detected_language"`

	LineLengthMinimum       string `yaml:"line_length_min"`
	LineLengthMaximum       string `yaml:"line_length_max"`
	LineLengthAverage       string `yaml:"line_length_avg"`
	LinesPerSubtitleAverage string `yaml:"lines_per_subtitle_avg"`

	SingleLineLengthMinimum string `yaml:"single_line_length_min"`
	SingleLineLengthMaximum string `yaml:"single_line_length_max"`
	SingleLineLengthAverage string `yaml:"single_line_length_avg"`

	SingleLineWidthMinimum string `yaml:"single_line_width_min"`
	SingleLineWidthMaximum string `yaml:"single_line_width_max"`
	SingleLineWidthAverage string `yaml:"single_line_width_avg"`

	DurationMinimum string `yaml:"duration_min"`
	DurationMaximum string `yaml:"duration_max"`
	DurationAverage string `yaml:"duration_avg"`

	CharactersPerSecondMinimum string `yaml:"cps_min"`
	CharactersPerSecondMaximum string `yaml:"cps_max"`
	CharactersPerSecondAverage string `yaml:"cps_avg"`
}

// DefaultLabels : libellés anglais, aussi utilisés pour combler les clés absentes.
func DefaultLabels() Labels {
	return Labels{
		NothingFound: "Nothing found",

		NumberOfLines:         "Number of subtitle lines: %s",
		LengthInFormat:        "Number of characters as %s: %s",
		CharactersInTextOnly:  "Number of characters in text only: %s",
		TotalDuration:         "Total duration of all subtitles: %s",
		TotalCharsPerSecond:   "Total characters/second: %s",
		TotalWords:            "Total words in subtitle: %s",
		NumberOfItalicTags:    "Number of italic tags: %s",
		NumberOfBoldTags:      "Number of bold tags: %s",
		NumberOfUnderlineTags: "Number of underline tags: %s",
		NumberOfFontTags:      "Number of font tags: %s",
		NumberOfAlignmentTags: "Number of alignment tags: %s",
		DetectedLanguage:      "Detected language: %s (confidence %s)",

		LineLengthMinimum:       "Subtitle length - minimum: %s",
		LineLengthMaximum:       "Subtitle length - maximum: %s",
		LineLengthAverage:       "Subtitle length - average: %s",
		LinesPerSubtitleAverage: "Subtitle, number of lines - average: %s",

		SingleLineLengthMinimum: "Single line length - minimum: %s",
		SingleLineLengthMaximum: "Single line length - maximum: %s",
		SingleLineLengthAverage: "Single line length - average: %s",

		SingleLineWidthMinimum: "Single line width - minimum: %s pixels",
		SingleLineWidthMaximum: "Single line width - maximum: %s pixels",
		SingleLineWidthAverage: "Single line width - average: %s pixels",

		DurationMinimum: "Duration - minimum: %s seconds",
		DurationMaximum: "Duration - maximum: %s seconds",
		DurationAverage: "Duration - average: %s seconds",

		CharactersPerSecondMinimum: "Characters/sec - minimum: %s",
		CharactersPerSecondMaximum: "Characters/sec - maximum: %s",
		CharactersPerSecondAverage: "Characters/sec - average: %s",
	}
}

// ParseLabels lit un pack YAML ; les clés absentes gardent la valeur anglaise.
func ParseLabels(data []byte) (Labels, error) {
	l := DefaultLabels()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return DefaultLabels(), fmt.Errorf("parse labels: %w", err)
	}
	l.fillEmpty()
	if err := l.checkPlaceholders(); err != nil {
		return DefaultLabels(), fmt.Errorf("parse labels: %w", err)
	}
	return l, nil
}

// LoadLabels charge un pack de libellés :
//   - "" ou "en" : anglais par défaut ;
//   - un code (ex "fr") : fichier lang/<code>.yaml de fsys ;
//   - sinon un chemin vers un fichier YAML sur disque.
func LoadLabels(fsys fs.FS, lang string) (Labels, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLabels(), nil
	}

	if fsys != nil && !strings.ContainsAny(lang, `/\.`) {
		data, err := fs.ReadFile(fsys, path.Join("lang", strings.ToLower(lang)+".yaml"))
		if err == nil {
			return ParseLabels(data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return DefaultLabels(), fmt.Errorf("read labels %q: %w", lang, err)
		}
		if strings.EqualFold(lang, "en") {
			return DefaultLabels(), nil
		}
		return DefaultLabels(), fmt.Errorf("pack de langue inconnu: %q", lang)
	}

	data, err := os.ReadFile(lang)
	if err != nil {
		return DefaultLabels(), fmt.Errorf("read labels %q: %w", lang, err)
	}
	return ParseLabels(data)
}

type labelField struct {
	key   string
	value *string
}

// fields liste les libellés dans un ordre fixe, avec leur clé YAML.
func (l *Labels) fields() []labelField {
	return []labelField{
		{"nothing_found", &l.NothingFound},
		{"number_of_lines", &l.NumberOfLines},
		{"length_in_format", &l.LengthInFormat},
		{"characters_in_text_only", &l.CharactersInTextOnly},
		{"total_duration", &l.TotalDuration},
		{"total_chars_per_second", &l.TotalCharsPerSecond},
		{"total_words", &l.TotalWords},
		{"italic_tags", &l.NumberOfItalicTags},
		{"bold_tags", &l.NumberOfBoldTags},
		{"underline_tags", &l.NumberOfUnderlineTags},
		{"font_tags", &l.NumberOfFontTags},
		{"alignment_tags", &l.NumberOfAlignmentTags},
		{"detected_language", &l.DetectedLanguage},
		{"line_length_min", &l.LineLengthMinimum},
		{"line_length_max", &l.LineLengthMaximum},
		{"line_length_avg", &l.LineLengthAverage},
		{"lines_per_subtitle_avg", &l.LinesPerSubtitleAverage},
		{"single_line_length_min", &l.SingleLineLengthMinimum},
		{"single_line_length_max", &l.SingleLineLengthMaximum},
		{"single_line_length_avg", &l.SingleLineLengthAverage},
		{"single_line_width_min", &l.SingleLineWidthMinimum},
		{"single_line_width_max", &l.SingleLineWidthMaximum},
		{"single_line_width_avg", &l.SingleLineWidthAverage},
		{"duration_min", &l.DurationMinimum},
		{"duration_max", &l.DurationMaximum},
		{"duration_avg", &l.DurationAverage},
		{"cps_min", &l.CharactersPerSecondMinimum},
		{"cps_max", &l.CharactersPerSecondMaximum},
		{"cps_avg", &l.CharactersPerSecondAverage},
	}
}

// fillEmpty remet le libellé anglais pour toute clé vidée dans le YAML ("key: ").
func (l *Labels) fillEmpty() {
	def := DefaultLabels()
	defFields := def.fields()
	for i, f := range l.fields() {
		if strings.TrimSpace(*f.value) == "" {
			*f.value = *defFields[i].value
		}
	}
}

// checkPlaceholders : chaque gabarit n'accepte que des %s, en même nombre que
// le libellé anglais ("%%" pour un signe pourcent). nothing_found n'est pas un gabarit.
func (l *Labels) checkPlaceholders() error {
	def := DefaultLabels()
	defFields := def.fields()
	var errs []error
	for i, f := range l.fields() {
		if f.key == "nothing_found" {
			continue
		}
		got, ok := countStringVerbs(*f.value)
		want, _ := countStringVerbs(*defFields[i].value)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%s : seul %%s est accepté (%q)", f.key, *f.value))
		case got != want:
			errs = append(errs, fmt.Errorf("%s : %d %%s attendu(s), %d trouvé(s)", f.key, want, got))
		}
	}
	return errors.Join(errs...)
}

// countStringVerbs compte les %s de tmpl ; false si un autre verbe apparaît.
func countStringVerbs(tmpl string) (int, bool) {
	n := 0
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 >= len(tmpl) {
			return n, false
		}
		switch tmpl[i+1] {
		case '%':
		case 's':
			n++
		default:
			return n, false
		}
		i++
	}
	return n, true
}
