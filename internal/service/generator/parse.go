package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

type field int

const (
	fieldNone field = iota
	fieldText
	fieldHindi
	fieldEnglish
	fieldSource
	fieldCategory
)

// labels maps folded keys (lowercase, no spaces, underscores, hyphens or
// parentheses) to fields. JSON keys and plain-text labels share the table.
var labels = map[string]field{
	"shlok":          fieldText,
	"shloka":         fieldText,
	"sloka":          fieldText,
	"verse":          fieldText,
	"sanskrit":       fieldText,
	"text":           fieldText,
	"meaninghindi":   fieldHindi,
	"hindimeaning":   fieldHindi,
	"hindi":          fieldHindi,
	"meaningenglish": fieldEnglish,
	"englishmeaning": fieldEnglish,
	"english":        fieldEnglish,
	"translation":    fieldEnglish,
	"source":         fieldSource,
	"reference":      fieldSource,
	"category":       fieldCategory,
	"theme":          fieldCategory,
}

var keyFolder = strings.NewReplacer(" ", "", "_", "", "-", "", "(", "", ")", "", "*", "", "#", "")

func foldKey(k string) string {
	return keyFolder.Replace(strings.ToLower(strings.TrimSpace(k)))
}

type parsed map[field]string

// Parse extracts a shlok from a completion. The first well-formed JSON object
// wins; otherwise "Label: value" lines are scanned. All four text fields must
// be present. An absent or unknown category leaves Category nil.
func Parse(text string) (domain.Shlok, error) {
	if p, ok := parseJSON(text); ok && len(p.missing()) == 0 {
		return p.shlok(), nil
	}

	p := parseLines(text)
	if missing := p.missing(); len(missing) > 0 {
		return domain.Shlok{}, fmt.Errorf("%w: missing %s", ErrParse, strings.Join(missing, ", "))
	}
	return p.shlok(), nil
}

// parseJSON decodes the first JSON object found anywhere in text.
func parseJSON(text string) (parsed, bool) {
	for i := strings.IndexByte(text, '{'); i >= 0; {
		var obj map[string]any
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&obj); err == nil {
			p := parsed{}
			for k, v := range obj {
				s, ok := v.(string)
				if !ok {
					continue
				}
				if f, known := labels[foldKey(k)]; known {
					p[f] = strings.TrimSpace(s)
				}
			}
			return p, true
		}
		next := strings.IndexByte(text[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, false
}

// parseLines reads "Label: value" lines. A line without a known label
// continues the previous field until a blank line.
func parseLines(text string) parsed {
	p := parsed{}
	current := fieldNone
	for _, raw := range strings.Split(text, "\n") {
		line := cleanLine(raw)
		if line == "" {
			current = fieldNone
			continue
		}

		if label, value, ok := strings.Cut(line, ":"); ok {
			if f, known := labels[foldKey(label)]; known {
				current = f
				p[f] = cleanValue(value)
				continue
			}
		}

		if current != fieldNone {
			if p[current] == "" {
				p[current] = line
			} else {
				p[current] += "\n" + line
			}
		}
	}
	return p
}

// cleanLine drops list bullets and surrounding whitespace.
func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	for _, bullet := range []string{"- ", "* ", "• "} {
		s = strings.TrimPrefix(s, bullet)
	}
	return strings.TrimSpace(s)
}

// cleanValue strips markdown emphasis left over after the label.
func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_")
	return strings.TrimSpace(s)
}

func (p parsed) missing() []string {
	var out []string
	for _, f := range []struct {
		f    field
		name string
	}{
		{fieldText, "shlok"},
		{fieldHindi, "meaning_hindi"},
		{fieldEnglish, "meaning_english"},
		{fieldSource, "source"},
	} {
		if strings.TrimSpace(p[f.f]) == "" {
			out = append(out, f.name)
		}
	}
	return out
}

func (p parsed) shlok() domain.Shlok {
	s := domain.Shlok{
		Text:           strings.TrimSpace(p[fieldText]),
		MeaningHindi:   strings.TrimSpace(p[fieldHindi]),
		MeaningEnglish: strings.TrimSpace(p[fieldEnglish]),
		Source:         strings.TrimSpace(p[fieldSource]),
	}
	if c, ok := domain.ParseCategory(p[fieldCategory]); ok {
		s.Category = &c
	}
	return s
}
