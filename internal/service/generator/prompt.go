package generator

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/daily-shlok/internal/domain"
)

const systemStandard = `You are a Sanskrit scholar who curates one shlok a day for a general audience.
Choose authentic verses from classical texts and translate them faithfully.
Answer with a single JSON object and nothing else.`

const systemVariety = `You are a Sanskrit scholar who curates one shlok a day for readers who already know the famous verses.
Prefer lesser-known sources: Subhashitas, Puranas, Niti texts, minor Upanishads, Yoga Vasistha, Kavya.
Avoid the most quoted verses of the Bhagavad Gita. Translate faithfully.
Answer with a single JSON object and nothing else.`

// buildPrompt asks for a shlok on category, listing recent texts to avoid.
func buildPrompt(category domain.Category, avoid []string) string {
	var b strings.Builder

	if category != "" {
		fmt.Fprintf(&b, "Give one Sanskrit shlok on the theme of %s.\n\n", category)
	} else {
		b.WriteString("Give one Sanskrit shlok.\n\n")
	}

	b.WriteString(`Output ONLY a JSON object matching this schema:
{
  "shlok": "<the verse in Devanagari>",
  "meaning_hindi": "<meaning in Hindi>",
  "meaning_english": "<meaning in English>",
  "source": "<text and verse number, e.g. Bhagavad Gita 2.47>",
  "category": "<one of: `)
	cats := domain.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(`>"
}
`)

	if len(avoid) > 0 {
		b.WriteString("\nDo not repeat any of these recently published shloks:\n")
		for _, t := range avoid {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(t, "\n", " "))
		}
	}

	return b.String()
}
