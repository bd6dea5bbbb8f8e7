// Package poem renders templated verse from analyzed prompt elements.
// Templates are grouped by style and tone bucket; rendering is pure string
// substitution and never fails.
package poem

import (
	"strings"

	"github.com/amoraverse/amoraverse/internal/analyzer"
)

// DefaultStyle is used when a requested style has no template table.
const DefaultStyle = "free-verse"

// Engine selects and fills poem templates.
type Engine struct {
	rand analyzer.Rand
}

// New creates an Engine drawing template and filler picks from r.
func New(r analyzer.Rand) *Engine {
	return &Engine{rand: r}
}

// Styles returns the styles with template tables, free-verse first.
func Styles() []string {
	styles := []string{DefaultStyle}
	for s := range templates {
		if s != DefaultStyle {
			styles = append(styles, s)
		}
	}
	return styles
}

// ToneLabels returns the tone bucket labels in slider order.
func ToneLabels() []string {
	return append([]string(nil), toneLabels...)
}

// ToneBucket maps a 0-100 slider value to a tone label. The index formula
// is floor(tone/100 * (N-1)), which makes the last bucket reachable only
// at exactly 100. That skew is intentional here: vault entries and tests
// depend on the historical bucket boundaries.
func ToneBucket(tone int) string {
	if tone < 0 {
		tone = 0
	}
	if tone > 100 {
		tone = 100
	}
	idx := tone * (len(toneLabels) - 1) / 100
	return toneLabels[idx]
}

// Render fills a template for the given style and tone slider value with
// the analyzed prompt elements. It always returns a complete poem with no
// unresolved placeholders.
func (e *Engine) Render(style string, tone int, a analyzer.Analysis) string {
	candidates := candidatesFor(style, ToneBucket(tone))
	tmpl := candidates[e.rand.Intn(len(candidates))]
	return substitute(tmpl, a)
}

// candidatesFor picks the template list for a (style, bucket) pair.
// Styles whose table holds a single bucket (shayari, ghazal, cute) always
// use that bucket, whatever the slider says; everything else falls back
// to free-verse for the bucket, and finally to free-verse/tender.
func candidatesFor(style, bucket string) []string {
	if table, ok := templates[style]; ok {
		if list, ok := table[bucket]; ok {
			return list
		}
		if len(table) == 1 {
			for _, list := range table {
				return list
			}
		}
	}
	if list, ok := templates[DefaultStyle][bucket]; ok {
		return list
	}
	return templates[DefaultStyle]["tender"]
}

func substitute(tmpl string, a analyzer.Analysis) string {
	r := strings.NewReplacer(
		"{emotion}", a.Emotion,
		"{setting}", a.Setting,
		"{detail}", a.Detail,
		"{feeling}", a.Feeling,
		"{metaphor}", a.Metaphor,
	)
	return r.Replace(tmpl)
}
