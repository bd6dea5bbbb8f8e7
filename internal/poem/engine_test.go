package poem

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoraverse/amoraverse/internal/analyzer"
)

type fixedRand struct{ n int }

func (f fixedRand) Intn(int) int { return f.n }

var placeholders = []string{"{emotion}", "{setting}", "{detail}", "{feeling}", "{metaphor}"}

func testAnalysis() analyzer.Analysis {
	return analyzer.Analysis{
		Emotion:  "love",
		Setting:  "rain",
		Metaphor: "morning dew",
		Feeling:  "warmth",
		Detail:   "smile",
	}
}

func TestToneBucket(t *testing.T) {
	tests := []struct {
		tone  int
		label string
	}{
		{0, "nostalgic"},
		{24, "nostalgic"},
		{25, "tender"},
		{49, "tender"},
		{50, "playful"},
		{74, "playful"},
		{75, "passionate"},
		{99, "passionate"},
		{100, "devotional"},
		// Out-of-range values clamp instead of panicking.
		{-10, "nostalgic"},
		{250, "devotional"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, ToneBucket(tt.tone), "tone %d", tt.tone)
	}
}

func TestRender_NoUnresolvedPlaceholders(t *testing.T) {
	styles := append(Styles(), "haiku", "", "sonnet")
	r := rand.New(rand.NewSource(7))
	e := New(r)

	for _, style := range styles {
		for tone := 0; tone <= 100; tone += 5 {
			out := e.Render(style, tone, testAnalysis())
			require.NotEmpty(t, out)
			for _, ph := range placeholders {
				assert.NotContains(t, out, ph, "style=%q tone=%d", style, tone)
			}
		}
	}
}

func TestRender_SubstitutesEveryOccurrence(t *testing.T) {
	a := testAnalysis()
	e := New(fixedRand{0})

	// The first free-verse nostalgic template mentions the emotion twice in
	// the original; whatever the count, none may survive unsubstituted and
	// at least one substitution must appear.
	out := e.Render("free-verse", 0, a)
	assert.Contains(t, out, a.Emotion)
	assert.NotContains(t, out, "{emotion}")
}

func TestRender_CandidateSelection(t *testing.T) {
	a := testAnalysis()

	t.Run("single-bucket styles ignore the slider", func(t *testing.T) {
		e := New(fixedRand{0})
		for _, tone := range []int{0, 50, 100} {
			out := e.Render("shayari", tone, a)
			assert.Equal(t, substitute(templates["shayari"]["tender"][0], a), out, "tone %d", tone)
		}
	})

	t.Run("shayari at tone 50 stays within its candidate list", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		e := New(r)
		want := make([]string, 0, 2)
		for _, tmpl := range templates["shayari"]["tender"] {
			want = append(want, substitute(tmpl, a))
		}
		for i := 0; i < 20; i++ {
			assert.Contains(t, want, e.Render("shayari", 50, a))
		}
	})

	t.Run("multi-bucket style falls back to free-verse for missing bucket", func(t *testing.T) {
		// shakespearean has no nostalgic entry.
		e := New(fixedRand{0})
		out := e.Render("shakespearean", 0, a)
		assert.Equal(t, substitute(templates["free-verse"]["nostalgic"][0], a), out)
	})

	t.Run("unknown style uses free-verse for the bucket", func(t *testing.T) {
		e := New(fixedRand{1})
		out := e.Render("haiku", 100, a)
		assert.Equal(t, substitute(templates["free-verse"]["devotional"][1], a), out)
	})

	t.Run("exact style and bucket hit", func(t *testing.T) {
		e := New(fixedRand{0})
		out := e.Render("shakespearean", 90, a)
		assert.Equal(t, substitute(templates["shakespearean"]["passionate"][0], a), out)
	})
}

func TestRender_DeterministicWithPinnedRand(t *testing.T) {
	a := testAnalysis()
	first := New(fixedRand{1}).Render("free-verse", 50, a)
	second := New(fixedRand{1}).Render("free-verse", 50, a)
	assert.Equal(t, first, second)
}

func TestRender_SubstitutedSettingAppears(t *testing.T) {
	a := testAnalysis()
	r := rand.New(rand.NewSource(11))
	e := New(r)
	for i := 0; i < 10; i++ {
		out := e.Render("free-verse", 50, a)
		// Both playful free-verse templates reference the setting.
		assert.Contains(t, out, a.Setting)
	}
}

func TestRenderPhoto(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	e := New(r)

	for i := 0; i < 20; i++ {
		out := e.RenderPhoto("a couple at sunset")
		require.NotEmpty(t, out)
		assert.False(t, strings.Contains(out, "{"), "unresolved token in %q", out)
	}
}

func TestStyles(t *testing.T) {
	styles := Styles()
	assert.Equal(t, DefaultStyle, styles[0])
	assert.ElementsMatch(t, []string{"free-verse", "shakespearean", "shayari", "ghazal", "cute"}, styles)
}
