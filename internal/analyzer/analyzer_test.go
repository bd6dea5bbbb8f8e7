package analyzer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRand always returns the same index so tests can pin filler picks.
type fixedRand struct{ n int }

func (f fixedRand) Intn(int) int { return f.n }

func TestAnalyze_Emotion(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		emotion string
	}{
		{"happy keyword", "your smile lights up the day", "happy"},
		{"love keyword", "I adore everything about you", "love"},
		{"nostalgic keyword", "I remember our early days", "nostalgic"},
		{"longing keyword", "I wish we could meet again", "longing"},
		{"tender keyword", "your gentle way of speaking", "tender"},
		{"no match falls back", "an ordinary sentence about nothing", "tenderness"},
		{"empty prompt falls back", "", "tenderness"},
		{"first group wins", "your happy laugh, my love", "happy"},
		{"case insensitive", "YOUR SMILE", "happy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.prompt, fixedRand{0})
			assert.Equal(t, tt.emotion, a.Emotion)
		})
	}
}

func TestAnalyze_Setting(t *testing.T) {
	t.Run("returns matched keyword not category", func(t *testing.T) {
		a := Analyze("dancing in the rain", fixedRand{0})
		assert.Equal(t, "rain", a.Setting)
	})

	t.Run("keyword order decides within a group", func(t *testing.T) {
		// Both "beach" and "sunset" belong to nature; "beach" comes first
		// in the keyword list regardless of prompt order.
		a := Analyze("sunset at the beach", fixedRand{0})
		assert.Equal(t, "beach", a.Setting)
	})

	t.Run("group order decides across groups", func(t *testing.T) {
		// "garden" (nature) beats "home" even though home appears first.
		a := Analyze("home garden", fixedRand{0})
		assert.Equal(t, "garden", a.Setting)
	})

	t.Run("no match falls back", func(t *testing.T) {
		a := Analyze("something unrelated", fixedRand{0})
		assert.Equal(t, "our quiet moments", a.Setting)
	})
}

func TestAnalyze_AllFieldsPopulated(t *testing.T) {
	prompts := []string{
		"",
		"   ",
		"a gentle walk in the rain",
		"completely unrelated words qwerty",
	}

	r := rand.New(rand.NewSource(42))
	for _, p := range prompts {
		a := Analyze(p, r)
		assert.NotEmpty(t, a.Emotion, "prompt %q", p)
		assert.NotEmpty(t, a.Setting, "prompt %q", p)
		assert.NotEmpty(t, a.Metaphor, "prompt %q", p)
		assert.NotEmpty(t, a.Feeling, "prompt %q", p)
		assert.NotEmpty(t, a.Detail, "prompt %q", p)
	}
}

func TestAnalyze_FillersComeFromFixedLists(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := Analyze("anything", r)
		assert.Contains(t, metaphors, a.Metaphor)
		assert.Contains(t, feelings, a.Feeling)
		assert.Contains(t, details, a.Detail)
	}
}

func TestAnalyze_PinnedRandIsDeterministic(t *testing.T) {
	a := Analyze("hello", fixedRand{3})
	b := Analyze("hello", fixedRand{3})
	assert.Equal(t, a, b)
	assert.Equal(t, metaphors[3], a.Metaphor)
	assert.Equal(t, feelings[3], a.Feeling)
	assert.Equal(t, details[3], a.Detail)
}
