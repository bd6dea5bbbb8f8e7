// Package analyzer maps a free-text prompt to the five poetic elements
// the template engine substitutes into its placeholders.
package analyzer

import "strings"

// Rand is the source of randomness for the filler picks. *math/rand.Rand
// satisfies it; tests can pin picks with a stub.
type Rand interface {
	Intn(n int) int
}

// Analysis holds the extracted poetic elements. All fields are always
// populated, even for an empty prompt.
type Analysis struct {
	Emotion  string
	Setting  string
	Metaphor string
	Feeling  string
	Detail   string
}

const (
	defaultEmotion = "tenderness"
	defaultSetting = "our quiet moments"
)

// keywordGroup pairs a category name with the keywords that signal it.
// Groups are checked in order; the first match wins.
type keywordGroup struct {
	name     string
	keywords []string
}

var emotionGroups = []keywordGroup{
	{"happy", []string{"smile", "laugh", "joy", "happy", "cheerful", "bright"}},
	{"love", []string{"love", "adore", "cherish", "treasure", "heart", "soul"}},
	{"nostalgic", []string{"remember", "memory", "past", "first", "used", "back"}},
	{"longing", []string{"miss", "want", "need", "wish", "hope", "dream"}},
	{"tender", []string{"gentle", "soft", "warm", "tender", "sweet", "kind"}},
}

var settingGroups = []keywordGroup{
	{"nature", []string{"garden", "beach", "mountain", "forest", "sunset", "sunrise", "rain", "moonlight"}},
	{"home", []string{"home", "bed", "kitchen", "room", "house", "apartment"}},
	{"romantic", []string{"dinner", "date", "restaurant", "candles", "roses", "wine"}},
	{"casual", []string{"walk", "talk", "coffee", "park", "street", "everyday"}},
}

var metaphors = []string{
	"starlight on water", "petals in the wind", "whispered promises",
	"golden threads", "morning dew", "gentle rainfall", "warm candlelight",
	"silk and shadow", "cherry blossoms", "autumn leaves",
}

var feelings = []string{
	"butterflies", "warmth", "electricity", "peace", "wonder",
	"magic", "serenity", "passion", "comfort", "bliss",
}

var details = []string{
	"eyes", "smile", "touch", "voice", "laughter", "hands",
	"presence", "embrace", "gaze", "whisper",
}

// Analyze extracts poetic elements from a prompt. Emotion and setting come
// from keyword lookup; metaphor, feeling and detail are drawn from r
// regardless of prompt content. Callers are expected to reject empty
// prompts before calling; an empty prompt simply yields the defaults.
func Analyze(prompt string, r Rand) Analysis {
	words := tokenize(prompt)

	emotion := defaultEmotion
	for _, g := range emotionGroups {
		if containsAny(words, g.keywords) {
			emotion = g.name
			break
		}
	}

	// For settings the matched keyword itself is more evocative than the
	// category name, so return it instead.
	setting := defaultSetting
	for _, g := range settingGroups {
		if kw, ok := firstMatch(words, g.keywords); ok {
			setting = kw
			break
		}
	}

	return Analysis{
		Emotion:  emotion,
		Setting:  setting,
		Metaphor: metaphors[r.Intn(len(metaphors))],
		Feeling:  feelings[r.Intn(len(feelings))],
		Detail:   details[r.Intn(len(details))],
	}
}

func tokenize(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = true
	}
	return words
}

func containsAny(words map[string]bool, keywords []string) bool {
	_, ok := firstMatch(words, keywords)
	return ok
}

// firstMatch returns the first keyword (in keyword order) present in words.
func firstMatch(words map[string]bool, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if words[kw] {
			return kw, true
		}
	}
	return "", false
}
