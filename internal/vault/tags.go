package vault

import "strings"

const maxTags = 5

// tagCategories map a tag name to the words that suggest it. Checked in
// order so tag output is stable for a given poem.
var tagCategories = []struct {
	name     string
	keywords []string
}{
	{"love", []string{"love", "heart", "soul", "forever", "always"}},
	{"nature", []string{"moon", "star", "sun", "flower", "ocean", "rain", "sky"}},
	{"emotion", []string{"miss", "happy", "sad", "joy", "tears", "smile", "laugh"}},
	{"romantic", []string{"kiss", "embrace", "dance", "wedding", "marry", "proposal"}},
	{"time", []string{"moment", "time", "memory", "remember", "yesterday", "tomorrow"}},
	{"distance", []string{"away", "far", "distance", "apart", "miss", "gone"}},
	{"seasons", []string{"spring", "summer", "autumn", "winter", "fall"}},
	{"feelings", []string{"warm", "cold", "bright", "dark", "light", "gentle", "soft"}},
}

var tagStopwords = map[string]bool{
	"the": true, "and": true, "you": true, "your": true, "that": true,
	"this": true, "with": true, "from": true, "they": true, "have": true,
	"will": true, "been": true,
}

// extractTags derives tags for a poem saved without explicit ones. Matched
// category names come first; if fewer than 3 categories matched, the first
// word longer than 4 characters outside the stop-word list is appended as
// a fallback. At most 5 tags are returned.
func extractTags(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	var tags []string
	for _, cat := range tagCategories {
		for _, kw := range cat.keywords {
			if wordSet[kw] {
				tags = append(tags, cat.name)
				break
			}
		}
	}

	if len(tags) < 3 {
		for _, w := range words {
			if len(w) > 4 && !tagStopwords[w] {
				tags = append(tags, w)
				break
			}
		}
	}

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
