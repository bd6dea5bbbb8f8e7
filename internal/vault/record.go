package vault

import "time"

// Source identifies how a poem was produced.
type Source string

const (
	SourcePhoto         Source = "photo"
	SourceText          Source = "text"
	SourceSpecialPhrase Source = "special-phrase"
)

// PoemRecord is one saved poem with its metadata. Id, CreatedAt, Source,
// Style, Tone and AssociatedImage are fixed at creation; Tags, Favorite
// and Title may change afterwards.
type PoemRecord struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
	Source          Source    `json:"source"`
	Tags            []string  `json:"tags"`
	Favorite        bool      `json:"favorite"`
	Title           string    `json:"title,omitempty"`
	Style           string    `json:"style,omitempty"`
	Tone            string    `json:"tone,omitempty"`
	AssociatedImage string    `json:"associated_image,omitempty"`
}

// Metadata carries the optional fields for Save.
type Metadata struct {
	Title           string
	Style           string
	Tone            string
	AssociatedImage string
	Tags            []string
}
