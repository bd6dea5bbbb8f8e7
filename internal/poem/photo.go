package poem

import "strings"

// Photo poems use their own element vocabulary: the analyzer has no real
// image understanding, so every element is drawn from a fixed list and the
// uploaded photo only decides the poem's source attribution.

var photoTemplates = []string{
	`In this captured moment, time stands still,
Where {emotion} speaks without words.
The {lighting} illuminates
Love's truest expression in {setting}.

Your {expression} tells a story
That a thousand verses couldn't write,
A single frame that holds forever
In its gentle, sacred light.`,

	`Frozen in time, this precious scene
Where {emotion} lives and breathes.
The {colors} paint a love story
That the heart believes and never leaves.

In {setting}, we found magic,
Your {expression} the sweetest art.
This moment captured speaks of love
That lives within each beating heart.`,
}

var (
	photoEmotions    = []string{"tenderness", "joy", "love", "serenity", "passion", "wonder"}
	photoExpressions = []string{"smile", "gaze", "embrace", "touch", "glance", "presence"}
	photoSettings    = []string{"gentle backdrop", "intimate space", "natural setting", "cozy environment"}
	photoLighting    = []string{"soft light", "warm glow", "golden hour", "gentle illumination"}
	photoColors      = []string{"warm tones", "soft hues", "gentle shades", "harmonious colors"}
)

// RenderPhoto produces a poem for an uploaded photo. The description is
// accepted for future use; current element picks are random.
func (e *Engine) RenderPhoto(description string) string {
	_ = description

	tmpl := photoTemplates[e.rand.Intn(len(photoTemplates))]
	r := strings.NewReplacer(
		"{emotion}", photoEmotions[e.rand.Intn(len(photoEmotions))],
		"{expression}", photoExpressions[e.rand.Intn(len(photoExpressions))],
		"{setting}", photoSettings[e.rand.Intn(len(photoSettings))],
		"{lighting}", photoLighting[e.rand.Intn(len(photoLighting))],
		"{colors}", photoColors[e.rand.Intn(len(photoColors))],
	)
	return r.Replace(tmpl)
}
