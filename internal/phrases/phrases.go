// Package phrases recognizes special trigger phrases in a prompt and
// short-circuits generation with a fixed poem for the occasion.
package phrases

import "strings"

// Match is a triggered special phrase.
type Match struct {
	Label string
	Emoji string
	Poem  string
}

type entry struct {
	phrases []string
	label   string
	emoji   string
	poem    string
}

// Entries are scanned in order; the first containing match wins.
var entries = []entry{
	{
		phrases: []string{"i miss you", "missing you", "i miss u", "miss you so much"},
		label:   "Long Distance Love",
		emoji:   "💔",
		poem: `Miles apart, yet hearts entwined,
In dreams, your touch I always find.
Each sunrise whispers of your name,
This distance just cannot contain
The love that bridges every mile,
Until I see your precious smile.

Time zones can't divide our souls,
Love conquers space, makes broken whole.`,
	},
	{
		phrases: []string{"i'm sorry", "im sorry", "forgive me", "i apologize", "sorry baby"},
		label:   "Heartfelt Apology",
		emoji:   "🙏",
		poem: `In shadows of my wrong, I stand,
With trembling heart and outstretched hand.
These words feel small for pain so deep,
Forgiveness is the dream I keep.

Let love rebuild what pride tore down,
Turn my regret to healing ground.
In your mercy, I find my way,
To love you better, starting today.`,
	},
	{
		phrases: []string{"goodbye", "farewell", "ending", "over", "last time"},
		label:   "Gentle Farewell",
		emoji:   "🕊️",
		poem: `Not all love stories find their end,
Some become memories that transcend.
What we shared will always glow,
A constellation's gentle show.

In letting go, I wish you well,
May joy be yours, may your heart swell.
Though paths divide, you'll stay with me,
A treasured part of who I'll be.`,
	},
	{
		phrases: []string{"marry me", "proposal", "will you marry me", "wedding", "engagement"},
		label:   "Marriage Proposal",
		emoji:   "💍",
		poem: `In this moment, time stands still,
My heart speaks with unwavering will.
You are my dawn, my guiding star,
My home, no matter where we are.

Will you dance with me through time?
Make this love our paradigm?
Say yes to dreams we'll build as one,
Our greatest journey's just begun.

Forever starts with you and me,
Will you marry me?`,
	},
	{
		phrases: []string{"forever", "always", "eternity", "infinite", "endless love"},
		label:   "Eternal Love",
		emoji:   "💫",
		poem: `Beyond the count of stars above,
Beyond the depths of ocean's love,
Past where time itself may cease,
There lives our love's eternal peace.

Forever is not just a word,
It's every promise ever heard
In whispered vows and silent prayer,
A love that nothing can compare.

In every lifetime yet to be,
I choose you for eternity.`,
	},
	{
		phrases: []string{"first kiss", "our first kiss", "that kiss", "when you kissed me"},
		label:   "First Kiss Memory",
		emoji:   "💋",
		poem: `In that instant when lips first met,
The world around us seemed to set
Into a golden, timeless frame,
Nothing would ever be the same.

Electric whispers, hearts that race,
The universe in that embrace.
A moment carved in memory's stone,
The kiss that claimed me as your own.`,
	},
}

// Detector matches prompts against the trigger table. It remembers the
// last label it fired so the same occasion does not trigger twice in a
// row when a user resubmits a similar prompt.
type Detector struct {
	lastTriggered string
}

// NewDetector returns a Detector with no trigger history.
func NewDetector() *Detector {
	return &Detector{}
}

// Check returns the fixed poem for the first trigger phrase contained in
// prompt, or nil if nothing matches or the same label fired last time.
// Matching is case-insensitive substring containment, not tokenized:
// "i miss you so much" matches the same entry as "i miss you".
func (d *Detector) Check(prompt string) *Match {
	p := strings.ToLower(strings.TrimSpace(prompt))

	for _, e := range entries {
		for _, phrase := range e.phrases {
			if strings.Contains(p, phrase) {
				if e.label == d.lastTriggered {
					return nil
				}
				d.lastTriggered = e.label
				return &Match{Label: e.label, Emoji: e.emoji, Poem: e.poem}
			}
		}
	}
	return nil
}

// Reset clears the trigger history.
func (d *Detector) Reset() {
	d.lastTriggered = ""
}
