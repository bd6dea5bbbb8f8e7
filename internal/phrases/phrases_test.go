package phrases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Check(t *testing.T) {
	t.Run("substring match fires", func(t *testing.T) {
		d := NewDetector()
		m := d.Check("I miss you so much")
		require.NotNil(t, m)
		assert.Equal(t, "Long Distance Love", m.Label)
		assert.Contains(t, m.Poem, "Miles apart")
	})

	t.Run("no trigger returns nil", func(t *testing.T) {
		d := NewDetector()
		assert.Nil(t, d.Check("write about a sunny afternoon"))
	})

	t.Run("immediate repeat of same label is debounced", func(t *testing.T) {
		d := NewDetector()
		require.NotNil(t, d.Check("i miss you"))
		assert.Nil(t, d.Check("missing you already"))
	})

	t.Run("different label right after is not suppressed", func(t *testing.T) {
		d := NewDetector()
		require.NotNil(t, d.Check("i miss you"))

		m := d.Check("will you marry me?")
		require.NotNil(t, m)
		assert.Equal(t, "Marriage Proposal", m.Label)

		// And the first one can fire again now.
		m = d.Check("i miss you")
		require.NotNil(t, m)
		assert.Equal(t, "Long Distance Love", m.Label)
	})

	t.Run("first entry in list order wins", func(t *testing.T) {
		// "i miss you forever" contains triggers for both the long-distance
		// and the eternal entries; the long-distance entry comes first.
		d := NewDetector()
		m := d.Check("i miss you forever")
		require.NotNil(t, m)
		assert.Equal(t, "Long Distance Love", m.Label)
	})

	t.Run("case and surrounding whitespace ignored", func(t *testing.T) {
		d := NewDetector()
		m := d.Check("   FORGIVE ME please  ")
		require.NotNil(t, m)
		assert.Equal(t, "Heartfelt Apology", m.Label)
	})

	t.Run("reset clears debounce", func(t *testing.T) {
		d := NewDetector()
		require.NotNil(t, d.Check("goodbye my love"))
		d.Reset()
		require.NotNil(t, d.Check("goodbye my love"))
	})
}

func TestEntries_AllHaveContent(t *testing.T) {
	for _, e := range entries {
		assert.NotEmpty(t, e.phrases)
		assert.NotEmpty(t, e.label)
		assert.NotEmpty(t, e.poem)
	}
}
