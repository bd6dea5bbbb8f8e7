// Package vault is the personal archive of saved poems: an ordered,
// newest-first collection held in memory and mirrored to a durable
// key-value store after every mutation.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amoraverse/amoraverse/internal/kvstore"
)

// storageKey is the single key the whole collection is serialized under.
const storageKey = "loveVault_poems"

// recentCount is how many records Stats reports as recent.
const recentCount = 5

// ErrStorage marks durable read/write failures. The in-memory collection
// already reflects the mutation when Set fails; the next successful write
// will include it.
var ErrStorage = errors.New("vault storage")

// Vault is the archive service. All operations are safe for concurrent
// use; the backing store is written whole on every mutation with no
// cross-process conflict detection (last write wins).
type Vault struct {
	mu    sync.Mutex
	store kvstore.Store
	poems []PoemRecord
}

// Open loads the archive from store. Corrupted or unreadable stored data
// degrades to an empty archive with a warning rather than an error: the
// vault must never prevent the rest of the app from starting.
func Open(ctx context.Context, store kvstore.Store) *Vault {
	v := &Vault{store: store}

	raw, ok, err := store.Get(ctx, storageKey)
	if err != nil {
		slog.Warn("could not load vault, starting empty", "error", err)
		return v
	}
	if !ok {
		return v
	}
	if err := json.Unmarshal([]byte(raw), &v.poems); err != nil {
		slog.Warn("stored vault data is corrupt, starting empty", "error", err)
		v.poems = nil
	}
	return v
}

// Save adds a new record at the front of the archive and persists it.
// Tags are derived from the text when metadata supplies none. The new id
// is returned even when persistence fails; the record stays in memory.
func (v *Vault) Save(ctx context.Context, text string, source Source, meta *Metadata) (string, error) {
	rec := PoemRecord{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Source:    source,
	}
	if meta != nil {
		rec.Title = meta.Title
		rec.Style = meta.Style
		rec.Tone = meta.Tone
		rec.AssociatedImage = meta.AssociatedImage
		rec.Tags = meta.Tags
	}
	if rec.Tags == nil {
		rec.Tags = extractTags(text)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.poems = append([]PoemRecord{rec}, v.poems...)
	return rec.ID, v.persist(ctx)
}

// Delete removes the record with the given id. Deleting an absent id is
// a no-op, not an error.
func (v *Vault) Delete(ctx context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, p := range v.poems {
		if p.ID == id {
			v.poems = append(v.poems[:i], v.poems[i+1:]...)
			return v.persist(ctx)
		}
	}
	return nil
}

// ToggleFavorite flips the favorite flag. No-op if id is absent.
func (v *Vault) ToggleFavorite(ctx context.Context, id string) error {
	return v.update(ctx, id, func(p *PoemRecord) {
		p.Favorite = !p.Favorite
	})
}

// UpdateTags replaces the record's tags wholesale. No-op if id is absent.
func (v *Vault) UpdateTags(ctx context.Context, id string, tags []string) error {
	return v.update(ctx, id, func(p *PoemRecord) {
		p.Tags = tags
	})
}

// UpdateTitle replaces the record's title. No-op if id is absent.
func (v *Vault) UpdateTitle(ctx context.Context, id, title string) error {
	return v.update(ctx, id, func(p *PoemRecord) {
		p.Title = title
	})
}

func (v *Vault) update(ctx context.Context, id string, fn func(*PoemRecord)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.poems {
		if v.poems[i].ID == id {
			fn(&v.poems[i])
			return v.persist(ctx)
		}
	}
	return nil
}

// Get returns the record with the given id.
func (v *Vault) Get(id string) (PoemRecord, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, p := range v.poems {
		if p.ID == id {
			return p, true
		}
	}
	return PoemRecord{}, false
}

// All returns the full archive, newest first.
func (v *Vault) All() []PoemRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]PoemRecord(nil), v.poems...)
}

// Search returns records whose text, title or any tag contains the query,
// case-insensitively. A blank query returns the whole archive in order.
func (v *Vault) Search(query string) []PoemRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return v.All()
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	q := strings.ToLower(query)
	var out []PoemRecord
	for _, p := range v.poems {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p PoemRecord, q string) bool {
	if strings.Contains(strings.ToLower(p.Text), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Stats summarizes the archive.
type Stats struct {
	Total      int            `json:"total"`
	Favorites  int            `json:"favorites"`
	BySource   map[Source]int `json:"by_source"`
	UniqueTags []string       `json:"unique_tags"`
	Recent     []PoemRecord   `json:"recent"`
}

// Stats aggregates over the current in-memory state. UniqueTags are in
// first-seen order, newest records first.
func (v *Vault) Stats() Stats {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Stats{BySource: make(map[Source]int)}
	s.Total = len(v.poems)

	seen := make(map[string]bool)
	for _, p := range v.poems {
		if p.Favorite {
			s.Favorites++
		}
		s.BySource[p.Source]++
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				s.UniqueTags = append(s.UniqueTags, tag)
			}
		}
	}

	n := recentCount
	if n > len(v.poems) {
		n = len(v.poems)
	}
	s.Recent = append([]PoemRecord(nil), v.poems[:n]...)
	return s
}

// persist writes the whole collection. Callers hold v.mu.
func (v *Vault) persist(ctx context.Context) error {
	data, err := json.Marshal(v.poems)
	if err != nil {
		return fmt.Errorf("marshal vault: %w", err)
	}
	if err := v.store.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
