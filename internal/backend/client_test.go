package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GeneratePoem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/generate-poem", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req PoemRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "about the rain", req.Prompt)

			json.NewEncoder(w).Encode(PoemResponse{
				Poem:            "a poem about the rain",
				ModelUsed:       "local_model",
				ConfidenceScore: 0.9,
				Style:           req.Style,
				Tone:            req.Tone,
			})
		}))
		defer server.Close()

		c := New(Config{BaseURL: server.URL})
		resp, err := c.GeneratePoem(context.Background(), PoemRequest{
			Prompt: "about the rain",
			Style:  "free-verse",
			Tone:   "tender",
		})
		require.NoError(t, err)
		assert.Equal(t, "a poem about the rain", resp.Poem)
		assert.Equal(t, "local_model", resp.ModelUsed)
	})

	t.Run("server error surfaces as GenerationError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model exploded", http.StatusInternalServerError)
		}))
		defer server.Close()

		c := New(Config{BaseURL: server.URL})
		_, err := c.GeneratePoem(context.Background(), PoemRequest{Prompt: "x"})
		require.Error(t, err)

		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, http.StatusInternalServerError, genErr.StatusCode)
		assert.Contains(t, genErr.Message, "model exploded")
	})

	t.Run("unreachable backend surfaces as GenerationError", func(t *testing.T) {
		c := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		_, err := c.GeneratePoem(context.Background(), PoemRequest{Prompt: "x"})

		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Zero(t, genErr.StatusCode)
	})
}

func TestClient_RefinePoem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refine-poem", r.URL.Path)
		json.NewEncoder(w).Encode(Variations{
			Variations: []PoemResponse{
				{Poem: "v1"}, {Poem: "v2"}, {Poem: "v3"},
			},
			OriginalPrompt: "original",
		})
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	got, err := c.RefinePoem(context.Background(), PoemRequest{Prompt: "original"})
	require.NoError(t, err)
	assert.Len(t, got.Variations, 3)
	assert.Equal(t, "original", got.OriginalPrompt)
}

func TestClient_Lists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/styles":
			json.NewEncoder(w).Encode(map[string][]string{"styles": {"Free Verse", "Ghazal"}})
		case "/tones":
			json.NewEncoder(w).Encode(map[string][]string{"tones": {"Soft", "Passionate"}})
		case "/languages":
			json.NewEncoder(w).Encode(map[string][]string{"languages": {"English", "Hindi"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	ctx := context.Background()

	styles, err := c.Styles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Free Verse", "Ghazal"}, styles)

	tones, err := c.Tones(ctx)
	require.NoError(t, err)
	assert.Contains(t, tones, "Soft")

	langs, err := c.Languages(ctx)
	require.NoError(t, err)
	assert.Contains(t, langs, "Hindi")
}

func TestClient_AddUserPoem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var poem UserPoem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&poem))
		// Defaults applied when style/tone are left blank.
		assert.Equal(t, "User Generated", poem.Style)
		assert.Equal(t, "Personal", poem.Tone)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	err := c.AddUserPoem(context.Background(), UserPoem{
		UserPoem:   "my own verse",
		UserPrompt: "write about us",
	})
	assert.NoError(t, err)
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		c := New(Config{BaseURL: server.URL})
		assert.True(t, c.Health(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		c := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		assert.False(t, c.Health(context.Background()))
	})
}
