// Package generator runs the generation pipeline: prompt validation,
// special-phrase override, then either the remote backend or the local
// analyzer plus template engine.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/amoraverse/amoraverse/internal/analyzer"
	"github.com/amoraverse/amoraverse/internal/backend"
	"github.com/amoraverse/amoraverse/internal/phrases"
	"github.com/amoraverse/amoraverse/internal/poem"
	"github.com/amoraverse/amoraverse/internal/vault"
)

// ErrEmptyPrompt is returned when the prompt is blank. Generation is
// never attempted for an invalid prompt.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// localConfidence is reported for template-engine output.
const localConfidence = 0.85

// Request describes one generation call.
type Request struct {
	Prompt   string
	Style    string
	Tone     int // slider value, 0-100
	Language string
}

// Result is a completed generation. Label and Emoji are set only for
// special-phrase output.
type Result struct {
	Poem       string
	Source     vault.Source
	ModelUsed  string
	Confidence float64
	Style      string
	Tone       string
	Label      string
	Emoji      string
}

// Generator orchestrates poem generation. Concurrent calls are allowed
// and complete independently; there is no in-flight deduplication, so two
// overlapping calls each produce their own result.
type Generator struct {
	engine *poem.Engine
	rand   analyzer.Rand
	client *backend.Client // nil when no remote backend is configured
	delay  time.Duration

	mu       sync.Mutex
	detector *phrases.Detector
}

// Config holds configuration for the Generator.
type Config struct {
	Rand   analyzer.Rand // nil uses the shared math/rand source
	Client *backend.Client
	Delay  time.Duration // artificial generation latency, 0 to disable
}

// globalRand delegates to the goroutine-safe top-level math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// New creates a Generator.
func New(cfg Config) *Generator {
	if cfg.Rand == nil {
		cfg.Rand = globalRand{}
	}
	return &Generator{
		engine:   poem.New(cfg.Rand),
		rand:     cfg.Rand,
		client:   cfg.Client,
		delay:    cfg.Delay,
		detector: phrases.NewDetector(),
	}
}

// Generate produces a poem for the request. A blank prompt fails with
// ErrEmptyPrompt before anything else runs. Special phrases short-circuit
// everything. When a remote backend is configured its failure is returned
// to the caller as a *backend.GenerationError; the local engine is used
// only when no backend is configured at all.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	if m := g.checkOverride(prompt); m != nil {
		return &Result{
			Poem:       m.Poem,
			Source:     vault.SourceSpecialPhrase,
			ModelUsed:  "special-phrase",
			Confidence: 1,
			Style:      req.Style,
			Tone:       poem.ToneBucket(req.Tone),
			Label:      m.Label,
			Emoji:      m.Emoji,
		}, nil
	}

	if err := g.sleep(ctx); err != nil {
		return nil, err
	}

	if g.client != nil {
		return g.generateRemote(ctx, prompt, req)
	}
	return g.generateLocal(prompt, req), nil
}

// GenerateFromPhoto produces a poem for an uploaded photo, using the
// supplied description of the image if any.
func (g *Generator) GenerateFromPhoto(ctx context.Context, description string) (*Result, error) {
	if err := g.sleep(ctx); err != nil {
		return nil, err
	}
	return &Result{
		Poem:       g.engine.RenderPhoto(description),
		Source:     vault.SourcePhoto,
		ModelUsed:  "template-engine",
		Confidence: localConfidence,
	}, nil
}

// ResetOverrides clears the special-phrase debounce history.
func (g *Generator) ResetOverrides() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.detector.Reset()
}

func (g *Generator) checkOverride(prompt string) *phrases.Match {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.detector.Check(prompt)
}

func (g *Generator) generateLocal(prompt string, req Request) *Result {
	a := analyzer.Analyze(prompt, g.rand)
	return &Result{
		Poem:       g.engine.Render(req.Style, req.Tone, a),
		Source:     vault.SourceText,
		ModelUsed:  "template-engine",
		Confidence: localConfidence,
		Style:      req.Style,
		Tone:       poem.ToneBucket(req.Tone),
	}
}

func (g *Generator) generateRemote(ctx context.Context, prompt string, req Request) (*Result, error) {
	resp, err := g.client.GeneratePoem(ctx, backend.PoemRequest{
		Prompt:    prompt,
		Style:     req.Style,
		Tone:      poem.ToneBucket(req.Tone),
		Language:  req.Language,
		UseHybrid: true,
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Poem:       resp.Poem,
		Source:     vault.SourceText,
		ModelUsed:  resp.ModelUsed,
		Confidence: resp.ConfidenceScore,
		Style:      resp.Style,
		Tone:       resp.Tone,
	}, nil
}

// sleep applies the artificial generation latency, if configured.
func (g *Generator) sleep(ctx context.Context) error {
	if g.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
