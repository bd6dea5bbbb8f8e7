// Package server exposes generation and the vault over HTTP for the web
// client.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amoraverse/amoraverse/internal/backend"
	"github.com/amoraverse/amoraverse/internal/generator"
	"github.com/amoraverse/amoraverse/internal/poem"
	"github.com/amoraverse/amoraverse/internal/upload"
	"github.com/amoraverse/amoraverse/internal/vault"
)

var languages = []string{"English", "Hindi", "Urdu", "Spanish", "French", "Mixed"}

// Server is the HTTP API.
type Server struct {
	gen   *generator.Generator
	vault *vault.Vault
}

// New creates a Server around the generation pipeline and the vault.
func New(gen *generator.Generator, v *vault.Vault) *Server {
	return &Server{gen: gen, vault: v}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) { notFound(c) })

	r.GET("/", s.root)
	r.GET("/health", s.health)

	r.POST("/generate-poem", s.generatePoem)
	r.POST("/refine-poem", s.refinePoem)
	r.POST("/photo-poem", s.photoPoem)
	r.POST("/analyze-mood", s.analyzeMood)

	r.GET("/styles", s.styles)
	r.GET("/tones", s.tones)
	r.GET("/languages", s.languages)
	r.GET("/model-status", s.modelStatus)
	r.GET("/stats", s.stats)

	poems := r.Group("/poems")
	poems.GET("", s.listPoems)
	poems.GET("/stats", s.stats)
	poems.POST("", s.savePoem)
	poems.DELETE("/:id", s.deletePoem)
	poems.POST("/:id/favorite", s.toggleFavorite)
	poems.PUT("/:id/tags", s.updateTags)
	poems.PUT("/:id/title", s.updateTitle)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, corsOrigins []string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(corsOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) root(c *gin.Context) {
	ok(c, gin.H{
		"message": "AmoraVerse Poetry API",
		"version": "1.0.0",
		"status":  "active",
	})
}

func (s *Server) health(c *gin.Context) {
	ok(c, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type generateRequest struct {
	Prompt   string `json:"prompt"`
	Style    string `json:"style"`
	Tone     int    `json:"tone"`
	Language string `json:"language"`
	Save     bool   `json:"save"`
	Title    string `json:"title"`
}

type poemResponse struct {
	Poem            string  `json:"poem"`
	ModelUsed       string  `json:"model_used"`
	ConfidenceScore float64 `json:"confidence_score"`
	GenerationTime  float64 `json:"generation_time"`
	Style           string  `json:"style"`
	Tone            string  `json:"tone"`
	SavedID         string  `json:"saved_id,omitempty"`
	Warning         string  `json:"warning,omitempty"`
}

func (s *Server) generatePoem(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	start := time.Now()
	res, err := s.gen.Generate(c.Request.Context(), generator.Request{
		Prompt:   req.Prompt,
		Style:    req.Style,
		Tone:     req.Tone,
		Language: req.Language,
	})
	if err != nil {
		s.generationError(c, err)
		return
	}

	resp := poemResponse{
		Poem:            res.Poem,
		ModelUsed:       res.ModelUsed,
		ConfidenceScore: res.Confidence,
		GenerationTime:  time.Since(start).Seconds(),
		Style:           res.Style,
		Tone:            res.Tone,
	}

	if req.Save {
		id, err := s.vault.Save(c.Request.Context(), res.Poem, res.Source, &vault.Metadata{
			Title: req.Title,
			Style: res.Style,
			Tone:  res.Tone,
		})
		resp.SavedID = id
		if err != nil {
			// Local-first: the poem is saved in memory; only the durable
			// write failed.
			slog.Warn("vault persist failed", "error", err)
			resp.Warning = "poem kept in memory but could not be written to storage"
		}
	}

	ok(c, resp)
}

func (s *Server) refinePoem(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	variations := make([]poemResponse, 0, 3)
	for i := 0; i < 3; i++ {
		start := time.Now()
		res, err := s.gen.Generate(c.Request.Context(), generator.Request{
			Prompt:   req.Prompt,
			Style:    req.Style,
			Tone:     req.Tone,
			Language: req.Language,
		})
		if err != nil {
			s.generationError(c, err)
			return
		}
		variations = append(variations, poemResponse{
			Poem:            res.Poem,
			ModelUsed:       res.ModelUsed,
			ConfidenceScore: res.Confidence,
			GenerationTime:  time.Since(start).Seconds(),
			Style:           res.Style,
			Tone:            res.Tone,
		})
	}

	ok(c, gin.H{
		"variations":      variations,
		"original_prompt": req.Prompt,
	})
}

type photoRequest struct {
	ImageData   []byte `json:"image_data"`
	Description string `json:"description"`
	Save        bool   `json:"save"`
	Title       string `json:"title"`
}

func (s *Server) photoPoem(c *gin.Context) {
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := upload.ValidateImage(req.ImageData); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := s.gen.GenerateFromPhoto(c.Request.Context(), req.Description)
	if err != nil {
		s.generationError(c, err)
		return
	}

	resp := poemResponse{
		Poem:            res.Poem,
		ModelUsed:       res.ModelUsed,
		ConfidenceScore: res.Confidence,
	}
	if req.Save {
		id, err := s.vault.Save(c.Request.Context(), res.Poem, res.Source, &vault.Metadata{Title: req.Title})
		resp.SavedID = id
		if err != nil {
			slog.Warn("vault persist failed", "error", err)
			resp.Warning = "poem kept in memory but could not be written to storage"
		}
	}
	ok(c, resp)
}

func (s *Server) analyzeMood(c *gin.Context) {
	ok(c, gin.H{
		"detected_mood": "romantic",
		"suggested_prompts": []string{
			"Write a romantic poem about a sunset",
			"Write a passionate poem about love at first sight",
			"Write a soulful poem about eternal love",
		},
		"confidence": 0.85,
	})
}

func (s *Server) styles(c *gin.Context) {
	ok(c, gin.H{"styles": poem.Styles()})
}

func (s *Server) tones(c *gin.Context) {
	ok(c, gin.H{"tones": poem.ToneLabels()})
}

func (s *Server) languages(c *gin.Context) {
	ok(c, gin.H{"languages": languages})
}

func (s *Server) modelStatus(c *gin.Context) {
	ok(c, gin.H{
		"local_model_loaded": false,
		"fallback_available": true,
		"dataset_size":       s.vault.Stats().Total,
	})
}

func (s *Server) stats(c *gin.Context) {
	ok(c, s.vault.Stats())
}

func (s *Server) listPoems(c *gin.Context) {
	poems := s.vault.Search(c.Query("q"))
	if poems == nil {
		poems = []vault.PoemRecord{}
	}
	ok(c, gin.H{"data": poems})
}

type saveRequest struct {
	Text   string   `json:"text"`
	Source string   `json:"source"`
	Title  string   `json:"title"`
	Style  string   `json:"style"`
	Tone   string   `json:"tone"`
	Tags   []string `json:"tags"`
}

func (s *Server) savePoem(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, "text must not be empty")
		return
	}

	source := vault.Source(req.Source)
	switch source {
	case vault.SourcePhoto, vault.SourceText, vault.SourceSpecialPhrase:
	case "":
		source = vault.SourceText
	default:
		badRequest(c, "invalid source")
		return
	}

	id, err := s.vault.Save(c.Request.Context(), req.Text, source, &vault.Metadata{
		Title: req.Title,
		Style: req.Style,
		Tone:  req.Tone,
		Tags:  req.Tags,
	})
	resp := gin.H{"id": id}
	if err != nil {
		slog.Warn("vault persist failed", "error", err)
		resp["warning"] = "poem kept in memory but could not be written to storage"
	}
	created(c, resp)
}

func (s *Server) deletePoem(c *gin.Context) {
	if err := s.vault.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Warn("vault persist failed", "error", err)
	}
	noContent(c)
}

func (s *Server) toggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if err := s.vault.ToggleFavorite(c.Request.Context(), id); err != nil {
		slog.Warn("vault persist failed", "error", err)
	}
	if rec, found := s.vault.Get(id); found {
		ok(c, rec)
		return
	}
	noContent(c)
}

func (s *Server) updateTags(c *gin.Context) {
	var body struct {
		Tags []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	id := c.Param("id")
	if err := s.vault.UpdateTags(c.Request.Context(), id, body.Tags); err != nil {
		slog.Warn("vault persist failed", "error", err)
	}
	if rec, found := s.vault.Get(id); found {
		ok(c, rec)
		return
	}
	noContent(c)
}

func (s *Server) updateTitle(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}
	id := c.Param("id")
	if err := s.vault.UpdateTitle(c.Request.Context(), id, body.Title); err != nil {
		slog.Warn("vault persist failed", "error", err)
	}
	if rec, found := s.vault.Get(id); found {
		ok(c, rec)
		return
	}
	noContent(c)
}

func (s *Server) generationError(c *gin.Context, err error) {
	if errors.Is(err, generator.ErrEmptyPrompt) {
		badRequest(c, err.Error())
		return
	}
	var genErr *backend.GenerationError
	if errors.As(err, &genErr) {
		badGateway(c, genErr)
		return
	}
	internalError(c, err)
}
