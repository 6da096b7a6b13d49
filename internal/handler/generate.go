package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aontas/aontas/internal/cefr"
	"github.com/aontas/aontas/internal/enforce"
	"github.com/aontas/aontas/internal/model"
	"github.com/aontas/aontas/internal/sanitize"
	"github.com/aontas/aontas/internal/schema"
)

// generateResponse wraps the worksheet with its storage id.
type generateResponse struct {
	ID     int64                   `json:"id,omitempty"`
	Result *model.GenerationResult `json:"result"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.generate(r.Context(), req)
	if err != nil {
		h.logger.Error("generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := generateResponse{Result: result}
	if h.store != nil {
		id, err := h.store.InsertWorksheet(worksheetTitle(req), result)
		if err != nil {
			h.logger.Error("store worksheet", "error", err)
			writeError(w, http.StatusInternalServerError, "storing worksheet: "+err.Error())
			return
		}
		resp.ID = id
	}

	writeJSON(w, http.StatusOK, resp)
}

// generate runs the full pipeline: source resolution, LLM generation,
// sanitization, length enforcement, and schema validation.
func (h *Handler) generate(ctx context.Context, req model.GenerateRequest) (*model.GenerationResult, error) {
	source := req.SourceText
	if source == "" && req.SourceURL != "" {
		fetched, err := h.fetcher.FetchExtract(ctx, req.SourceURL)
		if err != nil {
			return nil, err
		}
		source = fetched
	}

	wordTarget := cefr.TargetWords(req.TargetCEFR, req.Length, req.TextType)
	h.logger.Info("generating worksheet",
		"cefr", req.TargetCEFR, "text_type", req.TextType,
		"language", req.OutputLanguage, "word_target", wordTarget)

	payload, err := h.gen.Generate(ctx, req, source, wordTarget)
	if err != nil {
		return nil, fmt.Errorf("generating worksheet: %w", err)
	}

	fb := sanitize.DefaultFallbacks()
	if h.bundle != nil {
		fb = h.bundle.Fallbacks(req.OutputLanguage)
	}
	result := sanitize.Result(payload, req, wordTarget, fb)

	if err := enforce.Apply(ctx, h.gen, result, req, wordTarget, h.logger); err != nil {
		return nil, err
	}

	if err := schema.Validate(result); err != nil {
		return nil, err
	}
	return result, nil
}

// worksheetTitle derives a short stored title from the source text.
func worksheetTitle(req model.GenerateRequest) string {
	title := req.SourceText
	if title == "" {
		title = req.SourceURL
	}
	runes := []rune(title)
	if len(runes) > 60 {
		title = string(runes[:60]) + "…"
	}
	if title == "" {
		title = "Untitled worksheet"
	}
	return title
}
