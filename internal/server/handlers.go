package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"reelcraft/internal/core"
	"reelcraft/internal/generate"
	"reelcraft/internal/insights"
	"reelcraft/internal/retry"
	"reelcraft/internal/store"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, map[string]string{"code": code, "error": message})
}

// writeError maps domain errors onto HTTP status codes: bad requests to
// 400, offline-only features to 412, provider overload to 429, undecodable
// provider output to 502, missing records to 404, everything else to 500.
// Every body carries a stable code clients can branch on.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case generate.IsValidation(err):
		s.respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case generate.IsConfig(err):
		s.respondError(w, http.StatusPreconditionFailed, "api_key_required", err.Error())
	case retry.IsExhausted(err):
		s.respondError(w, http.StatusTooManyRequests, "rate_limited", "The AI service is busy. Please try again in a few minutes.")
	case generate.IsMalformed(err):
		s.log.Error("Malformed model response", "error", err)
		s.respondError(w, http.StatusBadGateway, "malformed_response", "The AI service returned an unusable response. Please try again.")
	case errors.Is(err, store.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "not_found", "not found")
	default:
		s.log.Error("Request failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &generate.ValidationError{Field: "body", Reason: "invalid JSON: " + err.Error()}
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"offline": s.svc.Offline(),
	})
}

// handleCatalog exposes the option catalogs the UI builds its forms from.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"formulas":       core.FormulaDescriptions,
		"formulaParts":   core.FormulaParts,
		"hookTypes":      core.HookTypes,
		"hookCategories": core.HookCategories,
		"tones":          core.TonesAndStyles,
		"ctaStyles":      core.CTAStyles,
		"hookKillers":    core.HookKillers,
		"hookFormats":    core.HookFormats,
		"contentStyles":  core.ContentStyles,
		"videoStyles":    core.VideoStyles,
		"aspectRatios":   core.AspectRatios,
	})
}

func (s *Server) computeInsights() (*core.PersonalInsights, error) {
	entries, err := s.store.ListHistory(0)
	if err != nil {
		return nil, err
	}
	samples := insights.FromHistory(entries)
	result, err := insights.Compute(samples, s.config.Insights.MinTracked)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	result, err := s.computeInsights()
	if errors.Is(err, insights.ErrInsufficientData) {
		s.respondJSON(w, http.StatusOK, map[string]any{
			"ready":      false,
			"minTracked": s.config.Insights.MinTracked,
		})
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"ready":    true,
		"insights": result,
	})
}

// handleScript is the main generation endpoint. It pulls the stored brand
// profile, liked examples, and personal insights into the prompt, then
// records the result in history.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	var req core.ScriptRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	profile, err := s.store.GetBrandProfile()
	if err != nil {
		s.writeError(w, err)
		return
	}
	liked, err := s.store.LikedScripts(s.config.Insights.LikedSamples)
	if err != nil {
		s.writeError(w, err)
		return
	}
	personal, err := s.computeInsights()
	if err != nil && !errors.Is(err, insights.ErrInsufficientData) {
		s.writeError(w, err)
		return
	}

	out, err := s.svc.Script(r.Context(), req, profile, liked, personal)
	if err != nil {
		s.writeError(w, err)
		return
	}

	entry, err := s.store.SaveHistory(core.HistoryEntry{
		Request:    req,
		Variations: out.Variations,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"id":        entry.ID,
		"createdAt": entry.CreatedAt,
		"result":    out,
	})
}

func (s *Server) handleLinkScript(w http.ResponseWriter, r *http.Request) {
	var req core.LinkScriptRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	profile, err := s.store.GetBrandProfile()
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.svc.LinkScript(r.Context(), req, profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleHooks(w http.ResponseWriter, r *http.Request) {
	var req core.HookRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := s.svc.Hooks(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleAngles(w http.ResponseWriter, r *http.Request) {
	var req core.AngleRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := s.svc.Angles(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleHashtags(w http.ResponseWriter, r *http.Request) {
	var req core.HashtagRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := s.svc.Hashtags(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req core.PlanRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := s.svc.Plan(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req core.ResearchRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := s.svc.Research(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	var req core.VideoRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	op, err := s.svc.Video(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, op)
}

func (s *Server) handleVideoDownload(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.Query().Get("uri")
	data, err := s.svc.DownloadVideo(r.Context(), uri)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", `attachment; filename="reelcraft-video.mp4"`)
	if _, err := w.Write(data); err != nil {
		s.log.Error("Failed to write video response", "error", err)
	}
}

func (s *Server) handleStoryboard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	img, err := s.svc.Storyboard(r.Context(), req.Description)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, img)
}

func (s *Server) handleImageEdit(w http.ResponseWriter, r *http.Request) {
	var req core.ImageEditRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	out, err := s.svc.EditImage(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetBrandProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetBrandProfile()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if profile == nil {
		s.respondError(w, http.StatusNotFound, "not_found", "no brand profile saved")
		return
	}
	s.respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutBrandProfile(w http.ResponseWriter, r *http.Request) {
	var profile core.BrandProfile
	if err := decodeBody(r, &profile); err != nil {
		s.writeError(w, err)
		return
	}
	if profile.PersonaType != core.PersonaCreator && profile.PersonaType != core.PersonaBrand {
		s.writeError(w, &generate.ValidationError{Field: "personaType", Reason: `must be "creator" or "brand"`})
		return
	}
	if err := s.store.SaveBrandProfile(profile); err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handleDeleteBrandProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteBrandProfile(); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, &generate.ValidationError{Field: "limit", Reason: "must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := s.store.ListHistory(limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if entries == nil {
		entries = []core.HistoryEntry{}
	}
	s.respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := s.store.GetHistory(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteHistory(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func variationIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return 0, &generate.ValidationError{Field: "index", Reason: "must be a non-negative integer"}
	}
	return index, nil
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	index, err := variationIndex(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req struct {
		Feedback core.Feedback `json:"feedback"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	switch req.Feedback {
	case core.FeedbackLiked, core.FeedbackDisliked, "":
	default:
		s.writeError(w, &generate.ValidationError{Field: "feedback", Reason: `must be "liked", "disliked", or empty to clear`})
		return
	}

	if err := s.store.UpdateFeedback(chi.URLParam(r, "id"), index, req.Feedback); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	index, err := variationIndex(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var perf core.PerformanceData
	if err := decodeBody(r, &perf); err != nil {
		s.writeError(w, err)
		return
	}
	if perf.Views < 0 || perf.Likes < 0 || perf.Sales < 0 {
		s.writeError(w, &generate.ValidationError{Field: "performance", Reason: "values must be non-negative"})
		return
	}

	if err := s.store.UpdatePerformance(chi.URLParam(r, "id"), index, perf); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
