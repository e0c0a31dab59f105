package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smallnest/studymap/internal/validate"
	"github.com/smallnest/studymap/notes"
	"github.com/smallnest/studymap/roadmap"
	"github.com/smallnest/studymap/study"
	"github.com/smallnest/studymap/tool"
)

const (
	kindParse    = "parse"
	kindUpstream = "upstream"
)

// TopicRequest is the body of the generation endpoints.
type TopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// PDFRequest is the body of POST /generate-pdf.
type PDFRequest struct {
	Topic string `json:"topic" validate:"required"`
	Notes string `json:"notes" validate:"required"`
}

// DiagramRequest is the body of POST /diagram.
type DiagramRequest struct {
	Tree      roadmap.Tree `json:"tree"`
	Format    string       `json:"format" validate:"omitempty,oneof=mermaid dot ascii"`
	Direction string       `json:"direction" validate:"omitempty,oneof=LR TD"`
}

// ResourcesResponse is the body of GET /get-resources/{topic}. A missing
// video is encoded as an empty object.
type ResourcesResponse struct {
	Topic    string            `json:"topic"`
	Video    any               `json:"youtube_video"`
	Articles []tool.Article    `json:"articles"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// VideoResponse is the body of GET /api/resources/youtube/{query}.
type VideoResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Video   *tool.Video `json:"video"`
}

// ArticlesResponse is the body of GET /api/resources/articles/{query}.
type ArticlesResponse struct {
	Success  bool           `json:"success"`
	Articles []tool.Article `json:"articles"`
}

// NotesResponse is the body of POST /generate-notes.
type NotesResponse struct {
	Topic       string    `json:"topic"`
	Notes       string    `json:"notes"`
	HTML        string    `json:"html"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	// Message holds the underlying cause where Error is a fixed summary.
	Message string `json:"message,omitempty"`
	// RawResponse carries the model's unparseable answer on parse failures.
	RawResponse string `json:"raw_response,omitempty"`
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"message": "AI Roadmap Generator API is running!"})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "JEE Roadmap API is running",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	})
}

// generateRoadmap handles POST /generate-roadmap
func (s *Server) generateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if !s.decode(w, r, &req) {
		return
	}

	tree, err := s.gen.GenerateRoadmap(r.Context(), req.Topic)
	s.metrics.observeGeneration("roadmap", err)
	if err != nil {
		s.respondGenerationError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, tree)
}

// getResources handles GET /get-resources/{topic}
func (s *Server) getResources(w http.ResponseWriter, r *http.Request) {
	topic, ok := s.pathTopic(w, r)
	if !ok {
		return
	}

	res := s.finder.Find(r.Context(), topic)
	s.metrics.observeLookup("video", res.VideoErr)
	s.metrics.observeLookup("articles", res.ArticlesErr)

	resp := ResourcesResponse{
		Topic:    res.Topic,
		Video:    struct{}{},
		Articles: res.Articles,
	}
	if res.Video != nil {
		resp.Video = res.Video
	}
	if resp.Articles == nil {
		resp.Articles = []tool.Article{}
	}
	if res.VideoErr != nil || res.ArticlesErr != nil {
		resp.Errors = make(map[string]string)
		if res.VideoErr != nil {
			resp.Errors["youtube_video"] = res.VideoErr.Error()
		}
		if res.ArticlesErr != nil {
			resp.Errors["articles"] = res.ArticlesErr.Error()
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// youtubeVideo handles GET /api/resources/youtube/{query}
func (s *Server) youtubeVideo(w http.ResponseWriter, r *http.Request) {
	topic, ok := s.pathTopic(w, r)
	if !ok {
		return
	}

	video, err := s.finder.FindVideo(r.Context(), topic)
	s.metrics.observeLookup("video", err)
	if err != nil {
		s.respondLookupError(w, "Failed to fetch YouTube video", err)
		return
	}
	if video == nil {
		s.respondJSON(w, http.StatusOK, VideoResponse{Message: "No video found"})
		return
	}
	s.respondJSON(w, http.StatusOK, VideoResponse{Success: true, Video: video})
}

// articles handles GET /api/resources/articles/{query}
func (s *Server) articles(w http.ResponseWriter, r *http.Request) {
	topic, ok := s.pathTopic(w, r)
	if !ok {
		return
	}

	articles, err := s.finder.FindArticles(r.Context(), topic)
	s.metrics.observeLookup("articles", err)
	if err != nil {
		s.respondLookupError(w, "Failed to fetch articles", err)
		return
	}
	if articles == nil {
		articles = []tool.Article{}
	}
	s.respondJSON(w, http.StatusOK, ArticlesResponse{Success: true, Articles: articles})
}

// pathTopic reads the URL-decoded topic from the wildcard path segment.
func (s *Server) pathTopic(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "*")
	topic, err := url.PathUnescape(raw)
	if err != nil {
		topic = raw
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		s.respondError(w, http.StatusBadRequest, study.ErrEmptyTopic.Error(), "")
		return "", false
	}
	return topic, true
}

func (s *Server) respondLookupError(w http.ResponseWriter, summary string, err error) {
	resp := ErrorResponse{Error: summary, Message: err.Error()}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, study.ErrNoBackend):
		status = http.StatusServiceUnavailable
	case study.IsUpstream(err):
		status = http.StatusBadGateway
		resp.Kind = kindUpstream
	default:
		s.logger.Error("%s: %v", summary, err)
	}
	s.respondJSON(w, status, resp)
}

// generateNotes handles POST /generate-notes
func (s *Server) generateNotes(w http.ResponseWriter, r *http.Request) {
	var req TopicRequest
	if !s.decode(w, r, &req) {
		return
	}

	text, err := s.gen.GenerateNotes(r.Context(), req.Topic)
	s.metrics.observeGeneration("notes", err)
	if err != nil {
		s.respondGenerationError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, NotesResponse{
		Topic:       req.Topic,
		Notes:       text,
		HTML:        notes.RenderHTML(text),
		GeneratedAt: s.now().UTC(),
	})
}

// generatePDF handles POST /generate-pdf
func (s *Server) generatePDF(w http.ResponseWriter, r *http.Request) {
	var req PDFRequest
	if !s.decode(w, r, &req) {
		return
	}

	now := s.now()
	doc := notes.Parse(req.Topic, req.Notes, now)

	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		s.logger.Error("render pdf for %q: %v", req.Topic, err)
		s.respondError(w, http.StatusInternalServerError, "failed to generate PDF", "")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", notes.Filename(req.Topic, now)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("write pdf: %v", err)
	}
}

// diagram handles POST /diagram
func (s *Server) diagram(w http.ResponseWriter, r *http.Request) {
	var req DiagramRequest
	if !s.decode(w, r, &req) {
		return
	}

	enc := roadmap.NewEncoder(roadmap.Options{Direction: roadmap.Direction(req.Direction)})
	var out string
	switch req.Format {
	case "dot":
		out = enc.DOT(req.Tree)
	case "ascii":
		out = enc.ASCII(req.Tree)
	default:
		out = enc.Mermaid(req.Tree)
	}

	stats := req.Tree.Stats()
	s.respondJSON(w, http.StatusOK, map[string]any{
		"diagram": out,
		"nodes":   stats.Nodes(),
		"edges":   stats.Edges,
	})
}

// decode reads a JSON body into dst, trims string topics and validates it.
// It writes the error response and returns false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return false
	}

	switch req := dst.(type) {
	case *TopicRequest:
		req.Topic = strings.TrimSpace(req.Topic)
	case *PDFRequest:
		req.Topic = strings.TrimSpace(req.Topic)
	}

	if err := validate.Struct(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error(), "")
		return false
	}
	return true
}

func (s *Server) respondGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, study.ErrEmptyTopic):
		s.respondError(w, http.StatusBadRequest, err.Error(), "")
	case roadmap.IsParseError(err):
		resp := ErrorResponse{Error: "failed to parse AI response: " + err.Error(), Kind: kindParse}
		var pe *study.ParseError
		if errors.As(err, &pe) {
			resp.RawResponse = pe.Response
		}
		s.respondJSON(w, http.StatusUnprocessableEntity, resp)
	case study.IsUpstream(err):
		s.respondError(w, http.StatusBadGateway, err.Error(), kindUpstream)
	default:
		s.logger.Error("generation failed: %v", err)
		s.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		s.logger.Error("failed to encode response: %v", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message, kind string) {
	s.respondJSON(w, status, ErrorResponse{Error: message, Kind: kind})
}

func generationOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case roadmap.IsParseError(err):
		return "parse_error"
	case study.IsUpstream(err):
		return "upstream_error"
	default:
		return "error"
	}
}
