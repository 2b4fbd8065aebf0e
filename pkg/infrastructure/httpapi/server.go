// Package httpapi exposes the analysis engine over a small stateless HTTP
// surface. The engine itself performs no I/O; this boundary decodes multipart
// submissions, rejects malformed JSON before the engine runs, and wraps
// results in a success envelope.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"
	"github.com/preflighthq/preflight/pkg/application"
	"github.com/preflighthq/preflight/pkg/domain/review"
)

// maxUploadBytes bounds the in-memory multipart parse.
const maxUploadBytes = 32 << 20

// analysisTimeout bounds one request's analysis execution. The engine is
// synchronous and fast; this is boundary insurance, not engine behavior.
const analysisTimeout = 10 * time.Second

// apiResponse is the JSON envelope every endpoint returns.
type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// rubricResponse is the payload of GET /v1/rubric.
type rubricResponse struct {
	Categories []review.Category `json:"categories"`
	Questions  []review.Question `json:"questions"`
}

// Server is the stateless analysis HTTP server.
type Server struct {
	addr   string
	server *http.Server

	mu  sync.RWMutex
	svc *application.AnalysisService
}

// NewServer creates a server delegating to the given analysis service.
func NewServer(addr string, svc *application.AnalysisService) *Server {
	return &Server{addr: addr, svc: svc}
}

// SetService swaps the analysis service, e.g. after a rubric reload.
// In-flight requests keep the service they started with.
func (s *Server) SetService(svc *application.AnalysisService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.svc = svc
}

func (s *Server) service() *application.AnalysisService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.svc
}

// Start runs the server. It blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Analysis server starting on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler builds the route mux the server serves.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /v1/rubric", s.handleRubric)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleRubric(w http.ResponseWriter, r *http.Request) {
	rubric := s.service().Rubric()
	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Data: rubricResponse{
			Categories: rubric.Categories,
			Questions:  rubric.Questions,
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: "expected multipart form data"})
		return
	}

	sub, err := s.decodeSubmission(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Error: err.Error()})
		return
	}

	svc := s.service()
	t := timeout.New[*review.AnalysisResult](timeout.Config{DefaultTimeout: analysisTimeout})
	result, err := t.Execute(r.Context(), analysisTimeout, func(ctx context.Context) (*review.AnalysisResult, error) {
		return svc.AnalyzeSubmission(*sub), nil
	})
	if err != nil {
		log.Printf("analysis failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: result})
}

// decodeSubmission turns the multipart form into a fully decoded submission.
// Malformed metadata or answers JSON rejects the whole request; malformed
// screenshot dimensions are skipped.
func (s *Server) decodeSubmission(r *http.Request) (*application.Submission, error) {
	sub := &application.Submission{}

	if content, err := readFilePart(r, "manifest"); err != nil {
		return nil, err
	} else if content != "" {
		sub.InfoPlist = content
	}

	if content, err := readFilePart(r, "privacy"); err != nil {
		return nil, err
	} else if content != "" {
		sub.PrivacyManifest = content
	}

	// Metadata is always analyzed; an absent part means an empty record.
	meta := &review.Metadata{AgeRating: "4+"}
	if raw := r.FormValue("metadata"); raw != "" {
		parsed, err := parseMetadata(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid metadata JSON: %w", err)
		}
		meta = parsed
	}
	sub.Metadata = meta

	if raw := r.FormValue("screenshots"); raw != "" {
		shots, err := parseScreenshots(raw)
		if err == nil {
			sub.Screenshots = shots
			sub.HasScreenshots = true
		}
	}

	if raw := r.FormValue("answers"); raw != "" {
		answers, err := parseAnswers(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid answers JSON: %w", err)
		}
		sub.Answers = answers
	}

	return sub, nil
}

// readFilePart reads one optional uploaded file part as text.
func readFilePart(r *http.Request, name string) (string, error) {
	file, _, err := r.FormFile(name)
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s part: %w", name, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", fmt.Errorf("read %s content: %w", name, err)
	}
	return string(content), nil
}

func writeJSON(w http.ResponseWriter, status int, payload apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
