package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/ai"
	"github.com/alnah/go-cv2pdf/internal/extract"
	"github.com/alnah/go-cv2pdf/internal/jobsites"
)

// resumeService is the slice of the library the handlers need.
type resumeService interface {
	Render(ctx context.Context, markup string, page *cv2pdf.PageSettings) ([]byte, error)
	GenerateResume(ctx context.Context, input cv2pdf.GenerateInput) ([]byte, error)
	Analyze(ctx context.Context, cvText string) (string, error)
	MissingSections(ctx context.Context, cvText, language string) (string, error)
}

// recommender matches jobsites.Client.
type recommender interface {
	Recommend(ctx context.Context, loc jobsites.Location) (*jobsites.Result, error)
}

// server holds handler dependencies.
type server struct {
	svc       resumeService
	jobs      recommender
	maxUpload int64
	logger    *log.Logger
}

// newServer wires the handlers onto a mux.
func newServer(svc resumeService, jobs recommender, maxUpload int64, logger *log.Logger) http.Handler {
	s := &server{svc: svc, jobs: jobs, maxUpload: maxUpload, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/resume/missing", s.handleMissing)
	mux.HandleFunc("POST /api/resume/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/job-sites", s.handleJobSites)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// runServe starts the HTTP API and blocks until the context is done.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseServeFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if flags.addr != "" {
		addr = flags.addr
	}

	svc := buildService(cfg, &flags.common, env)
	defer svc.Close()

	model := cfg.Model
	if flags.common.model != "" {
		model = flags.common.model
	}
	jobs := jobsites.New(ai.NewClient(env.Getenv("OPENAI_API_KEY"), model))

	logger := log.New(env.Stderr, "", log.LstdFlags)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(svc, jobs, cfg.Server.MaxUploadSize, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleHealth reports liveness.
func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a CV upload and returns HR-style feedback.
func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	filename, cvText, ok := s.readCVUpload(w, r)
	if !ok {
		return
	}

	analysis, err := s.svc.Analyze(r.Context(), cvText)
	if err != nil {
		s.writeServiceError(w, err, "analysis")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"filename": filename,
		"analysis": analysis,
	})
}

// handleMissing accepts a CV upload and returns a questionnaire for the
// missing or weak sections, in the requested language.
func (s *server) handleMissing(w http.ResponseWriter, r *http.Request) {
	filename, cvText, ok := s.readCVUpload(w, r)
	if !ok {
		return
	}

	questions, err := s.svc.MissingSections(r.Context(), cvText, r.FormValue("language"))
	if err != nil {
		s.writeServiceError(w, err, "missing-section")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "success",
		"filename":  filename,
		"questions": questions,
	})
}

// handleGenerate accepts a CV upload plus form fields and streams back
// the generated PDF.
func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	filename, cvText, ok := s.readCVUpload(w, r)
	if !ok {
		return
	}

	page := cv2pdf.DefaultPageSettings()
	if v := r.FormValue("page_size"); v != "" {
		page.Size = v
	}
	if v := r.FormValue("orientation"); v != "" {
		page.Orientation = v
	}

	pdf, err := s.svc.GenerateResume(r.Context(), cv2pdf.GenerateInput{
		CVText:    cvText,
		ExtraInfo: r.FormValue("extra_info"),
		Format:    r.FormValue("format"),
		Language:  r.FormValue("language"),
		Page:      page,
	})
	if err != nil {
		s.writeServiceError(w, err, "resume generation")
		return
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+"_resume.pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.logger.Printf("writing PDF response: %v", err)
	}
}

// jobSitesRequest mirrors the JSON body of the job-sites endpoint.
type jobSitesRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	CountryCode string   `json:"country_code"`
	Language    string   `json:"language"`
}

// handleJobSites resolves the user's location and returns recommended
// job boards.
func (s *server) handleJobSites(w http.ResponseWriter, r *http.Request) {
	var req jobSitesRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	res, err := s.jobs.Recommend(r.Context(), jobsites.Location{
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CountryCode: req.CountryCode,
		Language:    req.Language,
	})
	if err != nil {
		if errors.Is(err, jobsites.ErrNoLocation) {
			writeError(w, http.StatusBadRequest, "Location not provided")
			return
		}
		s.logger.Printf("job sites: %v", err)
		writeError(w, http.StatusInternalServerError, "Job site recommendation failed.")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// readCVUpload validates and extracts the multipart CV file. On failure
// it writes the error response and returns ok=false.
func (s *server) readCVUpload(w http.ResponseWriter, r *http.Request) (filename, cvText string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("File is too large. Max size is %d MB.", s.maxUpload>>20))
			return "", "", false
		}
		writeError(w, http.StatusBadRequest, "Missing file upload.")
		return "", "", false
	}
	defer file.Close()

	filename = header.Filename
	if filename == "" {
		filename = "uploaded_file"
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
	default:
		writeError(w, http.StatusBadRequest, "Unsupported file type. Allowed: PDF, DOCX, TXT.")
		return "", "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("File is too large. Max size is %d MB.", s.maxUpload>>20))
			return "", "", false
		}
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file.")
		return "", "", false
	}

	cvText, err = extract.FromFile(filename, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, extractErrorDetail(err))
		return "", "", false
	}

	return filename, cvText, true
}

// writeServiceError maps library errors onto HTTP status codes.
func (s *server) writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, cv2pdf.ErrEmptyCVText), errors.Is(err, cv2pdf.ErrCVTooShort):
		writeError(w, http.StatusBadRequest, "CV text too short or empty.")
	default:
		s.logger.Printf("%s: %v", op, err)
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("Internal %s error.", op))
	}
}

// extractErrorDetail maps extraction errors onto user-facing messages.
func extractErrorDetail(err error) string {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		return "Unsupported file type. Allowed: PDF, DOCX, TXT."
	case errors.Is(err, extract.ErrNoText):
		return "Cannot extract text from the uploaded file."
	default:
		return "Invalid or corrupted document."
	}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the {"detail": ...} shape.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
