package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"regportal/internal/domain"
	"regportal/internal/domain/entities"
)

// Upload types the form accepts, matching the original portal.
var allowedUploadExt = map[string]bool{
	".ppt":  true,
	".pptx": true,
	".pdf":  true,
}

const maxUploadBytes = 16 << 20

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var (
		reg entities.Registration
		err error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		reg, err = s.parseMultipartSubmit(r)
		if err != nil {
			submissions.WithLabelValues("validation").Inc()
			s.writeDomainError(w, err, nil)
			return
		}
	} else {
		var req registrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			submissions.WithLabelValues("validation").Inc()
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON", Code: "bad_request"})
			return
		}
		reg = req.toDomain()
	}

	stored, err := s.ledger.Submit(r.Context(), reg)
	if err != nil {
		submissions.WithLabelValues(outcomeFor(err)).Inc()
		s.writeDomainError(w, err, map[string]any{"EventName": reg.EventName})
		return
	}
	submissions.WithLabelValues("accepted").Inc()

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":      s.translator.T(s.locale, "submit.success", map[string]any{"EventName": stored.EventName}),
		"registration": toResponse(*stored),
	})
}

// parseMultipartSubmit reads the form fields and stores the optional
// presentation file before the registration reaches the Ledger; the Ledger
// only ever sees the stored path.
func (s *Server) parseMultipartSubmit(r *http.Request) (entities.Registration, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return entities.Registration{}, domain.FieldErrors{"file": "upload too large or malformed"}
	}

	year, _ := strconv.Atoi(r.FormValue("year"))
	reg := entities.Registration{
		Email:       r.FormValue("email"),
		StudentName: r.FormValue("student_name"),
		CollegeName: r.FormValue("college_name"),
		Department:  r.FormValue("department"),
		Year:        year,
		Phone:       r.FormValue("phone"),
		TeamMember1: r.FormValue("team_member1"),
		TeamMember2: r.FormValue("team_member2"),
		TeamMember3: r.FormValue("team_member3"),
		EventName:   r.FormValue("event_name"),
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return reg, nil
		}
		return entities.Registration{}, domain.FieldErrors{"file": "malformed upload"}
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExt[ext] {
		return entities.Registration{}, domain.FieldErrors{"file": "only PPT, PPTX or PDF files are accepted"}
	}

	path, err := s.files.Store(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("httpapi: store upload: %v", err)
		return entities.Registration{}, domain.ErrStoreWrite
	}
	reg.UploadedFilePath = path
	return reg, nil
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	out := make([]eventResponse, 0, len(s.catalog))
	for _, cfg := range s.catalog {
		open, err := s.ledger.IsEventOpen(r.Context(), cfg.Name)
		if err != nil {
			log.Printf("httpapi: event open check %q: %v", cfg.Name, err)
			open = false
		}
		out = append(out, eventResponse{
			Name:           cfg.Name,
			Category:       string(cfg.Category),
			MaxTeamMembers: cfg.MaxTeamMembers,
			RequiresFile:   cfg.RequiresFile,
			Description:    cfg.Description,
			Open:           open,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	regs, err := s.ledger.LoadAll(r.Context())
	degraded := err != nil
	agg := s.ledger.AggregateCounts(regs)

	perCategory := make(map[string]int, len(agg.PerCategory))
	for c, n := range agg.PerCategory {
		perCategory[string(c)] = n
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Total:       agg.Total,
		Ceiling:     s.ceiling,
		PerCategory: perCategory,
		PerEvent:    agg.PerEvent,
		Degraded:    degraded,
	})
}

func (s *Server) handleEmailCheck(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email query parameter is required", Code: "bad_request"})
		return
	}
	registered, err := s.ledger.EmailRegistered(r.Context(), email)
	if err != nil {
		s.writeDomainError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"registered": registered})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	path, ok := s.files.Resolve(token)
	if !ok {
		http.NotFound(w, r)
		return
	}
	f, err := s.files.Open(r.Context(), path)
	if err != nil {
		log.Printf("httpapi: open upload %q: %v", path, err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	if _, err := io.Copy(w, f); err != nil {
		log.Printf("httpapi: stream upload %q: %v", path, err)
	}
}

func outcomeFor(err error) string {
	if _, ok := domain.IsValidation(err); ok {
		return "validation"
	}
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	default:
		return "error"
	}
}
