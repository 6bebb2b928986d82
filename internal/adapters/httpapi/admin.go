package httpapi

import (
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"regportal/internal/domain/entities"
	"regportal/internal/export"
)

// requireAdmin gates the admin surface behind a server-side bearer token.
// The secret never ships to the client; comparison is constant-time.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Code: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleAdminList(w http.ResponseWriter, r *http.Request) {
	regs, err := s.ledger.LoadAll(r.Context())
	degraded := err != nil
	if degraded {
		log.Printf("httpapi: admin list degraded: %v", err)
	}

	filtered := filterRegistrations(regs, r.URL.Query().Get("event"), r.URL.Query().Get("q"))

	out := make([]registrationResponse, 0, len(filtered))
	for _, reg := range filtered {
		resp := toResponse(reg)
		if reg.UploadedFilePath != "" {
			if link, err := s.files.DownloadLink(reg.UploadedFilePath); err == nil {
				resp.DownloadLink = link
			} else {
				log.Printf("httpapi: download link for %q: %v", reg.UploadedFilePath, err)
			}
		}
		out = append(out, resp)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"registrations": out,
		"total":         len(regs),
		"shown":         len(out),
		"degraded":      degraded,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	regs, err := s.ledger.LoadAll(r.Context())
	if err != nil {
		s.writeDomainError(w, err, nil)
		return
	}

	eventFilter := r.URL.Query().Get("event")
	filtered := filterRegistrations(regs, eventFilter, r.URL.Query().Get("q"))

	scope := "all"
	if eventFilter != "" {
		scope = sanitizeScope(eventFilter)
	}
	stamp := time.Now().Format("2006-01-02")

	switch format := r.URL.Query().Get("format"); format {
	case "", "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="registrations_%s_%s.xlsx"`, scope, stamp))
		if err := export.ToXLSX(filtered, s.catalog, w); err != nil {
			log.Printf("httpapi: xlsx export: %v", err)
		}
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="registrations_%s_%s.pdf"`, scope, stamp))
		if err := export.ToPDF(filtered, s.catalog, w); err != nil {
			log.Printf("httpapi: pdf export: %v", err)
		}
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "format must be xlsx or pdf", Code: "bad_request"})
	}
}

// filterRegistrations narrows regs by exact event name and a free-text query
// over student name, email and college.
func filterRegistrations(regs []entities.Registration, event, q string) []entities.Registration {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]entities.Registration, 0, len(regs))
	for _, reg := range regs {
		if event != "" && reg.EventName != event {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(reg.StudentName), q) &&
			!strings.Contains(strings.ToLower(reg.Email), q) &&
			!strings.Contains(strings.ToLower(reg.CollegeName), q) {
			continue
		}
		out = append(out, reg)
	}
	return out
}

func sanitizeScope(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
