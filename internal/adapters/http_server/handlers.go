// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"toorizo_quote/internal/app"
	"toorizo_quote/internal/domain"
)

type Handlers struct{ Q *app.QuoteService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/quotes", h.createQuote)
	s.mux.Get("/v1/rates/travel", h.listTravelRates)
}

// viewerFromRequest reads the caller's role from X-Viewer-Role. Anything that
// is not explicitly admin gets the redacted employee view.
func viewerFromRequest(r *http.Request) domain.Viewer {
	if strings.EqualFold(r.Header.Get("X-Viewer-Role"), string(domain.RoleAdmin)) {
		return domain.RoleAdmin
	}
	return domain.RoleEmployee
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) createQuote(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body unreadable or too large")
		return
	}

	var in domain.QuoteInput
	if err := json.Unmarshal(body, &in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	// An absent margin means the default, not zero percent.
	var probe struct {
		Travel struct {
			MarginPct *float64 `json:"margin_pct"`
		} `json:"travel"`
	}
	_ = json.Unmarshal(body, &probe)
	if probe.Travel.MarginPct == nil {
		in.Travel.MarginPct = domain.DefaultTravelMargin
	}

	res, err := h.Q.Quote(r.Context(), in)
	if err != nil {
		writeProblem(w, statusForDomainErr(err), "Invalid Quote Input", err.Error())
		return
	}

	view := app.RenderQuote(res, in.Client, viewerFromRequest(r))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Error().Err(err).Msg("failed to write createQuote body")
	}
}

func statusForDomainErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadDurationLabel),
		errors.Is(err, domain.ErrNoLocations),
		errors.Is(err, domain.ErrNoRooms),
		errors.Is(err, domain.ErrNegativeInput),
		errors.Is(err, domain.ErrBadMargin),
		errors.Is(err, domain.ErrInvalidAllocation),
		errors.Is(err, domain.ErrBadRequirementsMode),
		errors.Is(err, domain.ErrUnknownLocation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *Handlers) listTravelRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Q.TravelRates(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not load travel rates")
		return
	}

	// Optional exact-match filters.
	q := r.URL.Query()
	from, to, vehicle, bucket := q.Get("from"), q.Get("to"), q.Get("vehicle"), q.Get("bucket")
	if from != "" || to != "" || vehicle != "" || bucket != "" {
		filtered := rates[:0]
		for _, rt := range rates {
			if from != "" && !strings.EqualFold(rt.From, from) {
				continue
			}
			if to != "" && !strings.EqualFold(rt.To, to) {
				continue
			}
			if vehicle != "" && !strings.EqualFold(rt.Vehicle, vehicle) {
				continue
			}
			if bucket != "" && !strings.EqualFold(rt.Bucket, bucket) {
				continue
			}
			filtered = append(filtered, rt)
		}
		rates = filtered
	}

	etag, body := calcETagAndBody(rates)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listTravelRates body")
	}
}
