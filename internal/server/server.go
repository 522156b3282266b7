// Package server serves the calculator as an HTML page and a JSON API.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-amortization/internal/calculator"
	"github.com/iwvelando/loan-amortization/internal/logging"
	"github.com/iwvelando/loan-amortization/pkg/amortization"
	"github.com/iwvelando/loan-amortization/pkg/constants"
	"github.com/iwvelando/loan-amortization/pkg/locale"
	"github.com/iwvelando/loan-amortization/pkg/validation"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

type handler struct {
	logger      *zap.Logger
	calc        *calculator.Calculator
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and schedule API.
func NewHandler(logger *zap.Logger, calc *calculator.Calculator, maxBodySize int64, version string) http.Handler {
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logging.OrNop(logger),
		calc:        calc,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// HTML form
	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/reset", h.handleReset)

	// Schedule API endpoint
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	mux.HandleFunc("/healthz", h.handleHealth)

	return mux
}

type systemOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Lang    string
	Labels  locale.Labels
	Systems []systemOption
	View    calculator.View
	Ready   bool
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.renderPage(w, http.StatusOK, h.calc.Reset())
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
		if err := r.ParseForm(); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, fmt.Sprintf("failed to parse form: %v", err), http.StatusBadRequest)
			return
		}

		view := h.calc.Submit(calculator.Form{
			Principal: r.PostForm.Get("principal"),
			Rate:      r.PostForm.Get("rate"),
			Periods:   r.PostForm.Get("periods"),
			System:    r.PostForm.Get("system"),
		})
		h.renderPage(w, http.StatusOK, view)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.renderPage(w, http.StatusOK, h.calc.Reset())
}

func (h *handler) renderPage(w http.ResponseWriter, status int, view calculator.View) {
	loc := h.calc.Locale()

	selected := view.Form.System
	if _, err := amortization.ParseSystem(selected); err != nil {
		selected = h.calc.DefaultForm().System
	}
	systems := make([]systemOption, 0, len(amortization.Systems))
	for _, s := range amortization.Systems {
		systems = append(systems, systemOption{
			Value:    s.String(),
			Label:    s.Label(),
			Selected: strings.EqualFold(strings.TrimSpace(selected), s.String()),
		})
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Lang:    loc.Tag.String(),
		Labels:  loc.Labels(),
		Systems: systems,
		View:    view,
		Ready:   view.State == calculator.Ready,
	})
	if err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", "server.renderPage"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// flexString accepts a JSON string or number, so API clients can send either
// "1.000,50" or 1000.5.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", trimmed)
	}
	v, err := n.Float64()
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", trimmed, err)
	}
	*f = flexString(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

type scheduleRequest struct {
	Principal flexString `json:"principal"`
	Rate      flexString `json:"rate"`
	Periods   flexString `json:"periods"`
	System    string     `json:"system"`
}

type scheduleResponse struct {
	Request  amortization.Request `json:"request"`
	Result   amortization.Result  `json:"result"`
	Summary  calculator.Summary   `json:"summary"`
	Subtitle string               `json:"subtitle"`
}

type validationErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var payload scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), "server.handleSchedule")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "server.handleSchedule")
		return
	}

	view := h.calc.Submit(calculator.Form{
		Principal: string(payload.Principal),
		Rate:      string(payload.Rate),
		Periods:   string(payload.Periods),
		System:    payload.System,
	})
	if view.State != calculator.Ready {
		h.writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
			Error: view.Message,
			Field: view.Field,
			Kind:  validation.KindOf(view.Err),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Request:  view.Request,
		Result:   *view.Result,
		Summary:  view.Summary,
		Subtitle: view.Subtitle,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Warn("schedule request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		status = http.StatusInternalServerError
		buf.Reset()
		fmt.Fprintf(&buf, "{\"error\":%q}\n", http.StatusText(status))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
