package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"qr-redirect/internal/qr"
	"qr-redirect/internal/redirect/domain"
	"qr-redirect/internal/redirect/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxQRSize caps caller-supplied QR image sizes.
const maxQRSize = 2048

// Handler handles HTTP requests for redirect operations
type Handler struct {
	service *usecase.RedirectService
	encoder *qr.Encoder
	baseURL string // optional; empty means derive from the request
	logger  *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.RedirectService, encoder *qr.Encoder, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		encoder: encoder,
		baseURL: baseURL,
		logger:  logger,
	}
}

// WebhookRequest represents the request body for registering a redirect
type WebhookRequest struct {
	UniqueID string `json:"unique_id"`
	FinalURL string `json:"final_url"`
}

// RegisterResponse represents the response for a successful registration
type RegisterResponse struct {
	UniqueID     string `json:"unique_id"`
	RedirectURL  string `json:"redirect_url"`
	FinalURL     string `json:"final_url"`
	QRCodeBase64 string `json:"qr_code_base64"`
	Status       string `json:"status"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Webhook handles POST /webhook
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, decodeErrorMessage(err))
		return
	}

	entry, status, err := h.service.Register(r.Context(), req.UniqueID, req.FinalURL)
	if err != nil {
		if errors.Is(err, domain.ErrUniqueIDRequired) || errors.Is(err, domain.ErrFinalURLRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	redirectURL := usecase.BuildRedirectURL(h.requestBaseURL(r), entry.Slug)

	qrCode, err := h.encoder.EncodeBase64(redirectURL)
	if err != nil {
		h.logger.Error("failed to encode qr code",
			zap.String("unique_id", entry.UniqueID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to generate qr code")
		return
	}

	code := http.StatusOK
	if status == usecase.StatusCreated {
		code = http.StatusCreated
	}

	writeJSON(w, code, RegisterResponse{
		UniqueID:     entry.UniqueID,
		RedirectURL:  redirectURL,
		FinalURL:     entry.FinalURL,
		QRCodeBase64: qrCode,
		Status:       status,
	})
}

// Redirect handles GET /{slug} and GET /redirect/{slug}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	entry, err := h.service.Resolve(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, "redirect_not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.Redirect(w, r, entry.FinalURL, http.StatusFound)
}

// QRImage handles GET /qr/{uniqueID}
func (h *Handler) QRImage(w http.ResponseWriter, r *http.Request) {
	uniqueID := chi.URLParam(r, "uniqueID")

	entry, err := h.service.Get(r.Context(), uniqueID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, "unique_id not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	redirectURL := usecase.BuildRedirectURL(h.requestBaseURL(r), entry.Slug)

	png, err := h.encoder.Encode(redirectURL)
	if err != nil {
		h.logger.Error("failed to encode qr code",
			zap.String("unique_id", uniqueID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to generate qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", uniqueID+".png"))
	w.Write(png)
}

// QRData handles GET /qr?data=...&size=N
func (h *Handler) QRData(w http.ResponseWriter, r *http.Request) {
	data := r.URL.Query().Get("data")
	if data == "" {
		writeError(w, http.StatusBadRequest, "data parameter is required")
		return
	}

	size := 0
	if s := r.URL.Query().Get("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "size must be a positive integer")
			return
		}
		if parsed > maxQRSize {
			parsed = maxQRSize
		}
		size = parsed
	}

	png, err := h.encoder.EncodeSized(data, size)
	if err != nil {
		h.logger.Error("failed to encode qr code", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// requestBaseURL returns the configured base URL, or falls back to the
// serving host derived from the request when none is configured.
func (h *Handler) requestBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return strings.TrimRight(h.baseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// decodeErrorMessage maps JSON decoding failures to the field-level
// messages the webhook contract promises.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " must be a string"
	}
	return "request body must be a JSON object with unique_id and final_url"
}
