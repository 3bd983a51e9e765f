package http

import (
	"html/template"
	"net/http"
	"time"

	"qr-redirect/internal/redirect/domain"
	"qr-redirect/internal/redirect/usecase"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var formTemplate = template.Must(template.New("form").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <title>QR Redirect Admin</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 2rem; }
        form { margin-bottom: 2rem; }
        label { display: block; margin-bottom: 0.5rem; }
        input { padding: 0.5rem; width: 24rem; max-width: 100%; margin-bottom: 1rem; }
        button { padding: 0.5rem 1rem; cursor: pointer; }
        .result { border: 1px solid #ccc; padding: 1.5rem; max-width: 30rem; }
        .qr { margin-top: 1rem; }
        .error { color: #b00020; }
    </style>
</head>
<body>
    <h1>Create or Update Redirect</h1>
    <form method="post">
        <label>
            Unique ID:
            <input type="text" name="unique_id" value="{{.UniqueID}}" required />
        </label>
        <label>
            Final URL:
            <input type="url" name="final_url" value="{{.FinalURL}}" required />
        </label>
        <button type="submit">Submit</button>
    </form>

    {{if .Error}}
        <p class="error">{{.Error}}</p>
    {{end}}

    {{with .Result}}
    <div class="result">
        <p>Status: <strong>{{.Status}}</strong></p>
        <p>Redirect URL: <a href="{{.RedirectURL}}">{{.RedirectURL}}</a></p>
        <p>Final URL: <a href="{{.FinalURL}}">{{.FinalURL}}</a></p>
        <div class="qr">
            <img src="{{.QRCodeDataURI}}" alt="QR Code" />
        </div>
    </div>
    {{end}}

    <p><a href="/admin/entries">View all entries</a></p>
    {{if .UniqueID}}
        <p><a href="/qr/{{.UniqueID}}">Direct QR image for {{.UniqueID}}</a></p>
    {{end}}
</body>
</html>
`))

var entriesTemplate = template.Must(template.New("entries").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <title>Redirect Map</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 2rem; }
        table { border-collapse: collapse; width: 100%; max-width: 60rem; }
        th, td { border: 1px solid #ccc; padding: 0.5rem 0.75rem; text-align: left; }
        tr:nth-child(even) { background: #f7f7f7; }
    </style>
</head>
<body>
    <h1>Registered Redirects</h1>
    {{if .Entries}}
    <table>
        <thead>
            <tr>
                <th>Unique ID</th>
                <th>Redirect URL</th>
                <th>Final URL</th>
                <th>Updated</th>
                <th>QR Code</th>
            </tr>
        </thead>
        <tbody>
        {{range .Entries}}
            <tr>
                <td>{{.UniqueID}}</td>
                <td><a href="{{.RedirectURL}}">{{.RedirectURL}}</a></td>
                <td><a href="{{.FinalURL}}">{{.FinalURL}}</a></td>
                <td>{{.UpdatedAt}}</td>
                <td><a href="/qr/{{.UniqueID}}">QR</a></td>
            </tr>
        {{end}}
        </tbody>
    </table>
    {{else}}
        <p>No entries registered yet.</p>
    {{end}}

    <p><a href="/admin/form">Back to form</a></p>
</body>
</html>
`))

type formResult struct {
	Status      string
	RedirectURL string
	FinalURL    string
	// QRCodeDataURI is pre-built in Go so html/template's URL
	// normalization cannot corrupt the base64 payload.
	QRCodeDataURI template.URL
}

type formContext struct {
	UniqueID string
	FinalURL string
	Result   *formResult
	Error    string
}

type entryRow struct {
	UniqueID    string
	RedirectURL string
	FinalURL    string
	UpdatedAt   string
}

type entriesContext struct {
	Entries []entryRow
}

// AdminForm handles GET|POST /admin/form. A POST performs the same
// registration as the webhook and renders the outcome inline.
func (h *Handler) AdminForm(w http.ResponseWriter, r *http.Request) {
	ctx := formContext{}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			ctx.Error = "invalid form submission"
			h.renderForm(w, ctx)
			return
		}

		ctx.UniqueID = r.PostFormValue("unique_id")
		ctx.FinalURL = r.PostFormValue("final_url")

		entry, status, err := h.service.Register(r.Context(), ctx.UniqueID, ctx.FinalURL)
		if err != nil {
			ctx.Error = err.Error()
			h.renderForm(w, ctx)
			return
		}

		redirectURL := usecase.BuildRedirectURL(h.requestBaseURL(r), entry.Slug)
		qrCode, err := h.encoder.EncodeBase64(redirectURL)
		if err != nil {
			h.logger.Error("failed to encode qr code",
				zap.String("unique_id", entry.UniqueID),
				zap.Error(err),
			)
			ctx.Error = "failed to generate qr code"
			h.renderForm(w, ctx)
			return
		}

		ctx.UniqueID = entry.UniqueID
		ctx.Result = &formResult{
			Status:        status,
			RedirectURL:   redirectURL,
			FinalURL:      entry.FinalURL,
			QRCodeDataURI: template.URL("data:image/png;base64," + qrCode),
		}
	}

	h.renderForm(w, ctx)
}

// AdminEntries handles GET /admin/entries
func (h *Handler) AdminEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	base := h.requestBaseURL(r)
	rows := lo.Map(entries, func(e *domain.Entry, _ int) entryRow {
		return entryRow{
			UniqueID:    e.UniqueID,
			RedirectURL: usecase.BuildRedirectURL(base, e.Slug),
			FinalURL:    e.FinalURL,
			UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
		}
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := entriesTemplate.Execute(w, entriesContext{Entries: rows}); err != nil {
		h.logger.Error("failed to render entries page", zap.Error(err))
	}
}

// renderForm renders the admin form page. Errors are shown inline on the
// page rather than as HTTP error statuses, so the form stays usable.
func (h *Handler) renderForm(w http.ResponseWriter, ctx formContext) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, ctx); err != nil {
		h.logger.Error("failed to render form page", zap.Error(err))
	}
}
