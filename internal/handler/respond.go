package handler

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Envelope is the structured response every handler produces. JSON clients
// receive it verbatim; browsers get a redirect when Redirect is set, or the
// named view rendered with Payload.
type Envelope struct {
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Template   string         `json:"template,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	Redirect   string         `json:"redirect,omitempty"`
}

func respond(w http.ResponseWriter, r *http.Request, env Envelope) {
	if env.Redirect != "" {
		w.Header().Set("Location", env.Redirect)
	}

	if !wantsHTML(r) {
		writeJSON(w, env.StatusCode, env)
		return
	}

	if env.Redirect != "" {
		http.Redirect(w, r, env.Redirect, http.StatusSeeOther)
		return
	}

	if env.Template != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(env.StatusCode)
		if err := templates.ExecuteTemplate(w, env.Template+".html", env.Payload); err != nil {
			slog.Error("render template", "template", env.Template, "error", err)
		}
		return
	}

	writeJSON(w, env.StatusCode, env)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// wantsHTML distinguishes browser navigation from API/test clients. Only an
// explicit text/html Accept header gets rendered views and real redirects.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
