package httpserver

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/epicweb-dev/slides-mcp/internal/token"
)

// handoffPage auto-submits the decoded deck definition to slides.com in a
// new tab. The textarea is hidden; the button is a fallback for browsers
// that block the scripted submit.
var handoffPage = template.Must(template.New("handoff").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Creating Slides.com Presentation</title>
	<style>
		body { font-family: system-ui; max-width: 600px; margin: 2rem auto; text-align: center; }
		textarea[name="definition"] { display: none; }
		button { padding: 1rem 2rem; font-size: 1.1rem; }
	</style>
</head>
<body>
	<h1 id="title">Create Slides.com Presentation</h1>
	<form id="deck-form" action="https://slides.com/decks/define" method="POST" target="_blank">
		<textarea name="definition">{{.Definition}}</textarea>
		<button id="submit-button" type="submit">Create New Deck</button>
	</form>
	<script>
		window.onload = () => {
			const form = document.getElementById('deck-form')
			if (form) {
				form.addEventListener('submit', () => {
					document.getElementById('title').textContent = 'Creating Slides.com Presentation...'
					const button = document.getElementById('submit-button')
					button.textContent = 'Creating...'
					button.disabled = true
				})
				form.submit()
			}
		}
	</script>
</body>
</html>
`))

func (s *Server) handleHandoff(w http.ResponseWriter, r *http.Request) {
	tok := r.URL.Query().Get("deck")
	if tok == "" {
		http.Error(w, "No deck provided", http.StatusBadRequest)
		return
	}

	definition, err := token.Decode(tok)
	if err != nil {
		s.log.Warn("undecodable deck token", slog.String("error", err.Error()))
		http.Error(w, "Invalid deck parameter", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := handoffPage.Execute(w, struct{ Definition string }{Definition: definition}); err != nil {
		s.log.Error("render handoff page", slog.String("error", err.Error()))
	}
}
