// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webui

import (
	"bytes"
	"html/template"

	"github.com/pdiddy/moment-search/internal/view"
)

const (
	idleLabel = "Answer"
	busyLabel = "⏳..."
)

// pageData is what the page template renders.
type pageData struct {
	Title       string
	Placeholder string
	IdleLabel   string
	BusyLabel   string
	State       view.State
}

var pageTemplate = template.Must(template.New("page").Parse(resultsTemplate + pageHTML))

// renderResults renders the error line and the result cards for st.
func renderResults(st view.State) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "results", st); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const resultsTemplate = `{{define "results"}}
{{- if .Error}}<p class="error">{{.Error}}</p>{{end}}
<div class="results-list">
{{- range .Results}}
  <div class="result-card fade-in">
    <div class="result-header">
      <span class="rank-badge"># Search Result {{.Rank}}</span>
    </div>
    <div class="video-wrapper">
      <iframe src="{{.EmbedURL}}" title="Result {{.Rank}}" frameborder="0"
        allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"
        allowfullscreen></iframe>
    </div>
    <div class="info">
      <h2>{{.VideoTitle}}</h2>
      <span class="badge">Start Time: {{.DisplayTime}}</span>
      <span class="score-badge">Confidence: {{.Confidence}}</span>
      <div class="why-box">
        <h3>💡 Why this moment?</h3>
        <p>{{.Explanation}}</p>
      </div>
      <details>
        <summary>View Transcript Snippet</summary>
        <p class="snippet">"...{{.Snippet}}..."</p>
      </details>
    </div>
  </div>
{{- end}}
</div>
{{end}}`

const pageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f4f6fb; color: #1f2937; }
    .container { max-width: 900px; margin: 0 auto; padding: 24px; }
    .search-box { display: flex; gap: 8px; margin-bottom: 16px; }
    .search-box input { flex: 1; padding: 12px; border: 1px solid #cbd5e1; border-radius: 8px; font-size: 16px; }
    .search-box button { padding: 12px 20px; border: 0; border-radius: 8px; background: #0f766e; color: #fff; cursor: pointer; }
    .search-box button:disabled, .search-box input:disabled { opacity: .6; cursor: wait; }
    .error { color: #b91c1c; font-weight: 600; }
    .result-card { background: #fff; border-radius: 12px; box-shadow: 0 8px 30px rgba(15,23,42,.08); padding: 16px; margin-bottom: 20px; }
    .rank-badge { font-weight: 700; color: #0f766e; }
    .video-wrapper { position: relative; padding-bottom: 56.25%; height: 0; margin: 12px 0; }
    .video-wrapper iframe { position: absolute; top: 0; left: 0; width: 100%; height: 100%; border-radius: 8px; }
    .badge, .score-badge { display: inline-block; margin-right: 8px; padding: 4px 10px; border-radius: 999px; background: #e2e8f0; font-size: 13px; }
    .score-badge { background: #ccfbf1; }
    .why-box { margin-top: 12px; padding: 12px; background: #fefce8; border-radius: 8px; }
    .why-box h3 { margin: 0 0 6px; font-size: 15px; }
    .snippet { font-style: italic; color: #475569; }
    .fade-in { animation: fade .3s ease-in; }
    @keyframes fade { from { opacity: 0; } to { opacity: 1; } }
  </style>
</head>
<body>
  <div class="container">
    <h1>🔍 {{.Title}}</h1>

    <form class="search-box" id="search-form" method="post" action="/">
      <input type="text" id="query" name="query" value="{{.State.Query}}"
        placeholder="{{.Placeholder}}" autocomplete="off"{{if .State.Busy}} disabled{{end}} />
      <button type="submit" id="submit" data-idle-label="{{.IdleLabel}}" data-busy-label="{{.BusyLabel}}"
        {{- if .State.Busy}} disabled{{end}}>{{if .State.Busy}}{{.BusyLabel}}{{else}}{{.IdleLabel}}{{end}}</button>
    </form>

    <div id="results">{{template "results" .State}}</div>
  </div>
  <script>
    (function () {
      var form = document.getElementById('search-form');
      var input = document.getElementById('query');
      var button = document.getElementById('submit');
      var results = document.getElementById('results');
      if (!window.WebSocket) { return; }

      var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(scheme + location.host + '/ws');
      var live = false;
      var send = function (msg) { if (live) { ws.send(JSON.stringify(msg)); } };

      ws.onopen = function () { live = true; send({ type: 'input', text: input.value }); };
      ws.onclose = function () { live = false; };
      ws.onmessage = function (ev) {
        var msg = JSON.parse(ev.data);
        if (msg.type !== 'state') { return; }
        input.disabled = msg.busy;
        button.disabled = msg.busy;
        button.textContent = msg.busy ? button.dataset.busyLabel : button.dataset.idleLabel;
        results.innerHTML = msg.html;
      };

      input.addEventListener('input', function () { send({ type: 'input', text: input.value }); });
      input.addEventListener('keydown', function (e) {
        if (!live) { return; }
        if (e.key === 'Enter') { e.preventDefault(); }
        send({ type: 'key', key: e.key });
      });
      form.addEventListener('submit', function (e) {
        if (!live) { return; }
        e.preventDefault();
        send({ type: 'submit' });
      });
    })();
  </script>
</body>
</html>`
