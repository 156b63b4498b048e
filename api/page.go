package api

import (
	"html/template"
	"net/http"

	"github.com/openclaw/terminal-qr/matrix"
	"github.com/openclaw/terminal-qr/script"
	"github.com/openclaw/terminal-qr/session"
)

type tab struct {
	Name   string
	Label  string
	Active bool
}

type pageData struct {
	Max      int
	MaxWidth int
	Tabs     []tab
	Terminal int
	Preview  int
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, release := s.Sessions.acquire(w, r)
	current := sess.Dialect()
	widths := sess.Widths()
	release()

	data := pageData{
		Max:      matrix.MaxContentLength,
		MaxWidth: session.MaxWidth,
		Terminal: widths.Terminal,
		Preview:  widths.Preview,
	}
	for _, d := range script.Dialects {
		data.Tabs = append(data.Tabs, tab{Name: d.String(), Label: d.Label(), Active: d == current})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.Log.Error("render page", "error", err)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Terminal QR Code</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #0a0a0a;
    color: #e0e0e0;
    display: flex;
    justify-content: center;
    min-height: 100vh;
    padding: 32px 16px;
  }
  .card {
    background: #1a1a1a;
    border: 1px solid #333;
    border-radius: 16px;
    padding: 32px;
    max-width: 960px;
    width: 100%;
  }
  h1 { font-size: 20px; font-weight: 600; margin-bottom: 8px; }
  .subtitle { color: #888; font-size: 14px; margin-bottom: 24px; }
  textarea, input {
    width: 100%;
    background: #0f0f0f;
    color: #e0e0e0;
    border: 1px solid #333;
    border-radius: 8px;
    padding: 8px;
    font-size: 14px;
  }
  textarea { height: 80px; resize: vertical; }
  .row { display: flex; gap: 16px; margin: 12px 0; }
  .row label { flex: 1; font-size: 13px; color: #888; }
  #charCount { font-size: 12px; color: #888; margin-top: 4px; }
  #charCount.over { color: #f87171; }
  button {
    background: #262626;
    color: #e0e0e0;
    border: 1px solid #333;
    border-radius: 8px;
    padding: 8px 14px;
    cursor: pointer;
    font-size: 14px;
  }
  button.primary { background: #4ade80; color: #0a0a0a; border-color: #4ade80; }
  .tab { display: flex; gap: 8px; margin: 16px 0 8px; }
  .tab button.active { border-color: #4ade80; color: #4ade80; }
  #codeOutput pre {
    background: #0f0f0f;
    border: 1px solid #333;
    border-radius: 8px;
    padding: 12px;
    font-size: 12px;
    max-height: 280px;
    overflow: auto;
    white-space: pre;
  }
  #previewArea { margin-top: 16px; overflow: auto; }
  #previewArea pre { line-height: 1; font-size: 10px; display: inline-block; }
  .actions { display: flex; gap: 8px; margin-top: 12px; }
</style>
</head>
<body>
<div class="card">
  <h1>Terminal QR Code</h1>
  <p class="subtitle">Turn a short text into a QR code script that draws itself in a terminal</p>

  <textarea id="text" placeholder="Text or URL to encode"></textarea>
  <div id="charCount">Characters: 0 / max: {{.Max}} (QR version 7)</div>

  <div class="row">
    <label>Terminal width <input id="terminalWidth" type="number" min="1" max="{{.MaxWidth}}" value="{{.Terminal}}"></label>
    <label>Preview width <input id="previewWidth" type="number" min="1" max="{{.MaxWidth}}" value="{{.Preview}}"></label>
  </div>
  <button class="primary" id="generate">Generate</button>

  <div class="tab">
    {{range .Tabs}}<button data-dialect="{{.Name}}"{{if .Active}} class="active"{{end}}>{{.Label}}</button>
    {{end}}
  </div>
  <div id="codeOutput"></div>
  <div class="actions">
    <button id="copy">Copy script</button>
    <button id="download">Download script</button>
  </div>
  <div id="previewArea"></div>
</div>
<script>
(function() {
  var textEl = document.getElementById('text');
  var countEl = document.getElementById('charCount');
  var codeEl = document.getElementById('codeOutput');
  var previewEl = document.getElementById('previewArea');
  var tabs = document.querySelectorAll('.tab button');

  function post(path, body) {
    return fetch(path, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(body)
    }).then(function(r) {
      return r.json().then(function(data) {
        if (!r.ok) throw new Error(data.error || r.statusText);
        return data;
      });
    });
  }

  function show(view) {
    codeEl.innerHTML = view.script_html;
    previewEl.innerHTML = view.preview;
  }

  function updateCount() {
    post('/count', { text: textEl.value }).then(function(c) {
      countEl.textContent = c.label;
      countEl.className = c.ok ? '' : 'over';
    });
  }

  function generate() {
    post('/generate', {
      text: textEl.value,
      terminal_width: document.getElementById('terminalWidth').value,
      preview_width: document.getElementById('previewWidth').value
    }).then(show).catch(function(e) { alert(e.message); });
  }

  function switchDialect(name) {
    tabs.forEach(function(btn) {
      btn.classList.toggle('active', btn.getAttribute('data-dialect') === name);
    });
    post('/dialect', { dialect: name }).then(function(res) {
      if (res.regenerated) show(res);
    }).catch(function(e) { alert(e.message); });
  }

  function copyScript() {
    fetch('/script').then(function(r) {
      if (!r.ok) return r.json().then(function(d) { throw new Error(d.error); });
      return r.text();
    }).then(function(text) {
      return navigator.clipboard.writeText(text).then(function() {
        alert('Script copied to clipboard!');
      }, function() {
        alert('Copy failed, please select the script and copy it manually');
      });
    }).catch(function(e) { alert(e.message); });
  }

  textEl.addEventListener('input', updateCount);
  document.getElementById('generate').addEventListener('click', generate);
  document.getElementById('copy').addEventListener('click', copyScript);
  document.getElementById('download').addEventListener('click', function() {
    window.location.href = '/download';
  });
  tabs.forEach(function(btn) {
    btn.addEventListener('click', function() { switchDialect(btn.getAttribute('data-dialect')); });
  });
})();
</script>
</body>
</html>`
