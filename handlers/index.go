package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

func (h handlers) registerIndex(router *mux.Router) {
	tmpl := template.Must(template.New("board").Parse(boardPage))
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		settings := h.store.Settings()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, settings); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}).Methods("GET")
}

// Presentational only; all filtering and scheduling happens server side.
var boardPage = strings.TrimSpace(`
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Departures</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;background:#111;color:#eee}
.hdr{padding:12px 16px;display:flex;justify-content:space-between;background:#1b1b1b}
.station{margin:12px;border:1px solid #333;border-radius:6px;overflow:hidden}
.station h2{font-size:15px;padding:8px 12px;background:#1b1b1b}
.station h2 small{font-weight:400;opacity:.6;margin-left:8px}
.err{color:#ff6b6b;font-size:12px;padding:4px 12px}
.dep{display:flex;justify-content:space-between;padding:8px 12px;border-top:1px solid #222;font-size:14px}
.dep .due{color:#ffd54f;font-weight:700}
.empty{padding:16px;opacity:.5;font-size:13px;text-align:center}
</style>
</head>
<body>
<div class="hdr"><strong>Departures</strong><span id="updated"></span></div>
<div id="board"></div>
<script>
async function load(){
  const resp = await fetch('/api/board');
  const body = await resp.json();
  const board = document.getElementById('board');
  let status = body.updated || '';
  if (body.data.refreshCountdown) status += ' · refresh in ' + body.data.refreshCountdown + 's';
  document.getElementById('updated').textContent = status;
  board.innerHTML = '';
  for (const card of body.data.stations) {
    const div = document.createElement('div');
    div.className = 'station';
    let rows = '';
    for (const d of card.departures) {
      const due = d.timeToStation < 60 ? 'Due' : Math.floor(d.timeToStation/60) + ' min';
      const platform = {{.ShowPlatform}} && d.platformName ? ' · ' + d.platformName : '';
      rows += '<div class="dep"><span>' + d.destinationName + ' · ' + d.lineName + platform +
        (d.delayed ? ' · delayed' : '') + '</span><span class="due">' + due + '</span></div>';
    }
    if (!rows) rows = '<div class="empty">No departures</div>';
    let meta = card.modesDisplay || '';
    if (card.filterSummary) meta += ' · ' + card.filterSummary;
    div.innerHTML = '<h2>' + card.station.name + '<small>' + meta + '</small></h2>' +
      (card.error ? '<div class="err">' + card.error + '</div>' : '') + rows;
    board.appendChild(div);
  }
}
load();
setInterval(load, 1000);
</script>
</body>
</html>
`)
