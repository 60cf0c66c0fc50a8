package monitor

import (
	"net/http"
	"os"

	"project-review-api/config"

	"github.com/gin-gonic/gin"
)

func logsToken() string {
	if t := os.Getenv("LOGS_TOKEN"); t != "" {
		return t
	}
	return "secret-token"
}

// RegisterMonitorPage serves a minimal live status/log viewer.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Review API Monitor</title>
  <style>
    body { background: #101418; color: #d8dee9; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; padding: 24px; }
    h1 { font-size: 1.4rem; margin-bottom: 12px; }
    .card { background: #1a2027; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
    pre { max-height: 480px; overflow-y: auto; white-space: pre-wrap; font-size: 0.85rem; }
    button { background: #3b82f6; border: 0; color: #fff; border-radius: 6px; padding: 6px 14px; cursor: pointer; }
  </style>
</head>
<body>
  <h1>Project Review API</h1>
  <div class="card"><span id="status">Status: checking...</span></div>
  <div class="card">
    <button onclick="toggleLive()" id="toggleBtn">Pause</button>
    <pre id="logs">Loading logs...</pre>
  </div>
  <script>
    let live = true;
    function fetchStatus() {
      fetch('/api/v1/health')
        .then(r => r.json())
        .then(d => { document.getElementById('status').textContent = 'Status: ' + (d.status === 'ok' ? 'online' : 'offline'); })
        .catch(() => { document.getElementById('status').textContent = 'Status: offline'; });
    }
    function fetchLogs() {
      if (!live) return;
      const token = new URLSearchParams(location.search).get('token') || '';
      fetch('/logs?token=' + token)
        .then(r => r.text())
        .then(t => {
          const el = document.getElementById('logs');
          el.textContent = t;
          el.scrollTop = el.scrollHeight;
        });
    }
    function toggleLive() {
      live = !live;
      document.getElementById('toggleBtn').textContent = live ? 'Pause' : 'Resume';
    }
    fetchStatus(); fetchLogs();
    setInterval(fetchStatus, 5000);
    setInterval(fetchLogs, 5000);
  </script>
</body>
</html>`))
	})
}

// RegisterLogsRoute exposes the log file behind a token check.
func RegisterLogsRoute(router *gin.Engine) {
	router.GET("/logs", func(c *gin.Context) {
		if c.Query("token") != logsToken() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read log"})
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", logData)
	})
}
