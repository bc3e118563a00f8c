package handler

import (
	"net/http"

	"jewelstore/internal/config"
	"jewelstore/internal/database"

	"github.com/rs/zerolog"
)

// DiagHandler serves the readiness message and the diagnostics endpoint.
// Diagnostics report failures as data and never return an error status.
type DiagHandler struct {
	health *database.Health
	dbCfg  config.DatabaseConfig
	logger zerolog.Logger
}

// NewDiagHandler creates a new diagnostics handler.
func NewDiagHandler(health *database.Health, dbCfg config.DatabaseConfig, logger zerolog.Logger) *DiagHandler {
	return &DiagHandler{
		health: health,
		dbCfg:  dbCfg,
		logger: logger.With().Str("handler", "diag").Logger(),
	}
}

// Root handles GET / requests with a static readiness message.
func (h *DiagHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Anti-Tarnish Jewellery API ready",
	})
}

// diagReport mirrors the storefront's expected diagnostics shape: status
// strings rather than machine fields, booleans spelled as check marks.
type diagReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Test handles GET /test requests, reporting document store connectivity and
// configuration presence.
func (h *DiagHandler) Test(w http.ResponseWriter, r *http.Request) {
	report := diagReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.health.Connected() {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		if names, err := h.health.Collections(r.Context(), 10); err != nil {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			report.Database = "⚠️  Connected but Error: " + msg
		} else {
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	report.DatabaseURL = presenceFlag(h.dbCfg.URL != "")
	report.DatabaseName = presenceFlag(h.dbCfg.Name != "")

	h.logger.Debug().
		Str("database", report.Database).
		Int("collections", len(report.Collections)).
		Msg("diagnostics served")

	writeJSON(w, http.StatusOK, report)
}

func presenceFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
