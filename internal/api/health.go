package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"skyops/crewboard/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		dbStatus := "ok"
		if db == nil {
			dbStatus = "not configured"
		} else if err := db.Ping(); err != nil {
			dbStatus = "down"
		}

		overallStatus := "ok"
		if dbStatus == "down" {
			overallStatus = "down"
		}

		now := time.Now()
		resp := dtos.HealthCheckResponse{
			Status:    overallStatus,
			Database:  dbStatus,
			Uptime:    now.Sub(upSince).Round(time.Second).String(),
			Timestamp: now.UTC().Format(time.RFC3339),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
