package api

import (
	"net/http"
	"time"

	"skyops/crewboard/internal/common"
)

// filterKey reads the optional date filter from the query string. Any date
// shape the engine's normalizer accepts is allowed here; normalization
// happens inside the snapshot build.
func filterKey(r *http.Request) string {
	return r.URL.Query().Get("date")
}

// GetDashboard handles GET /api/v1/dashboard: the full composed snapshot.
func (h *Handlers) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Dashboard snapshot", snap)
	}
}

// GetSummary handles GET /api/v1/summary
func (h *Handlers) GetSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Summary", snap.Summary)
	}
}

// GetAircraft handles GET /api/v1/aircraft
func (h *Handlers) GetAircraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Aircraft block totals", snap.Aircraft)
	}
}

// GetCrew handles GET /api/v1/crew: role distribution of the filtered view.
func (h *Handlers) GetCrew() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Crew role distribution", snap.CrewRoles)
	}
}

// GetRotations handles GET /api/v1/crew/rotations
func (h *Handlers) GetRotations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Crew rotation groups", snap.Rotations)
	}
}

// GetUtilization handles GET /api/v1/utilization
func (h *Handlers) GetUtilization() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Aircraft utilization", snap.Utilization)
	}
}

// GetRollingHours handles GET /api/v1/rolling
func (h *Handlers) GetRollingHours() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		payload := map[string]any{
			"records": snap.RollingHours,
			"stats":   snap.RollingStats,
		}
		common.RespondSuccess(w, initTime, "Rolling duty-hour totals", payload)
	}
}

// GetSchedule handles GET /api/v1/schedule
func (h *Handlers) GetSchedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		snap := h.deps.Services.Dashboard.Snapshot(filterKey(r))
		common.RespondSuccess(w, initTime, "Crew schedule status", snap.CrewSchedule)
	}
}
