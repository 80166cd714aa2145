package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSchedulingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/workload", handler.GetLeagueWorkload)
	mux.HandleFunc("GET /v1/games/{gameID}/conflicts", handler.GetGameConflicts)
	mux.HandleFunc("GET /v1/games/{gameID}/assignments/preview", handler.PreviewAssignments)
	mux.HandleFunc("POST /v1/games/{gameID}/assignments/auto", handler.AutoAssign)
	mux.HandleFunc("POST /v1/games/{gameID}/assignments/validate", handler.ValidateAssignment)
	mux.HandleFunc("GET /v1/officials/{officialID}/availability", handler.GetOfficialAvailability)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/auto-assign-released",
		RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAutoAssignReleasedJob)))
}
