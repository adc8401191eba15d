package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/periods", handler.ListPeriods)
	mux.HandleFunc("GET /v1/rankings/{periodID}", handler.GetRanking)
}

func registerParticipantRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/transfers/buy", RequireUser(http.HandlerFunc(handler.BuyPlayer)))
	mux.Handle("POST /v1/transfers/sell", RequireUser(http.HandlerFunc(handler.SellPlayer)))
	mux.Handle("GET /v1/roster", RequireUser(http.HandlerFunc(handler.GetMyRoster)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/score-goals", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunScoreGoalsJob)))
	mux.Handle("POST /v1/internal/jobs/recompute-rankings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecomputeRankingsJob)))
}
