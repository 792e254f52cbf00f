package handler

import (
	"encoding/json"
	"net/http"

	"github.com/albapepper/rosterbalance/internal/api/respond"
	"github.com/albapepper/rosterbalance/internal/balance"
	"github.com/albapepper/rosterbalance/internal/cache"
)

const rosterSummaryKey = "roster:summary"

type rosterSummaryResponse struct {
	Players        int     `json:"players"`
	GoalieCapable  int     `json:"goalie_capable"`
	Goalies        int     `json:"goalies"`
	AverageRanking float64 `json:"average_ranking"`
	ExpectedTeams  int     `json:"expected_teams"`
}

// GetRosterSummary returns counts for the eligible roster and the number of
// teams a balance would build.
// @Summary Roster summary
// @Description Player and goalie counts, the average ranking and the expected team count.
// @Tags roster
// @Produce json
// @Success 200 {object} rosterSummaryResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /roster/summary [get]
func (h *Handler) GetRosterSummary(w http.ResponseWriter, r *http.Request) {
	ttl := cache.TTLRosterSummary

	if data, etag, ok := h.cache.Get(rosterSummaryKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	summary, err := h.source.Describe(r.Context())
	if err != nil {
		h.logger.Error("Roster summary failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to read roster")
		return
	}

	raw, err := json.Marshal(rosterSummaryResponse{
		Players:        summary.Players,
		GoalieCapable:  summary.GoalieCapable,
		Goalies:        summary.Goalies,
		AverageRanking: summary.AverageRanking,
		ExpectedTeams:  balance.TeamCount(summary.Players),
	})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response")
		return
	}

	etag := h.cache.Set(rosterSummaryKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}
