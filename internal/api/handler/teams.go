package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/albapepper/rosterbalance/internal/api/respond"
	"github.com/albapepper/rosterbalance/internal/balance"
	"github.com/albapepper/rosterbalance/internal/cache"
	"github.com/albapepper/rosterbalance/internal/report"
)

// BalanceTeams splits the roster into balanced teams.
// @Summary Balance teams
// @Description Builds an even number of teams, seeds each with a goalie and distributes the remaining players toward the roster's average ranking. Runs with an explicit seed are reproducible and cached.
// @Tags teams
// @Produce json
// @Param seed query integer false "Random seed; 0 or absent picks one"
// @Param trials query integer false "Independent runs to try; the one with the smallest spread wins"
// @Param strict query boolean false "Reject rosters that cannot fill 18-22 players per team"
// @Success 200 {object} report.Report
// @Failure 400 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /teams/balance [get]
func (h *Handler) BalanceTeams(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var seed uint64
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_SEED", "seed must be a non-negative integer")
			return
		}
		seed = n
	}

	trials := h.cfg.BalanceTrials
	if v := q.Get("trials"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > h.cfg.BalanceMaxTrials {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_TRIALS",
				fmt.Sprintf("trials must be between 1 and %d", h.cfg.BalanceMaxTrials))
			return
		}
		trials = n
	}

	strict := h.cfg.StrictRosterSize
	if v := q.Get("strict"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_STRICT", "strict must be a boolean")
			return
		}
		strict = b
	}

	cacheKey := fmt.Sprintf("balance:%d:%d:%t", seed, trials, strict)
	ttl := cache.TTLSeededBalance
	if seed != 0 {
		if data, etag, ok := h.cache.Get(cacheKey); ok {
			if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
				respond.WriteNotModified(w, etag)
				return
			}
			respond.WriteJSON(w, data, etag, ttl, true)
			return
		}
	}

	opts := balance.Options{
		Seed:             seed,
		MaxPasses:        h.cfg.BalanceMaxPasses,
		StrictRosterSize: strict,
		Logger:           h.logger,
	}
	start := time.Now()
	res, err := balance.BestOf(r.Context(), h.source, opts, trials, h.cfg.BalanceWorkers)
	h.metrics.ObserveRun(res, err, time.Since(start))
	if err != nil {
		if status := respond.WriteBalanceError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("Balancing failed", "error", err)
		}
		return
	}

	raw, err := report.FromResult(res).JSON()
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response")
		return
	}

	if seed == 0 {
		respond.WriteJSON(w, raw, cache.ComputeETag(raw), 0, false)
		return
	}
	etag := h.cache.Set(cacheKey, raw, ttl)
	respond.WriteJSON(w, raw, etag, ttl, false)
}
