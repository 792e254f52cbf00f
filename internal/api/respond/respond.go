// Package respond writes the JSON bodies and headers shared by the API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/albapepper/rosterbalance/internal/balance"
)

// ErrorBody is the detail carried by every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorResponse is the envelope for all API errors.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteJSON writes an encoded report with its ETag. A positive ttl makes the
// response publicly cacheable; cacheHit sets X-Cache.
func WriteJSON(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	if cacheHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	if ttl > 0 {
		h.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(ttl.Seconds())))
	} else {
		h.Set("Cache-Control", "no-store")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// WriteNotModified answers a conditional request whose ETag still matches.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends an error without detail.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteErrorDetail(w, status, code, message, "")
}

// WriteErrorDetail sends an error envelope that is never cached.
func WriteErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	writeObject(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Detail: detail}})
}

// WriteJSONObject encodes v as an uncached response.
func WriteJSONObject(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Cache-Control", "no-store")
	writeObject(w, status, v)
}

func writeObject(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type balanceFailure struct {
	target  error
	status  int
	code    string
	message string
}

var balanceFailures = []balanceFailure{
	{balance.ErrInvalidRosterSize, http.StatusUnprocessableEntity, "INVALID_ROSTER_SIZE",
		"Roster cannot be split into an even number of full teams"},
	{balance.ErrPoolExhausted, http.StatusUnprocessableEntity, "POOL_EXHAUSTED",
		"Not enough goalie-capable players for every team"},
	{balance.ErrTeamSizeOutOfRange, http.StatusUnprocessableEntity, "TEAM_SIZE_OUT_OF_RANGE",
		"Balancing left a team outside 18-22 players"},
	{balance.ErrBalancingStalled, http.StatusInternalServerError, "BALANCING_STALLED",
		"Balancing could not place every player"},
}

// WriteBalanceError maps a failed balancing run to its error response and
// returns the status written. Unknown errors become a 500 without detail.
func WriteBalanceError(w http.ResponseWriter, err error) int {
	for _, f := range balanceFailures {
		if errors.Is(err, f.target) {
			WriteErrorDetail(w, f.status, f.code, f.message, err.Error())
			return f.status
		}
	}
	WriteError(w, http.StatusInternalServerError, "INTERNAL", "Balancing failed")
	return http.StatusInternalServerError
}
