package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/rosterbalance/internal/balance"
)

func TestWriteBalanceError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
		wantDetail bool
	}{
		{fmt.Errorf("build teams: %w", balance.ErrInvalidRosterSize), http.StatusUnprocessableEntity, "INVALID_ROSTER_SIZE", true},
		{fmt.Errorf("seed goalies: %w", balance.ErrPoolExhausted), http.StatusUnprocessableEntity, "POOL_EXHAUSTED", true},
		{fmt.Errorf("check team sizes: %w", balance.ErrTeamSizeOutOfRange), http.StatusUnprocessableEntity, "TEAM_SIZE_OUT_OF_RANGE", true},
		{fmt.Errorf("balance loop: %w", balance.ErrBalancingStalled), http.StatusInternalServerError, "BALANCING_STALLED", true},
		{errors.Join(errors.New("trial 1: connection reset"), errors.New("trial 2: connection reset")), http.StatusInternalServerError, "INTERNAL", false},
	}
	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := WriteBalanceError(rec, tt.err)

			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.Contains(t, rec.Header().Get("Cache-Control"), "no-store")

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.wantCode, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
			if tt.wantDetail {
				require.Equal(t, tt.err.Error(), body.Error.Detail)
			} else {
				require.Empty(t, body.Error.Detail)
			}
		})
	}
}

func TestWriteBalanceError_JoinedTrials(t *testing.T) {
	// BestOf joins every trial's error; a known failure anywhere wins.
	err := errors.Join(
		fmt.Errorf("trial 1: %w", balance.ErrBalancingStalled),
		fmt.Errorf("trial 2: %w", balance.ErrPoolExhausted),
	)
	rec := httptest.NewRecorder()
	require.Equal(t, http.StatusUnprocessableEntity, WriteBalanceError(rec, err))
}

func TestWriteJSON(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, []byte(`{}`), `"abc"`, time.Hour, true)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, `"abc"`, rec.Header().Get("ETag"))
		require.Equal(t, "HIT", rec.Header().Get("X-Cache"))
		require.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
		require.Equal(t, `{}`, rec.Body.String())
	})

	t.Run("unseeded", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, []byte(`{}`), `"abc"`, 0, false)

		require.Equal(t, "MISS", rec.Header().Get("X-Cache"))
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})
}
