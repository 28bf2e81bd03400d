//go:build integration_test

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rebld/rebldserver/internal/gymstats/performance"
	"github.com/rebld/rebldserver/internal/gymstats/sportbucket"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestPerformance_RecordAndHistory() {
	ctx := context.Background()
	s.truncateAll(ctx)
	t := s.T()

	userID := "apple|" + gofakeit.Username()
	status, _ := s.doRequest(ctx, http.MethodPost, "/users/me", userID, nil)
	require.Equal(t, http.StatusOK, status)

	// the bucket entry has to exist before performance is folded into it
	usageJson, err := json.Marshal(sportbucket.UsageRequest{
		Sport:        "boxing",
		ExerciseName: "shadow boxing",
		Category:     "main",
	})
	require.NoError(t, err)
	status, body := s.doRequest(ctx, http.MethodPost, "/buckets/usage", userID, usageJson)
	require.Equal(t, http.StatusCreated, status, string(body))

	logs := []string{
		`{"exercise_name": "Shadow Boxing", "sport_context": "boxing", "completed": true, "rpe": 7, "form_quality": 4}`,
		`{"exercise_name": "shadow boxing", "sport_context": "boxing", "skipped": true}`,
		`{"exercise_name": "shadow boxing", "completed": true, "was_pr": true, "pain_experienced": true}`,
	}
	for i, l := range logs {
		status, body := s.doRequest(ctx, http.MethodPost, "/performance", userID, []byte(l))
		require.Equal(t, http.StatusCreated, status, fmt.Sprintf("log %d: %s", i, body))

		var saved performance.Log
		require.NoError(t, json.Unmarshal(body, &saved))
		assert.Equal(t, userID, saved.UserID)
		assert.Equal(t, "shadow_boxing", saved.ExerciseName)
	}

	status, body = s.doRequest(ctx, http.MethodGet, "/performance/history?exercise=shadow_boxing", userID, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var history performance.History
	require.NoError(t, json.Unmarshal(body, &history))
	require.Len(t, history.Performances, 3)
	assert.True(t, history.Performances[0].WasPR, "newest first")
	assert.Equal(t, 3, history.Summary.TotalSessions)
	assert.InDelta(t, 2.0/3.0, history.Summary.CompletionRate, 0.001)
	assert.InDelta(t, 1.0/3.0, history.Summary.SkipRate, 0.001)

	status, body = s.doRequest(ctx, http.MethodGet, "/performance/history?exercise=shadow_boxing&sport=boxing&limit=1", userID, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &history))
	require.Len(t, history.Performances, 1)
	assert.True(t, history.Performances[0].Skipped)

	// completed and skipped boxing logs were folded into the bucket
	status, body = s.doRequest(ctx, http.MethodGet, "/buckets/boxing", userID, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var resp sportbucket.QueryResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Entries, 1)
	assert.Greater(t, resp.Entries[0].SuccessRate, 0.0)
	assert.Less(t, resp.Entries[0].SuccessRate, 1.0)
}
