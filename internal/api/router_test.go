package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/agent-match/config"
	"github.com/d60-Lab/agent-match/internal/api/handler"
	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/repository"
	"github.com/d60-Lab/agent-match/internal/service"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, repository.BoardRepository) {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode},
		RateLimit: config.RateLimitConfig{AskPerSecond: 1000, AskBurst: 1000},
	}
	board := repository.NewBoardRepository()
	actions := repository.NewActionRepository()
	scorer := matching.NewScorerWithJitter(func() float64 { return 0 })

	h := handler.New(
		service.NewRecommendService(board, scorer),
		service.NewPublishService(board),
		service.NewActionService(actions, board),
		service.NewRouterService(scorer),
		// unreachable on purpose: /agent/ask must fall back to canned text
		service.NewOllamaReplyGenerator("http://127.0.0.1:1", "llama3.2:1b", 200*time.Millisecond, nil, 0),
		board,
		actions,
	)
	return NewRouter(cfg, h), board
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w.Code, env
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoriesAndBootstrap(t *testing.T) {
	r, board := newTestRouter(t)
	board.Seed(context.Background(), false)

	code, env := doJSON(t, r, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, code)
	var categories []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.NotEmpty(t, categories)

	// market categories must still get a first-screen candidate list;
	// suppression only applies to real no-hit queries
	code, env = doJSON(t, r, http.MethodGet, "/api/v1/categories/trade/bootstrap", nil)
	require.Equal(t, http.StatusOK, code)
	var boot struct {
		WelcomeMessage  string            `json:"welcome_message"`
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &boot))
	assert.NotEmpty(t, boot.WelcomeMessage)
	assert.NotEmpty(t, boot.Recommendations)

	code, _ = doJSON(t, r, http.MethodGet, "/api/v1/categories/nope/bootstrap", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRecommendationsEndpoint(t *testing.T) {
	r, board := newTestRouter(t)
	board.Seed(context.Background(), false)

	code, env := doJSON(t, r, http.MethodGet, "/api/v1/recommendations?category=soccer&q=%EC%B6%95%EA%B5%AC", nil)
	require.Equal(t, http.StatusOK, code)
	var data struct {
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Recommendations)

	// invalid mode fails binding
	code, _ = doJSON(t, r, http.MethodGet, "/api/v1/recommendations?category=soccer&mode=weird", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

// Publish, request, then walk the lifecycle through the HTTP surface,
// checking the per-class status mapping along the way.
func TestActionLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	code, env := doJSON(t, r, http.MethodPost, "/api/v1/listings", gin.H{
		"category":    "trade",
		"message":     "아이패드 에어 5 팝니다, 상태 A급",
		"owner_name":  "김하늘",
		"owner_email": "seller@example.com",
		"owner_phone": "010-1234-5678",
	})
	require.Equal(t, http.StatusOK, code)
	var published struct {
		Listing struct {
			ID string `json:"id"`
		} `json:"listing"`
		Updated bool `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &published))
	require.NotEmpty(t, published.Listing.ID)
	assert.False(t, published.Updated)

	// missing requester email fails validation before the service runs
	code, _ = doJSON(t, r, http.MethodPost, "/api/v1/actions", gin.H{
		"category":          "trade",
		"recommendation_id": published.Listing.ID,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = doJSON(t, r, http.MethodPost, "/api/v1/actions", gin.H{
		"category":          "trade",
		"recommendation_id": published.Listing.ID,
		"requester_email":   "buyer@example.com",
		"requester_name":    "이준호",
	})
	require.Equal(t, http.StatusOK, code)
	var action struct {
		ID              string `json:"id"`
		Status          string `json:"status"`
		ContactUnlocked bool   `json:"contact_unlocked"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &action))
	require.NotEmpty(t, action.ID)
	assert.Equal(t, "requested", action.Status)
	assert.False(t, action.ContactUnlocked)

	transition := fmt.Sprintf("/api/v1/actions/%s/transition", action.ID)

	// requester may not accept
	code, _ = doJSON(t, r, http.MethodPost, transition, gin.H{
		"command": "accept", "actor_email": "buyer@example.com",
	})
	assert.Equal(t, http.StatusForbidden, code)

	// confirm is state-invalid from requested; 409 carries the allowed set
	code, env = doJSON(t, r, http.MethodPost, transition, gin.H{
		"command": "confirm", "actor_email": "buyer@example.com",
	})
	require.Equal(t, http.StatusConflict, code)
	var conflict struct {
		Allowed []string `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &conflict))
	assert.Equal(t, []string{"accept", "reject", "cancel"}, conflict.Allowed)

	code, env = doJSON(t, r, http.MethodPost, transition, gin.H{
		"command": "accept", "actor_email": "seller@example.com",
	})
	require.Equal(t, http.StatusOK, code)
	var accepted struct {
		Status          string `json:"status"`
		ContactUnlocked bool   `json:"contact_unlocked"`
		Counterpart     *struct {
			Email string `json:"email"`
		} `json:"counterpart"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &accepted))
	assert.Equal(t, "accepted", accepted.Status)
	assert.True(t, accepted.ContactUnlocked)
	require.NotNil(t, accepted.Counterpart)
	assert.Equal(t, "buyer@example.com", accepted.Counterpart.Email)

	// third parties see the action locked
	code, env = doJSON(t, r, http.MethodGet, "/api/v1/actions?category=trade", nil)
	require.Equal(t, http.StatusOK, code)
	var listed struct {
		Count   int `json:"count"`
		Actions []struct {
			ContactUnlocked bool     `json:"contact_unlocked"`
			AllowedActions  []string `json:"allowed_actions"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Equal(t, 1, listed.Count)
	assert.False(t, listed.Actions[0].ContactUnlocked)
	assert.Empty(t, listed.Actions[0].AllowedActions)

	// unknown ids map to 404, unknown commands fail binding
	code, _ = doJSON(t, r, http.MethodPost, "/api/v1/actions/act-missing/transition", gin.H{
		"command": "accept", "actor_email": "seller@example.com",
	})
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = doJSON(t, r, http.MethodPost, transition, gin.H{
		"command": "explode", "actor_email": "seller@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAskFallsBackWhenGeneratorDown(t *testing.T) {
	r, board := newTestRouter(t)
	board.Seed(context.Background(), false)

	code, env := doJSON(t, r, http.MethodPost, "/api/v1/agent/ask", gin.H{
		"category": "friend",
		"message":  "주말에 러닝할 친구 구해요",
		"mode":     "find",
	})
	require.Equal(t, http.StatusOK, code)
	var data struct {
		AssistantMessage string            `json:"assistant_message"`
		Recommendations  []json.RawMessage `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.AssistantMessage)
	assert.NotEmpty(t, data.Recommendations)
}

func TestRouteEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	code, env := doJSON(t, r, http.MethodPost, "/api/v1/agent/route", gin.H{
		"message": "주말에 축구 상대팀 구합니다",
		"limit":   2,
	})
	require.Equal(t, http.StatusOK, code)
	var data struct {
		Suggestions []struct {
			CategoryID string `json:"category_id"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Suggestions, 2)
	assert.Equal(t, "soccer", data.Suggestions[0].CategoryID)
}

func TestAdminSeedAndCounts(t *testing.T) {
	r, _ := newTestRouter(t)

	code, _ := doJSON(t, r, http.MethodPost, "/api/v1/admin/seed", nil)
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, r, http.MethodGet, "/api/v1/admin/board/counts", nil)
	require.Equal(t, http.StatusOK, code)
	var data struct {
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Counts)
}

func TestAskRateLimit(t *testing.T) {
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode},
		RateLimit: config.RateLimitConfig{AskPerSecond: 0.001, AskBurst: 1},
	}
	board := repository.NewBoardRepository()
	actions := repository.NewActionRepository()
	scorer := matching.NewScorerWithJitter(func() float64 { return 0 })
	h := handler.New(
		service.NewRecommendService(board, scorer),
		service.NewPublishService(board),
		service.NewActionService(actions, board),
		service.NewRouterService(scorer),
		service.NewOllamaReplyGenerator("http://127.0.0.1:1", "llama3.2:1b", 200*time.Millisecond, nil, 0),
		board,
		actions,
	)
	r := NewRouter(cfg, h)

	body := gin.H{"category": "friend", "message": "친구 구해요"}
	code, _ := doJSON(t, r, http.MethodPost, "/api/v1/agent/ask", body)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, r, http.MethodPost, "/api/v1/agent/ask", body)
	assert.Equal(t, http.StatusTooManyRequests, code)
}
