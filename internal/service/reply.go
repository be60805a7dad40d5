package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/pkg/logger"
)

// ErrReplyUnavailable: the generator produced nothing usable; the caller
// decides the fallback text.
var ErrReplyUnavailable = errors.New("reply generator unavailable")

// ReplyGenerator produces the assistant text for a category/mode/message.
// The matching core never depends on it; handlers consume its output only.
type ReplyGenerator interface {
	Generate(ctx context.Context, categoryID, modeID, message, recommendationContext string) (string, error)
}

type ollamaReplyGenerator struct {
	baseURL string
	model   string
	client  *http.Client
	cache   *redis.Client // nil disables caching
	ttl     time.Duration
}

// NewOllamaReplyGenerator talks to a local Ollama chat endpoint. cache may be
// nil; when set, identical prompts within ttl are served from Redis instead
// of a model round trip.
func NewOllamaReplyGenerator(baseURL, modelName string, timeout time.Duration, cache *redis.Client, ttl time.Duration) ReplyGenerator {
	return &ollamaReplyGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   modelName,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
		ttl:     ttl,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

func (g *ollamaReplyGenerator) systemPrompt(categoryID, modeID string) string {
	mode := catalog.ResolveMode(modeID)
	name := catalog.NameOf(categoryID)
	domain := catalog.DomainOf(categoryID)

	format := "응답 형식: 1) 핵심요약 1문장 2) 다음 행동 1~2개 3) 필요한 추가질문 1개."
	if mode.ID == model.ModeFind && domain == model.DomainMarket {
		format = "응답 형식: 1) 검색 결과 요약(몇 건, 핵심 키워드) 2) 상위 매물 2~3개를 항목으로 설명 3) 바로 선택/비교할 수 있는 다음 질문 1개."
	}
	return fmt.Sprintf(
		"너는 카테고리 전용 AI 에이전트다. 한국어로 간결히 답해라. 카테고리: %s. 현재 모드: %s(%s). 모드 설명: %s. 모드 지시: %s "+
			"추천 결과 컨텍스트가 주어지면 실제 후보 수와 상위 후보의 제목/상태/핵심 조건을 구체적으로 설명하고, 리스트에 없는 정보를 꾸며내지 마라. %s",
		name, mode.Title, mode.ID, mode.Description, mode.SystemPrompt, format)
}

func (g *ollamaReplyGenerator) cacheKey(categoryID, modeID, message, recContext string) string {
	sum := sha256.Sum256([]byte(message + "\x00" + recContext))
	return fmt.Sprintf("reply:%s:%s:%x", categoryID, modeID, sum[:12])
}

func (g *ollamaReplyGenerator) Generate(ctx context.Context, categoryID, modeID, message, recommendationContext string) (string, error) {
	key := g.cacheKey(categoryID, modeID, message, recommendationContext)
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	userMessage := message
	if recommendationContext != "" {
		userMessage = fmt.Sprintf("%s\n\n[RecommendationContext]\n%s", message, recommendationContext)
	}
	payload, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: g.systemPrompt(categoryID, modeID)},
			{Role: "user", Content: userMessage},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		logger.Warn("ollama request failed", zap.Error(err))
		return "", ErrReplyUnavailable
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		logger.Warn("ollama returned non-200", zap.Int("status", res.StatusCode))
		return "", ErrReplyUnavailable
	}

	var out chatResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", ErrReplyUnavailable
	}
	text := strings.TrimSpace(out.Message.Content)
	if text == "" {
		return "", ErrReplyUnavailable
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, key, text, g.ttl).Err(); err != nil {
			logger.Warn("reply cache write failed", zap.Error(err))
		}
	}
	return text, nil
}
