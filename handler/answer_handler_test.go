package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaikM36/tds-virtual-ta/middleware"
	"github.com/ShaikM36/tds-virtual-ta/repository"
	"github.com/ShaikM36/tds-virtual-ta/service"
	"github.com/ShaikM36/tds-virtual-ta/types"
)

type stubAI struct {
	response string
	err      error
}

func (s *stubAI) Complete(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

// newTestRouter wires the same routes and middleware the serve command
// does, with the completion provider stubbed out.
func newTestRouter(ai service.AIService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewKnowledgeRepo()
	knowledgeService := service.NewKnowledgeService(repo)
	answerService := service.NewAnswerService(ai)
	imageService := service.NewImageService()

	corsHandler := NewCorsHandler()
	answerHandler := NewAnswerHandler(knowledgeService, answerService, imageService)
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.Use(corsHandler.CorsMiddleware)
	router.Use(middleware.Recovery())
	router.GET("/", healthHandler.HandleRoot)
	router.GET("/health", healthHandler.HandleHealth)
	router.POST("/api/", answerHandler.HandleQuestion)
	return router
}

func postQuestion(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleQuestionReturnsAnswerAndLinks(t *testing.T) {
	router := newTestRouter(&stubAI{response: "Use gpt-3.5-turbo-0125."})

	w := postQuestion(router, `{"question": "Which model should I use for the API assignment?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.AnswerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Answer)
	assert.GreaterOrEqual(t, len(resp.Links), 1)
	assert.LessOrEqual(t, len(resp.Links), 3)
}

func TestHandleQuestionRejectsEmptyQuestion(t *testing.T) {
	router := newTestRouter(&stubAI{response: "never reached"})

	for _, body := range []string{`{"question": ""}`, `{}`, `not json`} {
		w := postQuestion(router, body)

		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Detail)
	}
}

func TestHandleQuestionDegradesWhenModelUnavailable(t *testing.T) {
	router := newTestRouter(&stubAI{err: errors.New("upstream down")})

	w := postQuestion(router, `{"question": "Which model should I use for the API assignment?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.AnswerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Answer, "Based on course materials:")
}

func TestHandleQuestionWithImage(t *testing.T) {
	router := newTestRouter(&stubAI{response: "answer"})

	// An undecodable image still produces an answer; the describer's
	// error text is just more prompt context.
	w := postQuestion(router, `{"question": "What does the screenshot about the api show?", "image": "bm90IGFuIGltYWdl"}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthIgnoresDownstreamFailures(t *testing.T) {
	router := newTestRouter(&stubAI{err: errors.New("provider outage")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestRootReportsRunning(t *testing.T) {
	router := newTestRouter(&stubAI{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.RootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestCorsAllowsAnyOrigin(t *testing.T) {
	router := newTestRouter(&stubAI{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/", nil)
	req.Header.Set("Origin", "https://example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryConvertsPanicsToServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Detail)
}
