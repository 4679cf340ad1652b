package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/response"
	"analytics-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	post.UseCase
	mock.Mock
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input post.CreateInput) (model.Post, error) {
	args := m.Called(sc, input)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Post, error) {
	args := m.Called(sc, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input post.UpdateStatusInput) (model.Post, error) {
	args := m.Called(sc, input)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockUseCase) RecordMetrics(ctx context.Context, sc model.Scope, input post.RecordMetricsInput) (model.Post, error) {
	args := m.Called(sc, input)
	return args.Get(0).(model.Post), args.Error(1)
}

var editor = model.Scope{UserID: "u1", Role: model.RoleEditor}

func newTestRouter(uc post.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: log.NewNop(), uc: uc}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), editor))
		c.Next()
	})
	r.POST("/posts", h.Create)
	r.GET("/posts/:id", h.Detail)
	r.PATCH("/posts/:id/status", h.UpdateStatus)
	r.PUT("/posts/:id/metrics", h.RecordMetrics)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestCreate(t *testing.T) {
	uc := new(mockUseCase)
	r := newTestRouter(uc)

	d, _ := model.ParseDate("2024-05-03")
	uc.On("Create", editor, post.CreateInput{Title: "Launch", SourceID: "s1", Date: "2024-05-03"}).
		Return(model.Post{ID: "p1", Title: "Launch", SourceID: "s1", Date: d, Status: model.PostStatusDraft}, nil)

	w, resp := do(r, http.MethodPost, "/posts", `{"title":"Launch","source_id":"s1","date":"2024-05-03"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "p1", data["id"])
	assert.Equal(t, "2024-05-03", data["date"])
	uc.AssertExpectations(t)
}

func TestCreate_WrongBody(t *testing.T) {
	r := newTestRouter(new(mockUseCase))

	w, _ := do(r, http.MethodPost, "/posts", `{"title":"Launch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetail_NotFound(t *testing.T) {
	uc := new(mockUseCase)
	r := newTestRouter(uc)
	uc.On("Detail", editor, "p9").Return(model.Post{}, post.ErrPostNotFound)

	w, resp := do(r, http.MethodGet, "/posts/p9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", resp.Message)
}

func TestUpdateStatus_Backwards(t *testing.T) {
	uc := new(mockUseCase)
	r := newTestRouter(uc)
	uc.On("UpdateStatus", editor, post.UpdateStatusInput{ID: "p1", Status: model.PostStatusDraft}).
		Return(model.Post{}, post.ErrInvalidStatusTransition)

	w, _ := do(r, http.MethodPatch, "/posts/p1/status", `{"status":"draft"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRecordMetrics(t *testing.T) {
	uc := new(mockUseCase)
	r := newTestRouter(uc)
	uc.On("RecordMetrics", editor, mock.MatchedBy(func(in post.RecordMetricsInput) bool {
		return in.ID == "p1" && in.Values["likes"] == float64(120)
	})).Return(model.Post{
		ID:      "p1",
		Status:  model.PostStatusCompleted,
		Metrics: map[string]model.MetricValue{"likes": model.NumberValue(120)},
	}, nil)

	w, resp := do(r, http.MethodPut, "/posts/p1/metrics", `{"metrics":{"likes":120}}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "completed", data["status"])
	likes := data["metrics"].(map[string]any)["likes"].(map[string]any)
	assert.Equal(t, "number", likes["type"])
	assert.Equal(t, float64(120), likes["number"])
}
