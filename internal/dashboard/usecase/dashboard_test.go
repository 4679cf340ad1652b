package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/dashboard/repository"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, opts repository.CreateOptions) (model.Dashboard, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Dashboard), args.Error(1)
}

func (m *mockRepo) Detail(ctx context.Context, id string) (model.Dashboard, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Dashboard), args.Error(1)
}

func (m *mockRepo) Default(ctx context.Context, createdBy string) (model.Dashboard, error) {
	args := m.Called(ctx, createdBy)
	return args.Get(0).(model.Dashboard), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.Dashboard, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Dashboard), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, opts repository.UpdateOptions) (model.Dashboard, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Dashboard), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// memCache is an in-memory CacheRepository.
type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetRender(ctx context.Context, id string, day model.Date) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[id+":"+day.String()]
	return d, ok, nil
}

func (c *memCache) SetRender(ctx context.Context, id string, day model.Date, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[id+":"+day.String()] = data
	return nil
}

func (c *memCache) InvalidateDashboard(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, id)
	return nil
}

func (c *memCache) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[string][]byte{}
	c.invalidated = append(c.invalidated, "*")
	return nil
}

type stubMetrics struct {
	metric.UseCase
	mappings []model.MetricMapping
}

func (s stubMetrics) ListByIDs(ctx context.Context, ids []string) ([]model.MetricMapping, error) {
	out := []model.MetricMapping{}
	for _, m := range s.mappings {
		for _, id := range ids {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

type stubPosts struct {
	post.UseCase
	posts []model.Post
	calls int
	got   post.EvaluationInput
}

func (s *stubPosts) ListForEvaluation(ctx context.Context, input post.EvaluationInput) ([]model.Post, error) {
	s.calls++
	s.got = input
	return s.posts, nil
}

var (
	owner  = model.Scope{UserID: "u1", Role: model.RoleEditor}
	other  = model.Scope{UserID: "u2", Role: model.RoleEditor}
	admin  = model.Scope{UserID: "root", Role: model.RoleAdmin}
	viewer = model.Scope{UserID: "u3", Role: model.RoleViewer}

	clicks = model.MetricMapping{
		ID:              "m-clicks",
		Name:            "Clicks",
		SourceMetrics:   []model.SourceMetric{{SourceID: "s1", FieldID: "clicks"}},
		CalculationType: model.CalculationSum,
	}
	ctr = model.MetricMapping{
		ID:   "m-ctr",
		Name: "CTR",
		SourceMetrics: []model.SourceMetric{
			{SourceID: "s1", FieldID: "clicks"},
			{SourceID: "s1", FieldID: "impressions"},
		},
		CalculationType: model.CalculationCustom,
		CustomFormula:   "metric1 / metric2 * 100",
	}
)

func newUseCase(repo *mockRepo, cache repository.CacheRepository, posts *stubPosts) *implUseCase {
	if posts == nil {
		posts = &stubPosts{}
	}
	uc := New(repo, cache, stubMetrics{mappings: []model.MetricMapping{clicks, ctr}}, posts,
		aggregation.New(log.NewNop(), nil), nil, time.UTC, log.NewNop())
	return uc.(*implUseCase)
}

func numberWidget(metricID string) model.DashboardWidget {
	return model.DashboardWidget{
		Name:      "w",
		Type:      model.WidgetTypeNumber,
		Metrics:   []string{metricID},
		TimeRange: model.TimeRangeThisMonth,
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := newUseCase(new(mockRepo), nil, nil)
	ctx := context.Background()

	custom := numberWidget("m-clicks")
	custom.TimeRange = model.TimeRangeCustom

	badFilter := numberWidget("m-clicks")
	badFilter.Filters = []model.WidgetFilter{{Field: "status", Operator: "like", Value: "x"}}

	badDisplay := numberWidget("m-clicks")
	badDisplay.DisplayOptions.Format = "hex"

	customCompare := numberWidget("m-clicks")
	customCompare.DisplayOptions.ComparisonTimeRange = model.TimeRangeCustom

	tests := []struct {
		name    string
		sc      model.Scope
		widgets []model.DashboardWidget
		dname   string
		wantErr error
	}{
		{name: "viewer", sc: viewer, dname: "x", wantErr: dashboard.ErrForbidden},
		{name: "no name", sc: owner, dname: "  ", wantErr: dashboard.ErrNameRequired},
		{name: "no metrics", sc: owner, dname: "x", widgets: []model.DashboardWidget{{Type: model.WidgetTypeNumber, TimeRange: model.TimeRangeToday}}, wantErr: dashboard.ErrInvalidWidget},
		{name: "bad type", sc: owner, dname: "x", widgets: []model.DashboardWidget{{Type: "gauge", Metrics: []string{"m-clicks"}, TimeRange: model.TimeRangeToday}}, wantErr: dashboard.ErrInvalidWidget},
		{name: "custom without range", sc: owner, dname: "x", widgets: []model.DashboardWidget{custom}, wantErr: dashboard.ErrInvalidTimeRange},
		{name: "bad filter", sc: owner, dname: "x", widgets: []model.DashboardWidget{badFilter}, wantErr: dashboard.ErrInvalidFilter},
		{name: "bad display", sc: owner, dname: "x", widgets: []model.DashboardWidget{badDisplay}, wantErr: dashboard.ErrInvalidDisplay},
		{name: "custom comparison", sc: owner, dname: "x", widgets: []model.DashboardWidget{customCompare}, wantErr: dashboard.ErrInvalidTimeRange},
		{name: "unknown metric", sc: owner, dname: "x", widgets: []model.DashboardWidget{numberWidget("nope")}, wantErr: dashboard.ErrUnknownMetric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.sc, dashboard.CreateInput{Name: tc.dname, Widgets: tc.widgets})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreate_AssignsWidgetIDs(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(o repository.CreateOptions) bool {
		return o.Name == "Main" && o.CreatedBy == "u1" && o.IsDefault && o.ID != "" &&
			len(o.Widgets) == 2 && o.Widgets[0].ID != "" && o.Widgets[1].ID == "keep"
	})).Return(model.Dashboard{ID: "d1", Name: "Main", IsDefault: true}, nil)

	kept := numberWidget("m-ctr")
	kept.ID = "keep"
	d, err := uc.Create(context.Background(), owner, dashboard.CreateInput{
		Name:      " Main ",
		Widgets:   []model.DashboardWidget{numberWidget("m-clicks"), kept},
		IsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
	repo.AssertExpectations(t)
}

func TestUpdate_Permissions(t *testing.T) {
	repo := new(mockRepo)
	cache := newMemCache()
	uc := newUseCase(repo, cache, nil)
	ctx := context.Background()

	repo.On("Detail", mock.Anything, "d1").Return(model.Dashboard{ID: "d1", CreatedBy: "u1"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(o repository.UpdateOptions) bool {
		return o.ID == "d1" && o.CreatedBy == "u1"
	})).Return(model.Dashboard{ID: "d1", Name: "New"}, nil)

	_, err := uc.Update(ctx, other, dashboard.UpdateInput{ID: "d1", Name: "New"})
	assert.ErrorIs(t, err, dashboard.ErrForbidden)

	d, err := uc.Update(ctx, admin, dashboard.UpdateInput{ID: "d1", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", d.Name)
	assert.Equal(t, []string{"d1"}, cache.invalidated)
}

func TestDelete(t *testing.T) {
	repo := new(mockRepo)
	cache := newMemCache()
	uc := newUseCase(repo, cache, nil)
	ctx := context.Background()

	repo.On("Detail", mock.Anything, "d1").Return(model.Dashboard{ID: "d1", CreatedBy: "u1"}, nil)
	repo.On("Detail", mock.Anything, "gone").Return(model.Dashboard{}, repository.ErrDashboardNotFound)
	repo.On("Delete", mock.Anything, "d1").Return(nil)

	assert.ErrorIs(t, uc.Delete(ctx, viewer, "d1"), dashboard.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, owner, "gone"), dashboard.ErrDashboardNotFound)
	require.NoError(t, uc.Delete(ctx, owner, "d1"))
	assert.Equal(t, []string{"d1"}, cache.invalidated)
}

func TestDetail_ReadAccess(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil, nil)
	ctx := context.Background()

	repo.On("Detail", mock.Anything, "d1").Return(model.Dashboard{ID: "d1", CreatedBy: "u1"}, nil)

	d, err := uc.Detail(ctx, owner, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)

	_, err = uc.Detail(ctx, admin, "d1")
	require.NoError(t, err)

	_, err = uc.Detail(ctx, viewer, "d1")
	assert.ErrorIs(t, err, dashboard.ErrForbidden)
}

func TestDefault_None(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil, nil)
	repo.On("Default", mock.Anything, "u1").Return(model.Dashboard{}, repository.ErrDashboardNotFound)

	_, err := uc.Default(context.Background(), owner)
	assert.ErrorIs(t, err, dashboard.ErrNoDefaultDashboard)
}

func TestList_ScopedToOwner(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil, nil)
	ctx := context.Background()

	repo.On("Count", mock.Anything, repository.FilterOptions{CreatedBy: "u1"}).Return(int64(1), nil)
	repo.On("List", mock.Anything, repository.ListOptions{
		FilterOptions: repository.FilterOptions{CreatedBy: "u1"},
		Limit:         paginator.DefaultLimit,
	}).Return([]model.Dashboard{{ID: "d1"}}, nil)
	repo.On("Count", mock.Anything, repository.FilterOptions{}).Return(int64(3), nil)
	repo.On("List", mock.Anything, repository.ListOptions{Limit: paginator.DefaultLimit}).
		Return([]model.Dashboard{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}, nil)

	out, err := uc.List(ctx, owner, dashboard.ListInput{})
	require.NoError(t, err)
	assert.Len(t, out.Dashboards, 1)
	assert.Equal(t, int64(1), out.Paginator.Total)

	out, err = uc.List(ctx, admin, dashboard.ListInput{})
	require.NoError(t, err)
	assert.Len(t, out.Dashboards, 3)
}

func TestInvalidateCache(t *testing.T) {
	cache := newMemCache()
	uc := newUseCase(new(mockRepo), cache, nil)
	require.NoError(t, uc.InvalidateCache(context.Background()))
	assert.Equal(t, []string{"*"}, cache.invalidated)

	assert.NoError(t, newUseCase(new(mockRepo), nil, nil).InvalidateCache(context.Background()))
}

var errBoom = errors.New("boom")

type failingPosts struct {
	post.UseCase
}

func (failingPosts) ListForEvaluation(ctx context.Context, input post.EvaluationInput) ([]model.Post, error) {
	return nil, errBoom
}

func errNotFound() error { return repository.ErrDashboardNotFound }
