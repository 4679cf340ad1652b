package usecase

import (
	"context"
	"testing"
	"time"

	"analytics-srv/internal/dashboard"
	"analytics-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completed(date string, clicks, impressions float64) model.Post {
	d, _ := model.ParseDate(date)
	return model.Post{
		ID:       date,
		SourceID: "s1",
		Date:     d,
		Status:   model.PostStatusCompleted,
		Metrics: map[string]model.MetricValue{
			"clicks":      model.NumberValue(clicks),
			"impressions": model.NumberValue(impressions),
		},
	}
}

func renderFixture() model.Dashboard {
	withChange := numberWidget("m-clicks")
	withChange.ID = "w1"
	withChange.DisplayOptions = model.DisplayOptions{
		Format:              model.DisplayFormatNumber,
		ShowChange:          true,
		ComparisonTimeRange: model.TimeRangeLastMonth,
	}

	rate := numberWidget("m-ctr")
	rate.ID = "w2"
	rate.DisplayOptions = model.DisplayOptions{Format: model.DisplayFormatPercentage, Decimals: 1}

	missing := numberWidget("m-deleted")
	missing.ID = "w3"

	filtered := numberWidget("m-clicks")
	filtered.ID = "w4"
	filtered.Filters = []model.WidgetFilter{
		{Field: model.FilterFieldDate, Operator: model.FilterGreaterThan, Value: "2024-05-05"},
	}

	return model.Dashboard{
		ID:      "d1",
		Name:    "Overview",
		Widgets: []model.DashboardWidget{withChange, rate, missing, filtered},
	}
}

func TestRender(t *testing.T) {
	repo := new(mockRepo)
	cache := newMemCache()
	posts := &stubPosts{posts: []model.Post{
		completed("2024-05-03", 50, 1000),
		completed("2024-05-10", 50, 1000),
		completed("2024-04-10", 20, 1000),
		{ID: "draft", SourceID: "s1", Date: model.Date{Year: 2024, Month: time.May, Day: 12}, Status: model.PostStatusPublished,
			Metrics: map[string]model.MetricValue{"clicks": model.NumberValue(999)}},
	}}
	uc := newUseCase(repo, cache, posts)
	ctx := context.Background()
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

	repo.On("Detail", mock.Anything, "d1").Return(renderFixture(), nil).Once()

	out, err := uc.Render(ctx, viewer, dashboard.RenderInput{ID: "d1", Now: now})
	require.NoError(t, err)
	assert.False(t, out.Cached)
	assert.Equal(t, "2024-05-15", out.Day.String())
	require.Len(t, out.Widgets, 4)

	assert.Equal(t, 1, posts.calls)
	assert.Equal(t, []string{"s1"}, posts.got.SourceIDs)
	assert.Equal(t, "2024-04-01", posts.got.From.String())
	assert.Equal(t, "2024-05-31", posts.got.To.String())

	w1 := out.Widgets[0]
	require.NotNil(t, w1.Value)
	assert.Equal(t, 100.0, *w1.Value)
	assert.Equal(t, "100", w1.FormattedValue)
	require.NotNil(t, w1.ComparisonValue)
	assert.Equal(t, 20.0, *w1.ComparisonValue)
	require.NotNil(t, w1.PercentChange)
	assert.InDelta(t, 400.0, *w1.PercentChange, 1e-9)
	assert.Equal(t, "last month", w1.ComparisonLabel)

	w2 := out.Widgets[1]
	require.NotNil(t, w2.Value)
	assert.InDelta(t, 5.0, *w2.Value, 1e-9)
	assert.Equal(t, "5.0%", w2.FormattedValue)
	assert.Nil(t, w2.ComparisonValue)

	w3 := out.Widgets[2]
	assert.Nil(t, w3.Value)
	assert.Equal(t, "metric not found", w3.Error)
	assert.Equal(t, "m-deleted", w3.MetricID)

	w4 := out.Widgets[3]
	require.NotNil(t, w4.Value)
	assert.Equal(t, 50.0, *w4.Value)

	// Any instant of the same day is served from the cache.
	again, err := uc.Render(ctx, viewer, dashboard.RenderInput{ID: "d1", Now: now.Add(6 * time.Hour)})
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, 1, posts.calls)
	require.Len(t, again.Widgets, 4)
	assert.Equal(t, 100.0, *again.Widgets[0].Value)
	repo.AssertExpectations(t)
}

func TestRender_NoChangeWhenPreviousIsZero(t *testing.T) {
	repo := new(mockRepo)
	posts := &stubPosts{posts: []model.Post{completed("2024-05-03", 10, 100)}}
	uc := newUseCase(repo, nil, posts)

	d := renderFixture()
	d.Widgets = d.Widgets[:1]
	repo.On("Detail", mock.Anything, "d1").Return(d, nil)

	out, err := uc.Render(context.Background(), viewer, dashboard.RenderInput{
		ID:  "d1",
		Now: time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	w := out.Widgets[0]
	assert.Equal(t, 10.0, *w.Value)
	assert.Equal(t, 0.0, *w.ComparisonValue)
	assert.Nil(t, w.PercentChange)
}

func TestRender_DefaultNowUsesLocation(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil, nil)
	loc := time.FixedZone("ICT", 7*3600)
	uc.loc = loc
	uc.now = func() time.Time { return time.Date(2024, time.May, 31, 20, 0, 0, 0, time.UTC) }

	repo.On("Detail", mock.Anything, "d1").Return(model.Dashboard{ID: "d1"}, nil)

	out, err := uc.Render(context.Background(), viewer, dashboard.RenderInput{ID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", out.Day.String())
	assert.Empty(t, out.Widgets)
}

func TestRender_Errors(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil, nil)
	uc.postUC = failingPosts{}
	ctx := context.Background()

	repo.On("Detail", mock.Anything, "gone").Return(model.Dashboard{}, errNotFound())
	repo.On("Detail", mock.Anything, "d1").Return(renderFixture(), nil)

	_, err := uc.Render(ctx, viewer, dashboard.RenderInput{ID: "gone"})
	assert.ErrorIs(t, err, dashboard.ErrDashboardNotFound)

	_, err = uc.Render(ctx, viewer, dashboard.RenderInput{ID: "d1"})
	assert.ErrorIs(t, err, errBoom)
}

func TestRender_ReadAccess(t *testing.T) {
	repo := new(mockRepo)
	cache := newMemCache()
	uc := newUseCase(repo, cache, nil)
	ctx := context.Background()
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

	d := model.Dashboard{ID: "d1", Name: "Private", CreatedBy: "u1"}
	repo.On("Detail", mock.Anything, "d1").Return(d, nil).Once()

	_, err := uc.Render(ctx, other, dashboard.RenderInput{ID: "d1", Now: now})
	assert.ErrorIs(t, err, dashboard.ErrForbidden)
	assert.Empty(t, cache.data)

	repo.On("Detail", mock.Anything, "d1").Return(d, nil).Once()
	out, err := uc.Render(ctx, owner, dashboard.RenderInput{ID: "d1", Now: now})
	require.NoError(t, err)
	assert.False(t, out.Cached)

	// Cached renders keep the owner check.
	_, err = uc.Render(ctx, other, dashboard.RenderInput{ID: "d1", Now: now})
	assert.ErrorIs(t, err, dashboard.ErrForbidden)

	out, err = uc.Render(ctx, admin, dashboard.RenderInput{ID: "d1", Now: now})
	require.NoError(t, err)
	assert.True(t, out.Cached)
	repo.AssertExpectations(t)
}
