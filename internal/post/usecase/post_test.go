package usecase

import (
	"context"
	"errors"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/internal/post/repository"
	"analytics-srv/internal/source"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, opts repository.CreateOptions) (model.Post, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockRepo) Detail(ctx context.Context, id string) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.Post, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, opts repository.UpdateOptions) (model.Post, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status model.PostStatus) (model.Post, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockRepo) UpdateMetrics(ctx context.Context, opts repository.UpdateMetricsOptions) (model.Post, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockRepo) ListForEvaluation(ctx context.Context, opts repository.EvaluationOptions) ([]model.Post, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Post), args.Error(1)
}

// stubSources serves source lookups from a fixed map.
type stubSources struct {
	source.UseCase
	sources map[string]model.Source
}

func (s stubSources) Detail(ctx context.Context, sc model.Scope, id string) (model.Source, error) {
	if src, ok := s.sources[id]; ok {
		return src, nil
	}
	return model.Source{}, source.ErrSourceNotFound
}

type recordingProducer struct {
	events []post.ChangedEvent
	err    error
}

func (p *recordingProducer) PublishPostChanged(ctx context.Context, event post.ChangedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

var (
	editor = model.Scope{UserID: "u1", Role: model.RoleEditor}
	viewer = model.Scope{UserID: "u2", Role: model.RoleViewer}

	instagram = model.Source{
		ID: "s1",
		Fields: []model.Field{
			{ID: "likes", Label: "Likes", Type: model.FieldTypeNumber},
			{ID: "ctr", Label: "CTR", Type: model.FieldTypePercentage},
			{ID: "notes", Label: "Notes", Type: model.FieldTypeText},
		},
	}
)

func newUseCase(repo *mockRepo, producer post.Producer) post.UseCase {
	return New(repo, stubSources{sources: map[string]model.Source{"s1": instagram}}, producer, log.NewNop())
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCreate(t *testing.T) {
	repo := new(mockRepo)
	producer := &recordingProducer{}
	uc := newUseCase(repo, producer)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(o repository.CreateOptions) bool {
		return o.Title == "Launch" && o.Status == model.PostStatusDraft &&
			o.Date.String() == "2024-05-03" && o.SourceID == "s1" && o.CreatedBy == "u1"
	})).Return(model.Post{ID: "p1", SourceID: "s1", Date: date(t, "2024-05-03")}, nil)

	p, err := uc.Create(ctx, editor, post.CreateInput{Title: " Launch ", SourceID: "s1", Date: "2024-05-03"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	require.Len(t, producer.events, 1)
	assert.Equal(t, post.ActionCreated, producer.events[0].Action)
	assert.Equal(t, "s1", producer.events[0].SourceID)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	uc := newUseCase(new(mockRepo), nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		sc    model.Scope
		input post.CreateInput
		want  error
	}{
		{name: "viewer", sc: viewer, input: post.CreateInput{Title: "a", SourceID: "s1", Date: "2024-05-03"}, want: post.ErrForbidden},
		{name: "missing title", sc: editor, input: post.CreateInput{SourceID: "s1", Date: "2024-05-03"}, want: post.ErrTitleRequired},
		{name: "bad date", sc: editor, input: post.CreateInput{Title: "a", SourceID: "s1", Date: "05/03/2024"}, want: post.ErrInvalidDate},
		{name: "bad status", sc: editor, input: post.CreateInput{Title: "a", SourceID: "s1", Date: "2024-05-03", Status: "archived"}, want: post.ErrInvalidStatus},
		{name: "unknown source", sc: editor, input: post.CreateInput{Title: "a", SourceID: "s9", Date: "2024-05-03"}, want: post.ErrSourceNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.sc, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreate_PublishFailureIsNotReturned(t *testing.T) {
	repo := new(mockRepo)
	producer := &recordingProducer{err: errors.New("broker down")}
	uc := newUseCase(repo, producer)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(model.Post{ID: "p1"}, nil)

	_, err := uc.Create(ctx, editor, post.CreateInput{Title: "a", SourceID: "s1", Date: "2024-05-03"})
	require.NoError(t, err)
	assert.Len(t, producer.events, 1)
}

func TestList(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil)
	ctx := context.Background()

	filter := repository.FilterOptions{
		SourceID: "s1",
		Status:   model.PostStatusCompleted,
		From:     date(t, "2024-05-01"),
		To:       date(t, "2024-05-31"),
	}
	repo.On("Count", ctx, filter).Return(int64(25), nil)
	repo.On("List", ctx, repository.ListOptions{FilterOptions: filter, Limit: 20, Offset: 20}).
		Return([]model.Post{{ID: "p21"}}, nil)

	out, err := uc.List(ctx, editor, post.ListInput{
		SourceID:  "s1",
		Status:    model.PostStatusCompleted,
		From:      "2024-05-01",
		To:        "2024-05-31",
		Paginator: paginator.PaginateQuery{Page: 2},
	})
	require.NoError(t, err)
	assert.Len(t, out.Posts, 1)
	assert.Equal(t, 2, out.Paginator.TotalPages())
	repo.AssertExpectations(t)
}

func TestList_InvalidRange(t *testing.T) {
	uc := newUseCase(new(mockRepo), nil)

	_, err := uc.List(context.Background(), editor, post.ListInput{From: "2024-05-31", To: "2024-05-01"})
	assert.ErrorIs(t, err, post.ErrInvalidDateRange)

	_, err = uc.List(context.Background(), editor, post.ListInput{From: "yesterday"})
	assert.ErrorIs(t, err, post.ErrInvalidDate)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    model.PostStatus
		to      model.PostStatus
		want    error
		updates bool
	}{
		{name: "forward", from: model.PostStatusDraft, to: model.PostStatusScheduled, updates: true},
		{name: "skip ahead", from: model.PostStatusDraft, to: model.PostStatusPublished, updates: true},
		{name: "same status", from: model.PostStatusPublished, to: model.PostStatusPublished},
		{name: "backwards", from: model.PostStatusCompleted, to: model.PostStatusDraft, want: post.ErrInvalidStatusTransition},
		{name: "unknown", from: model.PostStatusDraft, to: "archived", want: post.ErrInvalidStatus},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockRepo)
			producer := &recordingProducer{}
			uc := newUseCase(repo, producer)

			repo.On("Detail", ctx, "p1").Return(model.Post{ID: "p1", Status: tc.from}, nil).Maybe()
			if tc.updates {
				repo.On("UpdateStatus", ctx, "p1", tc.to).Return(model.Post{ID: "p1", Status: tc.to}, nil)
			}

			p, err := uc.UpdateStatus(ctx, editor, post.UpdateStatusInput{ID: "p1", Status: tc.to})
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, p.Status)
			if tc.updates {
				assert.Len(t, producer.events, 1)
			} else {
				assert.Empty(t, producer.events)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRecordMetrics(t *testing.T) {
	repo := new(mockRepo)
	producer := &recordingProducer{}
	uc := newUseCase(repo, producer)
	ctx := context.Background()

	repo.On("Detail", ctx, "p1").Return(model.Post{ID: "p1", SourceID: "s1", Status: model.PostStatusPublished}, nil)
	repo.On("UpdateMetrics", ctx, mock.MatchedBy(func(o repository.UpdateMetricsOptions) bool {
		return o.Status == model.PostStatusCompleted &&
			o.Metrics["likes"] == model.NumberValue(120) &&
			o.Metrics["ctr"] == model.PercentageValue(2.5) &&
			o.Metrics["notes"] == model.TextValue("viral")
	})).Return(model.Post{ID: "p1", SourceID: "s1", Status: model.PostStatusCompleted}, nil)

	p, err := uc.RecordMetrics(ctx, editor, post.RecordMetricsInput{
		ID:     "p1",
		Values: map[string]any{"likes": float64(120), "ctr": "2.5", "notes": "viral"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusCompleted, p.Status)
	require.Len(t, producer.events, 1)
	assert.Equal(t, post.ActionMetrics, producer.events[0].Action)
	repo.AssertExpectations(t)
}

func TestRecordMetrics_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		values map[string]any
		want   error
	}{
		{name: "unknown field", values: map[string]any{"shares": float64(3)}, want: post.ErrUnknownMetricField},
		{name: "not a number", values: map[string]any{"likes": "many"}, want: post.ErrInvalidMetricValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockRepo)
			uc := newUseCase(repo, nil)
			repo.On("Detail", ctx, "p1").Return(model.Post{ID: "p1", SourceID: "s1"}, nil)

			_, err := uc.RecordMetrics(ctx, editor, post.RecordMetricsInput{ID: "p1", Values: tc.values})
			assert.ErrorIs(t, err, tc.want)
			repo.AssertNotCalled(t, "UpdateMetrics", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_MovedPostPublishesBothDates(t *testing.T) {
	repo := new(mockRepo)
	producer := &recordingProducer{}
	uc := newUseCase(repo, producer)
	ctx := context.Background()

	repo.On("Detail", ctx, "p1").Return(model.Post{ID: "p1", SourceID: "s1", Date: date(t, "2024-04-30")}, nil)
	repo.On("Update", ctx, mock.Anything).Return(model.Post{ID: "p1", SourceID: "s1", Date: date(t, "2024-05-02")}, nil)

	_, err := uc.Update(ctx, editor, post.UpdateInput{ID: "p1", Title: "t", Date: "2024-05-02"})
	require.NoError(t, err)
	require.Len(t, producer.events, 2)
	assert.Equal(t, "2024-04-30", producer.events[0].Date.String())
	assert.Equal(t, "2024-05-02", producer.events[1].Date.String())
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(mockRepo)
	uc := newUseCase(repo, nil)
	ctx := context.Background()

	repo.On("Delete", ctx, "p9").Return(model.Post{}, repository.ErrPostNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, editor, "p9"), post.ErrPostNotFound)
}
