package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"analytics-srv/internal/aggregation"
	"analytics-srv/internal/metric"
	"analytics-srv/internal/model"
	"analytics-srv/internal/post"
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/minio"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, opts repository.CreateOptions) (model.Report, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockRepo) Detail(ctx context.Context, id string) (model.Report, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.Report, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context, opts repository.FilterOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, opts repository.UpdateOptions) (model.Report, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepo) ListDue(ctx context.Context, opts repository.ListDueOptions) ([]model.Report, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *mockRepo) AdvanceNextRun(ctx context.Context, opts repository.AdvanceNextRunOptions) (bool, error) {
	args := m.Called(ctx, opts)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) CreateRun(ctx context.Context, opts repository.CreateRunOptions) (model.ReportRun, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.ReportRun), args.Error(1)
}

func (m *mockRepo) DetailRun(ctx context.Context, id string) (model.ReportRun, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ReportRun), args.Error(1)
}

func (m *mockRepo) FindRunByParamsHash(ctx context.Context, opts repository.FindRunByParamsHashOptions) (*model.ReportRun, error) {
	args := m.Called(ctx, opts)
	run, _ := args.Get(0).(*model.ReportRun)
	return run, args.Error(1)
}

func (m *mockRepo) ListRuns(ctx context.Context, opts repository.ListRunsOptions) ([]model.ReportRun, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.ReportRun), args.Error(1)
}

func (m *mockRepo) CountRuns(ctx context.Context, reportID string) (int64, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) UpdateRunCompleted(ctx context.Context, opts repository.UpdateRunCompletedOptions) error {
	return m.Called(ctx, opts).Error(0)
}

func (m *mockRepo) UpdateRunFailed(ctx context.Context, opts repository.UpdateRunFailedOptions) error {
	return m.Called(ctx, opts).Error(0)
}

// fakeProducer records what was published.
type fakeProducer struct {
	mu            sync.Mutex
	jobs          []report.Job
	notifications []report.Notification
	err           error
}

func (p *fakeProducer) PublishJob(ctx context.Context, job report.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, job)
	return nil
}

func (p *fakeProducer) PublishNotification(ctx context.Context, n report.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifications = append(p.notifications, n)
	return nil
}

// fakeStorage keeps uploads in memory.
type fakeStorage struct {
	minio.MinIO
	uploads   map[string][]byte
	types     map[string]string
	presigned *minio.PresignedURLRequest
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	s.uploads[req.ObjectName] = data
	s.types[req.ObjectName] = req.ContentType
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (s *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	s.presigned = req
	return &minio.PresignedURLResponse{
		URL:       "https://minio.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: fixedNow.Add(req.Expiry),
	}, nil
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
	got   post.EvaluationInput
	calls int
}

func (s *stubPosts) ListForEvaluation(ctx context.Context, input post.EvaluationInput) ([]model.Post, error) {
	s.calls++
	s.got = input
	return s.posts, nil
}

var (
	errBoom = errors.New("boom")

	fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

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
	impressions = model.MetricMapping{
		ID:              "m-impressions",
		Name:            "Impressions",
		SourceMetrics:   []model.SourceMetric{{SourceID: "s1", FieldID: "impressions"}},
		CalculationType: model.CalculationSum,
	}
)

type fixture struct {
	uc       *implUseCase
	repo     *mockRepo
	producer *fakeProducer
	storage  *fakeStorage
	posts    *stubPosts
}

func newFixture() fixture {
	f := fixture{
		repo:     new(mockRepo),
		producer: &fakeProducer{},
		storage:  newFakeStorage(),
		posts:    &stubPosts{},
	}
	uc := New(f.repo, f.producer, f.storage, stubMetrics{mappings: []model.MetricMapping{clicks, impressions}}, f.posts,
		aggregation.New(log.NewNop(), nil), nil, log.NewNop(), Config{Bucket: "reports", DownloadExpiry: 10 * time.Minute})
	f.uc = uc.(*implUseCase)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func completedPost(date string, clicks, impressions float64) model.Post {
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

func weeklyReport() model.Report {
	next := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	return model.Report{
		ID:        "r1",
		Name:      "Weekly",
		TimeRange: model.TimeRangeLastWeek,
		Widgets: []model.ReportWidget{
			{ID: "w1", Type: model.ReportWidgetMetric, Title: "Total clicks", MetricID: "m-clicks"},
			{ID: "w2", Type: model.ReportWidgetChart, Title: "Mix", MetricIDs: []string{"m-impressions", "m-gone"}},
		},
		Formats: []model.ReportFormat{model.ReportFormatCSV, model.ReportFormatJSON},
		Schedule: &model.ReportSchedule{
			Frequency:  model.FrequencyWeekly,
			Day:        1,
			Time:       "08:00",
			Recipients: []string{"ops@example.com"},
		},
		NextRunAt: &next,
		CreatedBy: "u1",
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
}
