package minio

import (
	"context"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO stores rendered report files and hands out time-limited links to them.
//
//go:generate mockery --name MinIO
type MinIO interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	// EnsureBucket creates bucketName when it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error

	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
}

// NewMinIO creates a client. Call Connect before use.
func NewMinIO(cfg Config) (MinIO, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConns,
			IdleConnTimeout:     idleConnTimeout,
			DisableCompression:  true,
		},
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{client: client, config: cfg}, nil
}
