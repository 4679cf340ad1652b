package minio

import (
	"context"
	"fmt"
	"sync"

	"analytics-srv/config"
	"analytics-srv/pkg/minio"
)

var (
	mu       sync.Mutex
	instance minio.MinIO
)

// Connect creates the shared client and makes sure the report bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.NewMinIO(minio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure MinIO bucket %s: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
