package minio

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.client.ListBuckets(ctx)
	m.connected = err == nil
	return classify(err, "connect")
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()

	if !connected {
		return &StorageError{Code: ErrCodeConnection, Message: "not connected", Operation: "health_check"}
	}
	_, err := m.client.BucketExists(ctx, m.config.Bucket)
	return classify(err, "health_check")
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := checkBucketName(bucketName); err != nil {
		return err
	}
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return classify(err, "bucket_exists")
	}
	if exists {
		return nil
	}

	err = m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	// Another replica may have created it in the meantime.
	if minio.ToErrorResponse(err).Code == "BucketAlreadyOwnedByYou" {
		return nil
	}
	return classify(err, "make_bucket")
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := checkUpload(req); err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		meta[k] = v
	}
	if req.FileName != "" {
		meta[metaFileName] = req.FileName
	}

	info, err := m.client.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: meta,
	})
	if err != nil {
		return nil, classify(err, "put_object")
	}
	return &FileInfo{
		BucketName:  req.BucketName,
		ObjectName:  req.ObjectName,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
	}, nil
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := checkPresign(req); err != nil {
		return nil, err
	}

	params := url.Values{}
	if req.FileName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", req.FileName))
	}
	issuedAt := time.Now()
	u, err := m.client.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, params)
	if err != nil {
		return nil, classify(err, "presign_get")
	}
	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: issuedAt.Add(req.Expiry),
	}, nil
}
