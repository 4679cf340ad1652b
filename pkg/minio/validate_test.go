package minio

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConfig(t *testing.T) {
	cfg, err := normalizeConfig(Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Region: "us-east-1", Bucket: "reports"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Endpoint)

	cfg, err = normalizeConfig(Config{Endpoint: "minio:9100", AccessKey: "a", SecretKey: "s", Region: "us-east-1", Bucket: "reports"})
	require.NoError(t, err)
	assert.Equal(t, "minio:9100", cfg.Endpoint)

	_, err = normalizeConfig(Config{Endpoint: "localhost:9000"})
	assert.Error(t, err)
}

func TestCheckBucketName(t *testing.T) {
	assert.NoError(t, checkBucketName("analytics-reports"))
	for _, name := range []string{"ab", "Reports", "a--b", "-abc", "abc-", "a_b", strings.Repeat("a", 64)} {
		assert.Error(t, checkBucketName(name), name)
	}
}

func TestCheckUpload(t *testing.T) {
	ok := UploadRequest{
		BucketName:  "reports",
		ObjectName:  "reports/r1/run1.csv",
		Reader:      strings.NewReader("a,b"),
		Size:        3,
		ContentType: "text/csv",
	}
	require.NoError(t, checkUpload(&ok))

	tests := map[string]func(r *UploadRequest){
		"leading slash": func(r *UploadRequest) { r.ObjectName = "/x.csv" },
		"empty":         func(r *UploadRequest) { r.Size = 0 },
		"too large":     func(r *UploadRequest) { r.Size = MaxObjectSize + 1 },
		"no reader":     func(r *UploadRequest) { r.Reader = nil },
		"no type":       func(r *UploadRequest) { r.ContentType = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := ok
			mutate(&req)
			assert.Error(t, checkUpload(&req))
		})
	}
}

func TestCheckPresign(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "reports", ObjectName: "x.csv", Expiry: time.Hour}
	require.NoError(t, checkPresign(req))

	req.Expiry = 8 * 24 * time.Hour
	assert.Error(t, checkPresign(req))

	req.Expiry = 0
	assert.Error(t, checkPresign(req))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil, "noop"))

	assert.True(t, IsNotFound(classify(minio.ErrorResponse{Code: "NoSuchKey"}, "stat")))
	assert.True(t, IsNotFound(classify(minio.ErrorResponse{Code: "NoSuchBucket"}, "stat")))

	var se *StorageError
	err := classify(minio.ErrorResponse{Code: "AccessDenied"}, "put_object")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodePermission, se.Code)
	assert.Equal(t, "put_object", se.Operation)

	err = classify(errors.New("dial tcp: refused"), "connect")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, ErrCodeConnection, se.Code)
	assert.False(t, IsNotFound(err))
}
