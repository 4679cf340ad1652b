package minio

import (
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

const (
	maxIdleConns    = 64
	idleConnTimeout = 90 * time.Second

	defaultPort = "9000"

	// MaxObjectSize caps a single upload. Rendered reports are far smaller.
	MaxObjectSize = 512 << 20
	// MaxPresignedExpiry is the longest presigned URL lifetime S3 allows.
	MaxPresignedExpiry = 7 * 24 * time.Hour

	metaFileName = "file-name"
)

// Config holds MinIO connection settings. Bucket is the one probed by
// HealthCheck.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

type implMinIO struct {
	client *minio.Client
	config Config

	mu        sync.RWMutex
	connected bool
}

// FileInfo describes an uploaded object.
type FileInfo struct {
	BucketName  string
	ObjectName  string
	Size        int64
	ContentType string
	ETag        string
}

// UploadRequest uploads Size bytes from Reader. FileName is stored as object
// metadata and is what browsers see when no explicit name is requested.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	FileName    string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
	// FileName, when set, makes the link download as an attachment with this name.
	FileName string
}

type PresignedURLResponse struct {
	URL       string
	ExpiresAt time.Time
}
