package minio

import (
	"net"
	"strings"
)

func normalizeConfig(cfg Config) (Config, error) {
	required := []struct {
		value, name string
	}{
		{cfg.Endpoint, "endpoint"},
		{cfg.AccessKey, "access key"},
		{cfg.SecretKey, "secret key"},
		{cfg.Region, "region"},
		{cfg.Bucket, "bucket"},
	}
	for _, r := range required {
		if r.value == "" {
			return cfg, invalidInput(r.name + " is required")
		}
	}
	if _, _, err := net.SplitHostPort(cfg.Endpoint); err != nil {
		cfg.Endpoint = net.JoinHostPort(cfg.Endpoint, defaultPort)
	}
	return cfg, checkBucketName(cfg.Bucket)
}

// checkBucketName applies the S3 naming rules MinIO enforces for new buckets,
// minus dotted names.
func checkBucketName(name string) error {
	switch {
	case len(name) < 3 || len(name) > 63:
		return invalidInput("bucket name must be 3 to 63 characters")
	case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
		return invalidInput("bucket name cannot start or end with a hyphen")
	case strings.Contains(name, "--"):
		return invalidInput("bucket name cannot contain consecutive hyphens")
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return invalidInput("bucket name can only contain lowercase letters, digits and hyphens")
		}
	}
	return nil
}

func checkObjectName(name string) error {
	switch {
	case name == "":
		return invalidInput("object name is required")
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return invalidInput("object name cannot start or end with '/'")
	case strings.Contains(name, `\`):
		return invalidInput("object name cannot contain backslashes")
	}
	return nil
}

func checkUpload(req *UploadRequest) error {
	if req == nil {
		return invalidInput("upload request is required")
	}
	if err := checkBucketName(req.BucketName); err != nil {
		return err
	}
	if err := checkObjectName(req.ObjectName); err != nil {
		return err
	}
	switch {
	case req.Reader == nil:
		return invalidInput("reader is required")
	case req.Size <= 0:
		return invalidInput("size must be positive")
	case req.Size > MaxObjectSize:
		return invalidInput("object is too large")
	case req.ContentType == "":
		return invalidInput("content type is required")
	}
	return nil
}

func checkPresign(req *PresignedURLRequest) error {
	if req == nil {
		return invalidInput("presign request is required")
	}
	if err := checkBucketName(req.BucketName); err != nil {
		return err
	}
	if err := checkObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Expiry <= 0 || req.Expiry > MaxPresignedExpiry {
		return invalidInput("expiry must be between 0 and 7 days")
	}
	return nil
}
