package storage

import "context"

// XLSXContentType is the media type of generated workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ObjectStorage captures the S3-compatible operations the generator needs.
type ObjectStorage interface {
	UploadObject(ctx context.Context, key string, data []byte) error
}
