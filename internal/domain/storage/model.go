package storage

import (
	"context"
	"io"
)

// Object is a file to be written to the public bucket.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader writes objects and reports their public URL.
type Uploader interface {
	Upload(ctx context.Context, obj Object) (publicURL string, err error)
}
