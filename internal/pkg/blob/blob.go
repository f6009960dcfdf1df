// Package blob is the sink published exports are written to.
package blob

import (
	"context"
	"io"
	"time"
)

type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
)

type PutOptions struct {
	ContentType string
	Metadata    map[string]string
}

type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
	URI          string    `json:"uri,omitempty"`
}

// Store is a minimal key-value object store.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Driver() Driver
}
