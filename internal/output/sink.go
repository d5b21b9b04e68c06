package output

import (
	"context"
	"fmt"
	"io"
	"os"

	awss3 "tasnim.dev/elbv2-dump/internal/aws/s3"
)

// WriteError reports that the rendered snapshot could not be stored.
type WriteError struct {
	Dest string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write to '%s': %v", e.Dest, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Uploader stores an object in S3.
type Uploader interface {
	PutObject(ctx context.Context, loc awss3.Location, body []byte, contentType string) error
}

// Sink writes a rendered snapshot to stdout, a local file or an S3 object.
type Sink struct {
	Stdout io.Writer
	S3     Uploader
}

// Write stores data at dest. An empty dest means stdout, an s3://bucket/key
// dest uploads the data, anything else is a local path that is created or
// truncated.
func (s *Sink) Write(ctx context.Context, dest string, data []byte, contentType string) error {
	if dest == "" {
		if _, err := s.Stdout.Write(data); err != nil {
			return &WriteError{Dest: "<stdout>", Err: err}
		}
		return nil
	}

	loc, isS3, err := awss3.ParseURL(dest)
	if err != nil {
		return &WriteError{Dest: dest, Err: err}
	}
	if isS3 {
		if s.S3 == nil {
			return &WriteError{Dest: dest, Err: fmt.Errorf("no S3 client configured")}
		}
		if err := s.S3.PutObject(ctx, loc, data, contentType); err != nil {
			return &WriteError{Dest: dest, Err: err}
		}
		return nil
	}

	if err := os.WriteFile(dest, data, 0644); err != nil {
		return &WriteError{Dest: dest, Err: err}
	}
	return nil
}
