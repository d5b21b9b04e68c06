package output

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awss3 "tasnim.dev/elbv2-dump/internal/aws/s3"
)

type fakeUploader struct {
	loc         awss3.Location
	body        []byte
	contentType string
	err         error
}

func (f *fakeUploader) PutObject(ctx context.Context, loc awss3.Location, body []byte, contentType string) error {
	f.loc = loc
	f.body = body
	f.contentType = contentType
	return f.err
}

func TestSink_Stdout(t *testing.T) {
	var stdout bytes.Buffer
	s := &Sink{Stdout: &stdout}

	require.NoError(t, s.Write(context.Background(), "", []byte("[]\n"), "application/json"))
	assert.Equal(t, "[]\n", stdout.String())
}

func TestSink_FileOverwrites(t *testing.T) {
	var stdout bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0644))

	s := &Sink{Stdout: &stdout}
	require.NoError(t, s.Write(context.Background(), path, []byte("[]\n"), "application/json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
	assert.Empty(t, stdout.String())
}

func TestSink_FileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	s := &Sink{Stdout: &bytes.Buffer{}}

	err := s.Write(context.Background(), path, []byte("[]\n"), "application/json")
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, path, werr.Dest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSink_S3(t *testing.T) {
	up := &fakeUploader{}
	var stdout bytes.Buffer
	s := &Sink{Stdout: &stdout, S3: up}

	require.NoError(t, s.Write(context.Background(), "s3://snapshots/elb/latest.json", []byte("[]\n"), "application/json"))
	assert.Equal(t, awss3.Location{Bucket: "snapshots", Key: "elb/latest.json"}, up.loc)
	assert.Equal(t, "[]\n", string(up.body))
	assert.Equal(t, "application/json", up.contentType)
	assert.Empty(t, stdout.String())
}

func TestSink_S3Errors(t *testing.T) {
	s := &Sink{Stdout: &bytes.Buffer{}, S3: &fakeUploader{err: errors.New("AccessDenied")}}
	err := s.Write(context.Background(), "s3://b/k.json", []byte("[]"), "")
	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Contains(t, err.Error(), "AccessDenied")

	err = s.Write(context.Background(), "s3://bucket-only", []byte("[]"), "")
	require.ErrorAs(t, err, &werr)

	noClient := &Sink{Stdout: &bytes.Buffer{}}
	err = noClient.Write(context.Background(), "s3://b/k.json", []byte("[]"), "")
	require.ErrorAs(t, err, &werr)
}
