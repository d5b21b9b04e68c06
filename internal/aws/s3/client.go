package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3API interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// PutObject uploads body to loc, replacing any existing object.
func (c *Client) PutObject(ctx context.Context, loc Location, body []byte, contentType string) error {
	input := &awss3.PutObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("PutObject(%s): %w", loc, err)
	}
	return nil
}

// ParseURL splits an s3://bucket/key URL. ok is false when raw is not an S3
// URL at all; a malformed S3 URL returns an error.
func ParseURL(raw string) (loc Location, ok bool, err error) {
	rest, found := strings.CutPrefix(raw, "s3://")
	if !found {
		return Location{}, false, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, true, fmt.Errorf("invalid S3 URL %q; expected s3://bucket/key", raw)
	}
	return Location{Bucket: bucket, Key: key}, true, nil
}
