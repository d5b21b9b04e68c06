package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestServiceClientRegion(t *testing.T) {
	c := &ServiceClient{cfg: aws.Config{Region: "ap-northeast-1"}}
	assert.Equal(t, "ap-northeast-1", c.Region())
}
