package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"

	awselb "tasnim.dev/elbv2-dump/internal/aws/elb"
	awss3 "tasnim.dev/elbv2-dump/internal/aws/s3"
)

type ServiceClient struct {
	ELB *awselb.Client
	S3  *awss3.Client

	cfg aws.Config
}

// NewServiceClient loads the AWS config and fails with ErrNoCredentials when
// the credential chain cannot produce credentials.
func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	if err := CheckCredentials(ctx, cfg); err != nil {
		return nil, err
	}

	return &ServiceClient{
		ELB: awselb.NewClient(elbv2.NewFromConfig(cfg)),
		S3:  awss3.NewClient(awss3sdk.NewFromConfig(cfg)),
		cfg: cfg,
	}, nil
}

// AccountID looks up the caller's account; empty when STS is unreachable.
func (c *ServiceClient) AccountID(ctx context.Context) string {
	return GetAccountID(ctx, c.cfg)
}

func (c *ServiceClient) Region() string {
	return c.cfg.Region
}
