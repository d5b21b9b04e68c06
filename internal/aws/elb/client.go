package elb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

type ELBAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
	DescribeListeners(ctx context.Context, params *elbv2.DescribeListenersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeListenersOutput, error)
	DescribeRules(ctx context.Context, params *elbv2.DescribeRulesInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeRulesOutput, error)
}

type Client struct {
	api ELBAPI
}

func NewClient(api ELBAPI) *Client {
	return &Client{api: api}
}

// ListLoadBalancers returns every load balancer visible to the caller, or only
// the named ones when names is non-empty. Results keep the API's order.
func (c *Client) ListLoadBalancers(ctx context.Context, names []string) ([]elbtypes.LoadBalancer, error) {
	var lbs []elbtypes.LoadBalancer
	var marker *string

	for {
		in := &elbv2.DescribeLoadBalancersInput{Marker: marker}
		if len(names) > 0 {
			in.Names = names
		}
		out, err := c.api.DescribeLoadBalancers(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("DescribeLoadBalancers: %w", err)
		}
		lbs = append(lbs, out.LoadBalancers...)

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}
	return lbs, nil
}

func (c *Client) ListListeners(ctx context.Context, lbARN string) ([]elbtypes.Listener, error) {
	var listeners []elbtypes.Listener
	var marker *string

	for {
		out, err := c.api.DescribeListeners(ctx, &elbv2.DescribeListenersInput{
			LoadBalancerArn: aws.String(lbARN),
			Marker:          marker,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeListeners: %w", err)
		}
		listeners = append(listeners, out.Listeners...)

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}
	return listeners, nil
}

// ListRules returns the rules of a listener, default rule included.
func (c *Client) ListRules(ctx context.Context, listenerARN string) ([]elbtypes.Rule, error) {
	var rules []elbtypes.Rule
	var marker *string

	for {
		out, err := c.api.DescribeRules(ctx, &elbv2.DescribeRulesInput{
			ListenerArn: aws.String(listenerARN),
			Marker:      marker,
		})
		if err != nil {
			return nil, fmt.Errorf("DescribeRules: %w", err)
		}
		rules = append(rules, out.Rules...)

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}
	return rules, nil
}
