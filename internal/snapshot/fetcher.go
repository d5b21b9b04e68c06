package snapshot

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// Source is the subset of the ELBv2 client the fetcher needs.
type Source interface {
	ListLoadBalancers(ctx context.Context, names []string) ([]elbtypes.LoadBalancer, error)
	ListListeners(ctx context.Context, lbARN string) ([]elbtypes.Listener, error)
	ListRules(ctx context.Context, listenerARN string) ([]elbtypes.Rule, error)
}

// Result is the outcome for one load balancer. Warnings is empty when every
// lookup for it succeeded.
type Result struct {
	LoadBalancer LoadBalancerRecord
	Warnings     []Warning
}

func (r Result) OK() bool { return len(r.Warnings) == 0 }

type Fetcher struct {
	src   Source
	rules bool
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithRules makes the fetcher attach each listener's rules.
func WithRules(enabled bool) Option {
	return func(f *Fetcher) {
		f.rules = enabled
	}
}

func New(src Source, opts ...Option) *Fetcher {
	f := &Fetcher{src: src}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch lists load balancers (all of them, or only names when given) and
// attaches their listeners one load balancer at a time. Only a failure of the
// top-level listing is returned as an error; listener and rule failures are
// reported as warnings on the affected Result.
func (f *Fetcher) Fetch(ctx context.Context, names []string) ([]Result, error) {
	lbs, err := f.src.ListLoadBalancers(ctx, names)
	if err != nil {
		return nil, &APIError{Op: "DescribeLoadBalancers", Err: err}
	}

	results := make([]Result, 0, len(lbs))
	for _, lb := range lbs {
		res := Result{LoadBalancer: toLoadBalancerRecord(lb)}
		name := aws.ToString(lb.LoadBalancerName)

		listeners, err := f.src.ListListeners(ctx, aws.ToString(lb.LoadBalancerArn))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			res.Warnings = append(res.Warnings, Warning{LoadBalancerName: name, Err: err})
			results = append(results, res)
			continue
		}

		for _, l := range listeners {
			rec := toListenerRecord(l)
			if f.rules {
				rec.Rules = []RuleRecord{}
				rules, err := f.src.ListRules(ctx, rec.ListenerArn)
				if err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					res.Warnings = append(res.Warnings, Warning{LoadBalancerName: name, ListenerArn: rec.ListenerArn, Err: err})
				}
				for _, r := range rules {
					rec.Rules = append(rec.Rules, toRuleRecord(r))
				}
			}
			res.LoadBalancer.Listeners = append(res.LoadBalancer.Listeners, rec)
		}
		results = append(results, res)
	}
	return results, nil
}

// Records returns the load balancer records of results in order. The slice
// is non-nil so an empty snapshot encodes as [].
func Records(results []Result) []LoadBalancerRecord {
	recs := make([]LoadBalancerRecord, 0, len(results))
	for _, r := range results {
		recs = append(recs, r.LoadBalancer)
	}
	return recs
}

// Warnings flattens the warnings of results in load balancer order.
func Warnings(results []Result) []Warning {
	var ws []Warning
	for _, r := range results {
		ws = append(ws, r.Warnings...)
	}
	return ws
}
