package snapshot

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// APIError is a failure of the top-level load balancer listing. It aborts
// the whole snapshot.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, Cause(e.Err))
}

func (e *APIError) Unwrap() error { return e.Err }

// Warning records a listener or rule lookup that failed for one resource.
// The affected load balancer is still emitted.
type Warning struct {
	LoadBalancerName string
	// ListenerArn is set when the failing call was a rule lookup.
	ListenerArn string
	Err         error
}

func (w Warning) String() string {
	if w.ListenerArn != "" {
		return fmt.Sprintf("Could not retrieve rules for listener %s of %s: %s", w.ListenerArn, w.LoadBalancerName, Cause(w.Err))
	}
	return fmt.Sprintf("Could not retrieve listeners for %s: %s", w.LoadBalancerName, Cause(w.Err))
}

// Cause renders err for diagnostics, preferring the service's error code and
// message when the error came back from an AWS API.
func Cause(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
