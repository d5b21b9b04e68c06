package output

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Query evaluates a JMESPath expression against v. v is first round-tripped
// through JSON so expressions address the same field names as the output.
func Query(v any, expr string) (any, error) {
	compiled, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid --query expression: %w", err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal for query failed: %w", err)
	}
	var input any
	if err := json.Unmarshal(b, &input); err != nil {
		return nil, fmt.Errorf("unmarshal for query failed: %w", err)
	}

	res, err := compiled.Search(input)
	if err != nil {
		return nil, fmt.Errorf("jmespath search failed: %w", err)
	}
	return res, nil
}
