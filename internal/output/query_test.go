package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    any
		wantErr bool
	}{
		{
			name: "names",
			expr: "[].LoadBalancerName",
			want: []any{"web", "tcp"},
		},
		{
			name: "filter by type",
			expr: "[?Type=='network'].LoadBalancerArn",
			want: []any{"arn:aws:elasticloadbalancing:us-east-1:123456:loadbalancer/net/tcp/def"},
		},
		{
			name: "listener ports",
			expr: "[].Listeners[].Port",
			want: []any{float64(443)},
		},
		{
			name: "count",
			expr: "length(@)",
			want: float64(2),
		},
		{
			name: "no match",
			expr: "[?Type=='gateway']",
			want: []any{},
		},
		{
			name:    "invalid expression",
			expr:    "[].[",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(sampleRecords(), tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
