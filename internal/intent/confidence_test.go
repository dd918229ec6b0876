package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name       string
		components []component
		want       float64
	}{
		{
			name: "all present",
			components: []component{
				{weight: 0.3, score: 1.0, present: true},
				{weight: 0.4, score: 0.85, present: true},
				{weight: 0.15, score: 0.9, present: true},
				{weight: 0.15, score: 0.9, present: true},
			},
			want: 0.91,
		},
		{
			name: "absent components excluded from both sides",
			components: []component{
				{weight: 0.3, score: 1.0, present: true},
				{weight: 0.4, score: 1.0, present: true},
				{weight: 0.15, score: 0.9, present: false},
				{weight: 0.15, score: 0.9, present: false},
			},
			want: 1.0,
		},
		{
			name:       "no components",
			components: nil,
			want:       0,
		},
		{
			name: "all absent",
			components: []component{
				{weight: 0.3, score: 1.0, present: false},
			},
			want: 0,
		},
		{
			name: "rounds to two decimals",
			components: []component{
				{weight: 0.3, score: 1.0, present: true},
				{weight: 0.4, score: 0.85, present: true},
			},
			want: 0.91,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, weightedAverage(tt.components), 0.0001)
		})
	}
}
