package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleList_FirstMatch(t *testing.T) {
	l := ruleList{
		policy: firstMatch,
		rules: []rule{
			{phrase: "alpha", result: "a"},
			{phrase: "beta", result: "b"},
		},
	}

	hit, ok := l.eval("beta and alpha together")
	require.True(t, ok)
	// Table order decides, not input position.
	assert.Equal(t, "a", hit.result)
	assert.False(t, hit.atStart)

	hit, ok = l.eval("beta only")
	require.True(t, ok)
	assert.Equal(t, "b", hit.result)
	assert.True(t, hit.atStart)

	_, ok = l.eval("gamma")
	assert.False(t, ok)
}

func TestRuleList_LongestMatch(t *testing.T) {
	l := ruleList{
		policy: longestMatch,
		rules: []rule{
			{phrase: "load balancer", result: "short"},
			{phrase: "http load balancer", result: "long"},
		},
	}

	hit, ok := l.eval("create http load balancer now")
	require.True(t, ok)
	assert.Equal(t, "long", hit.result)
}

func TestRuleList_LongestMatch_EqualLengthKeepsEarlier(t *testing.T) {
	l := ruleList{
		policy: longestMatch,
		rules: []rule{
			{phrase: "zones", result: "first"},
			{phrase: "pools", result: "second"},
		},
	}

	hit, ok := l.eval("zones and pools")
	require.True(t, ok)
	assert.Equal(t, "first", hit.result)
}

func TestRuleList_AtStart(t *testing.T) {
	l := ruleList{
		policy: longestMatch,
		rules:  []rule{{phrase: "pools", result: "r"}},
	}

	hit, _ := l.eval("pools everywhere")
	assert.True(t, hit.atStart)

	hit, _ = l.eval("all the pools")
	assert.False(t, hit.atStart)
}
