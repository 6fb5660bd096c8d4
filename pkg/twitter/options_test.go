package twitter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyFrom(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, StrategyStaged, StrategyFrom(ctx, StrategyStaged))

	ctx = WithStrategy(ctx, StrategyApplicative)
	assert.Equal(t, StrategyApplicative, StrategyFrom(ctx, StrategyCurried))
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range Strategies() {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStrategy("monadic")
	assert.EqualError(t, err, `unknown strategy "monadic"`)
	assert.Equal(t, "strategy(9)", Strategy(9).String())
}
