package twitter

import (
	"context"
	"fmt"
)

type OptionKey string

const StrategyOptionKey OptionKey = "strategy_options"

type Strategy int

const (
	StrategyCurried Strategy = iota
	StrategyApplicative
	StrategyStaged
)

var strategyNames = map[Strategy]string{
	StrategyCurried:     "curried",
	StrategyApplicative: "applicative",
	StrategyStaged:      "staged",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Strategies lists every strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyCurried, StrategyApplicative, StrategyStaged}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Pipeline returns the function implementing the strategy.
func (s Strategy) Pipeline() Pipeline {
	switch s {
	case StrategyApplicative:
		return Applicative
	case StrategyStaged:
		return Staged
	default:
		return Curried
	}
}

type StrategyOptions struct {
	Strategy Strategy
}

func WithStrategy(ctx context.Context, strategy Strategy) context.Context {
	return context.WithValue(ctx, StrategyOptionKey, StrategyOptions{Strategy: strategy})
}

func StrategyFrom(ctx context.Context, defaultStrategy Strategy) Strategy {
	options, ok := ctx.Value(StrategyOptionKey).(StrategyOptions)
	if ok {
		return options.Strategy
	}
	return defaultStrategy
}
