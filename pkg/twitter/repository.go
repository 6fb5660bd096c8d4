package twitter

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ib-77/tweetrop/pkg/rop"
	"github.com/ib-77/tweetrop/pkg/rop/solo"
)

type Repository struct {
	src    Source
	logger *slog.Logger
}

// NewRepository returns a repository reading from src. A nil logger discards output.
func NewRepository(src Source, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{src: src, logger: logger}
}

// GetTweetDetails runs the strategy selected in ctx (StrategyCurried when
// none is set) for userID.
func (r *Repository) GetTweetDetails(ctx context.Context, userID string) rop.Result[TweetDetails] {
	strategy := StrategyFrom(ctx, StrategyCurried)
	log := r.logger.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("strategy", strategy.String()),
		slog.String("user_id", userID))

	log.DebugContext(ctx, "tweet details requested")

	return solo.DoubleTee(ctx, strategy.Pipeline()(ctx, r.src, userID),
		func(ctx context.Context, d TweetDetails) {
			log.DebugContext(ctx, "tweet details assembled", slog.String("tweet_id", d.Sentiment().TweetID))
		},
		func(ctx context.Context, err error) {
			log.DebugContext(ctx, "tweet details failed",
				slog.String("kind", KindOf(err).String()), slog.Any("error", err))
		})
}
