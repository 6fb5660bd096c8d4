package twitter

import (
	"context"

	"github.com/ib-77/tweetrop/pkg/rop"
	"github.com/ib-77/tweetrop/pkg/rop/apply"
	"github.com/ib-77/tweetrop/pkg/rop/chain"
	"github.com/ib-77/tweetrop/pkg/rop/solo"
)

// Pipeline builds TweetDetails for userID from the lookups in src.
type Pipeline func(ctx context.Context, src Source, userID string) rop.Result[TweetDetails]

func requireUserID(ctx context.Context, user User) error {
	if user.ID == nil {
		return UserNotFoundError()
	}
	return nil
}

func requireTweetID(ctx context.Context, tweet Tweet) error {
	if tweet.ID == nil {
		return TweetNotFoundError()
	}
	return nil
}

// latestTweetStep guards the user id before the source is asked for a tweet.
func latestTweetStep(ctx context.Context, src Source) func(User) rop.Result[Tweet] {
	return func(user User) rop.Result[Tweet] {
		return solo.Switch(ctx, solo.FailOnError(ctx, solo.Succeed(user), requireUserID), src.LatestTweet)
	}
}

// sentimentStep guards the tweet id before the source is asked for a sentiment.
func sentimentStep(ctx context.Context, src Source) func(Tweet) rop.Result[TweetSentiment] {
	return func(tweet Tweet) rop.Result[TweetSentiment] {
		return solo.Switch(ctx, solo.FailOnError(ctx, solo.Succeed(tweet), requireTweetID), src.Sentiment)
	}
}

// Applicative runs the lookups through the applicative apply family:
// pure(details) <*> user <*> pure(latestTweet) <*> pure(sentiment).
func Applicative(ctx context.Context, src Source, userID string) rop.Result[TweetDetails] {
	withUser := apply.ApplyFnKeepArg(apply.Pure(apply.Curry3(NewTweetDetails)), src.User(ctx, userID))
	withTweet := apply.ApplyStep(withUser, apply.Pure(latestTweetStep(ctx, src)))
	return apply.ApplyStepDrop(withTweet, apply.Pure(sentimentStep(ctx, src)))
}

// Curried pairs every lookup with the curried constructor and advances it
// with FlatMap.
func Curried(ctx context.Context, src Source, userID string) rop.Result[TweetDetails] {
	details := CurriedDetails()

	withUser := apply.ApplyResult(src.User(ctx, userID), details)
	withTweet := rop.FlatMap(withUser,
		apply.ApplyResultOf[Tweet, func(TweetSentiment) TweetDetails](latestTweetStep(ctx, src)))
	return rop.FlatMap(withTweet,
		apply.ApplyResultOfDrop[TweetSentiment, TweetDetails](sentimentStep(ctx, src)))
}

// Staged fills a DetailsBuilder stage by stage and finalizes it at the end.
func Staged(ctx context.Context, src Source, userID string) rop.Result[TweetDetails] {
	c := chain.Then(chain.FromValue(ctx, NewDetailsBuilder()),
		func(ctx context.Context, b DetailsBuilder) rop.Result[DetailsBuilder] {
			return rop.Map(src.User(ctx, userID), b.WithUser)
		})

	c = chain.Then(c, func(ctx context.Context, b DetailsBuilder) rop.Result[DetailsBuilder] {
		user, _ := b.User()
		return rop.Map(latestTweetStep(ctx, src)(user), b.WithTweet)
	})

	c = chain.Then(c, func(ctx context.Context, b DetailsBuilder) rop.Result[DetailsBuilder] {
		tweet, _ := b.Tweet()
		return rop.Map(sentimentStep(ctx, src)(tweet), b.WithSentiment)
	})

	return chain.Then(c, func(ctx context.Context, b DetailsBuilder) rop.Result[TweetDetails] {
		return b.Build()
	}).Result()
}
