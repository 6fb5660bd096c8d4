package twitter

import (
	"context"

	"github.com/ib-77/tweetrop/pkg/rop"
)

// Source is the set of lookups a pipeline run depends on.
type Source interface {
	User(ctx context.Context, userID string) rop.Result[User]
	LatestTweet(ctx context.Context, user User) rop.Result[Tweet]
	Sentiment(ctx context.Context, tweet Tweet) rop.Result[TweetSentiment]
}

// Funcs adapts plain functions to Source. Every field must be set.
type Funcs struct {
	UserFn        func(ctx context.Context, userID string) rop.Result[User]
	LatestTweetFn func(ctx context.Context, user User) rop.Result[Tweet]
	SentimentFn   func(ctx context.Context, tweet Tweet) rop.Result[TweetSentiment]
}

func (f Funcs) User(ctx context.Context, userID string) rop.Result[User] {
	return f.UserFn(ctx, userID)
}

func (f Funcs) LatestTweet(ctx context.Context, user User) rop.Result[Tweet] {
	return f.LatestTweetFn(ctx, user)
}

func (f Funcs) Sentiment(ctx context.Context, tweet Tweet) rop.Result[TweetSentiment] {
	return f.SentimentFn(ctx, tweet)
}

// StubSource returns fixed records. It ignores the requested user id.
type StubSource struct{}

func (StubSource) User(_ context.Context, _ string) rop.Result[User] {
	return rop.Success(User{ID: ID("234"), Name: "Tyrone"})
}

func (StubSource) LatestTweet(_ context.Context, user User) rop.Result[Tweet] {
	if user.ID == nil {
		return rop.Fail[Tweet](UserNotFoundError())
	}
	return rop.Success(Tweet{ID: ID("123"), Message: "Wahoo", UserID: *user.ID})
}

func (StubSource) Sentiment(_ context.Context, tweet Tweet) rop.Result[TweetSentiment] {
	if tweet.ID == nil {
		return rop.Fail[TweetSentiment](TweetNotFoundError())
	}
	return rop.Success(TweetSentiment{ID: "123", IsPositive: true, TweetID: *tweet.ID})
}
