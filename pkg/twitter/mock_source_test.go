package twitter

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ib-77/tweetrop/pkg/rop"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) User(ctx context.Context, userID string) rop.Result[User] {
	args := m.Called(ctx, userID)
	return args.Get(0).(rop.Result[User])
}

func (m *mockSource) LatestTweet(ctx context.Context, user User) rop.Result[Tweet] {
	args := m.Called(ctx, user)
	return args.Get(0).(rop.Result[Tweet])
}

func (m *mockSource) Sentiment(ctx context.Context, tweet Tweet) rop.Result[TweetSentiment] {
	args := m.Called(ctx, tweet)
	return args.Get(0).(rop.Result[TweetSentiment])
}

var (
	tyrone     = User{ID: ID("234"), Name: "Tyrone"}
	wahoo      = Tweet{ID: ID("123"), Message: "Wahoo", UserID: "234"}
	positive   = TweetSentiment{ID: "123", IsPositive: true, TweetID: "123"}
	negative   = TweetSentiment{ID: "123", IsPositive: false, TweetID: "123"}
	ghost      = User{Name: "Ghost"}
	lostTweet  = Tweet{Message: "???", UserID: "234"}
	testUserID = "1234"
)

func newMockSource(user rop.Result[User], tweet rop.Result[Tweet], sentiment rop.Result[TweetSentiment]) *mockSource {
	src := &mockSource{}
	src.On("User", mock.Anything, testUserID).Return(user)
	src.On("LatestTweet", mock.Anything, mock.Anything).Return(tweet)
	src.On("Sentiment", mock.Anything, mock.Anything).Return(sentiment)
	return src
}
