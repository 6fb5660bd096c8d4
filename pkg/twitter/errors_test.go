package twitter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Kinds(t *testing.T) {
	t.Parallel()

	userErr := UserNotFoundError()
	tweetErr := TweetNotFoundError()

	assert.EqualError(t, userErr, "User not found")
	assert.EqualError(t, tweetErr, "Tweet not found")

	assert.ErrorIs(t, userErr, ErrUserNotFound)
	assert.NotErrorIs(t, userErr, ErrTweetNotFound)
	assert.ErrorIs(t, tweetErr, ErrTweetNotFound)
	assert.NotErrorIs(t, tweetErr, ErrUserNotFound)

	custom := &NotFoundError{Kind: UserNotFound, Message: "no such account"}
	assert.ErrorIs(t, custom, ErrUserNotFound)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UserNotFound, KindOf(UserNotFoundError()))
	assert.Equal(t, TweetNotFound, KindOf(fmt.Errorf("lookup: %w", TweetNotFoundError())))
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
	assert.Equal(t, "unknown", KindOf(nil).String())
	assert.Equal(t, "tweet_not_found", TweetNotFound.String())
}
