package twitter

import (
	"github.com/ib-77/tweetrop/pkg/rop"
	"github.com/ib-77/tweetrop/pkg/rop/apply"
)

// DetailsBuilder accumulates the fields of a TweetDetails one stage at a time.
// Every With method returns a new builder; the receiver is never modified.
type DetailsBuilder struct {
	user      *User
	tweet     *Tweet
	sentiment *TweetSentiment
}

func NewDetailsBuilder() DetailsBuilder {
	return DetailsBuilder{}
}

func (b DetailsBuilder) WithUser(user User) DetailsBuilder {
	b.user = &user
	return b
}

func (b DetailsBuilder) WithTweet(tweet Tweet) DetailsBuilder {
	b.tweet = &tweet
	return b
}

func (b DetailsBuilder) WithSentiment(sentiment TweetSentiment) DetailsBuilder {
	b.sentiment = &sentiment
	return b
}

// User returns the user supplied so far, if any.
func (b DetailsBuilder) User() (User, bool) {
	if b.user == nil {
		return User{}, false
	}
	return *b.user, true
}

func (b DetailsBuilder) Tweet() (Tweet, bool) {
	if b.tweet == nil {
		return Tweet{}, false
	}
	return *b.tweet, true
}

func (b DetailsBuilder) Complete() bool {
	return b.user != nil && b.tweet != nil && b.sentiment != nil
}

// Build finalizes the builder. It fails with ErrIncompleteDetails until all
// three fields are present.
func (b DetailsBuilder) Build() rop.Result[TweetDetails] {
	if !b.Complete() {
		return rop.Fail[TweetDetails](ErrIncompleteDetails)
	}
	return rop.Success(NewTweetDetails(*b.user, *b.tweet, *b.sentiment))
}

// CurriedDetails is the curried TweetDetails constructor. Every field is
// supplied by the time the last function runs, so it cannot fail.
func CurriedDetails() func(User) func(Tweet) func(TweetSentiment) TweetDetails {
	return apply.Curry3(NewTweetDetails)
}
