package twitter

import "fmt"

type User struct {
	ID   *string
	Name string
}

type Tweet struct {
	ID      *string
	Message string
	UserID  string
}

type TweetSentiment struct {
	ID         string
	IsPositive bool
	TweetID    string
}

// ID returns a pointer to id for the optional ID fields.
func ID(id string) *string {
	return &id
}

// TweetDetails is the composite produced by a pipeline run.
type TweetDetails struct {
	user      User
	tweet     Tweet
	sentiment TweetSentiment
}

func NewTweetDetails(user User, tweet Tweet, sentiment TweetSentiment) TweetDetails {
	return TweetDetails{
		user:      user,
		tweet:     tweet,
		sentiment: sentiment,
	}
}

func (d TweetDetails) User() User {
	return d.user
}

func (d TweetDetails) Tweet() Tweet {
	return d.tweet
}

func (d TweetDetails) Sentiment() TweetSentiment {
	return d.sentiment
}

func (d TweetDetails) ExpressedMessage() string {
	description := "negative"
	if d.sentiment.IsPositive {
		description = "positive"
	}
	return fmt.Sprintf("%s said %s which has a %s statement", d.user.Name, d.tweet.Message, description)
}
