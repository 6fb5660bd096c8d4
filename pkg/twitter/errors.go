package twitter

import "errors"

type Kind int

const (
	UserNotFound Kind = iota + 1
	TweetNotFound
)

func (k Kind) String() string {
	switch k {
	case UserNotFound:
		return "user_not_found"
	case TweetNotFound:
		return "tweet_not_found"
	default:
		return "unknown"
	}
}

var (
	ErrUserNotFound  = &NotFoundError{Kind: UserNotFound, Message: "User not found"}
	ErrTweetNotFound = &NotFoundError{Kind: TweetNotFound, Message: "Tweet not found"}

	ErrIncompleteDetails = errors.New("tweet details: missing user, tweet or sentiment")
)

// NotFoundError reports a lookup that found no entity. Kind identifies which
// entity; Message is the human readable text.
type NotFoundError struct {
	Kind    Kind
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is matches any NotFoundError of the same Kind, so errors.Is(err,
// ErrUserNotFound) holds regardless of the message.
func (e *NotFoundError) Is(target error) bool {
	var t *NotFoundError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func UserNotFoundError() error {
	return &NotFoundError{Kind: UserNotFound, Message: ErrUserNotFound.Message}
}

func TweetNotFoundError() error {
	return &NotFoundError{Kind: TweetNotFound, Message: ErrTweetNotFound.Message}
}

// KindOf returns the Kind of a NotFoundError in err's chain, or 0.
func KindOf(err error) Kind {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Kind
	}
	return 0
}
