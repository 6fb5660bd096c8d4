package twitter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ib-77/tweetrop/pkg/rop"
)

// Reporter surfaces the outcome of a pipeline run: the expressed message on
// success, a logged and returned error on failure.
type Reporter struct {
	out    io.Writer
	logger *slog.Logger
}

// NewReporter writes to out, or to stdout when out is nil. A nil logger discards output.
func NewReporter(out io.Writer, logger *slog.Logger) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{out: out, logger: logger}
}

// Report prints the expressed message of a successful result and returns nil.
// A failed result is logged, one entry per joined error, and its error is
// returned unchanged.
func (r *Reporter) Report(ctx context.Context, res rop.WithError[TweetDetails]) error {
	if res.IsSuccess() {
		_, err := fmt.Fprintln(r.out, res.Result().ExpressedMessage())
		return err
	}

	err := res.Err()
	for _, e := range rop.GetErrors(err) {
		r.logger.ErrorContext(ctx, e.Error(), slog.String("kind", KindOf(e).String()))
	}
	return err
}
