package ports

import (
	"context"

	"blogmood/internal/domain"
)

// MemberDirectory resolves a display name to the member's listing URL.
type MemberDirectory interface {
	Find(ctx context.Context, name string) (domain.Member, error)
}

// PostIterator lazily yields post references, one listing page at a time.
// The sequence is finite: it ends on the first empty or unreachable
// listing page. Next returns ok=false once the sequence is exhausted.
type PostIterator interface {
	Next(ctx context.Context) (domain.PostRef, bool)
}

// PostSource starts an enumeration of a member's posts from page zero.
// Each call re-fetches; iterators are not restartable.
type PostSource interface {
	Enumerate(member domain.Member) (PostIterator, error)
}

// PostReader fetches one post and isolates its article body. found is
// false when the document lacks the article or body container; err is
// reserved for transport-level failures. Both are skippable conditions.
type PostReader interface {
	ReadPost(ctx context.Context, ref domain.PostRef) (text string, found bool, err error)
}

// Classifier scores the emotional tone of one sentence.
type Classifier interface {
	Classify(ctx context.Context, sentence string) (domain.Prediction, error)
}

// Transcript records each classified sentence in processing order.
type Transcript interface {
	Append(res domain.SentenceResult) error
}

// RunStore persists finished runs for audit. It is write-only during a
// run; history is never consulted to resume or skip work.
type RunStore interface {
	SaveRun(ctx context.Context, rec domain.RunRecord) error
}
