package judgment

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/factlens/factscore/src/ai/core"
	"github.com/factlens/factscore/src/factcheck/types"
	"github.com/factlens/factscore/src/logging"
)

// FailureKind distinguishes why the cross-verification provider produced no
// judgment.
type FailureKind string

const (
	FailureDisabled  FailureKind = "disabled"
	FailureTransport FailureKind = "transport"
	FailureParse     FailureKind = "parse"
)

// Failure describes a missing cross-verification judgment.
type Failure struct {
	Kind FailureKind
	Err  error
}

// Requester obtains structured judgments over the claim + evidence context
// from the primary provider and, when configured, the cross-verification
// provider. The two calls run concurrently and never cancel each other.
type Requester struct {
	primary    core.Client
	crossCheck core.Client
	log        *zap.SugaredLogger
}

func NewRequester(primary, crossCheck core.Client, log *zap.SugaredLogger) *Requester {
	return &Requester{primary: primary, crossCheck: crossCheck, log: log}
}

// Request returns the primary judgment, the cross-verification judgment (nil
// on failure, with the Failure explaining why), and a fatal error when the
// primary provider's response is unavailable or unparsable.
func (r *Requester) Request(ctx context.Context, claim string, set types.EvidenceSet) (*types.Judgment, *types.Judgment, *Failure, error) {
	searchContext := BuildContext(set)
	user := buildUserPrompt(claim, set, searchContext)

	var (
		wg           sync.WaitGroup
		primary      *types.Judgment
		primaryErr   error
		secondary    *types.Judgment
		secondaryErr *Failure
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		raw, err := r.primary.Complete(ctx, systemPrompt, user, core.Options{})
		if err != nil {
			primaryErr = fmt.Errorf("primary judgment provider: %w", err)
			return
		}
		j, err := Parse(raw)
		if err != nil {
			primaryErr = fmt.Errorf("primary judgment provider: %w", err)
			return
		}
		primary = j
	}()

	if r.crossCheck == nil {
		secondaryErr = &Failure{Kind: FailureDisabled}
	} else {
		wg.Add(1)
		go func() {
			defer wg.Done()
			raw, err := r.crossCheck.Complete(ctx, systemPrompt, user, core.Options{})
			if err != nil {
				if logging.IsRateLimit(err) {
					r.log.Warnw("cross-check provider rate limited", "error", err)
				} else {
					r.log.Warnw("cross-check provider failed", "error", err)
				}
				secondaryErr = &Failure{Kind: FailureTransport, Err: err}
				return
			}
			j, err := Parse(raw)
			if err != nil {
				r.log.Warnw("cross-check response unparsable", "error", err)
				secondaryErr = &Failure{Kind: FailureParse, Err: err}
				return
			}
			secondary = j
		}()
	}

	wg.Wait()

	if primaryErr != nil {
		return nil, nil, nil, primaryErr
	}

	ReconcileSources(primary, set)
	if secondary != nil {
		ReconcileSources(secondary, set)
	}
	return primary, secondary, secondaryErr, nil
}
