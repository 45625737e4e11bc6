// Package batch verifies many equihash solutions in parallel.
package batch

import (
	"context"
	"errors"

	"github.com/s-nomp/equihashverify/equihash"
	"golang.org/x/sync/errgroup"
)

// Job is one solution to check.
type Job struct {
	ID              string
	Params          equihash.Params
	Personalization string
	Header          []byte
	Solution        []byte
}

// Result is the outcome for the Job with the same ID. Err is nil exactly when
// Valid is true.
type Result struct {
	ID    string
	Valid bool
	Err   error
}

// Rejected is true when the solution was checked and found invalid.
func (r Result) Rejected() bool { return equihash.IsRejection(r.Err) }

// Faulted is true when the job could not be checked, for example because its
// parameters are unsupported.
func (r Result) Faulted() bool { return r.Err != nil && !r.Rejected() }

type Verifier struct {
	opts VerifierOptions
}

func NewVerifier(opts ...VerifierOption) *Verifier {
	return &Verifier{opts: NewVerifierOptions(opts...)}
}

// Verify checks every job and returns the results in job order.
//
// An invalid solution is a normal result, never an error. The returned error
// is only set when ctx is done before all jobs have run, in which case the
// results for jobs that did not run carry the context error.
func (v *Verifier) Verify(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	done := make([]bool, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.workers)

	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = v.verifyOne(jobs[i])
			done[i] = true
			return nil
		})
	}
	err := g.Wait()
	if err == nil && countTrue(done) < len(jobs) {
		err = ctx.Err()
	}
	if err != nil {
		for i := range results {
			if !done[i] {
				results[i] = Result{ID: jobs[i].ID, Err: err}
			}
		}
		v.opts.log.Infof("batch stopped after %d of %d jobs: %v", countTrue(done), len(jobs), err)
		return results, err
	}

	s := Summarize(results)
	v.opts.log.Infof("verified %d jobs: %d valid, %d rejected, %d faulted",
		len(results), s.Valid, s.Rejected, s.Faulted)
	return results, nil
}

func (v *Verifier) verifyOne(job Job) Result {
	err := equihash.VerifySolution(job.Params, job.Personalization, job.Header, job.Solution)
	switch {
	case err == nil:
		return Result{ID: job.ID, Valid: true}
	case equihash.IsRejection(err):
		v.opts.log.Debugf("%s: rejected: %v", job.ID, err)
	default:
		v.opts.log.Infof("%s: could not verify: %v", job.ID, err)
	}
	return Result{ID: job.ID, Err: err}
}

// Summary counts results by outcome.
type Summary struct {
	Valid    int
	Rejected int
	Faulted  int
}

func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case r.Valid:
			s.Valid++
		case r.Faulted():
			s.Faulted++
		default:
			s.Rejected++
		}
	}
	return s
}

// IsCancelled reports whether err came from the batch context ending.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
