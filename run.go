package forexample

import (
	"context"
	"fmt"
	"time"

	"github.com/kr/pretty"

	"github.com/vk/forexample/internal/ctxlog"
)

// Kind classifies the outcome of one example.
type Kind int

const (
	// Passed means produce and expect yielded equal values.
	Passed Kind = iota
	// Failed means the values differed.
	Failed
	// Raised means produce or expect panicked before a comparison happened.
	Raised
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Raised:
		return "raised"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of running one example. Results are computed fresh
// on every run and never persisted.
type Result struct {
	Identifier  string
	Description string
	Kind        Kind

	// Actual and Expected hold the rendered values for a Failed result.
	Actual   string
	Expected string
	// Diff is a go-cmp diff of expected vs actual, when the example uses the
	// default equality. Empty for custom predicates.
	Diff string

	// Err is a *ExampleRaisedError for a Raised result, nil otherwise.
	Err error
}

// RunReport aggregates the outcomes of one full run of a registry.
type RunReport struct {
	Total    int
	Passed   int
	Failed   int
	Raised   int
	Duration time.Duration
	// Results holds one entry per registered example, in registration order.
	Results []Result
}

// OK reports whether every example passed.
func (rep *RunReport) OK() bool {
	return rep.Failed == 0 && rep.Raised == 0
}

// Failures returns the non-passing results, in registration order.
func (rep *RunReport) Failures() []Result {
	var out []Result
	for _, res := range rep.Results {
		if res.Kind != Passed {
			out = append(out, res)
		}
	}
	return out
}

// Summary renders the one-line human summary of the run.
func (rep *RunReport) Summary() string {
	return fmt.Sprintf("%d examples: %d passed, %d failed, %d raised in %s",
		rep.Total, rep.Passed, rep.Failed, rep.Raised, rep.Duration.Round(time.Microsecond))
}

// RunAll evaluates every registered example sequentially, in registration
// order. A failing or panicking example never prevents the examples after it
// from running. The context carries the logger; there is no cancellation or
// timeout, so an example that does not terminate hangs the run.
func (r *Registry) RunAll(ctx context.Context) *RunReport {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Run starting.", "examples", len(r.entries))

	start := time.Now()
	rep := &RunReport{Results: make([]Result, 0, len(r.entries))}
	for _, ent := range r.entries {
		logger.Debug("Running example.", "identifier", ent.identifier)
		res := ent.invoke()
		rep.Results = append(rep.Results, res)
		switch res.Kind {
		case Passed:
			rep.Passed++
		case Failed:
			rep.Failed++
			logger.Debug("Example failed.", "identifier", res.Identifier)
		case Raised:
			rep.Raised++
			logger.Debug("Example panicked.", "identifier", res.Identifier, "error", res.Err)
		}
	}
	rep.Total = len(rep.Results)
	rep.Duration = time.Since(start)

	logger.Debug("Run finished.", "passed", rep.Passed, "failed", rep.Failed, "raised", rep.Raised)
	return rep
}

// resultFunc builds the erased evaluation closure for one example. The
// closure owns panic recovery so that a panicking example is reported rather
// than propagated.
func resultFunc[T any](ex Example[T], identifier, description string) func() Result {
	return func() (res Result) {
		res = Result{Identifier: identifier, Description: description}
		defer func() {
			if r := recover(); r != nil {
				res.Kind = Raised
				res.Err = &ExampleRaisedError{Identifier: identifier, Description: description, Recovered: r}
			}
		}()

		actual := ex.produce()
		expected := ex.expect()
		if ex.equal(actual, expected) {
			res.Kind = Passed
			return res
		}

		res.Kind = Failed
		res.Actual = pretty.Sprint(actual)
		res.Expected = pretty.Sprint(expected)
		if ex.diff != nil {
			res.Diff = ex.diff(expected, actual)
		}
		return res
	}
}
