package forexample_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/vk/forexample"
)

func TestRunAll_EndToEndAddition(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	err := forexample.Register(reg, "addition",
		forexample.Make(func() int { return 2 + 2 }).Returns(func() int { return 4 }),
		forexample.Make(func() int { return 5 - 8 }).Returns(func() int { return -3 }),
	)
	require.NoError(t, err)

	report := reg.RunAll(context.Background())

	require.Equal(t, 2, report.Total)
	require.Equal(t, 2, report.Passed)
	require.Equal(t, 0, report.Failed)
	require.True(t, report.OK())
	require.Empty(t, report.Failures())
}

func TestRunAll_BrokenExampleRendersBothValues(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	err := forexample.Register(reg, "broken",
		forexample.Make(func() int { return 1 }).Returns(func() int { return 2 }),
	)
	require.NoError(t, err)

	report := reg.RunAll(context.Background())

	require.Equal(t, 1, report.Total)
	require.Equal(t, 1, report.Failed)
	require.False(t, report.OK())

	res := report.Results[0]
	require.Equal(t, forexample.Failed, res.Kind)
	require.Equal(t, "broken_0", res.Identifier)
	require.Equal(t, "broken", res.Description)
	require.Equal(t, "1", res.Actual)
	require.Equal(t, "2", res.Expected)
	require.NotEmpty(t, res.Diff)
}

func TestRunAll_FailureDoesNotStopTheRun(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	require.NoError(t, forexample.Register(reg, "a passes", intExample(1, 1)))
	require.NoError(t, forexample.Register(reg, "b fails", intExample(1, 2)))
	require.NoError(t, forexample.Register(reg, "c passes", intExample(3, 3)))

	report := reg.RunAll(context.Background())

	require.Equal(t, 3, report.Total)
	require.Equal(t, 1, report.Failed)
	require.Equal(t, 2, report.Passed)

	kinds := []forexample.Kind{report.Results[0].Kind, report.Results[1].Kind, report.Results[2].Kind}
	require.Equal(t, []forexample.Kind{forexample.Passed, forexample.Failed, forexample.Passed}, kinds)
}

func TestRunAll_PanickingExampleIsReportedNotFatal(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	require.NoError(t, forexample.Register(reg, "explodes",
		forexample.Make(func() int { panic("boom") }).Returns(func() int { return 1 }),
	))
	require.NoError(t, forexample.Register(reg, "still runs", intExample(1, 1)))

	report := reg.RunAll(context.Background())

	require.Equal(t, 2, report.Total)
	require.Equal(t, 1, report.Raised)
	require.Equal(t, 1, report.Passed)
	require.False(t, report.OK())

	res := report.Results[0]
	require.Equal(t, forexample.Raised, res.Kind)

	var raised *forexample.ExampleRaisedError
	require.ErrorAs(t, res.Err, &raised)
	require.Equal(t, "explodes_0", raised.Identifier)
	require.Equal(t, "boom", raised.Recovered)
}

func TestRunAll_ReportOrderMatchesRegistrationOrder(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	for _, desc := range []string{"one", "two", "three"} {
		require.NoError(t, forexample.Register(reg, desc, intExample(1, 1)))
	}

	report := reg.RunAll(context.Background())

	var ids []string
	for _, res := range report.Results {
		ids = append(ids, res.Identifier)
	}
	require.Equal(t, []string{"one_0", "two_0", "three_0"}, ids)
}

func TestRunAll_ReinvocableAcrossRuns(t *testing.T) {
	t.Parallel()

	calls := 0
	reg := forexample.New()
	require.NoError(t, forexample.Register(reg, "counted",
		forexample.Make(func() int { calls++; return 1 }).Returns(func() int { return 1 }),
	))

	require.True(t, reg.RunAll(context.Background()).OK())
	require.True(t, reg.RunAll(context.Background()).OK())
	require.Equal(t, 2, calls)
}

func TestExample_CustomEquality(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	err := forexample.Register(reg, "case insensitive",
		forexample.Make(func() string { return "Hello" }).Returns(
			func() string { return "hello" },
			forexample.WithEqual(strings.EqualFold),
		),
	)
	require.NoError(t, err)

	require.True(t, reg.RunAll(context.Background()).OK())
}

func TestExample_WithOptionsUsesCmpOptions(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	err := forexample.Register(reg, "order does not matter",
		forexample.Make(func() []int { return []int{3, 1, 2} }).Returns(
			func() []int { return []int{1, 2, 3} },
			forexample.WithOptions[[]int](cmpopts.SortSlices(func(a, b int) bool { return a < b })),
		),
	)
	require.NoError(t, err)

	require.True(t, reg.RunAll(context.Background()).OK())
}

func TestRunReport_Summary(t *testing.T) {
	t.Parallel()

	reg := forexample.New()
	require.NoError(t, forexample.Register(reg, "pass", intExample(1, 1)))
	require.NoError(t, forexample.Register(reg, "fail", intExample(1, 2)))

	summary := reg.RunAll(context.Background()).Summary()

	require.Contains(t, summary, "2 examples")
	require.Contains(t, summary, "1 passed")
	require.Contains(t, summary, "1 failed")
	require.Contains(t, summary, "0 raised")
}
