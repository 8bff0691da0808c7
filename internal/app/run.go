package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/vk/forexample"
	"github.com/vk/forexample/internal/ctxlog"
)

// Run executes every registered example and prints the report. It returns a
// non-nil error when any example failed or panicked, so callers can map the
// result onto a process exit code.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.NoColor {
		color.Disable()
	}

	if a.registry.Len() == 0 {
		a.logger.Warn("No examples registered, nothing to run.")
		fmt.Fprintln(a.outW, "no examples registered")
		return nil
	}

	a.logger.Info("🚀 Running examples...", "count", a.registry.Len())
	report := a.registry.RunAll(ctx)
	a.logger.Info("🏁 Run finished.")

	a.printReport(report)

	if !report.OK() {
		return fmt.Errorf("%d of %d examples did not pass", report.Failed+report.Raised, report.Total)
	}
	return nil
}

// printReport renders one line per example plus the summary, with failure
// detail indented beneath the failing example.
func (a *App) printReport(report *forexample.RunReport) {
	for _, res := range report.Results {
		switch res.Kind {
		case forexample.Passed:
			fmt.Fprintf(a.outW, "%s %s\n", color.Green.Sprint("PASS"), res.Identifier)
		case forexample.Failed:
			fmt.Fprintf(a.outW, "%s %s: %s\n", color.Red.Sprint("FAIL"), res.Identifier, res.Description)
			fmt.Fprintf(a.outW, "    expected: %s\n", res.Expected)
			fmt.Fprintf(a.outW, "    actual:   %s\n", res.Actual)
			if res.Diff != "" {
				fmt.Fprintf(a.outW, "    diff (-expected +actual):\n%s", indent(res.Diff, "      "))
			}
		case forexample.Raised:
			fmt.Fprintf(a.outW, "%s %s: %v\n", color.Red.Sprint("PANIC"), res.Identifier, res.Err)
		}
	}
	fmt.Fprintln(a.outW, report.Summary())
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line != "" {
			b.WriteString(prefix)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
