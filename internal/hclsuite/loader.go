// Package hclsuite loads declarative example suites from HCL files.
//
// A suite file pairs produce/expect expressions under a described suite:
//
//	suite "numbers add up" {
//	  example {
//	    produce = 2 + 2
//	    expect  = 4
//	  }
//	}
//
// Expressions are evaluated with a small table of pure functions and
// compared with cty's raw equality. Because HCL expressions cannot perform
// I/O, the loader evaluates each pair once at load time to type-check it;
// the registered example re-evaluates at run time.
package hclsuite

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/forexample"
	"github.com/vk/forexample/internal/ctxlog"
	"github.com/vk/forexample/internal/fsutil"
)

// Extension is the file suffix the loader discovers under a suite directory.
const Extension = ".hcl"

// Loader parses suite files and registers their examples.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a suite loader with the default function table.
func NewLoader() *Loader {
	return &Loader{
		evalCtx: &hcl.EvalContext{
			Functions: map[string]function.Function{
				"abs":    stdlib.AbsoluteFunc,
				"concat": stdlib.ConcatFunc,
				"format": stdlib.FormatFunc,
				"length": stdlib.LengthFunc,
				"lower":  stdlib.LowerFunc,
				"max":    stdlib.MaxFunc,
				"min":    stdlib.MinFunc,
				"strlen": stdlib.StrlenFunc,
				"upper":  stdlib.UpperFunc,
			},
		},
	}
}

// Load discovers suite files under the given paths and registers every
// example into reg. It returns the number of examples registered. A parse
// error, a type mismatch, or a duplicate identifier aborts the load.
func (l *Loader) Load(ctx context.Context, reg *forexample.Registry, paths ...string) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL suite loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return 0, fmt.Errorf("error accessing suite path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered suite files.", "count", len(files))

	parser := hclparse.NewParser()
	total := 0

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return total, fmt.Errorf("failed to parse suite file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return total, fmt.Errorf("failed to decode suite file %s: %w", file, diags)
		}

		for _, suite := range root.Suites {
			n, err := l.registerSuite(ctx, reg, suite)
			if err != nil {
				return total, fmt.Errorf("suite file %s: %w", file, err)
			}
			total += n
		}
		logger.Debug("Loaded suite file.", "file", file, "suites", len(root.Suites))
	}

	logger.Info("Suites loaded.", "files", len(files), "examples", total)
	return total, nil
}

// registerSuite type-checks a suite's example pairs and registers them as
// one batch under the suite description.
func (l *Loader) registerSuite(ctx context.Context, reg *forexample.Registry, suite *suiteBlock) (int, error) {
	examples := make([]forexample.Example[cty.Value], 0, len(suite.Examples))
	for i, block := range suite.Examples {
		if err := l.checkTypes(suite.Description, i, block); err != nil {
			return 0, err
		}
		examples = append(examples, forexample.Make(l.evalFunc(block.Produce)).Returns(
			l.evalFunc(block.Expect),
			forexample.WithEqual(cty.Value.RawEquals),
		))
	}

	if err := forexample.Register(reg, suite.Description, examples...); err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Registered suite.", "description", suite.Description, "examples", len(examples))
	return len(examples), nil
}

// checkTypes evaluates both expressions once and rejects pairs whose result
// types cannot be unified. Suite expressions are pure, so this early
// evaluation is observationally free.
func (l *Loader) checkTypes(description string, index int, block *exampleBlock) error {
	produced, diags := block.Produce.Value(l.evalCtx)
	if diags.HasErrors() {
		return fmt.Errorf("example %d of %q: produce: %w", index, description, diags)
	}
	expected, diags := block.Expect.Value(l.evalCtx)
	if diags.HasErrors() {
		return fmt.Errorf("example %d of %q: expect: %w", index, description, diags)
	}

	unified, _ := convert.Unify([]cty.Type{produced.Type(), expected.Type()})
	if unified == cty.NilType {
		return &forexample.TypeMismatchError{
			Description: description,
			Index:       index,
			Produced:    produced.Type().FriendlyName(),
			Expected:    expected.Type().FriendlyName(),
		}
	}
	return nil
}

// evalFunc wraps an expression as a zero-argument computation. Evaluation
// diagnostics become a panic, which the runner reports as a raised example.
func (l *Loader) evalFunc(expr hcl.Expression) func() cty.Value {
	return func() cty.Value {
		val, diags := expr.Value(l.evalCtx)
		if diags.HasErrors() {
			panic(diags.Error())
		}
		return val
	}
}
