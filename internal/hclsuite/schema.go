package hclsuite

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is the top-level structure of a suite file: any number of suite
// blocks, each carrying its description as the block label.
type fileRoot struct {
	Suites []*suiteBlock `hcl:"suite,block"`
}

// suiteBlock is one `suite "description" { ... }` block. Its examples are
// registered together as one batch, in source order.
type suiteBlock struct {
	Description string          `hcl:"description,label"`
	Examples    []*exampleBlock `hcl:"example,block"`
}

// exampleBlock is one `example { produce = ... expect = ... }` block. Both
// expressions are kept unevaluated so the runner re-evaluates them per run.
type exampleBlock struct {
	Produce hcl.Expression `hcl:"produce"`
	Expect  hcl.Expression `hcl:"expect"`
}
