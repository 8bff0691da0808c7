package forexample

import "fmt"

// DuplicateIdentifierError is returned by Register when a derived identifier
// is already present in the registry. This happens when two separate
// registration calls use descriptions that sanitize to the same identifier
// at the same batch position; the fix is to rename one of the descriptions.
type DuplicateIdentifierError struct {
	Identifier  string
	Description string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("example identifier %q (from description %q) is already registered", e.Identifier, e.Description)
}

// TypeMismatchError reports an example whose produce and expect expressions
// evaluate to incompatible types. It is raised only by dynamically typed
// front ends such as the HCL suite loader; Go-declared examples are checked
// by the compiler.
type TypeMismatchError struct {
	Description string
	Index       int
	Produced    string
	Expected    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("example %d of %q: produce yields %s but expect yields %s", e.Index, e.Description, e.Produced, e.Expected)
}

// ExampleRaisedError records a panic escaping from an example's produce or
// expect closure. The runner converts it into a report entry instead of
// letting it crash the run.
type ExampleRaisedError struct {
	Identifier  string
	Description string
	Recovered   any
}

func (e *ExampleRaisedError) Error() string {
	return fmt.Sprintf("example %s (%q) panicked: %v", e.Identifier, e.Description, e.Recovered)
}
