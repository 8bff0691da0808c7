package forexample

import (
	"fmt"
	"strings"
	"unicode"
)

// entry is one registered example with its type parameter erased. The invoke
// closure evaluates the example and classifies the outcome.
type entry struct {
	identifier  string
	description string
	invoke      func() Result
}

// Registry is an ordered collection of registered examples. Registration
// order controls execution and reporting order.
//
// A Registry is an explicit value rather than package-level state so that a
// process can hold several independent suites. It is not safe for concurrent
// registration; serialize writers externally if that ever matters.
type Registry struct {
	entries []entry
	ids     map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Len returns the number of registered examples.
func (r *Registry) Len() int { return len(r.entries) }

// Identifiers returns the derived identifiers in registration order.
func (r *Registry) Identifiers() []string {
	out := make([]string, len(r.entries))
	for i, ent := range r.entries {
		out[i] = ent.identifier
	}
	return out
}

// Register appends a batch of examples under one description. Each example's
// identifier is the sanitized description plus its zero-based position in the
// batch, so same-description examples within a batch never collide.
//
// Registration is atomic: if any derived identifier already exists in the
// registry, a *DuplicateIdentifierError is returned and nothing is appended.
// Registering an Example that did not come from Make().Returns() is a
// programming error and panics.
func Register[T any](r *Registry, description string, examples ...Example[T]) error {
	batch := make([]entry, len(examples))
	for i, ex := range examples {
		if !ex.complete() {
			panic(fmt.Sprintf("forexample: incomplete example at position %d of %q", i, description))
		}
		id := deriveIdentifier(description, i)
		if _, exists := r.ids[id]; exists {
			return &DuplicateIdentifierError{Identifier: id, Description: description}
		}
		batch[i] = entry{
			identifier:  id,
			description: description,
			invoke:      resultFunc(ex, id, description),
		}
	}
	for _, ent := range batch {
		r.ids[ent.identifier] = struct{}{}
		r.entries = append(r.entries, ent)
	}
	return nil
}

// ForExample is Register under the name the DSL reads best with:
//
//	forexample.ForExample(r, "addition works", ex1, ex2)
func ForExample[T any](r *Registry, description string, examples ...Example[T]) error {
	return Register(r, description, examples...)
}

// ForInstance is a terse synonym for ForExample.
func ForInstance[T any](r *Registry, description string, examples ...Example[T]) error {
	return Register(r, description, examples...)
}

// MustRegister is Register for load-time declarative use; it panics on a
// duplicate identifier.
func MustRegister[T any](r *Registry, description string, examples ...Example[T]) {
	if err := Register(r, description, examples...); err != nil {
		panic(err)
	}
}

// deriveIdentifier sanitizes a description into a stable identifier: every
// rune that is not a letter or digit becomes an underscore, and the example's
// position within its registration batch is appended.
func deriveIdentifier(description string, index int) string {
	var b strings.Builder
	b.Grow(len(description))
	for _, r := range description {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return fmt.Sprintf("%s_%d", b.String(), index)
}
