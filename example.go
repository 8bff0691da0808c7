package forexample

import (
	"github.com/google/go-cmp/cmp"
)

// Example pairs a computation under test with the computation producing its
// expected value. Both closures take no arguments and must be safely
// re-invocable; a runner may evaluate them more than once per process.
//
// An Example is immutable once built. Construction cannot fail: mismatched
// produce/expect types are rejected by the compiler.
type Example[T any] struct {
	produce func() T
	expect  func() T
	equal   func(a, b T) bool
	diff    func(expected, actual T) string
}

// Builder is the intermediate state between Make and Returns. It exists only
// so example declarations read left to right: Make(produce).Returns(expect).
type Builder[T any] struct {
	produce func() T
}

// Option customizes how an Example compares its two values.
type Option[T any] func(*Example[T])

// WithEqual replaces the default go-cmp equality with a custom predicate.
// No diff is rendered for examples using a custom predicate.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(e *Example[T]) {
		e.equal = equal
		e.diff = nil
	}
}

// WithOptions passes extra go-cmp options to the default equality and diff,
// e.g. cmpopts.SortSlices for order-insensitive comparison.
func WithOptions[T any](opts ...cmp.Option) Option[T] {
	return func(e *Example[T]) {
		e.equal = func(a, b T) bool { return cmp.Equal(a, b, opts...) }
		e.diff = func(expected, actual T) string { return cmp.Diff(expected, actual, opts...) }
	}
}

// Make starts building an Example from the computation under test.
func Make[T any](produce func() T) Builder[T] {
	if produce == nil {
		panic("forexample: Make called with a nil produce closure")
	}
	return Builder[T]{produce: produce}
}

// Returns completes the Example with the computation producing the expected
// value. By default the two results are compared with cmp.Equal, so slice and
// map valued examples work without extra ceremony.
func (b Builder[T]) Returns(expect func() T, opts ...Option[T]) Example[T] {
	if expect == nil {
		panic("forexample: Returns called with a nil expect closure")
	}
	e := Example[T]{
		produce: b.produce,
		expect:  expect,
		equal:   func(a, b T) bool { return cmp.Equal(a, b) },
		diff:    func(expected, actual T) string { return cmp.Diff(expected, actual) },
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// complete reports whether both closures were set through the builder. A zero
// Example literal is incomplete and must not be registered.
func (e Example[T]) complete() bool {
	return e.produce != nil && e.expect != nil
}
