// Package purefunccompose provides generic combinators for composing plain Go functions.
//
// This package treats ordinary functions as the unit of composition. A
// "reader" is any function from a shared environment value to a result
// (func(X) A); the combinators here build new readers out of existing ones,
// lift multi-argument functions over readers, convert between tupled and
// positional calling conventions, and transform the inputs of binary
// functions such as comparators.
//
// # Key Benefits
//
// - Zero wrapper types: readers are plain func(X) A values, nothing to box or unbox
// - Rich composition: Compose, Map, Map2..Map4, AndMap, AndThen
// - Tuple adaptation: Curry3..Curry5 and Uncurry3..Uncurry5 over fixed-arity tuples
// - Comparator building: On projects both inputs of a binary function through a key
// - Total and pure: no combinator fails, logs, retries, or touches shared state
//
// # Quick Start
//
// Build a derived reader from two independent reads of the same environment:
//
//	type Config struct {
//	    Host string
//	    Port int
//	}
//
//	host := func(c Config) string { return c.Host }
//	port := func(c Config) int { return c.Port }
//
//	addr := purefunccompose.Map2(func(h string, p int) string {
//	    return fmt.Sprintf("%s:%d", h, p)
//	}, host, port)
//
//	addr(Config{Host: "localhost", Port: 8080}) // "localhost:8080"
//
// # Core Principles
//
// 1. Functions over wrapper types - readers stay ordinary funcs
// 2. Referential transparency - same inputs, same outputs, no mutation
// 3. Left-to-right evaluation - MapN runs its readers in listed order
// 4. Failure passthrough - panics from supplied functions propagate unaltered
// 5. Compile-time arity - one generic implementation per tuple arity
package purefunccompose

// ============================================================================
// Composition & Lifting
// ============================================================================

// Identity returns its argument unchanged. It is the left and right
// identity of Compose and the unit for incremental AndMap chains.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always yields a.
// The first type parameter names the ignored argument type, so callers
// usually write Const[X](v).
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose is right-to-left function composition:
// Compose(g, f)(x) == g(f(x)).
//
// Example:
//
//	inc := func(n int) int { return n + 1 }
//	dbl := func(n int) int { return n * 2 }
//
//	Compose(inc, dbl)(5) // inc(dbl(5)) == 11
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Map runs f over the result of the reader ra:
// Map(f, ra)(x) == f(ra(x)).
//
// It is Compose specialized to the reader reading: mapping f over a
// reader for A yields a reader for B against the same environment.
// Map obeys the functor composition law
// Map(f, Map(g, ra)) == Map(Compose(f, g), ra).
func Map[X, A, B any](f func(A) B, ra func(X) A) func(X) B {
	return func(x X) B {
		return f(ra(x))
	}
}

// Map2 lifts a binary function over two readers of the same environment:
// Map2(f, ra, rb)(x) == f(ra(x), rb(x)).
//
// Both readers receive the same x. They run in listed order, ra first.
func Map2[X, A, B, C any](f func(A, B) C, ra func(X) A, rb func(X) B) func(X) C {
	return func(x X) C {
		a := ra(x)
		b := rb(x)
		return f(a, b)
	}
}

// Map3 lifts a ternary function over three readers of the same
// environment. Readers run in listed order.
func Map3[X, A, B, C, D any](f func(A, B, C) D, ra func(X) A, rb func(X) B, rc func(X) C) func(X) D {
	return func(x X) D {
		a := ra(x)
		b := rb(x)
		c := rc(x)
		return f(a, b, c)
	}
}

// Map4 lifts a four-argument function over four readers of the same
// environment. Readers run in listed order.
func Map4[X, A, B, C, D, E any](f func(A, B, C, D) E, ra func(X) A, rb func(X) B, rc func(X) C, rd func(X) D) func(X) E {
	return func(x X) E {
		a := ra(x)
		b := rb(x)
		c := rc(x)
		d := rd(x)
		return f(a, b, c, d)
	}
}

// AndMap applies a reader-of-a-function to a reader-of-a-value:
// AndMap(rf, ra)(x) == rf(x)(ra(x)).
//
// rf runs first, then ra. Chaining AndMap builds arbitrary-arity lifts
// one argument at a time; with curried f,
//
//	AndMap(AndMap(AndMap(f, ra), rb), rc)
//
// applied to x equals feeding ra(x), rb(x), rc(x) to f(x) in order.
func AndMap[X, A, B any](rf func(X) func(A) B, ra func(X) A) func(X) B {
	return func(x X) B {
		fn := rf(x)
		return fn(ra(x))
	}
}

// AndThen sequences two reads of the same environment:
// AndThen(ra, g)(x) == g(ra(x))(x).
//
// The first stage reads an A out of x; g consumes that A and may then
// re-read the same x. This is the building block for pipelines where
// each stage depends on both the prior result and the environment.
func AndThen[X, A, B any](ra func(X) A, g func(A) func(X) B) func(X) B {
	return func(x X) B {
		return g(ra(x))(x)
	}
}

// Pipe chains same-type transformations left to right into a single
// function. Pipe() with no arguments is Identity.
func Pipe[T any](fs ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fs {
			v = f(v)
		}
		return v
	}
}

// ============================================================================
// Tuples
// ============================================================================

// T2 is a position-significant pair. Fields are unexported; construct
// with NewT2 and read with First and Second, or eject both values with
// Unpack.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 packs two values into a T2.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

// First returns the first element.
func (t T2[A, B]) First() A {
	return t.first
}

// Second returns the second element.
func (t T2[A, B]) Second() B {
	return t.second
}

// Unpack ejects both elements as Go multiple return values.
func (t T2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

// T3 is a position-significant triple.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

// NewT3 packs three values into a T3.
func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{first: a, second: b, third: c}
}

// First returns the first element.
func (t T3[A, B, C]) First() A {
	return t.first
}

// Second returns the second element.
func (t T3[A, B, C]) Second() B {
	return t.second
}

// Third returns the third element.
func (t T3[A, B, C]) Third() C {
	return t.third
}

// Unpack ejects all three elements as Go multiple return values.
func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

// T4 is a position-significant quadruple.
type T4[A, B, C, D any] struct {
	first  A
	second B
	third  C
	fourth D
}

// NewT4 packs four values into a T4.
func NewT4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{first: a, second: b, third: c, fourth: d}
}

// First returns the first element.
func (t T4[A, B, C, D]) First() A {
	return t.first
}

// Second returns the second element.
func (t T4[A, B, C, D]) Second() B {
	return t.second
}

// Third returns the third element.
func (t T4[A, B, C, D]) Third() C {
	return t.third
}

// Fourth returns the fourth element.
func (t T4[A, B, C, D]) Fourth() D {
	return t.fourth
}

// Unpack ejects all four elements as Go multiple return values.
func (t T4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.first, t.second, t.third, t.fourth
}

// T5 is a position-significant quintuple.
type T5[A, B, C, D, E any] struct {
	first  A
	second B
	third  C
	fourth D
	fifth  E
}

// NewT5 packs five values into a T5.
func NewT5[A, B, C, D, E any](a A, b B, c C, d D, e E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{first: a, second: b, third: c, fourth: d, fifth: e}
}

// First returns the first element.
func (t T5[A, B, C, D, E]) First() A {
	return t.first
}

// Second returns the second element.
func (t T5[A, B, C, D, E]) Second() B {
	return t.second
}

// Third returns the third element.
func (t T5[A, B, C, D, E]) Third() C {
	return t.third
}

// Fourth returns the fourth element.
func (t T5[A, B, C, D, E]) Fourth() D {
	return t.fourth
}

// Fifth returns the fifth element.
func (t T5[A, B, C, D, E]) Fifth() E {
	return t.fifth
}

// Unpack ejects all five elements as Go multiple return values.
func (t T5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.first, t.second, t.third, t.fourth, t.fifth
}

// Pair runs two readers against the same environment and pairs the
// results: Pair(ra, rb)(x) == NewT2(ra(x), rb(x)). ra runs first.
func Pair[X, A, B any](ra func(X) A, rb func(X) B) func(X) T2[A, B] {
	return func(x X) T2[A, B] {
		a := ra(x)
		b := rb(x)
		return NewT2(a, b)
	}
}

// MapFirst lifts f into a function over the first element of a pair,
// leaving the second untouched.
func MapFirst[A, B, C any](f func(A) B) func(T2[A, C]) T2[B, C] {
	return func(t T2[A, C]) T2[B, C] {
		return NewT2(f(t.first), t.second)
	}
}

// MapSecond lifts f into a function over the second element of a pair,
// leaving the first untouched.
func MapSecond[A, B, C any](f func(A) B) func(T2[C, A]) T2[C, B] {
	return func(t T2[C, A]) T2[C, B] {
		return NewT2(t.first, f(t.second))
	}
}

// Both applies f to each element of a homogeneous pair, first element
// first: Both(f, NewT2(x, y)) == NewT2(f(x), f(y)).
//
// Example:
//
//	Both(strings.ToUpper, NewT2("ab", "cd")) // NewT2("AB", "CD")
func Both[A, B any](f func(A) B, t T2[A, A]) T2[B, B] {
	b1 := f(t.first)
	b2 := f(t.second)
	return NewT2(b1, b2)
}

// ============================================================================
// Currying & Uncurrying
// ============================================================================

// Curry3 converts a function over a T3 into one taking three positional
// arguments in the same order.
func Curry3[A, B, C, R any](f func(T3[A, B, C]) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(NewT3(a, b, c))
	}
}

// Uncurry3 is the exact inverse of Curry3: it packs three positional
// arguments into a T3 and invokes the tupled function.
func Uncurry3[A, B, C, R any](f func(A, B, C) R) func(T3[A, B, C]) R {
	return func(t T3[A, B, C]) R {
		return f(t.first, t.second, t.third)
	}
}

// Curry4 converts a function over a T4 into one taking four positional
// arguments in the same order.
func Curry4[A, B, C, D, R any](f func(T4[A, B, C, D]) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return f(NewT4(a, b, c, d))
	}
}

// Uncurry4 is the exact inverse of Curry4.
func Uncurry4[A, B, C, D, R any](f func(A, B, C, D) R) func(T4[A, B, C, D]) R {
	return func(t T4[A, B, C, D]) R {
		return f(t.first, t.second, t.third, t.fourth)
	}
}

// Curry5 converts a function over a T5 into one taking five positional
// arguments in the same order.
func Curry5[A, B, C, D, E, R any](f func(T5[A, B, C, D, E]) R) func(A, B, C, D, E) R {
	return func(a A, b B, c C, d D, e E) R {
		return f(NewT5(a, b, c, d, e))
	}
}

// Uncurry5 is the exact inverse of Curry5.
func Uncurry5[A, B, C, D, E, R any](f func(A, B, C, D, E) R) func(T5[A, B, C, D, E]) R {
	return func(t T5[A, B, C, D, E]) R {
		return f(t.first, t.second, t.third, t.fourth, t.fifth)
	}
}

// ============================================================================
// Binary-Function Input Transform
// ============================================================================

// On returns a binary function that projects both of its inputs through
// f before combining them with bi: On(bi, f)(x, y) == bi(f(x), f(y)).
//
// The usual application is a comparator over a derived key:
//
//	byName := On(cmp.Compare, func(u User) string { return u.Name })
//	slices.SortFunc(users, byName)
func On[A, B, C any](bi func(B, B) C, f func(A) B) func(A, A) C {
	return func(x, y A) C {
		bx := f(x)
		by := f(y)
		return bi(bx, by)
	}
}

// Flip swaps the argument order of a binary function:
// Flip(f)(a, b) == f(b, a). Composing Flip with On reverses a
// comparator built over a projected key.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
