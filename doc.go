/*
Package purefunccompose provides generic combinators for composing plain Go functions.

# Overview

Purefunccompose treats ordinary functions as the unit of composition. A
"reader" is any function from a shared environment value to a result
(func(X) A); this is a usage convention, not a wrapper type. The combinators
here build new readers out of existing ones, lift multi-argument
functions over readers, convert between tupled and positional calling
conventions, and transform the inputs of binary functions such as
comparators.

# Key Benefits

  - Zero wrapper types: readers stay plain func(X) A values
  - Rich composition: Compose, Map, Map2..Map4, AndMap, AndThen
  - Tuple adaptation: Curry3..Curry5 / Uncurry3..Uncurry5
  - Comparator building: On projects comparator inputs through a key
  - Total and pure: nothing fails, logs, retries, or mutates

# Quick Example

Derive one value from several independent reads of the same environment:

	type Config struct {
	    Host string
	    Port int
	}

	host := func(c Config) string { return c.Host }
	port := func(c Config) int { return c.Port }

	addr := purefunccompose.Map2(func(h string, p int) string {
	    return fmt.Sprintf("%s:%d", h, p)
	}, host, port)

	addr(Config{Host: "localhost", Port: 8080}) // "localhost:8080"

# Core Concepts

Composition: Compose is right-to-left; Map is the same composition read
as "transform the result of a reader":

	Compose(g, f)(x)  // g(f(x))
	Map(f, ra)(x)     // f(ra(x))

Lifting: Map2 through Map4 feed the same environment to every reader,
in listed order, then apply the combining function positionally:

	Map2(f, ra, rb)(x) // f(ra(x), rb(x))

Applicative chaining: AndMap applies a reader-of-a-function to a
reader-of-a-value, so lifts of any arity can be built one argument at
a time:

	AndMap(AndMap(f, ra), rb)(x) // f(x)(ra(x))(rb(x))

Sequencing: AndThen feeds the prior result and the same environment
into the next stage:

	AndThen(ra, g)(x) // g(ra(x))(x)

# Tuples and Currying

T2 through T5 are immutable position-significant tuples with NewTn
constructors, positional accessors, and Unpack into Go multiple
returns. Curry3..Curry5 turn a function over a tuple into one taking
positional arguments; Uncurry3..Uncurry5 are their exact inverses:

	sum := func(t T3[int, int, int]) int {
	    a, b, c := t.Unpack()
	    return a + b + c
	}
	Curry3(sum)(1, 2, 3)                  // 6
	Uncurry3(Curry3(sum))(NewT3(1, 2, 3)) // 6

# Comparators

On builds a binary function, typically a comparator, over a projected
key; Flip reverses argument order:

	byLen := On(cmp.Compare, func(s string) int { return len(s) })
	slices.SortFunc(words, byLen)
	slices.SortFunc(words, Flip(byLen)) // descending

# Failure Semantics

No combinator defines failure of its own. A panic raised by a supplied
function propagates unaltered through every combinator, exactly as if
the failing function had been called directly. Every operation is
referentially transparent and safe to call from any number of
goroutines because nothing here touches shared state.

# Package Import

	import pfc "github.com/Pure-Company/purefunccompose"

	// Or full import
	import "github.com/Pure-Company/purefunccompose"
*/
package purefunccompose
