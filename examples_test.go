package purefunccompose_test

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	pfc "github.com/Pure-Company/purefunccompose"
)

// ============================================================================
// Example 1: Deriving values from a shared environment
// ============================================================================

// Config is the shared environment the readers below pull values from.
type Config struct {
	Host    string
	Port    int
	Scheme  string
	Timeout int
}

// Example_readerLifting builds one derived value out of several
// independent reads of the same Config, without threading the Config
// through by hand.
func Example_readerLifting() {
	host := func(c Config) string { return c.Host }
	port := func(c Config) int { return c.Port }
	scheme := func(c Config) string { return c.Scheme }

	baseURL := pfc.Map3(func(s, h string, p int) string {
		return fmt.Sprintf("%s://%s:%d", s, h, p)
	}, scheme, host, port)

	fmt.Println(baseURL(Config{Host: "localhost", Port: 8080, Scheme: "https"}))
	// Output: https://localhost:8080
}

// Example_andThen shows a sequential pipeline where each stage consumes
// the prior result and can still re-read the shared environment.
func Example_andThen() {
	host := func(c Config) string { return c.Host }

	withPort := pfc.AndThen(host, func(h string) func(Config) string {
		return func(c Config) string {
			return fmt.Sprintf("%s:%d", h, c.Port)
		}
	})

	fmt.Println(withPort(Config{Host: "db.internal", Port: 5432}))
	// Output: db.internal:5432
}

// Example_andMap builds a four-way lift one argument at a time from a
// curried function read out of the environment.
func Example_andMap() {
	describe := func(Config) func(string) func(int) string {
		return func(h string) func(int) string {
			return func(p int) string {
				return fmt.Sprintf("%s on port %d", h, p)
			}
		}
	}
	host := func(c Config) string { return c.Host }
	port := func(c Config) int { return c.Port }

	reader := pfc.AndMap(pfc.AndMap(describe, host), port)

	fmt.Println(reader(Config{Host: "cache", Port: 6379}))
	// Output: cache on port 6379
}

// ============================================================================
// Example 2: Comparators over derived keys
// ============================================================================

type Employee struct {
	Name string
	Age  int
}

// Example_onComparator sorts by a projected field without writing the
// comparator by hand, then reverses it with Flip.
func Example_onComparator() {
	staff := []Employee{
		{Name: "Carol", Age: 35},
		{Name: "Alice", Age: 28},
		{Name: "Bob", Age: 42},
	}

	byAge := pfc.On(cmp.Compare, func(e Employee) int { return e.Age })

	slices.SortFunc(staff, byAge)
	for _, e := range staff {
		fmt.Println(e.Name, e.Age)
	}

	slices.SortFunc(staff, pfc.Flip(byAge))
	fmt.Println("oldest:", staff[0].Name)

	// Output:
	// Alice 28
	// Carol 35
	// Bob 42
	// oldest: Bob
}

// ============================================================================
// Example 3: Tupled vs positional calling conventions
// ============================================================================

// Example_curry adapts between a function over a packed tuple and the
// positional call convention, round-tripping without loss.
func Example_curry() {
	// A function that only knows how to consume a packed argument.
	format := func(t pfc.T3[string, int, bool]) string {
		name, count, ok := t.Unpack()
		status := "missing"
		if ok {
			status = "present"
		}
		return fmt.Sprintf("%s x%d (%s)", name, count, status)
	}

	// Call it positionally.
	fmt.Println(pfc.Curry3(format)("widget", 3, true))

	// And back again: packing positional arguments into a tuple.
	join := func(a, b, c string) string { return strings.Join([]string{a, b, c}, "/") }
	fmt.Println(pfc.Uncurry3(join)(pfc.NewT3("usr", "local", "bin")))

	// Output:
	// widget x3 (present)
	// usr/local/bin
}

// ============================================================================
// Example 4: Pairs
// ============================================================================

// Example_both applies one function to each element of a homogeneous
// pair, preserving order.
func Example_both() {
	bounds := pfc.NewT2("ab", "abcd")

	lengths := pfc.Both(func(s string) int { return len(s) }, bounds)

	fmt.Println(lengths.First(), lengths.Second())
	// Output: 2 4
}

// Example_pair reads two values out of the same environment and packs
// them into a tuple in one step.
func Example_pair() {
	endpoint := pfc.Pair(
		func(c Config) string { return c.Host },
		func(c Config) int { return c.Port },
	)

	h, p := endpoint(Config{Host: "api", Port: 443}).Unpack()
	fmt.Printf("%s:%d\n", h, p)
	// Output: api:443
}
