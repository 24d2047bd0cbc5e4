// Package rational implements an immutable exact fraction type.
//
// Every Rat is kept in lowest terms with a positive denominator (the
// invariant is maintained by math/big). Operations never modify their
// operands and never round, so long chains of tableau pivots stay exact.
package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat is an exact rational number. The zero value is 0.
type Rat struct {
	r *big.Rat
}

var (
	Zero = Rat{}
	One  = FromInt(1)
)

// New returns num/den in lowest terms. It panics if den is zero.
func New(num, den int64) Rat {
	if den == 0 {
		panic("rational: zero denominator")
	}

	return Rat{big.NewRat(num, den)}
}

// FromInt returns the integer n as a Rat.
func FromInt(n int64) Rat {
	return Rat{new(big.Rat).SetInt64(n)}
}

// FromBig copies x into a new Rat.
func FromBig(x *big.Rat) Rat {
	return Rat{new(big.Rat).Set(x)}
}

// Parse reads an integer ("-3"), fraction ("7/4") or decimal ("0.25").
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("rational: empty string")
	}

	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return Zero, fmt.Errorf("rational: cannot parse %q", s)
	}

	return Rat{x}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// literals in tests and examples.
func MustParse(s string) Rat {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

func (x Rat) big() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}

	return x.r
}

// Big returns a copy of x as a *big.Rat.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.big())
}

func (x Rat) Add(y Rat) Rat { return Rat{new(big.Rat).Add(x.big(), y.big())} }
func (x Rat) Sub(y Rat) Rat { return Rat{new(big.Rat).Sub(x.big(), y.big())} }
func (x Rat) Mul(y Rat) Rat { return Rat{new(big.Rat).Mul(x.big(), y.big())} }
func (x Rat) Neg() Rat      { return Rat{new(big.Rat).Neg(x.big())} }

// Quo returns x/y. It panics if y is zero.
func (x Rat) Quo(y Rat) Rat {
	if y.IsZero() {
		panic("rational: division by zero")
	}

	return Rat{new(big.Rat).Quo(x.big(), y.big())}
}

// Inv returns 1/x. It panics if x is zero.
func (x Rat) Inv() Rat {
	return One.Quo(x)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x Rat) Cmp(y Rat) int { return x.big().Cmp(y.big()) }

func (x Rat) Equal(y Rat) bool { return x.Cmp(y) == 0 }
func (x Rat) Less(y Rat) bool  { return x.Cmp(y) < 0 }
func (x Rat) Sign() int        { return x.big().Sign() }
func (x Rat) IsZero() bool     { return x.Sign() == 0 }

// IsInt reports whether the denominator of x is 1.
func (x Rat) IsInt() bool { return x.big().IsInt() }

// Num returns the numerator of x; it may be <= 0.
func (x Rat) Num() *big.Int { return new(big.Int).Set(x.big().Num()) }

// Denom returns the denominator of x; it is always > 0.
func (x Rat) Denom() *big.Int { return new(big.Int).Set(x.big().Denom()) }

// Float64 returns the nearest float64 to x. Only for display and
// sampling; never feed the result back into exact computations.
func (x Rat) Float64() float64 {
	f, _ := x.big().Float64()
	return f
}

// String formats x as "0", "N" or "N/D".
func (x Rat) String() string {
	r := x.big()
	switch {
	case r.Sign() == 0:
		return "0"
	case r.IsInt():
		return r.Num().String()
	default:
		return r.Num().String() + "/" + r.Denom().String()
	}
}

func (x Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Rat) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = y
	return nil
}

func (x Rat) GobEncode() ([]byte, error) {
	return x.big().GobEncode()
}

func (x *Rat) GobDecode(buf []byte) error {
	r := new(big.Rat)
	if err := r.GobDecode(buf); err != nil {
		return err
	}

	x.r = r
	return nil
}

// Min returns the smallest of xs, or Zero if xs is empty.
func Min(xs ...Rat) Rat {
	if len(xs) == 0 {
		return Zero
	}

	best := xs[0]
	for _, x := range xs[1:] {
		if x.Less(best) {
			best = x
		}
	}

	return best
}

// Max returns the largest of xs, or Zero if xs is empty.
func Max(xs ...Rat) Rat {
	if len(xs) == 0 {
		return Zero
	}

	best := xs[0]
	for _, x := range xs[1:] {
		if best.Less(x) {
			best = x
		}
	}

	return best
}

// Sum returns the exact sum of xs.
func Sum(xs []Rat) Rat {
	total := new(big.Rat)
	for _, x := range xs {
		total.Add(total, x.big())
	}

	return Rat{total}
}
