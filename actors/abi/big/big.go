// Package big provides a saturating, fixed-width unsigned integer used for
// every counter and balance in the UBI core. It wraps math/big.Int the same
// way the teacher's own abi/big package does, but clamps every operation to
// [0, Max] instead of growing without bound or wrapping.
package big

import "math/big"

// Int is a saturating unsigned 128-bit integer.
type Int struct {
	i *big.Int
}

// Max is the ceiling every operation saturates to: 2^128 - 1.
var Max = func() *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), 128)
	return m.Sub(m, big.NewInt(1))
}()

// Zero returns the additive identity.
func Zero() Int {
	return Int{i: big.NewInt(0)}
}

// NewInt constructs an Int from a non-negative int64. Negative inputs
// saturate to zero.
func NewInt(n int64) Int {
	if n < 0 {
		return Zero()
	}
	return Int{i: big.NewInt(n)}
}

// NewIntUnsigned constructs an Int from a uint64.
func NewIntUnsigned(n uint64) Int {
	return Int{i: new(big.Int).SetUint64(n)}
}

func clamp(v *big.Int) Int {
	if v.Sign() < 0 {
		return Zero()
	}
	if v.Cmp(Max) > 0 {
		return Int{i: new(big.Int).Set(Max)}
	}
	return Int{i: v}
}

// Add returns a+b, saturating at Max.
func Add(a, b Int) Int {
	return clamp(new(big.Int).Add(a.int(), b.int()))
}

// Sub returns a-b, saturating at zero (never negative).
func Sub(a, b Int) Int {
	return clamp(new(big.Int).Sub(a.int(), b.int()))
}

// Mul returns a*b, saturating at Max.
func Mul(a, b Int) Int {
	return clamp(new(big.Int).Mul(a.int(), b.int()))
}

// Div returns a/b truncated toward zero. Division by zero returns Zero
// rather than panicking; the arithmetic kernel never faults.
func Div(a, b Int) Int {
	if b.IsZero() {
		return Zero()
	}
	return clamp(new(big.Int).Div(a.int(), b.int()))
}

// Max2 returns the larger of a, b.
func Max2(a, b Int) Int {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Min2 returns the smaller of a, b.
func Min2(a, b Int) Int {
	if a.LessThan(b) {
		return a
	}
	return b
}

func (a Int) int() *big.Int {
	if a.i == nil {
		return big.NewInt(0)
	}
	return a.i
}

func (a Int) IsZero() bool {
	return a.int().Sign() == 0
}

func (a Int) LessThan(b Int) bool {
	return a.int().Cmp(b.int()) < 0
}

func (a Int) LessThanEqual(b Int) bool {
	return a.int().Cmp(b.int()) <= 0
}

func (a Int) GreaterThan(b Int) bool {
	return a.int().Cmp(b.int()) > 0
}

func (a Int) GreaterThanEqual(b Int) bool {
	return a.int().Cmp(b.int()) >= 0
}

func (a Int) Equals(b Int) bool {
	return a.int().Cmp(b.int()) == 0
}

func (a Int) Cmp(b Int) int {
	return a.int().Cmp(b.int())
}

// Uint64 returns the value as a uint64, saturating at math.MaxUint64.
func (a Int) Uint64() uint64 {
	if !a.int().IsUint64() {
		return ^uint64(0)
	}
	return a.int().Uint64()
}

func (a Int) String() string {
	return a.int().String()
}
