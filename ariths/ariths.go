package ariths

import (
	"errors"
	"math/big"
)

var (
	ErrDivideByZero     = errors.New("division by zero")
	ErrNegativeRadicand = errors.New("square root of negative number")
)

var one = big.NewInt(1)

func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func Subtract(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

func Multiply(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// Divide returns the floor of a/b.
func Divide(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, one)
	}
	return q, nil
}

// Power returns a**b. A negative exponent yields the exact rational 1/a**-b.
func Power(a, b *big.Int) (*big.Rat, error) {
	if b.Sign() >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Exp(a, b, nil)), nil
	}
	if a.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	denom := new(big.Int).Exp(a, new(big.Int).Neg(b), nil)
	return new(big.Rat).SetFrac(big.NewInt(1), denom), nil
}

// IntegerSqrt returns floor(sqrt(a)).
func IntegerSqrt(a *big.Int) (*big.Int, error) {
	if a.Sign() < 0 {
		return nil, ErrNegativeRadicand
	}
	return new(big.Int).Sqrt(a), nil
}
