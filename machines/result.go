package machines

import (
	"fmt"
	"math/big"
)

// Result is either a Value or an Err, never both. Value is an integer
// except for powers with a negative exponent.
type Result struct {
	Op       Op
	Operands []*big.Int
	Value    *big.Rat
	Err      error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Expr renders the operation with its operands, like "3 + 5" or "√16".
func (r Result) Expr() string {
	switch len(r.Operands) {
	case 1:
		return r.Op.Symbol() + r.Operands[0].String()
	case 2:
		if r.Op == OpPower {
			return fmt.Sprintf("%s^%s", r.Operands[0], r.Operands[1])
		}
		return fmt.Sprintf("%s %s %s", r.Operands[0], r.Op.Symbol(), r.Operands[1])
	}
	return r.Op.String()
}

func (r Result) String() string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return r.Value.RatString()
}

// Int returns Value when it is an integer.
func (r Result) Int() (*big.Int, bool) {
	if r.Value == nil || !r.Value.IsInt() {
		return nil, false
	}
	return new(big.Int).Set(r.Value.Num()), true
}

func (r Result) entry() string {
	return fmt.Sprintf("%s: %s = %s", r.Op, r.Expr(), r)
}
