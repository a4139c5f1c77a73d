package machines

import (
	"errors"
	"fmt"
	"strings"
)

type Op int

const (
	OpAdd Op = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpIntegerSqrt
)

var Ops = []Op{
	OpAdd,
	OpSubtract,
	OpMultiply,
	OpDivide,
	OpPower,
	OpIntegerSqrt,
}

type opInfo struct {
	name    string
	symbol  string
	arity   int
	aliases []string
}

var opInfos = map[Op]opInfo{
	OpAdd:         {name: "add", symbol: "+", arity: 2, aliases: []string{"+", "sum"}},
	OpSubtract:    {name: "subtract", symbol: "-", arity: 2, aliases: []string{"-", "sub"}},
	OpMultiply:    {name: "multiply", symbol: "*", arity: 2, aliases: []string{"*", "mul"}},
	OpDivide:      {name: "divide", symbol: "/", arity: 2, aliases: []string{"/", "div"}},
	OpPower:       {name: "power", symbol: "^", arity: 2, aliases: []string{"^", "**", "pow"}},
	OpIntegerSqrt: {name: "sqrt", symbol: "√", arity: 1, aliases: []string{"√", "integer_sqrt", "isqrt"}},
}

func (o Op) String() string {
	if info, ok := opInfos[o]; ok {
		return info.name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

func (o Op) Symbol() string {
	return opInfos[o].symbol
}

func (o Op) Arity() int {
	return opInfos[o].arity
}

var ErrUnknownOp = errors.New("unknown operation")

func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, op := range Ops {
		info := opInfos[op]
		if info.name == name {
			return op, nil
		}
		for _, alias := range info.aliases {
			if alias == name {
				return op, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownOp, name)
}
