package exprs

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/reusee/tapecalc/machines"
)

var (
	ErrEmpty       = errors.New("empty expression")
	ErrUnsupported = errors.New("unsupported expression")
)

// Call is one machine operation with literal operands.
type Call struct {
	Op       machines.Op
	Operands []*big.Int
}

func (c Call) Apply(m *machines.Machine) machines.Result {
	return m.Apply(c.Op, c.Operands...)
}

func (c Call) String() string {
	return machines.Result{
		Op:       c.Op,
		Operands: c.Operands,
	}.Expr()
}

// Parse accepts a single binary operation like "7 / 0", or a call like "sqrt(16)".
func Parse(input string) (Call, error) {
	if strings.TrimSpace(input) == "" {
		return Call{}, ErrEmpty
	}
	tree, err := parser.Parse(input)
	if err != nil {
		return Call{}, fmt.Errorf("parse %q: %w", input, err)
	}

	switch node := tree.Node.(type) {

	case *ast.BinaryNode:
		op, err := machines.ParseOp(node.Operator)
		if err != nil {
			return Call{}, fmt.Errorf("%w: operator %s", ErrUnsupported, node.Operator)
		}
		if op.Arity() != 2 {
			return Call{}, fmt.Errorf("%w: operator %s", ErrUnsupported, node.Operator)
		}
		a, err := literal(node.Left)
		if err != nil {
			return Call{}, err
		}
		b, err := literal(node.Right)
		if err != nil {
			return Call{}, err
		}
		return Call{
			Op:       op,
			Operands: []*big.Int{a, b},
		}, nil

	case *ast.CallNode:
		ident, ok := node.Callee.(*ast.IdentifierNode)
		if !ok {
			return Call{}, fmt.Errorf("%w: callee %s", ErrUnsupported, node.Callee)
		}
		op, err := machines.ParseOp(ident.Value)
		if err != nil {
			return Call{}, err
		}
		if len(node.Arguments) != op.Arity() {
			return Call{}, fmt.Errorf("%s takes %d operands, got %d", op, op.Arity(), len(node.Arguments))
		}
		operands := make([]*big.Int, 0, len(node.Arguments))
		for _, arg := range node.Arguments {
			operand, err := literal(arg)
			if err != nil {
				return Call{}, err
			}
			operands = append(operands, operand)
		}
		return Call{
			Op:       op,
			Operands: operands,
		}, nil

	}

	return Call{}, fmt.Errorf("%w: %s", ErrUnsupported, tree.Node)
}

func literal(node ast.Node) (*big.Int, error) {
	switch node := node.(type) {
	case *ast.IntegerNode:
		return big.NewInt(int64(node.Value)), nil
	case *ast.UnaryNode:
		v, err := literal(node.Node)
		if err != nil {
			return nil, err
		}
		switch node.Operator {
		case "-":
			return v.Neg(v), nil
		case "+":
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: operand %s is not an integer literal", ErrUnsupported, node)
}
