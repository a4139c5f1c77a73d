package cmds

import (
	"fmt"
	"reflect"
)

// Command is a function fed from argv, or a group of sub commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn, which must return nothing or a single error.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch t := value.Type(); t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			panic(fmt.Errorf("%v: must return error", t))
		}
	default:
		panic(fmt.Errorf("%v: must return 0 or 1 value", t))
	}
	return &Command{
		Func: value,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) call(args []string) (rest []string, err error) {
	if !c.Func.IsValid() {
		return args, nil
	}
	t := c.Func.Type()
	in := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		value, consumed, err := parseArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		if consumed {
			args = args[1:]
		}
		in = append(in, value)
	}
	out := c.Func.Call(in)
	if len(out) > 0 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}
