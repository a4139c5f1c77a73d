package cmds

import (
	"encoding"
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/tapecalc/vars"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("expecting argument, got nothing")
)

// Executor dispatches argv words to defined commands.
// Each command consumes the words its function takes as arguments.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
	}
	e.Define("-h", Func(func() {
		e.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return e
}

func (e *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		e.commands[name] = command
	}
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}

		var err error
		args, err = command.call(args[1:])
		if err != nil {
			return err
		}

		// sub commands are visible after their parent
		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// parseArg decodes args[0] as t. Pointer types are optional.
func parseArg(t reflect.Type, args []string) (ret reflect.Value, consumed bool, err error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			return reflect.New(t.Elem()), false, nil
		}
		return ret, false, ErrMissingArg
	}
	str := args[0]

	// *big.Int and the like
	if t.Kind() == reflect.Pointer && t.Implements(textUnmarshalerType) {
		ret = reflect.New(t.Elem())
		if err := ret.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str)); err != nil {
			return ret, false, fmt.Errorf("convert %s to %v: %w", str, t.Elem(), err)
		}
		return ret, true, nil
	}

	if t.Kind() == reflect.Pointer {
		elem, consumed, err := parseArg(t.Elem(), args)
		if err != nil {
			return ret, false, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, consumed, nil
	}

	ret = reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.Bool:
		v, err := vars.ParseBool(str)
		if err != nil {
			return ret, false, err
		}
		ret.SetBool(v)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, false, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, true, nil
}
