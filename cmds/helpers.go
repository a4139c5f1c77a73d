package cmds

// Var defines name to set the value, and "name." to reset it to zero.
func Var[T any](name string, desc string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines name to turn on, and "!name" to turn off.
func Switch(name string, desc string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}

// Collect appends every occurrence of name.
func Collect[T any](name string, desc string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc(desc))
	return values
}
