package programs

// Examples runs each arithmetic operation once.
func Examples() *Program {
	return New(
		&Step{Name: "addition", Action: "add: 3 5"},
		&Step{Name: "subtraction", Action: "subtract: 10 4"},
		&Step{Name: "multiplication", Action: "multiply: 7 6"},
		&Step{Name: "division", Action: "divide: 20 4"},
		&Step{Name: "power", Action: "power: 2 3"},
		&Step{Name: "square root", Action: "sqrt: 16"},
	)
}
