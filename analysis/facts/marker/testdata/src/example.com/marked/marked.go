package pkg

//lint:MustUse
type Callback func() // want Callback:"must-use \\(lint\\)"

// Continuation is run exactly once.
//
//acme:MustUse
type Continuation func(error) // want Continuation:"must-use \\(acme\\)"

type (
	//lint:MustUse
	Grouped struct{} // want Grouped:"must-use \\(lint\\)"

	Unmarked struct{}
)

//lint:MustUse
type (
	NotGrouped int
)

//lint:mustuse
type WrongCase func()

// lint:MustUse
type NotADirective func()

//lint:MustUse
type Alias = Callback // want Alias:"must-use \\(lint\\)"

//lint:MustUse
type FuncAlias = func() // want FuncAlias:"must-use \\(lint\\)"

//Acme:MustUse
type Upper func() // want Upper:"must-use \\(Acme\\)"

func fn() {
	//lint:MustUse
	type local func()
	var _ local
}
