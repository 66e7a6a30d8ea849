package shadow

//lint:MustUse
type Callback func()

func block(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	{
		c := func() {}
		c()
	}
}

func literalParam(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	f := func(c func()) { c() }
	f(func() {})
}

func nested(c Callback) {
	c()
	f := func(c Callback) {} // want `parameter 'c' has a must-use type but is never used`
	_ = f
}

func outerUsedInClosure(c Callback) {
	f := func(d Callback) {
		d()
		c()
	}
	f(nil)
}
