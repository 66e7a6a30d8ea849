package invocation

//lint:MustUse
type Callback func()

func (c Callback) Invoke() { c() }

func sink(Callback) {}

func called(c Callback) { c() }

func invoked(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	c.Invoke()
}

func forwarded(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	sink(c)
}
