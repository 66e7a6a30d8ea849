package scenarios

//lint:MustUse
type Callback func()

func (c Callback) Invoke() { c() }

func emptyBody(c Callback) {} // want `parameter 'c' has a must-use type but is never used`

func called(c Callback) {
	c()
}

func invoked(c Callback) {
	c.Invoke()
}

func forwards(c Callback) {
	forwardedTo(c)
}

func forwardedTo(c Callback) {} // want `parameter 'c' has a must-use type but is never used`

func discarded(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	_ = c
}
