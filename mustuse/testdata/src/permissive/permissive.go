package permissive

//lint:MustUse
type Callback func()

func (Callback) Close() {}

func called(c Callback) { c() }

func member(c Callback) { c.Close() }

func stored(c Callback) {
	d := c
	d()
}

func discarded(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	_ = c
}

func overwritten(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	c = nil
}

func returned(c Callback) Callback { // want `parameter 'c' has a must-use type but is never used`
	return c
}
