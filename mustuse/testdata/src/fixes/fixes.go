package fixes

//lint:MustUse
type Callback func()

func unused(c Callback) {} // want `parameter 'c' has a must-use type but is never used`

func discarded(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	_ = c
}
