package gen

//lint:MustUse
type Callback func()

func handwritten(c Callback) {} // want `parameter 'c' has a must-use type but is never used`
