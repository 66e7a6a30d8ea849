package fromconfig

//lint:MustUse
type Callback func()

func sink(Callback) {}

func called(c Callback) { c() }

func forwarded(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	sink(c)
}
