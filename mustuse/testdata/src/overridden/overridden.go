package overridden

//lint:MustUse
type Callback func()

func sink(Callback) {}

func forwarded(c Callback) { sink(c) }
