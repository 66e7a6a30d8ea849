package example

//lint:MustUse
type Callback func()

func unused(c Callback) {}

func used(c Callback) { c() }

//lint:ignore MustUseType the callback is run by the caller
func ignored(c Callback) {}

//lint:ignore MustUseType
func malformed(c Callback) { c() }
