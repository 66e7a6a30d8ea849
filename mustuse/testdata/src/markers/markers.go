package markers

//lint:MustUse
type Callback func()

//ext:MustUse
type Closer interface {
	Invoke()
	Close()
}

type Plain func()
