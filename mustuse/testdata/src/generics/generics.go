package generics

//lint:MustUse
type Callback func()

//lint:MustUse
type Other func()

type Plain func()

//lint:MustUse
type Handler[T any] func(T)

func instantiated(h Handler[int]) {} // want `parameter 'h' has a must-use type but is never used`

func instantiatedUsed(h Handler[string]) { h("") }

func typeParam[T Callback](c T) {} // want `parameter 'c' has a must-use type but is never used`

func union[T Callback | Other](c T) { c() }

func unionUnused[T Callback | Other](c T) {} // want `parameter 'c' has a must-use type but is never used`

func mixed[T Callback | Plain](c T) {}

func unconstrained[T any](c T) {}
