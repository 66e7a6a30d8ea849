package strict

//lint:MustUse
type Callback func()

func (Callback) Close() {}

func (cb Callback) Invoke() { cb() }

// Resource is marked in a grouped declaration.
type (
	//acme:MustUse
	Resource struct{ Name string }

	Plain func()
)

func (*Resource) Invoke()  {}
func (*Resource) Release() {}

type Runner interface {
	Run(c Callback)
}

func run(cs ...Callback) {}

func deferred(c Callback) { defer c() }

func goroutine(c Callback) { go c() }

func parens(c Callback) { ((c))() }

func methodValue(c Callback) {
	f := c.Invoke
	f()
}

func closure(c Callback) {
	func() {
		c()
	}()
}

func forwarded(c Callback) { run(nil, c) }

func appended(c Callback) []Callback {
	return append([]Callback(nil), c)
}

func deadBranch(c Callback) {
	if false {
		c()
	}
}

func laterUse(c Callback) {
	_ = c
	c = nil
	c()
}

func pointer(r *Resource) { r.Invoke() }

func (r *Resource) Use(c Callback) {} // want `parameter 'c' has a must-use type but is never used`

func pointerMember(r *Resource) { // want `parameter 'r' has a must-use type but is never used`
	r.Release()
}

func member(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	c.Close()
}

func field(r *Resource) string { // want `parameter 'r' has a must-use type but is never used`
	return r.Name
}

func value(r Resource) { // want `parameter 'r' has a must-use type but is never used`
	_ = r.Name
}

func overwritten(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	c = nil
}

func stored(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	d := c
	d()
}

func varDiscard(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	var _ = c
}

func returned(c Callback) Callback { // want `parameter 'c' has a must-use type but is never used`
	return c
}

func converted(c Callback) { // want `parameter 'c' has a must-use type but is never used`
	_ = Plain(c)
}

func compared(c Callback) bool { // want `parameter 'c' has a must-use type but is never used`
	return c == nil
}

func multiple(a, b Callback) { // want `parameter 'b' has a must-use type but is never used`
	a()
}

func unnamed(Callback) {}

func blank(_ Callback) {}

func notMarked(p Plain) {}

func variadic(cs ...Callback) {}

func result() (c Callback) { return nil }

func literals() {
	f := func(c Callback) {} // want `parameter 'c' has a must-use type but is never used`
	g := func(c Callback) { c() }
	_, _ = f, g
}
