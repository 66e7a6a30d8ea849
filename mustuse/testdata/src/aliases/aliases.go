package aliases

//lint:MustUse
type Callback = func()

type Renamed = Callback

//lint:MustUse
type Named func()

type NamedAlias = Named

type Plain = func()

func unused(c Callback) {} // want `parameter 'c' has a must-use type but is never used`

func called(c Callback) { c() }

func renamed(c Renamed) {} // want `parameter 'c' has a must-use type but is never used`

func throughAlias(n NamedAlias) {} // want `parameter 'n' has a must-use type but is never used`

func plain(p Plain) {}
