package pkgs

//lint:MustUse
type Callback func()
