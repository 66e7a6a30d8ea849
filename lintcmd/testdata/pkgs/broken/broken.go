package broken

import "example.com/pkgs"

func f(a pkgs.Callback, b Undefined) {}
