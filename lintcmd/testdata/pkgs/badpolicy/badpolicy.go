package badpolicy

import "example.com/pkgs"

func unused(c pkgs.Callback) {}
