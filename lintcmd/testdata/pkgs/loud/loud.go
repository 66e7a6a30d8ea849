package loud

import "example.com/pkgs"

func unused(c pkgs.Callback) {}
