package quiet

import "example.com/pkgs"

func unused(c pkgs.Callback) {}
