package badsyntax

import "example.com/pkgs"

func unused(c pkgs.Callback) {}
