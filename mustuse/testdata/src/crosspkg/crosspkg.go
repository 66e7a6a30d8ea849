package crosspkg

import "markers"

type CallbackAlias = markers.Callback

func imported(c markers.Callback) {} // want `parameter 'c' has a must-use type but is never used`

func importedUsed(c markers.Callback) { c() }

func alias(c CallbackAlias) {} // want `parameter 'c' has a must-use type but is never used`

func iface(c markers.Closer) { // want `parameter 'c' has a must-use type but is never used`
	c.Close()
}

func ifaceInvoked(c markers.Closer) { c.Invoke() }

func plain(p markers.Plain) {}
