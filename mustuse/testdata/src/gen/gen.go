// Code generated by hand. DO NOT EDIT.

package gen

func generated(c Callback) {}
