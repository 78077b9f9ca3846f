// Package options holds helpers shared by the functional-option APIs of the
// parser and generator packages.
package options

import "errors"

// ValidateSingleInputSource returns an error unless exactly one of sources is
// true. noSourceMsg and multiSourceMsg are returned verbatim as the error text.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return errors.New(noSourceMsg)
	case n > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
