//go:build !windows

package native

import "github.com/joshuapare/rebootkit/pkg/types"

// KeyExists is unavailable off Windows.
func KeyExists(ref types.KeyRef) (bool, error) {
	return false, types.ErrUnsupportedPlatform
}

// CreateVolatileKey is unavailable off Windows.
func CreateVolatileKey(ref types.KeyRef) error {
	return types.ErrUnsupportedPlatform
}

// DeleteKey is unavailable off Windows.
func DeleteKey(ref types.KeyRef) error {
	return types.ErrUnsupportedPlatform
}
