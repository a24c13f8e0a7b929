//go:build !windows

package native

import "github.com/joshuapare/rebootkit/pkg/types"

// MoveFileDelayed is unavailable off Windows; the pending-operations list is
// an NT boot-time mechanism.
func MoveFileDelayed(source, destination string, flags types.MoveFlags) error {
	return types.ErrUnsupportedPlatform
}
