//go:build windows

package native

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/rebootkit/pkg/types"
)

// MoveFileDelayed enqueues a move (or, with an empty destination, a delete)
// on the OS pending-operations list. The flags map directly onto the
// MOVEFILE_* values; callers are expected to include MoveDelayUntilReboot.
func MoveFileDelayed(source, destination string, flags types.MoveFlags) error {
	src, err := windows.UTF16PtrFromString(source)
	if err != nil {
		return fmt.Errorf("invalid source path: %w", err)
	}
	var dst *uint16
	if destination != "" {
		dst, err = windows.UTF16PtrFromString(destination)
		if err != nil {
			return fmt.Errorf("invalid destination path: %w", err)
		}
	}
	// A nil destination with DELAY_UNTIL_REBOOT requests deletion at boot.
	return windows.MoveFileEx(src, dst, uint32(flags))
}
