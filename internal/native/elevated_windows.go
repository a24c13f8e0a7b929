//go:build windows

package native

import "golang.org/x/sys/windows"

// IsElevated reports whether the current process token carries
// administrative elevation.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
