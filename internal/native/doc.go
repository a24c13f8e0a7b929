// Package native wraps the Windows primitives behind the toolkit: MoveFileEx
// with MOVEFILE_DELAY_UNTIL_REBOOT for the pending-operations list,
// RegCreateKeyEx with REG_OPTION_VOLATILE for volatile keys, and the process
// token elevation check. Non-Windows builds compile stubs that report the
// platform as unsupported so the rest of the module stays testable anywhere.
package native
