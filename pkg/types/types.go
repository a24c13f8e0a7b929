package types

import "fmt"

// -----------------------------------------------------------------------------
// Registry Hives
// -----------------------------------------------------------------------------

// Hive identifies a top-level root of the registry tree.
type Hive int

const (
	HiveInvalid Hive = iota
	HiveLocalMachine
	HiveCurrentUser
	HiveUsers
	HiveClassesRoot
	HiveCurrentConfig
)

// String returns the canonical HKEY_* name for the hive.
func (h Hive) String() string {
	switch h {
	case HiveLocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case HiveCurrentUser:
		return "HKEY_CURRENT_USER"
	case HiveUsers:
		return "HKEY_USERS"
	case HiveClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case HiveCurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	default:
		return fmt.Sprintf("UNKNOWN_HIVE_%d", int(h))
	}
}

// KeyRef is a resolved registry key reference: a hive plus the subkey path
// below it. SubKey preserves the caller's casing and separators verbatim.
type KeyRef struct {
	Hive   Hive
	SubKey string
}

// String reassembles the fully qualified key path.
func (k KeyRef) String() string {
	return k.Hive.String() + `\` + k.SubKey
}

// -----------------------------------------------------------------------------
// Pending Move Operations
// -----------------------------------------------------------------------------

// MoveFlags is the flag bitset accepted by the native move primitive.
// The values align with the Windows MOVEFILE_* definitions.
type MoveFlags uint32

const (
	MoveReplaceExisting    MoveFlags = 0x1
	MoveCopyAllowed        MoveFlags = 0x2
	MoveDelayUntilReboot   MoveFlags = 0x4
	MoveWriteThrough       MoveFlags = 0x8
	MoveCreateHardlink     MoveFlags = 0x10
	MoveFailIfNotTrackable MoveFlags = 0x20
)

var moveFlagNames = []struct {
	bit  MoveFlags
	name string
}{
	{MoveReplaceExisting, "REPLACE_EXISTING"},
	{MoveCopyAllowed, "COPY_ALLOWED"},
	{MoveDelayUntilReboot, "DELAY_UNTIL_REBOOT"},
	{MoveWriteThrough, "WRITE_THROUGH"},
	{MoveCreateHardlink, "CREATE_HARDLINK"},
	{MoveFailIfNotTrackable, "FAIL_IF_NOT_TRACKABLE"},
}

// String renders the set bits as a |-joined MOVEFILE-style list.
func (f MoveFlags) String() string {
	if f == 0 {
		return "NONE"
	}
	out := ""
	for _, n := range moveFlagNames {
		if f&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	if rest := f &^ (MoveReplaceExisting | MoveCopyAllowed | MoveDelayUntilReboot |
		MoveWriteThrough | MoveCreateHardlink | MoveFailIfNotTrackable); rest != 0 {
		if out != "" {
			out += "|"
		}
		out += fmt.Sprintf("0x%X", uint32(rest))
	}
	return out
}

// MoveRequest describes one pending file operation. An empty Destination
// denotes delete-on-reboot; a non-empty Destination denotes a rename.
// Requests are handed to the OS and discarded; nothing is retained in
// process memory after submission.
type MoveRequest struct {
	Source          string
	Destination     string
	ReplaceExisting bool
}

// IsDelete reports whether the request denotes a delete-on-reboot.
func (r MoveRequest) IsDelete() bool { return r.Destination == "" }
