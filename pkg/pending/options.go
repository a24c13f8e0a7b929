package pending

import (
	"log/slog"

	"github.com/joshuapare/rebootkit/pkg/types"
)

// KeyAPI is the registry surface consumed by CreateVolatileKey.
type KeyAPI interface {
	// KeyExists reports whether the referenced key can be opened.
	KeyExists(ref types.KeyRef) (bool, error)
	// CreateVolatileKey creates the referenced key with the volatile
	// option set.
	CreateVolatileKey(ref types.KeyRef) error
}

// KeyRemover deletes a registry key tree. Deletion of a pre-existing key is
// delegated here so hosts can substitute their own removal policy.
type KeyRemover interface {
	DeleteKey(ref types.KeyRef) error
}

// Config wires a Client's collaborators. Zero-value fields get production
// defaults; tests and embedding hosts override what they need.
type Config struct {
	// Log receives all operation logging. Defaults to a discard logger.
	Log *slog.Logger

	// IsElevated reports administrative privilege. Defaults to the
	// process-token check.
	IsElevated func() bool

	// Exit terminates the host process with an exit code. Defaults to
	// os.Exit. Only called when ExitOnError is set and an operation runs
	// with ContinueOnError disabled.
	Exit func(code int)

	// Mover is the native pending-operation primitive. Defaults to
	// MoveFileEx with the delay-until-reboot flag.
	Mover func(source, destination string, flags types.MoveFlags) error

	// Keys is the registry surface for volatile key creation.
	Keys KeyAPI

	// Remover deletes pre-existing keys when DeleteIfExist is requested.
	Remover KeyRemover

	// ExitOnError selects process exit over error propagation for fatal
	// failures (the toolkit's exit-script-on-error switch).
	ExitOnError bool
}

// MoveOptions controls the move-on-reboot operations.
type MoveOptions struct {
	// ReplaceExisting allows the scheduled move to overwrite the
	// destination.
	ReplaceExisting bool

	// ContinueOnError logs failures and returns instead of escalating.
	ContinueOnError bool

	// DisableLogging silences all log output for this call.
	DisableLogging bool
}

// DefaultMoveOptions returns the options used when nil is passed.
func DefaultMoveOptions() *MoveOptions {
	return &MoveOptions{ContinueOnError: true}
}

// RemoveOptions controls the remove-on-reboot operations.
type RemoveOptions struct {
	// ContinueOnError logs failures and returns instead of escalating.
	ContinueOnError bool

	// DisableLogging silences all log output for this call.
	DisableLogging bool
}

// DefaultRemoveOptions returns the options used when nil is passed.
func DefaultRemoveOptions() *RemoveOptions {
	return &RemoveOptions{ContinueOnError: true}
}

// KeyOptions controls CreateVolatileKey.
type KeyOptions struct {
	// SID rewrites a CurrentUser-rooted key onto HKEY_USERS\<SID> before
	// parsing, so per-user keys can be created from a system context.
	SID string

	// DeleteIfExist deletes and recreates a pre-existing key instead of
	// failing.
	DeleteIfExist bool

	// ContinueOnError logs failures and returns instead of escalating.
	ContinueOnError bool

	// DisableLogging silences all log output for this call.
	DisableLogging bool
}

// DefaultKeyOptions returns the options used when nil is passed.
func DefaultKeyOptions() *KeyOptions {
	return &KeyOptions{ContinueOnError: true}
}
