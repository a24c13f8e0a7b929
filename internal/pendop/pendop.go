// Package pendop builds and submits pending file operation requests. A
// submitted request is handed to the OS pending-operations list and executed
// during the next boot sequence; success here means enqueued, not completed.
package pendop

import (
	"log/slog"
	"path/filepath"

	"github.com/joshuapare/rebootkit/pkg/types"
)

// Mover is the native primitive that enqueues a single pending operation.
// An empty destination requests delete-on-reboot.
type Mover func(source, destination string, flags types.MoveFlags) error

// Submit composes the flag set for req and invokes m exactly once. It never
// retries; any primitive failure comes back as a typed native-call error.
//
// Privilege is the caller's concern. Submit is a pure pass-through and
// assumes elevation was already confirmed.
func Submit(m Mover, log *slog.Logger, req types.MoveRequest) error {
	flags := types.MoveDelayUntilReboot
	if req.ReplaceExisting {
		flags |= types.MoveReplaceExisting
	}

	// Heuristic sanity check only: a file source paired with an
	// extension-less destination (or vice versa) is usually a mistake,
	// but the OS accepts it, so we do too.
	if !req.IsDelete() && extMismatch(req.Source, req.Destination) {
		log.Warn("source and destination disagree on file extension presence",
			"source", req.Source, "destination", req.Destination)
	}

	if err := m(req.Source, req.Destination, flags); err != nil {
		return &types.Error{
			Kind: types.ErrKindNativeCall,
			Msg:  "failed to enqueue pending operation for " + req.Source,
			Err:  err,
		}
	}
	return nil
}

func extMismatch(source, destination string) bool {
	return (filepath.Ext(source) == "") != (filepath.Ext(destination) == "")
}
