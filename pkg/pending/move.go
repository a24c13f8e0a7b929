package pending

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joshuapare/rebootkit/internal/pendop"
	"github.com/joshuapare/rebootkit/pkg/types"
)

type entryType int

const (
	entryFile entryType = iota
	entryFolder
)

// MoveFileOnReboot schedules source to be moved to destination during the
// next boot sequence. A nil opts behaves like DefaultMoveOptions.
func (c *Client) MoveFileOnReboot(source, destination string, opts *MoveOptions) error {
	if opts == nil {
		opts = DefaultMoveOptions()
	}
	log := c.opLog(opts.DisableLogging, "MoveFileOnReboot")
	req := types.MoveRequest{Source: source, Destination: destination, ReplaceExisting: opts.ReplaceExisting}
	return c.schedule(log, opts.ContinueOnError, types.ExitMoveFileFailed, entryFile, req)
}

// MoveFolderOnReboot schedules a folder move for the next boot sequence.
func (c *Client) MoveFolderOnReboot(source, destination string, opts *MoveOptions) error {
	if opts == nil {
		opts = DefaultMoveOptions()
	}
	log := c.opLog(opts.DisableLogging, "MoveFolderOnReboot")
	req := types.MoveRequest{Source: source, Destination: destination, ReplaceExisting: opts.ReplaceExisting}
	return c.schedule(log, opts.ContinueOnError, types.ExitMoveFolderFailed, entryFolder, req)
}

// RemoveFileOnReboot schedules source for deletion during the next boot
// sequence. Useful for files locked by running processes.
func (c *Client) RemoveFileOnReboot(source string, opts *RemoveOptions) error {
	if opts == nil {
		opts = DefaultRemoveOptions()
	}
	log := c.opLog(opts.DisableLogging, "RemoveFileOnReboot")
	req := types.MoveRequest{Source: source}
	return c.schedule(log, opts.ContinueOnError, types.ExitRemoveFileFailed, entryFile, req)
}

// RemoveFolderOnReboot schedules a folder for deletion during the next boot
// sequence. The OS removes a folder this way only once it is empty at boot.
func (c *Client) RemoveFolderOnReboot(source string, opts *RemoveOptions) error {
	if opts == nil {
		opts = DefaultRemoveOptions()
	}
	log := c.opLog(opts.DisableLogging, "RemoveFolderOnReboot")
	req := types.MoveRequest{Source: source}
	return c.schedule(log, opts.ContinueOnError, types.ExitRemoveFolderFailed, entryFolder, req)
}

// schedule runs the shared dispatch template: privilege gate, advisory
// pre-flight, then a single submit.
func (c *Client) schedule(log *slog.Logger, continueOnError bool, code int, want entryType, req types.MoveRequest) error {
	if !c.isElevated() {
		return c.fail(log, continueOnError, notElevated("scheduling a pending operation"))
	}

	c.preflight(log, req.Source, want)

	if err := pendop.Submit(c.mover, log, req); err != nil {
		var terr *types.Error
		if !errors.As(err, &terr) {
			terr = &types.Error{Kind: types.ErrKindNativeCall, Msg: err.Error(), Err: err}
		}
		terr.Code = code
		return c.fail(log, continueOnError, terr)
	}

	if req.IsDelete() {
		log.Info("deletion scheduled for next reboot", "source", req.Source)
	} else {
		log.Info("move scheduled for next reboot", "source", req.Source, "destination", req.Destination)
	}
	return nil
}

// preflight warns about missing or mistyped sources. The checks never block
// the call: the target may legitimately appear later in the session, and
// the OS validates again at boot.
func (c *Client) preflight(log *slog.Logger, path string, want entryType) {
	info, err := os.Stat(path)
	if err != nil {
		log.Warn("source path not found, scheduling anyway", "path", path)
		return
	}
	switch {
	case want == entryFile && info.IsDir():
		log.Warn("source is a folder but a file was expected", "path", path)
	case want == entryFolder && !info.IsDir():
		log.Warn("source is a file but a folder was expected", "path", path)
	}
}
