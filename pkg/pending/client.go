package pending

import (
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/rebootkit/internal/native"
	"github.com/joshuapare/rebootkit/pkg/types"
)

// Client dispatches pending reboot operations. It holds no mutable state
// between calls; each operation is a single request handed to the OS.
type Client struct {
	log         *slog.Logger
	isElevated  func() bool
	exit        func(int)
	mover       func(source, destination string, flags types.MoveFlags) error
	keys        KeyAPI
	remover     KeyRemover
	exitOnError bool
}

// New builds a Client from cfg, filling unset collaborators with the
// production defaults.
func New(cfg Config) *Client {
	c := &Client{
		log:         cfg.Log,
		isElevated:  cfg.IsElevated,
		exit:        cfg.Exit,
		mover:       cfg.Mover,
		keys:        cfg.Keys,
		remover:     cfg.Remover,
		exitOnError: cfg.ExitOnError,
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.isElevated == nil {
		c.isElevated = native.IsElevated
	}
	if c.exit == nil {
		c.exit = os.Exit
	}
	if c.mover == nil {
		c.mover = native.MoveFileDelayed
	}
	if c.keys == nil {
		c.keys = nativeKeys{}
	}
	if c.remover == nil {
		c.remover = nativeKeys{}
	}
	return c
}

// opLog returns the logger for one operation, tagged with the operation
// name as the log source.
func (c *Client) opLog(disabled bool, source string) *slog.Logger {
	if disabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.log.With("source", source)
}

// fail logs err and applies the continue-on-error policy: with
// continueOnError the error is only returned; without it, ExitOnError
// terminates the process with the failure's code, otherwise the returned
// error is the fatal signal.
func (c *Client) fail(log *slog.Logger, continueOnError bool, err *types.Error) error {
	if err.Err != nil {
		log.Error(err.Msg, "code", err.Code, "error", err.Err)
	} else {
		log.Error(err.Msg, "code", err.Code)
	}
	if !continueOnError && c.exitOnError {
		c.exit(err.Code)
	}
	return err
}

// notElevated builds the privilege failure for an operation.
func notElevated(op string) *types.Error {
	return &types.Error{
		Kind: types.ErrKindPrivilege,
		Code: types.ExitInsufficientPrivilege,
		Msg:  op + " requires administrative privilege",
	}
}

// nativeKeys adapts the platform registry primitives to KeyAPI/KeyRemover.
type nativeKeys struct{}

func (nativeKeys) KeyExists(ref types.KeyRef) (bool, error) { return native.KeyExists(ref) }
func (nativeKeys) CreateVolatileKey(ref types.KeyRef) error { return native.CreateVolatileKey(ref) }
func (nativeKeys) DeleteKey(ref types.KeyRef) error         { return native.DeleteKey(ref) }
