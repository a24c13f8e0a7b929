package pending_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rebootkit/pkg/pending"
	"github.com/joshuapare/rebootkit/pkg/types"
)

type moverCall struct {
	source      string
	destination string
	flags       types.MoveFlags
}

type fakeMover struct {
	calls []moverCall
	err   error
}

func (m *fakeMover) move(source, destination string, flags types.MoveFlags) error {
	m.calls = append(m.calls, moverCall{source, destination, flags})
	return m.err
}

func elevated() bool    { return true }
func notElevated() bool { return false }

func newClient(t *testing.T, mover *fakeMover, cfg pending.Config) *pending.Client {
	t.Helper()
	if cfg.IsElevated == nil {
		cfg.IsElevated = elevated
	}
	if cfg.Mover == nil {
		cfg.Mover = mover.move
	}
	if cfg.Exit == nil {
		cfg.Exit = func(code int) { t.Fatalf("unexpected process exit with code %d", code) }
	}
	return pending.New(cfg)
}

func TestMoveFileOnReboot(t *testing.T) {
	mover := &fakeMover{}
	c := newClient(t, mover, pending.Config{})

	err := c.MoveFileOnReboot(`C:\a.txt`, `C:\b.txt`, &pending.MoveOptions{ReplaceExisting: true})
	require.NoError(t, err)
	require.Len(t, mover.calls, 1)
	assert.Equal(t, `C:\a.txt`, mover.calls[0].source)
	assert.Equal(t, `C:\b.txt`, mover.calls[0].destination)
	assert.Equal(t, types.MoveDelayUntilReboot|types.MoveReplaceExisting, mover.calls[0].flags)
}

func TestRemoveFileOnRebootOmitsDestination(t *testing.T) {
	mover := &fakeMover{}
	c := newClient(t, mover, pending.Config{})

	require.NoError(t, c.RemoveFileOnReboot(`C:\a.txt`, nil))
	require.Len(t, mover.calls, 1)
	assert.Empty(t, mover.calls[0].destination)
	assert.Equal(t, types.MoveDelayUntilReboot, mover.calls[0].flags)
}

func TestRemoveIsIdempotentAcrossCalls(t *testing.T) {
	mover := &fakeMover{}
	c := newClient(t, mover, pending.Config{})

	require.NoError(t, c.RemoveFileOnReboot(`C:\a.txt`, nil))
	require.NoError(t, c.RemoveFileOnReboot(`C:\a.txt`, nil))
	assert.Len(t, mover.calls, 2, "each call issues an independent native call")
}

func TestPrivilegeCheckedBeforeNativeCall(t *testing.T) {
	mover := &fakeMover{}
	c := newClient(t, mover, pending.Config{IsElevated: notElevated})

	err := c.MoveFileOnReboot(`C:\a.txt`, `C:\b.txt`, nil)
	require.Error(t, err)

	var terr *types.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, types.ErrKindPrivilege, terr.Kind)
	assert.Equal(t, types.ExitInsufficientPrivilege, terr.Code)
	assert.Empty(t, mover.calls, "no native call may be attempted without elevation")
}

func TestNativeFailureCodesPerOperation(t *testing.T) {
	tests := []struct {
		name string
		call func(c *pending.Client) error
		code int
	}{
		{
			name: "move file",
			call: func(c *pending.Client) error { return c.MoveFileOnReboot(`C:\a.txt`, `C:\b.txt`, nil) },
			code: types.ExitMoveFileFailed,
		},
		{
			name: "move folder",
			call: func(c *pending.Client) error { return c.MoveFolderOnReboot(`C:\a`, `C:\b`, nil) },
			code: types.ExitMoveFolderFailed,
		},
		{
			name: "remove file",
			call: func(c *pending.Client) error { return c.RemoveFileOnReboot(`C:\a.txt`, nil) },
			code: types.ExitRemoveFileFailed,
		},
		{
			name: "remove folder",
			call: func(c *pending.Client) error { return c.RemoveFolderOnReboot(`C:\a`, nil) },
			code: types.ExitRemoveFolderFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mover := &fakeMover{err: errors.New("ERROR_ACCESS_DENIED")}
			c := newClient(t, mover, pending.Config{})

			err := tt.call(c)
			require.Error(t, err)

			var terr *types.Error
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, types.ErrKindNativeCall, terr.Kind)
			assert.Equal(t, tt.code, terr.Code)
		})
	}
}

func TestExitOnErrorEscalation(t *testing.T) {
	mover := &fakeMover{err: errors.New("boom")}
	var exitCode int
	c := pending.New(pending.Config{
		IsElevated:  elevated,
		Mover:       mover.move,
		Exit:        func(code int) { exitCode = code },
		ExitOnError: true,
	})

	err := c.RemoveFileOnReboot(`C:\a.txt`, &pending.RemoveOptions{ContinueOnError: false})
	require.Error(t, err)
	assert.Equal(t, types.ExitRemoveFileFailed, exitCode)
}

func TestFatalErrorWithoutExitOnError(t *testing.T) {
	mover := &fakeMover{err: errors.New("boom")}
	c := newClient(t, mover, pending.Config{})

	// ContinueOnError false without ExitOnError propagates the error and
	// must not touch the exit hook (newClient's hook fails the test).
	err := c.RemoveFileOnReboot(`C:\a.txt`, &pending.RemoveOptions{ContinueOnError: false})
	require.Error(t, err)
}

func TestContinueOnErrorStillLogs(t *testing.T) {
	var buf bytes.Buffer
	mover := &fakeMover{err: errors.New("boom")}
	c := newClient(t, mover, pending.Config{
		Log: slog.New(slog.NewTextHandler(&buf, nil)),
	})

	err := c.RemoveFileOnReboot(`C:\a.txt`, &pending.RemoveOptions{ContinueOnError: true})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=ERROR", "failure must leave a log entry")
}

func TestPreflightIsAdvisoryOnly(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name    string
		call    func(c *pending.Client) error
		warning string
	}{
		{
			name:    "missing source warns but schedules",
			call:    func(c *pending.Client) error { return c.RemoveFileOnReboot(filepath.Join(tmp, "absent.txt"), nil) },
			warning: "not found",
		},
		{
			name:    "folder passed to file op warns but schedules",
			call:    func(c *pending.Client) error { return c.RemoveFileOnReboot(tmp, nil) },
			warning: "folder",
		},
		{
			name:    "file passed to folder op warns but schedules",
			call:    func(c *pending.Client) error { return c.RemoveFolderOnReboot(file, nil) },
			warning: "file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mover := &fakeMover{}
			c := newClient(t, mover, pending.Config{
				Log: slog.New(slog.NewTextHandler(&buf, nil)),
			})

			require.NoError(t, tt.call(c), "pre-flight findings must never block the call")
			assert.Len(t, mover.calls, 1)
			assert.Contains(t, buf.String(), tt.warning)
		})
	}
}

func TestDisableLoggingSilencesCall(t *testing.T) {
	var buf bytes.Buffer
	mover := &fakeMover{err: errors.New("boom")}
	c := newClient(t, mover, pending.Config{
		Log: slog.New(slog.NewTextHandler(&buf, nil)),
	})

	err := c.RemoveFileOnReboot(`C:\a.txt`, &pending.RemoveOptions{
		ContinueOnError: true,
		DisableLogging:  true,
	})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
