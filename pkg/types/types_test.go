package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestHiveString(t *testing.T) {
	tests := []struct {
		hive     Hive
		expected string
	}{
		{HiveLocalMachine, "HKEY_LOCAL_MACHINE"},
		{HiveCurrentUser, "HKEY_CURRENT_USER"},
		{HiveUsers, "HKEY_USERS"},
		{HiveClassesRoot, "HKEY_CLASSES_ROOT"},
		{HiveCurrentConfig, "HKEY_CURRENT_CONFIG"},
		{Hive(99), "UNKNOWN_HIVE_99"},
	}
	for _, tt := range tests {
		if got := tt.hive.String(); got != tt.expected {
			t.Errorf("Hive(%d).String() = %q, want %q", int(tt.hive), got, tt.expected)
		}
	}
}

func TestKeyRefString(t *testing.T) {
	ref := KeyRef{Hive: HiveLocalMachine, SubKey: `SOFTWARE\Foo`}
	if got := ref.String(); got != `HKEY_LOCAL_MACHINE\SOFTWARE\Foo` {
		t.Errorf("KeyRef.String() = %q", got)
	}
}

func TestMoveFlagsString(t *testing.T) {
	tests := []struct {
		flags    MoveFlags
		expected string
	}{
		{0, "NONE"},
		{MoveDelayUntilReboot, "DELAY_UNTIL_REBOOT"},
		{MoveDelayUntilReboot | MoveReplaceExisting, "REPLACE_EXISTING|DELAY_UNTIL_REBOOT"},
		{MoveFlags(0x40), "0x40"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.expected {
			t.Errorf("MoveFlags(%#x).String() = %q, want %q", uint32(tt.flags), got, tt.expected)
		}
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	wrapped := &Error{
		Kind: ErrKindNativeCall,
		Code: ExitMoveFileFailed,
		Msg:  "failed to schedule move",
		Err:  fmt.Errorf("access denied"),
	}
	if !errors.Is(wrapped, &Error{Kind: ErrKindNativeCall}) {
		t.Error("expected errors.Is to match on Kind")
	}
	if errors.Is(wrapped, ErrNoHive) {
		t.Error("did not expect match against a different kind")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := &Error{Kind: ErrKindKeyCreate, Msg: "create failed", Err: errors.New("boom")}
	if err.Error() != "create failed: boom" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err.Unwrap() == nil {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestMoveRequestIsDelete(t *testing.T) {
	if !(MoveRequest{Source: `C:\a.txt`}).IsDelete() {
		t.Error("request without destination should be a delete")
	}
	if (MoveRequest{Source: `C:\a.txt`, Destination: `C:\b.txt`}).IsDelete() {
		t.Error("request with destination should not be a delete")
	}
}
