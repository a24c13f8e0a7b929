package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindPrivilege   ErrKind = iota // operation requires administrative elevation
	ErrKindNativeCall                 // the OS primitive reported failure
	ErrKindNoHive                     // key string has no recognized hive prefix
	ErrKindNoSubkey                   // key string has a hive but no subkey
	ErrKindUnknownHive                // hive token detected but not mappable (drift guard)
	ErrKindKeyExists                  // target key already exists
	ErrKindKeyDelete                  // deletion of an existing key failed
	ErrKindKeyCreate                  // creation of the key failed
	ErrKindUnsupported                // platform does not support the primitive
)

// Error is a typed error with a stable kind, the exit code bound to the
// failure condition, and an optional underlying cause.
type Error struct {
	Kind ErrKind
	Code int
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind, so sentinel comparisons via
// errors.Is survive wrapping with operation-specific codes and messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e != nil && e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNoHive indicates the key string lacked a recognized hive prefix.
	ErrNoHive = &Error{Kind: ErrKindNoHive, Code: ExitNoHiveDetected, Msg: "unable to detect target registry hive"}
	// ErrNoSubkey indicates the key string had no subkey after the hive.
	ErrNoSubkey = &Error{Kind: ErrKindNoSubkey, Code: ExitNoSubkeyDetected, Msg: "unable to detect target registry subkey"}
	// ErrUnknownHive indicates a detected hive token failed to map to a handle.
	ErrUnknownHive = &Error{Kind: ErrKindUnknownHive, Code: ExitUnknownHive, Msg: "detected registry hive is not recognized"}
	// ErrKeyExists indicates the target key already exists.
	ErrKeyExists = &Error{Kind: ErrKindKeyExists, Code: ExitKeyAlreadyExists, Msg: "registry key already exists"}
	// ErrNotElevated indicates the process lacks administrative privilege.
	ErrNotElevated = &Error{Kind: ErrKindPrivilege, Code: ExitInsufficientPrivilege, Msg: "administrative privilege is required"}
	// ErrUnsupportedPlatform indicates the OS primitive is unavailable here.
	ErrUnsupportedPlatform = &Error{Kind: ErrKindUnsupported, Msg: "pending operations require Windows"}
)
