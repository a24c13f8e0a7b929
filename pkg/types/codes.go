package types

// Exit codes bound one-to-one to failure conditions. Callers branch on
// these, so the mapping is frozen; add new codes at the end only.
const (
	ExitMoveFileFailed        = 11001
	ExitMoveFolderFailed      = 11002
	ExitRemoveFileFailed      = 11003
	ExitRemoveFolderFailed    = 11004
	ExitInsufficientPrivilege = 11005
	ExitNoHiveDetected        = 11006
	ExitNoSubkeyDetected      = 11007
	ExitUnknownHive           = 11008
	ExitKeyAlreadyExists      = 11009
	ExitKeyDeletionFailed     = 11010
	ExitKeyCreationFailed     = 11011
)
