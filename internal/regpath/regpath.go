// Package regpath resolves hive-qualified registry key strings into a
// (hive, subkey) pair. It accepts the five canonical HKEY_* roots, their
// short aliases, and provider-qualified forms such as
// "Registry::HKEY_LOCAL_MACHINE\..." or "HKLM:\...".
package regpath

import (
	"strings"

	"github.com/joshuapare/rebootkit/pkg/types"
)

// hiveTokens is the detection set for step one of parsing. The mapping
// switch in mapHive is maintained separately so a token added here without
// a mapping surfaces as ErrUnknownHive instead of silently misparsing.
var hiveTokens = []string{
	"HKEY_LOCAL_MACHINE", "HKLM",
	"HKEY_CURRENT_USER", "HKCU",
	"HKEY_USERS", "HKU",
	"HKEY_CLASSES_ROOT", "HKCR",
	"HKEY_CURRENT_CONFIG", "HKCC",
}

// Resolve parses key into a KeyRef. If sid is non-empty, a CurrentUser-rooted
// key is first rewritten onto HKEY_USERS\<sid>; that substitution happens
// exactly once, before any validation.
//
// The returned SubKey is the remainder after the hive token, verbatim.
func Resolve(key, sid string) (types.KeyRef, error) {
	k := normalize(key)
	if sid != "" {
		k = ConvertUserPath(k, sid)
	}

	token, rest := splitHive(k)
	if !isHiveToken(token) {
		return types.KeyRef{}, types.ErrNoHive
	}

	rest = strings.TrimRight(rest, `\`)
	if strings.TrimSpace(rest) == "" {
		return types.KeyRef{}, types.ErrNoSubkey
	}

	hive := mapHive(token)
	if hive == types.HiveInvalid {
		return types.KeyRef{}, types.ErrUnknownHive
	}
	return types.KeyRef{Hive: hive, SubKey: rest}, nil
}

// ConvertUserPath rewrites a HKEY_CURRENT_USER key onto the HKEY_USERS hive
// under the given SID, so a per-user key can be addressed from a system
// context. Keys rooted elsewhere are returned unchanged.
func ConvertUserPath(key, sid string) string {
	k := normalize(key)
	if sid == "" {
		return k
	}
	token, rest := splitHive(k)
	switch strings.ToUpper(token) {
	case "HKEY_CURRENT_USER", "HKCU":
	default:
		return k
	}
	if rest == "" {
		return `HKEY_USERS\` + sid
	}
	return `HKEY_USERS\` + sid + `\` + rest
}

// normalize strips a provider-namespace qualifier (anything through the
// final "::") and folds forward slashes into backslashes.
func normalize(key string) string {
	k := strings.TrimSpace(key)
	if idx := strings.LastIndex(k, "::"); idx >= 0 {
		k = k[idx+2:]
	}
	return strings.ReplaceAll(k, "/", `\`)
}

// splitHive cuts the leading path segment off and drops a PSDrive-style
// trailing colon from it ("HKLM:" reads the same as "HKLM").
func splitHive(k string) (token, rest string) {
	token, rest, _ = strings.Cut(k, `\`)
	return strings.TrimSuffix(token, ":"), rest
}

func isHiveToken(token string) bool {
	for _, t := range hiveTokens {
		if strings.EqualFold(token, t) {
			return true
		}
	}
	return false
}

func mapHive(token string) types.Hive {
	switch strings.ToUpper(token) {
	case "HKEY_LOCAL_MACHINE", "HKLM":
		return types.HiveLocalMachine
	case "HKEY_CURRENT_USER", "HKCU":
		return types.HiveCurrentUser
	case "HKEY_USERS", "HKU":
		return types.HiveUsers
	case "HKEY_CLASSES_ROOT", "HKCR":
		return types.HiveClassesRoot
	case "HKEY_CURRENT_CONFIG", "HKCC":
		return types.HiveCurrentConfig
	default:
		return types.HiveInvalid
	}
}
