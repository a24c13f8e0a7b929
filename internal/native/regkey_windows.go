//go:build windows

package native

import (
	"errors"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/rebootkit/pkg/types"
)

// regOptionVolatile asks RegCreateKeyEx for a key that lives only in memory
// and is discarded when the hive unloads. x/sys/windows only exports the
// non-volatile option, so the value is defined here.
const regOptionVolatile = 0x00000001

func rootKey(h types.Hive) (registry.Key, error) {
	switch h {
	case types.HiveLocalMachine:
		return registry.LOCAL_MACHINE, nil
	case types.HiveCurrentUser:
		return registry.CURRENT_USER, nil
	case types.HiveUsers:
		return registry.USERS, nil
	case types.HiveClassesRoot:
		return registry.CLASSES_ROOT, nil
	case types.HiveCurrentConfig:
		return registry.CURRENT_CONFIG, nil
	default:
		return 0, types.ErrUnknownHive
	}
}

// KeyExists reports whether the referenced key can be opened.
func KeyExists(ref types.KeyRef) (bool, error) {
	root, err := rootKey(ref.Hive)
	if err != nil {
		return false, err
	}
	k, err := registry.OpenKey(root, ref.SubKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	k.Close()
	return true, nil
}

// CreateVolatileKey creates the referenced key with the volatile option set.
// Intermediate keys are created by the OS as needed and inherit volatility.
func CreateVolatileKey(ref types.KeyRef) error {
	root, err := rootKey(ref.Hive)
	if err != nil {
		return err
	}
	sub, err := windows.UTF16PtrFromString(ref.SubKey)
	if err != nil {
		return err
	}
	var (
		handle      windows.Handle
		disposition uint32
	)
	err = windows.RegCreateKeyEx(windows.Handle(root), sub, 0, nil,
		regOptionVolatile, windows.KEY_ALL_ACCESS, nil, &handle, &disposition)
	if err != nil {
		return err
	}
	return windows.RegCloseKey(handle)
}

// DeleteKey removes the referenced key and everything below it.
func DeleteKey(ref types.KeyRef) error {
	root, err := rootKey(ref.Hive)
	if err != nil {
		return err
	}
	return deleteKeyTree(root, ref.SubKey)
}

func deleteKeyTree(root registry.Key, path string) error {
	k, err := registry.OpenKey(root, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return err
	}
	names, err := k.ReadSubKeyNames(-1)
	k.Close()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := deleteKeyTree(root, path+`\`+name); err != nil {
			return err
		}
	}
	return registry.DeleteKey(root, path)
}
