package pending

import (
	"errors"

	"github.com/joshuapare/rebootkit/internal/regpath"
	"github.com/joshuapare/rebootkit/pkg/types"
)

// CreateVolatileKey creates the registry key named by key with the volatile
// option set, so it disappears when the hosting hive unloads at
// logoff/shutdown. A nil opts behaves like DefaultKeyOptions.
//
// If the key already exists the call fails, unless opts.DeleteIfExist is
// set, in which case the existing key is deleted (via the configured
// KeyRemover) and recreated.
func (c *Client) CreateVolatileKey(key string, opts *KeyOptions) error {
	if opts == nil {
		opts = DefaultKeyOptions()
	}
	log := c.opLog(opts.DisableLogging, "CreateVolatileKey")

	if !c.isElevated() {
		return c.fail(log, opts.ContinueOnError, notElevated("creating a volatile registry key"))
	}

	ref, err := regpath.Resolve(key, opts.SID)
	if err != nil {
		return c.fail(log, opts.ContinueOnError, asTyped(err))
	}

	exists, err := c.keys.KeyExists(ref)
	if err != nil {
		return c.fail(log, opts.ContinueOnError, &types.Error{
			Kind: types.ErrKindKeyCreate,
			Code: types.ExitKeyCreationFailed,
			Msg:  "unable to query registry key " + ref.String(),
			Err:  err,
		})
	}
	if exists {
		if !opts.DeleteIfExist {
			return c.fail(log, opts.ContinueOnError, &types.Error{
				Kind: types.ErrKindKeyExists,
				Code: types.ExitKeyAlreadyExists,
				Msg:  "registry key already exists: " + ref.String(),
			})
		}
		if err := c.remover.DeleteKey(ref); err != nil {
			return c.fail(log, opts.ContinueOnError, &types.Error{
				Kind: types.ErrKindKeyDelete,
				Code: types.ExitKeyDeletionFailed,
				Msg:  "failed to delete existing registry key " + ref.String(),
				Err:  err,
			})
		}
		log.Info("deleted existing registry key", "key", ref.String())
	}

	if err := c.keys.CreateVolatileKey(ref); err != nil {
		return c.fail(log, opts.ContinueOnError, &types.Error{
			Kind: types.ErrKindKeyCreate,
			Code: types.ExitKeyCreationFailed,
			Msg:  "failed to create volatile registry key " + ref.String(),
			Err:  err,
		})
	}

	log.Info("volatile registry key created", "key", ref.String())
	return nil
}

// asTyped normalizes an error from a collaborator into a *types.Error.
func asTyped(err error) *types.Error {
	var terr *types.Error
	if errors.As(err, &terr) {
		return terr
	}
	return &types.Error{Kind: types.ErrKindNativeCall, Msg: err.Error(), Err: err}
}
