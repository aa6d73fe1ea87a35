package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
)

// execAffectingOne runs q and maps "no rows touched" to ErrNotFound.
func execAffectingOne(ctx context.Context, exec bob.Executor, q bob.Query) error {
	result, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
