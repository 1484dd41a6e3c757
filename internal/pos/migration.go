package pos

import (
	"context"
	"errors"
	"fmt"

	"rei_do_lanche_backend/pkg/utils"
)

// ErrMigrationDegraded signals that the bulk import failed and the terminal
// is running on its local snapshot. The migrated flag stays unset so the
// import is retried on a future session.
var ErrMigrationDegraded = errors.New("snapshot migration failed, running locally")

// EnsureMigrated performs the one-time bulk import of the locally cached
// snapshot into the durable store. A set migrated flag makes this a no-op.
// On failure the gathered snapshot is loaded straight into memory so the
// session remains usable, and ErrMigrationDegraded is returned.
func (s *Store) EnsureMigrated(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, migrated, err := s.cache.Get(migratedKey(s.accountID))
	if err != nil {
		return fmt.Errorf("checking migrated flag: %w", err)
	}
	if migrated {
		return nil
	}

	snapshot, err := cachedSnapshot(s.cache, s.accountID)
	if err != nil {
		return fmt.Errorf("gathering local snapshot: %w", err)
	}

	if s.remote == nil {
		s.loadSnapshot(snapshot)
		return fmt.Errorf("%w: no remote configured", ErrMigrationDegraded)
	}

	if err := s.remote.Migrate(ctx, s.accountID, snapshot); err != nil {
		s.loadSnapshot(snapshot)
		return fmt.Errorf("%w: %v", ErrMigrationDegraded, err)
	}

	if err := s.cache.Set(migratedKey(s.accountID), "true"); err != nil {
		// The import itself succeeded; a retried migration is harmless
		// because the bulk endpoint upserts.
		utils.LogWarn(err, "setting migrated flag")
	}
	utils.LogInfo("Local snapshot migrated to durable store", map[string]interface{}{
		"account_id": s.accountID,
	})
	return nil
}
