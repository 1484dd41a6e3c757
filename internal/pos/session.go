package pos

import (
	"context"

	"rei_do_lanche_backend/pkg/utils"
)

// LoadSession brings the store to a usable state for the session. It runs
// the migration bootstrap first, then loads remote-first with a local cache
// fallback. The returned degraded flag is true when the session is running
// off the local cache only.
func (s *Store) LoadSession(ctx context.Context) (degraded bool, err error) {
	if err := s.EnsureMigrated(ctx); err != nil {
		// Migration failure already loaded the local snapshot into memory.
		utils.LogWarn(err, "migration incomplete, running on local cache")
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remote != nil {
		snapshot, fetchErr := s.remote.FetchAll(ctx, s.accountID)
		if fetchErr == nil {
			s.loadSnapshot(snapshot)
			return false, nil
		}
		utils.LogWarn(fetchErr, "remote load failed, falling back to local cache")
	}

	snapshot, cacheErr := cachedSnapshot(s.cache, s.accountID)
	if cacheErr != nil {
		return true, cacheErr
	}
	s.loadSnapshot(snapshot)
	return true, nil
}
