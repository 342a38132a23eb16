package smgr

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/downfa11-org/aostore/pkg/config"
	"github.com/downfa11-org/aostore/pkg/metrics"
	"github.com/downfa11-org/aostore/pkg/segment"
	"github.com/downfa11-org/aostore/util"
	"github.com/google/uuid"
)

// Manager wires the unlink scanner to a concrete store, the configured grid
// limits, logging and metrics. One Manager serves all relations under a data
// directory.
type Manager struct {
	cfg   *config.Config
	store SegmentStore
	lim   segment.Limits
}

func NewManager(cfg *config.Config, store SegmentStore) *Manager {
	return &Manager{
		cfg:   cfg,
		store: store,
		lim:   cfg.Limits(),
	}
}

// UnlinkRelation removes the column storage of the relation at relpath.
//
// Partial failure lives in the result, not in err: the caller (the
// relation-drop path) decides whether files left behind abort the drop or
// just get retried later. err covers only the post-scan durability step.
func (m *Manager) UnlinkRelation(relpath string) (UnlinkResult, error) {
	opID := uuid.NewString()
	start := time.Now()

	res := UnlinkColumnStorage(m.store, relpath, m.lim)
	elapsed := time.Since(start)

	for _, f := range res.Failures {
		util.Warn("unlink %s: segment %d not removed: %v", relpath, f.FileNumber, f.Err)
	}
	metrics.PushUnlinkMetric(res.Removed, len(res.Failures), res.Probes, elapsed.Seconds())

	if res.Removed > 0 && m.cfg.SyncOnUnlink {
		if err := syncDir(filepath.Dir(relpath)); err != nil {
			return res, fmt.Errorf("sync directory after unlink of %s: %w", relpath, err)
		}
	}

	if !res.OK() {
		util.Warn("unlink %s op=%s: removed %d, left %d for retry", relpath, opID, res.Removed, len(res.Failures))
	} else {
		util.Debug("unlink %s op=%s: removed %d with %d probes in %s", relpath, opID, res.Removed, res.Probes, elapsed)
	}

	return res, nil
}
