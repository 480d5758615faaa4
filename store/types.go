// Package store is a thin, non-locking façade over hashobj.HashObject,
// the same tiny Put/Get shape as the teacher's cache.Instance but
// without its sync.RWMutex: per spec (§5 "Non-goals: thread-safe
// concurrent mutation... no internal locking"), carrying the mutex
// forward would contradict an explicit invariant of the engine it now
// wraps, not merely drop an omitted feature.
package store

import (
	"go.uber.org/zap"

	"github.com/jifukui/redis/hashobj"
	"github.com/jifukui/redis/hcconfig"
)

// noCopy is a zero-size marker that makes copy-detection vet checks
// flag an accidental value copy of a Store, the discipline the
// teacher's cache.Instance borrowed from an external nocopy package —
// kept here as a bare marker instead of that import, since a one-line
// guard doesn't earn a whole dependency (see DESIGN.md).
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Store wraps a single hashobj.HashObject as a field→value store.
type Store struct {
	obj *hashobj.HashObject
	log *zap.SugaredLogger

	nocopy noCopy
}

// New returns a ready-to-use Store. A nil cfg/log falls back to
// hcconfig defaults and zap.NewNop respectively.
func New(cfg *hcconfig.Config, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{obj: hashobj.New(cfg), log: log.Sugar()}
}
