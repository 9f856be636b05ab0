// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"slices"
	"sync"
)

// lockable is implemented by every container. Kernels use it to acquire
// all participants in a global order.
type lockable interface {
	lockID() uint64
	mutex() *sync.RWMutex
}

type lockReq struct {
	l     lockable
	write bool
}

// lockSet acquires out exclusively and every distinct input shared, ordered
// by container id so concurrent kernels over overlapping containers cannot
// deadlock. An input that is also the output is covered by the write lock.
// out may be nil for kernels that write a plain scalar. The returned func
// releases everything in reverse order.
func lockSet(out lockable, in ...lockable) func() {
	reqs := make([]lockReq, 0, len(in)+1)
	if out != nil {
		reqs = append(reqs, lockReq{l: out, write: true})
	}
	for _, p := range in {
		if p == nil {
			continue
		}
		seen := slices.ContainsFunc(reqs, func(r lockReq) bool { return r.l.lockID() == p.lockID() })
		if !seen {
			reqs = append(reqs, lockReq{l: p})
		}
	}
	slices.SortFunc(reqs, func(a, b lockReq) int { return cmp.Compare(a.l.lockID(), b.l.lockID()) })

	for _, r := range reqs {
		if r.write {
			r.l.mutex().Lock()
		} else {
			r.l.mutex().RLock()
		}
	}

	return func() {
		for i := len(reqs) - 1; i >= 0; i-- {
			if reqs[i].write {
				reqs[i].l.mutex().Unlock()
			} else {
				reqs[i].l.mutex().RUnlock()
			}
		}
	}
}
