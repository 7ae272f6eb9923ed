// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glmirror

// Stats counts what a Context did with the calls it intercepted.
type Stats struct {
	// Hits is the number of GetParameter calls answered from the mirror.
	Hits int
	// Forwarded is the number of GetParameter calls passed to the
	// wrapped context.
	Forwarded int
	// Writes is the number of calls that updated the mirror.
	Writes int
}

// HitRate returns Hits as a fraction of all GetParameter calls, or 0 when
// there were none.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Forwarded
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
