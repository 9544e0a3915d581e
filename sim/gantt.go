package sim

// GanttSegment is a maximal contiguous interval attributed to one owner:
// a process ID or IdleOwner. Start < End always holds.
type GanttSegment struct {
	Owner string `json:"owner"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// Duration returns End - Start.
func (g GanttSegment) Duration() int64 {
	return g.End - g.Start
}

// IsIdle reports whether the segment is an idle interval.
func (g GanttSegment) IsIdle() bool {
	return g.Owner == IdleOwner
}

// ganttBuilder accumulates execution intervals into merged segments.
// Consecutive intervals with the same owner that touch are combined;
// an owner change closes the previous segment.
type ganttBuilder struct {
	segments []GanttSegment
}

// Add records that owner held the CPU during [start, end).
// Zero-length intervals are ignored.
func (gb *ganttBuilder) Add(owner string, start, end int64) {
	if end <= start {
		return
	}
	if n := len(gb.segments); n > 0 {
		last := &gb.segments[n-1]
		if last.Owner == owner && last.End == start {
			last.End = end
			return
		}
	}
	gb.segments = append(gb.segments, GanttSegment{Owner: owner, Start: start, End: end})
}

// Segments returns the accumulated segments.
func (gb *ganttBuilder) Segments() []GanttSegment {
	if gb.segments == nil {
		return []GanttSegment{}
	}
	return gb.segments
}
