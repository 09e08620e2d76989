package schedule

import "schoolplanner/internal/domain"

// Span is a session projected onto the minute axis of one day. End is
// exclusive: two sessions touching at a boundary do not overlap.
type Span struct {
	Session domain.ScheduledSession
	Start   int
	End     int
}

// NewSpan computes the minute interval of a session from its time slot and
// duration.
func NewSpan(s domain.ScheduledSession) Span {
	start := TimeToMinutes(s.TimeSlot)
	return Span{Session: s, Start: start, End: start + s.Duration}
}

// Overlaps reports whether two spans intersect as half-open intervals.
func (a Span) Overlaps(b Span) bool {
	return a.Start < b.End && a.End > b.Start
}

// SpansForDay projects the sessions falling on the given day, preserving
// input order.
func SpansForDay(sessions []domain.ScheduledSession, day domain.Weekday) []Span {
	var spans []Span
	for _, s := range sessions {
		if s.Day == day {
			spans = append(spans, NewSpan(s))
		}
	}
	return spans
}

// Clusters partitions one day's spans into maximal groups connected by
// chains of pairwise overlap (connected components of the intersection
// graph, found by breadth-first traversal). Every span lands in exactly one
// cluster. The pairwise check is quadratic, which is fine at the session
// counts a single school produces.
func Clusters(spans []Span) [][]Span {
	visited := make([]bool, len(spans))
	var clusters [][]Span

	for i := range spans {
		if visited[i] {
			continue
		}
		visited[i] = true
		cluster := []Span{spans[i]}
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for j := range spans {
				if visited[j] || !spans[cur].Overlaps(spans[j]) {
					continue
				}
				visited[j] = true
				cluster = append(cluster, spans[j])
				queue = append(queue, j)
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}
