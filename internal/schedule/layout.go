package schedule

import "schoolplanner/internal/domain"

// GutterPct is the width percentage trimmed from each column when a cluster
// occupies more than one, so adjacent columns show a visible seam.
const GutterPct = 2.0

// Geometry is the render-ready rectangle for one session: vertical position
// and size in pixels, horizontal position and size as percentages of the day
// column.
// swagger:model Geometry
type Geometry struct {
	Top      float64 `json:"top"`
	Height   float64 `json:"height"`
	LeftPct  float64 `json:"left_pct"`
	WidthPct float64 `json:"width_pct"`
	Column   int     `json:"column"`
	Columns  int     `json:"columns"`
}

// Project computes the geometry of every session across all days: per day it
// clusters overlapping sessions, packs each cluster into columns, and sizes
// each session proportionally to its duration. Every input session receives
// exactly one geometry record. The result is a pure function of the session
// list; it is recomputed on every change rather than cached.
func Project(sessions []domain.ScheduledSession) map[string]Geometry {
	geometries := make(map[string]Geometry, len(sessions))

	for _, day := range domain.WeekDays {
		spans := SpansForDay(sessions, day)
		for _, cluster := range Clusters(spans) {
			packing := PackColumns(cluster)
			for _, span := range cluster {
				col := packing.Columns[span.Session.ID]
				width := 100.0 / float64(packing.MaxColumns)
				g := Geometry{
					Top:      float64(span.Start) * PixelsPerMinute,
					Height:   float64(span.Session.Duration) * PixelsPerMinute,
					LeftPct:  float64(col) * width,
					WidthPct: width,
					Column:   col,
					Columns:  packing.MaxColumns,
				}
				if packing.MaxColumns > 1 {
					g.WidthPct -= GutterPct
				}
				geometries[span.Session.ID] = g
			}
		}
	}
	return geometries
}
