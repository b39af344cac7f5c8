package agenda

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rafagnx/clinicos-sub001/internal/domain/appointment"
)

// Grid geometry constants. The visible window is a fixed ladder of
// half-hour rows from 07:00 to 20:00.
const (
	RowHeightPx   = 50
	GridStartHour = 7
	GridEndHour   = 20
	SlotMinutes   = 30

	// GutterPx is the horizontal inset between week columns, applied as a
	// pixel offset on top of the percent geometry: half on each side of the
	// cell, the whole gutter off its width. Vertically, cells sit 2px below
	// the row top and 4px shorter than their slot span.
	GutterPx          = 4
	cellTopInsetPx    = 2
	cellHeightInsetPx = 4

	DefaultDurationMinutes = 30
	MinDurationMinutes     = 15

	daysPerWeek = 7
)

type ViewMode string

const (
	ViewDay  ViewMode = "day"
	ViewWeek ViewMode = "week"
)

// Row is one rung of the vertical label ruler.
type Row struct {
	Label  string `json:"label"`
	Minute int    `json:"minute"`
}

// Day is one visible column's overlay state: blocked days disable new
// bookings, holidays render as a passive label.
type Day struct {
	Date        string `json:"date"`
	Weekday     int    `json:"weekday"`
	Blocked     bool   `json:"blocked"`
	BlockReason string `json:"block_reason,omitempty"`
	Holiday     string `json:"holiday,omitempty"`
}

// Cell is one renderable appointment rectangle. Horizontal placement mixes
// units: the column position is a percentage, the gutter a fixed pixel
// offset, so the final edges are LeftPct plus LeftOffsetPx and WidthPct plus
// WidthOffsetPx.
type Cell struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Date          string    `json:"date"`
	Column        int       `json:"column"`
	TopPx         float64   `json:"top_px"`
	HeightPx      float64   `json:"height_px"`
	LeftPct       float64   `json:"left_pct"`
	WidthPct      float64   `json:"width_pct"`
	LeftOffsetPx  float64   `json:"left_offset_px"`
	WidthOffsetPx float64   `json:"width_offset_px"`
	Blocked       bool      `json:"blocked"`
	BlockReason   string    `json:"block_reason,omitempty"`
	Holiday       string    `json:"holiday,omitempty"`
}

// Grid is the complete render geometry for one calendar view.
type Grid struct {
	View          ViewMode `json:"view"`
	ReferenceDate string   `json:"reference_date"`
	RowHeightPx   int      `json:"row_height_px"`
	GutterPx      int      `json:"gutter_px"`
	Rows          []Row    `json:"rows"`
	Days          []Day    `json:"days"`
	Cells         []Cell   `json:"cells"`
}

// Rows builds the half-hour label ladder.
func Rows() []Row {
	var rows []Row
	for m := GridStartHour * 60; m < GridEndHour*60; m += SlotMinutes {
		rows = append(rows, Row{
			Label:  fmt.Sprintf("%02d:%02d", m/60, m%60),
			Minute: m,
		})
	}
	return rows
}

// WeekStart returns the Sunday beginning the week containing t.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// Layout transforms appointments into render geometry. It performs no I/O
// and never errors: unplaceable appointments (unresolvable date, start
// before the 07:00 window, date outside the visible range) are suppressed
// rather than clamped or rejected.
func Layout(appts []*appointment.Appointment, view ViewMode, referenceDate time.Time, idx *Index) Grid {
	grid := Grid{
		View:          view,
		ReferenceDate: referenceDate.Format("2006-01-02"),
		RowHeightPx:   RowHeightPx,
		GutterPx:      GutterPx,
		Rows:          Rows(),
	}

	visible := make(map[string]int) // date -> column
	if view == ViewWeek {
		start := WeekStart(referenceDate)
		for i := 0; i < daysPerWeek; i++ {
			d := start.AddDate(0, 0, i)
			date := d.Format("2006-01-02")
			visible[date] = i
			grid.Days = append(grid.Days, dayOverlay(date, int(d.Weekday()), idx))
		}
	} else {
		date := grid.ReferenceDate
		visible[date] = 0
		grid.Days = append(grid.Days, dayOverlay(date, int(referenceDate.Weekday()), idx))
	}

	for _, a := range appts {
		date, ok := resolveDate(a)
		if !ok {
			continue
		}
		col, ok := visible[date]
		if !ok {
			continue
		}

		minutesSinceOpen := MinuteOfDay(a.StartTime) - GridStartHour*60
		if minutesSinceOpen < 0 {
			continue
		}

		cell := Cell{
			AppointmentID: a.ID,
			Date:          date,
			Column:        col,
			TopPx:         float64(minutesSinceOpen)/SlotMinutes*RowHeightPx + cellTopInsetPx,
			HeightPx:      float64(durationMinutes(a))/SlotMinutes*RowHeightPx - cellHeightInsetPx,
			LeftPct:       0,
			WidthPct:      100,
		}
		if view == ViewWeek {
			cell.WidthPct = 100.0 / daysPerWeek
			cell.LeftPct = float64(col) * cell.WidthPct
			cell.LeftOffsetPx = float64(GutterPx) / 2
			cell.WidthOffsetPx = -float64(GutterPx)
		}
		cell.Blocked = idx.IsBlocked(date)
		if reason, ok := idx.BlockReason(date); ok {
			cell.BlockReason = reason
		}
		if h, ok := idx.HolidayOf(date); ok {
			cell.Holiday = h.Name
		}
		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

func dayOverlay(date string, weekday int, idx *Index) Day {
	d := Day{Date: date, Weekday: weekday}
	d.Blocked = idx.IsBlocked(date)
	if reason, ok := idx.BlockReason(date); ok {
		d.BlockReason = reason
	}
	if h, ok := idx.HolidayOf(date); ok {
		d.Holiday = h.Name
	}
	return d
}
