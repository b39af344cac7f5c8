package agenda

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rafagnx/clinicos-sub001/internal/domain/appointment"
	"github.com/rafagnx/clinicos-sub001/internal/domain/blocking"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func emptyIndex() *Index {
	return NewIndex(nil, nil)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func TestRowsLadder(t *testing.T) {
	rows := Rows()
	if len(rows) != 26 {
		t.Fatalf("expected 26 rows, got %d", len(rows))
	}
	if rows[0].Label != "07:00" || rows[0].Minute != 420 {
		t.Errorf("first row = %q/%d, want 07:00/420", rows[0].Label, rows[0].Minute)
	}
	if rows[len(rows)-1].Label != "19:30" {
		t.Errorf("last row = %q, want 19:30", rows[len(rows)-1].Label)
	}
}

func TestLayoutDayGeometry(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		Date:      strPtr("2025-03-10"),
		StartTime: "09:00",
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(grid.Cells))
	}
	cell := grid.Cells[0]
	if cell.TopPx != 202 {
		t.Errorf("top = %v, want 202", cell.TopPx)
	}
	if cell.HeightPx != 46 {
		t.Errorf("height = %v, want 46", cell.HeightPx)
	}
	if cell.LeftPct != 0 || cell.WidthPct != 100 {
		t.Errorf("day view left/width = %v/%v, want 0/100", cell.LeftPct, cell.WidthPct)
	}
}

func TestLayoutHeightFromEndTime(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		Date:      strPtr("2025-03-10"),
		StartTime: "09:00",
		EndTime:   strPtr("10:00"),
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(grid.Cells))
	}
	if grid.Cells[0].HeightPx != 96 {
		t.Errorf("height = %v, want 96", grid.Cells[0].HeightPx)
	}
}

func TestLayoutHeightFromDeclaredDuration(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:              uuid.New(),
		Date:            strPtr("2025-03-10"),
		StartTime:       "14:00",
		DurationMinutes: intPtr(90),
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(grid.Cells))
	}
	// 90/30*50-4
	if grid.Cells[0].HeightPx != 146 {
		t.Errorf("height = %v, want 146", grid.Cells[0].HeightPx)
	}
	// (14*60-420)/30*50+2
	if grid.Cells[0].TopPx != 702 {
		t.Errorf("top = %v, want 702", grid.Cells[0].TopPx)
	}
}

func TestLayoutSuppressesEarlyStart(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		Date:      strPtr("2025-03-10"),
		StartTime: "06:30",
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 0 {
		t.Errorf("expected early appointment suppressed, got %d cells", len(grid.Cells))
	}
}

func TestLayoutSuppressesOutOfRangeDate(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		Date:      strPtr("2025-03-20"),
		StartTime: "09:00",
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 0 {
		t.Errorf("expected out-of-range appointment suppressed, got %d cells", len(grid.Cells))
	}
}

func TestLayoutSuppressesUnresolvableDate(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		StartTime: "09:00", // no date field, no ISO datetime
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 0 {
		t.Errorf("expected unresolvable appointment suppressed, got %d cells", len(grid.Cells))
	}
}

func TestLayoutWeekColumns(t *testing.T) {
	// 2025-03-10 is a Monday; its week starts Sunday 2025-03-09.
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		Date:      strPtr("2025-03-11"), // Tuesday, column 2
		StartTime: "09:00",
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewWeek, ref, emptyIndex())

	if len(grid.Days) != 7 {
		t.Fatalf("expected 7 day columns, got %d", len(grid.Days))
	}
	if grid.Days[0].Date != "2025-03-09" {
		t.Errorf("first column = %s, want Sunday 2025-03-09", grid.Days[0].Date)
	}
	if len(grid.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(grid.Cells))
	}

	cell := grid.Cells[0]
	if cell.Column != 2 {
		t.Errorf("column = %d, want 2", cell.Column)
	}
	wantWidth := 100.0 / 7
	if math.Abs(cell.WidthPct-wantWidth) > 1e-9 {
		t.Errorf("width = %v, want %v", cell.WidthPct, wantWidth)
	}
	if math.Abs(cell.LeftPct-2*wantWidth) > 1e-9 {
		t.Errorf("left = %v, want %v", cell.LeftPct, 2*wantWidth)
	}
	// The 4px gutter is baked into the emitted geometry: half off each
	// side, the whole gutter off the width.
	if cell.LeftOffsetPx != 2 {
		t.Errorf("left offset = %v, want 2", cell.LeftOffsetPx)
	}
	if cell.WidthOffsetPx != -4 {
		t.Errorf("width offset = %v, want -4", cell.WidthOffsetPx)
	}
}

func TestLayoutDayViewHasNoGutterOffsets(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		Date:      strPtr("2025-03-10"),
		StartTime: "09:00",
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(grid.Cells))
	}
	if grid.Cells[0].LeftOffsetPx != 0 || grid.Cells[0].WidthOffsetPx != 0 {
		t.Errorf("day view offsets = %v/%v, want 0/0",
			grid.Cells[0].LeftOffsetPx, grid.Cells[0].WidthOffsetPx)
	}
}

func TestLayoutPlacesDatelessISOStart(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	// Start stored only as an ISO datetime, no date field: the local
	// calendar day comes from the start value.
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local).Format(time.RFC3339)
	appt := &appointment.Appointment{
		ID:        uuid.New(),
		StartTime: start,
	}

	grid := Layout([]*appointment.Appointment{appt}, ViewDay, ref, emptyIndex())

	if len(grid.Cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(grid.Cells))
	}
	if grid.Cells[0].Date != "2025-03-10" {
		t.Errorf("date = %s, want 2025-03-10", grid.Cells[0].Date)
	}
	if grid.Cells[0].TopPx != 202 {
		t.Errorf("top = %v, want 202", grid.Cells[0].TopPx)
	}
}

func TestLayoutDayOverlays(t *testing.T) {
	ref := mustDate(t, "2025-03-10")
	periods := []*blocking.BlockedPeriod{
		{ProfessionalID: uuid.New(), StartDate: "2025-03-10", EndDate: "2025-03-12", Reason: "Férias"},
	}
	holidays := []*blocking.Holiday{
		{ID: uuid.New(), Date: "2025-03-11", Name: "Feriado Municipal"},
	}

	grid := Layout(nil, ViewWeek, ref, NewIndex(periods, holidays))

	var monday, tuesday, saturday Day
	for _, d := range grid.Days {
		switch d.Date {
		case "2025-03-10":
			monday = d
		case "2025-03-11":
			tuesday = d
		case "2025-03-15":
			saturday = d
		}
	}

	if !monday.Blocked || monday.BlockReason != "Férias" {
		t.Errorf("monday blocked=%v reason=%q, want blocked with Férias", monday.Blocked, monday.BlockReason)
	}
	if tuesday.Holiday != "Feriado Municipal" {
		t.Errorf("tuesday holiday = %q, want Feriado Municipal", tuesday.Holiday)
	}
	if saturday.Blocked || saturday.Holiday != "" {
		t.Errorf("saturday should have no overlay, got blocked=%v holiday=%q", saturday.Blocked, saturday.Holiday)
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-03-09", "2025-03-09"}, // Sunday maps to itself
		{"2025-03-10", "2025-03-09"},
		{"2025-03-15", "2025-03-09"}, // Saturday
	}
	for _, tc := range cases {
		got := WeekStart(mustDate(t, tc.in)).Format("2006-01-02")
		if got != tc.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	ref := mustDate(t, "2025-03-10")

	start, end := VisibleRange(ViewDay, ref)
	if start != "2025-03-10" || end != "2025-03-10" {
		t.Errorf("day range = %s..%s, want 2025-03-10..2025-03-10", start, end)
	}

	start, end = VisibleRange(ViewWeek, ref)
	if start != "2025-03-09" || end != "2025-03-15" {
		t.Errorf("week range = %s..%s, want 2025-03-09..2025-03-15", start, end)
	}
}
