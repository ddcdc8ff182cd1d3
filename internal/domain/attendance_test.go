package domain

import (
	"testing"
	"time"
)

func TestAttendanceStatus(t *testing.T) {
	record := Attendance{CheckIn: time.Now()}
	if record.Status() != AttendanceStatusOpen {
		t.Fatalf("record without check-out must be OPEN, got %s", record.Status())
	}
	out := record.CheckIn.Add(8 * time.Hour)
	record.CheckOut = &out
	if record.Status() != AttendanceStatusClosed {
		t.Fatalf("record with check-out must be CLOSED, got %s", record.Status())
	}
}

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	ts := time.Date(2025, 11, 28, 23, 45, 12, 999, loc)
	day := DayOf(ts)
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Fatalf("DayOf must zero the time component, got %v", day)
	}
	if day.Year() != 2025 || day.Month() != time.November || day.Day() != 28 {
		t.Fatalf("DayOf must keep the wall-clock date, got %v", day)
	}
	if day.Location() != loc {
		t.Fatal("DayOf must keep the timestamp's location")
	}
}
