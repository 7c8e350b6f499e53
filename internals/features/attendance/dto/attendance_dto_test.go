package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseCoordinate(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float64", -6.2, -6.2, false},
		{"string", "106.8", 106.8, false},
		{"string with spaces", " -6.2 ", -6.2, false},
		{"json.Number", json.Number("-6.2"), -6.2, false},
		{"non-numeric string", "abc", 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
	}
	for _, tc := range cases {
		got, err := ParseCoordinate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %f", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %f, want %f", tc.name, got, tc.want)
		}
	}
}

func TestBuildWorkDuration(t *testing.T) {
	checkIn := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)

	// 9 jam 15 menit = 555 menit
	dur := BuildWorkDuration(checkIn, checkIn.Add(9*time.Hour+15*time.Minute))
	if dur.Minutes != 555 {
		t.Errorf("Minutes = %d, want 555", dur.Minutes)
	}
	if dur.Hours != "9.25" {
		t.Errorf("Hours = %q, want %q", dur.Hours, "9.25")
	}
	if dur.Formatted != "9h 15m" {
		t.Errorf("Formatted = %q, want %q", dur.Formatted, "9h 15m")
	}

	// detik dibulatkan ke menit terdekat
	dur = BuildWorkDuration(checkIn, checkIn.Add(30*time.Second))
	if dur.Minutes != 1 {
		t.Errorf("Minutes = %d, want 1 (pembulatan 30 detik)", dur.Minutes)
	}

	dur = BuildWorkDuration(checkIn, checkIn)
	if dur.Minutes != 0 || dur.Formatted != "0h 0m" {
		t.Errorf("durasi nol: got %+v", dur)
	}
}

func TestOutOfRangeData(t *testing.T) {
	addr := "Jl. Sudirman No. 1"
	data := OutOfRangeData(500.4, 100, "Kantor Pusat", &addr, -6.2, 106.8)

	if data.YourDistance != 500 {
		t.Errorf("YourDistance = %d, want 500", data.YourDistance)
	}
	if data.RequiredRadius != 100 {
		t.Errorf("RequiredRadius = %f, want 100", data.RequiredRadius)
	}
	if data.DistanceDifference != 400 {
		t.Errorf("DistanceDifference = %f, want 400", data.DistanceDifference)
	}
	if data.Office.Name != "Kantor Pusat" {
		t.Errorf("Office.Name = %q", data.Office.Name)
	}
	want := "You must be within 100 meters. You are 500 meters away."
	if data.MessageDetail != want {
		t.Errorf("MessageDetail = %q, want %q", data.MessageDetail, want)
	}
}
