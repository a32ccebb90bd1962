package punchimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/domain/punch"
)

// RawRecord is one row of a device punch-log export. Dates carry a
// two-digit year ("25-08-03") and times come as a bare 4-digit HHMM
// number, both mapped here into proper date/time values.
type RawRecord struct {
	StaffID string
	Date    string
	Time    string
}

// MapRecord converts a raw export row into a punch event.
func MapRecord(rec RawRecord) (punch.PunchEvent, error) {
	staffID := strings.TrimSpace(rec.StaffID)
	if staffID == "" {
		return punch.PunchEvent{}, fmt.Errorf("missing staff_id")
	}

	date, err := mapDate(strings.TrimSpace(rec.Date))
	if err != nil {
		return punch.PunchEvent{}, err
	}

	timeOfDay, err := mapTime(strings.TrimSpace(rec.Time))
	if err != nil {
		return punch.PunchEvent{}, err
	}

	return punch.PunchEvent{
		StaffID: staffID,
		Date:    date,
		Time:    timeOfDay,
	}, nil
}

// mapDate accepts "YY-MM-DD" (or full "YYYY-MM-DD") with "-" or "/"
// separators. Two-digit years land in 2000-2099.
func mapDate(value string) (time.Time, error) {
	normalized := strings.ReplaceAll(value, "/", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", value)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject normalized rollovers like Feb 30.
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return date, nil
}

// mapTime converts the device's 4-digit HHMM punch time ("0934", "934",
// or already-formatted "09:34") into "15:04:05".
func mapTime(value string) (string, error) {
	if strings.Contains(value, ":") {
		parts := strings.Split(value, ":")
		if len(parts) < 2 {
			return "", fmt.Errorf("invalid time %q", value)
		}
		value = parts[0] + parts[1]
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return "", fmt.Errorf("invalid time %q", value)
	}

	hh := n / 100
	mm := n % 100
	if hh > 23 || mm > 59 {
		return "", fmt.Errorf("invalid time %q", value)
	}

	return fmt.Sprintf("%02d:%02d:00", hh, mm), nil
}
