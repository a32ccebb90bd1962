package punchimport

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/campus-mis/attendance-backend-go/internal/domain/punch"
	"github.com/campus-mis/attendance-backend-go/internal/domain/staff"
)

// Result summarizes one import run.
type Result struct {
	Read             int
	Inserted         int
	SkippedUnknown   []string
	SkippedMalformed int
}

type Importer struct {
	punchRepo punch.PunchRepository
	staffRepo staff.StaffRepository
	logger    *slog.Logger
}

func NewImporter(punchRepo punch.PunchRepository, staffRepo staff.StaffRepository, logger *slog.Logger) *Importer {
	return &Importer{
		punchRepo: punchRepo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// ImportFile reads one punch-log export and stores its events. A read
// failure on the file itself is fatal; malformed rows and unknown staff
// ids are skipped and reported in the result.
func (i *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return i.importReader(ctx, f, path)
}

func (i *Importer) importReader(ctx context.Context, r io.Reader, name string) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var result Result
	var events []punch.PunchEvent
	knownStaff := make(map[string]bool)
	reportedUnknown := make(map[string]bool)

	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", name, err)
		}

		if len(row) < 3 {
			result.SkippedMalformed++
			continue
		}
		// Header rows are common in device exports.
		if line == 1 && !isNumeric(row[0]) {
			continue
		}

		result.Read++

		event, err := MapRecord(RawRecord{StaffID: row[0], Date: row[1], Time: row[2]})
		if err != nil {
			result.SkippedMalformed++
			i.logger.Warn("skipping malformed punch record",
				slog.String("file", name),
				slog.Int("line", line),
				slog.Any("error", err),
			)
			continue
		}

		known, cached := knownStaff[event.StaffID]
		if !cached {
			known, err = i.staffRepo.Exists(ctx, event.StaffID)
			if err != nil {
				return result, fmt.Errorf("failed to check staff %s: %w", event.StaffID, err)
			}
			knownStaff[event.StaffID] = known
		}
		if !known {
			if !reportedUnknown[event.StaffID] {
				reportedUnknown[event.StaffID] = true
				result.SkippedUnknown = append(result.SkippedUnknown, event.StaffID)
				i.logger.Warn("skipping punches for unknown staff id",
					slog.String("file", name),
					slog.String("staff_id", event.StaffID),
				)
			}
			continue
		}

		events = append(events, event)
	}

	if len(events) > 0 {
		inserted, err := i.punchRepo.BulkInsert(ctx, events)
		if err != nil {
			return result, fmt.Errorf("failed to insert punches: %w", err)
		}
		result.Inserted = inserted
	}

	i.logger.Info("punch import finished",
		slog.String("file", name),
		slog.Int("read", result.Read),
		slog.Int("inserted", result.Inserted),
		slog.Int("unknown_staff", len(result.SkippedUnknown)),
		slog.Int("malformed", result.SkippedMalformed),
	)

	return result, nil
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
