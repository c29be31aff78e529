package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/models"
	"github.com/dhall711/health-coach/utils"

	"github.com/google/uuid"
)

// ImportResult reports what happened to a CSV batch. Malformed rows are
// counted and skipped; the batch itself never aborts.
type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// ImportWeightCSV ingests rows of `date,weight_lbs[,body_fat_pct]`.
// Rows with an unparseable date or an implausible weight (<=0 or >500)
// are skipped individually. The raw payload is archived to S3 under the
// batch id, best-effort.
func ImportWeightCSV(userID uint, r io.Reader) (*ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import payload: %w", err)
	}

	res := &ImportResult{BatchID: uuid.NewString()}

	cr := csv.NewReader(strings.NewReader(string(raw)))
	cr.FieldsPerRecord = -1
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Skipped++
			continue
		}
		if first {
			first = false
			if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "date") {
				continue // header row
			}
		}
		if len(rec) < 2 {
			res.Skipped++
			continue
		}

		measuredAt, err := parseImportDate(strings.TrimSpace(rec[0]))
		if err != nil {
			res.Skipped++
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil || weight <= 0 || weight > maxPlausibleWeightLbs {
			res.Skipped++
			continue
		}
		var bodyFat *float64
		if len(rec) >= 3 && strings.TrimSpace(rec[2]) != "" {
			if bf, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err == nil && bf > 0 && bf < 100 {
				bodyFat = &bf
			}
		}

		entry := models.WeightLog{
			UserID:     userID,
			MeasuredAt: measuredAt,
			WeightLbs:  weight,
			BodyFatPct: bodyFat,
			Source:     models.SourceTrendweight,
		}
		if err := config.DB.Create(&entry).Error; err != nil {
			res.Skipped++
			continue
		}
		res.Imported++
	}

	if err := utils.ArchiveImportCSV(res.BatchID, raw); err != nil {
		log.Printf("import %s: archive failed: %v", res.BatchID, err)
	}
	return res, nil
}

func parseImportDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "01/02/2006"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
