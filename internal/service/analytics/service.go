// Package analytics computes the simple trend aggregates shown on the
// review screen.
package analytics

import (
	"context"
	"fmt"
	"math"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
)

// Window is how many recent records feed the trend aggregates.
const Window = 30

type BPStats struct {
	AvgSystolic  int `json:"avg_systolic"`
	AvgDiastolic int `json:"avg_diastolic"`
	MaxSystolic  int `json:"max_systolic"`
	MinSystolic  int `json:"min_systolic"`
	Count        int `json:"count"`
}

type WeightStats struct {
	Latest float64 `json:"latest"`
	Oldest float64 `json:"oldest"`
	Change float64 `json:"change"`
	Count  int     `json:"count"`
}

// Report bundles both trends; a nil section means no records yet.
type Report struct {
	BloodPressure *BPStats     `json:"blood_pressure"`
	Weight        *WeightStats `json:"weight"`
}

type Service struct {
	bpRepo     repository.BloodPressureRepository
	weightRepo repository.WeightRepository
}

func NewService(bpRepo repository.BloodPressureRepository, weightRepo repository.WeightRepository) *Service {
	return &Service{bpRepo: bpRepo, weightRepo: weightRepo}
}

func (s *Service) Report(ctx context.Context) (*Report, error) {
	readings, err := s.bpRepo.List(ctx, &model.BloodPressureFilter{Limit: Window})
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}

	weights, err := s.weightRepo.List(ctx, Window)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}

	return &Report{
		BloodPressure: bpStats(readings),
		Weight:        weightStats(weights),
	}, nil
}

func bpStats(readings []*model.BloodPressureReading) *BPStats {
	if len(readings) == 0 {
		return nil
	}

	stats := &BPStats{
		MaxSystolic: readings[0].Systolic,
		MinSystolic: readings[0].Systolic,
		Count:       len(readings),
	}
	sumSys, sumDia := 0, 0
	for _, r := range readings {
		sumSys += r.Systolic
		sumDia += r.Diastolic
		if r.Systolic > stats.MaxSystolic {
			stats.MaxSystolic = r.Systolic
		}
		if r.Systolic < stats.MinSystolic {
			stats.MinSystolic = r.Systolic
		}
	}
	stats.AvgSystolic = int(math.Round(float64(sumSys) / float64(len(readings))))
	stats.AvgDiastolic = int(math.Round(float64(sumDia) / float64(len(readings))))
	return stats
}

// weightStats treats the newest-first listing the way the review
// screen does: latest is the newest entry, change is latest minus the
// oldest entry in the window.
func weightStats(entries []*model.WeightEntry) *WeightStats {
	if len(entries) == 0 {
		return nil
	}

	latest := entries[0].WeightKg
	oldest := entries[len(entries)-1].WeightKg
	return &WeightStats{
		Latest: latest,
		Oldest: oldest,
		Change: latest - oldest,
		Count:  len(entries),
	}
}
