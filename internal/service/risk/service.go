// Package risk classifies the latest readings against clinical
// blood-pressure and BMI thresholds.
package risk

import (
	"context"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/internal/service/visit"
	"github.com/karadarhythm/health-api/internal/service/weight"
)

type Service struct {
	bpSvc     *bloodpressure.Service
	weightSvc *weight.Service
	visitSvc  *visit.Service
	profile   model.UserProfile
}

func NewService(bpSvc *bloodpressure.Service, weightSvc *weight.Service, visitSvc *visit.Service, profile model.UserProfile) *Service {
	return &Service{bpSvc: bpSvc, weightSvc: weightSvc, visitSvc: visitSvc, profile: profile}
}

// Assess classifies the latest blood pressure and weight. When nothing
// is logged yet, the fixed reference profile stands in, so the
// assessment is never empty.
func (s *Service) Assess(ctx context.Context) (*model.RiskAssessment, error) {
	systolic := s.profile.Systolic
	diastolic := s.profile.Diastolic
	if latest, err := s.bpSvc.Latest(ctx); err != nil {
		return nil, err
	} else if latest != nil {
		systolic = latest.Systolic
		diastolic = latest.Diastolic
	}

	weightKg := s.profile.WeightKg
	if latest, err := s.weightSvc.Latest(ctx); err != nil {
		return nil, err
	} else if latest != nil {
		weightKg = latest.WeightKg
	}

	visits, err := s.visitSvc.Count(ctx)
	if err != nil {
		return nil, err
	}

	bmi := BMI(weightKg, s.profile.HeightCm)
	return &model.RiskAssessment{
		Systolic:    systolic,
		Diastolic:   diastolic,
		BPCategory:  ClassifyBP(systolic, diastolic),
		WeightKg:    weightKg,
		BMI:         bmi,
		BMICategory: ClassifyBMI(bmi),
		HasVisited:  visits > 0,
	}, nil
}

// ClassifyBP buckets a reading; either value alone can push the
// category up.
func ClassifyBP(systolic, diastolic int) model.BPCategory {
	switch {
	case systolic >= 160 || diastolic >= 100:
		return model.BPStage2
	case systolic >= 140 || diastolic >= 90:
		return model.BPStage1
	case systolic >= 130 || diastolic >= 85:
		return model.BPElevated
	default:
		return model.BPNormal
	}
}

// BMI computes kg/m².
func BMI(weightKg, heightCm float64) float64 {
	if heightCm == 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

func ClassifyBMI(bmi float64) model.BMICategory {
	switch {
	case bmi >= 35:
		return model.BMISevere
	case bmi >= 30:
		return model.BMIClass2
	case bmi >= 25:
		return model.BMIClass1
	default:
		return model.BMINormal
	}
}
