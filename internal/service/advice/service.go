// Package advice generates the daily coaching items from the day's
// records. Rule evaluation is a pure function over a snapshot so it
// can be tested without a store; the service assembles the snapshot.
package advice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/internal/service/condition"
	"github.com/karadarhythm/health-api/internal/service/exercise"
	"github.com/karadarhythm/health-api/internal/service/nutrition"
	"github.com/karadarhythm/health-api/internal/service/visit"
	"github.com/karadarhythm/health-api/pkg/metrics"
)

// Snapshot is everything the rules look at, captured at one moment.
type Snapshot struct {
	LatestBP       *model.BloodPressureReading
	Nutrition      *model.NutritionSummary
	Targets        model.NutritionTargets
	Exercise       *model.ExerciseSummary
	TodayCondition *model.ConditionLogEntry
	VisitCount     int
	ConditionDays  int
	Profile        model.UserProfile
	Now            time.Time
}

type Service struct {
	bpSvc        *bloodpressure.Service
	nutritionSvc *nutrition.Service
	exerciseSvc  *exercise.Service
	conditionSvc *condition.Service
	visitSvc     *visit.Service
	profile      model.UserProfile
	now          func() time.Time
}

func NewService(
	bpSvc *bloodpressure.Service,
	nutritionSvc *nutrition.Service,
	exerciseSvc *exercise.Service,
	conditionSvc *condition.Service,
	visitSvc *visit.Service,
	profile model.UserProfile,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		bpSvc:        bpSvc,
		nutritionSvc: nutritionSvc,
		exerciseSvc:  exerciseSvc,
		conditionSvc: conditionSvc,
		visitSvc:     visitSvc,
		profile:      profile,
		now:          now,
	}
}

// Generate captures today's snapshot and evaluates the rules.
func (s *Service) Generate(ctx context.Context) ([]model.Advice, error) {
	now := s.now()
	today := model.FormatDate(now)

	latestBP, err := s.bpSvc.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest reading: %w", err)
	}

	_, summary, err := s.nutritionSvc.Summarize(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize nutrition: %w", err)
	}

	exSummary, err := s.exerciseSvc.Summary(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize exercise: %w", err)
	}

	todayCondition, err := s.conditionSvc.GetByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load condition log: %w", err)
	}

	visitCount, err := s.visitSvc.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	conditionDays, err := s.conditionSvc.ConsecutiveDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count condition days: %w", err)
	}

	items := Evaluate(Snapshot{
		LatestBP:       latestBP,
		Nutrition:      summary,
		Targets:        s.nutritionSvc.Targets(),
		Exercise:       exSummary,
		TodayCondition: todayCondition,
		VisitCount:     visitCount,
		ConditionDays:  conditionDays,
		Profile:        s.profile,
		Now:            now,
	})

	metrics.AdviceGenerated.Inc()
	for _, item := range items {
		metrics.AdviceItemsTotal.WithLabelValues(string(item.Priority)).Inc()
	}
	return items, nil
}

// Evaluate runs the fixed rule set over a snapshot. Output is sorted
// high to low priority; within a priority, rule order is preserved.
func Evaluate(snap Snapshot) []model.Advice {
	items := []model.Advice{}

	items = append(items, bloodPressureRule(snap)...)
	items = append(items, dietRule(snap)...)
	items = append(items, exerciseRule(snap)...)
	items = append(items, conditionRule(snap)...)
	items = append(items, visitRule(snap)...)
	items = append(items, streakRule(snap)...)

	sort.SliceStable(items, func(i, j int) bool {
		return model.PriorityRank(items[i].Priority) < model.PriorityRank(items[j].Priority)
	})
	return items
}

func bloodPressureRule(snap Snapshot) []model.Advice {
	if snap.LatestBP == nil {
		return []model.Advice{{
			ID:       "bp1",
			Category: model.AdviceBloodPressure,
			Icon:     "💓",
			Title:    "血圧を記録しましょう",
			Message:  "高血圧の管理には毎日の血圧測定が大切です。朝起きてから1時間以内と、夜寝る前の2回測定がおすすめです。",
			Priority: model.PriorityHigh,
		}}
	}

	bp := snap.LatestBP
	switch {
	case bp.Systolic >= 160 || bp.Diastolic >= 100:
		return []model.Advice{{
			ID:       "bp2",
			Category: model.AdviceBloodPressure,
			Icon:     "⚠️",
			Title:    "血圧が高めです",
			Message:  fmt.Sprintf("最新の血圧は %d/%d です。塩分を控えめにし、深呼吸でリラックスしましょう。改善が見られない場合は医師に相談を。", bp.Systolic, bp.Diastolic),
			Priority: model.PriorityHigh,
		}}
	case bp.Systolic >= 140 || bp.Diastolic >= 90:
		return []model.Advice{{
			ID:       "bp3",
			Category: model.AdviceBloodPressure,
			Icon:     "📊",
			Title:    "血圧の経過を見守っています",
			Message:  "引き続き減塩と適度な運動を心がけましょう。少しずつでも数値が下がってきたら、とても良い傾向です！",
			Priority: model.PriorityMedium,
		}}
	default:
		return []model.Advice{{
			ID:       "bp4",
			Category: model.AdviceBloodPressure,
			Icon:     "👍",
			Title:    "血圧は良好です！",
			Message:  "素晴らしいですね！この調子で続けていきましょう。",
			Priority: model.PriorityLow,
		}}
	}
}

func dietRule(snap Snapshot) []model.Advice {
	salt := snap.Nutrition.SaltG
	target := snap.Targets.SaltG

	switch {
	case salt > target:
		return []model.Advice{{
			ID:       "diet1",
			Category: model.AdviceDiet,
			Icon:     "🧂",
			Title:    "今日の塩分が目標を超えています",
			Message:  fmt.Sprintf("今日は %.1fg の塩分を摂取しています（目標: %.0fg）。次の食事は薄味を心がけましょう。酢やレモン、香味野菜で風味をつけると満足感が上がります。", salt, target),
			Priority: model.PriorityHigh,
		}}
	case salt > target*0.8:
		return []model.Advice{{
			ID:       "diet2",
			Category: model.AdviceDiet,
			Icon:     "🍽️",
			Title:    "塩分は目標内ですが注意",
			Message:  fmt.Sprintf("今日の塩分は %.1fg です。あと少し余裕があります。夕食は減塩レシピで調整しましょう。", salt),
			Priority: model.PriorityMedium,
		}}
	case salt == 0:
		return []model.Advice{{
			ID:       "diet3",
			Category: model.AdviceDiet,
			Icon:     "📝",
			Title:    "食事を記録しましょう",
			Message:  "食事を記録すると、塩分摂取量が見えてきます。まずは今日食べたものを記録してみましょう。",
			Priority: model.PriorityMedium,
		}}
	default:
		return nil
	}
}

func exerciseRule(snap Snapshot) []model.Advice {
	if snap.Exercise.CompletedCount == 0 {
		if snap.Now.Hour() >= 20 {
			return []model.Advice{{
				ID:       "ex1",
				Category: model.AdviceExercise,
				Icon:     "🧘",
				Title:    "寝る前のリラックス運動",
				Message:  "お疲れの夜は、座ったままできる深呼吸や首のストレッチがおすすめです。5分でも効果がありますよ。",
				Priority: model.PriorityMedium,
			}}
		}
		return []model.Advice{{
			ID:       "ex2",
			Category: model.AdviceExercise,
			Icon:     "🏃",
			Title:    "今日も軽く体を動かしましょう",
			Message:  "座ったままできる運動を用意しています。疲れていても、首や肩のストレッチだけでも血行が良くなります。",
			Priority: model.PriorityMedium,
		}}
	}

	return []model.Advice{{
		ID:       "ex3",
		Category: model.AdviceExercise,
		Icon:     "🎉",
		Title:    fmt.Sprintf("今日は%dつの運動を完了！", snap.Exercise.CompletedCount),
		Message:  fmt.Sprintf("合計%d分、%.0fkcal消費しました。素晴らしい！", snap.Exercise.TotalDuration, snap.Exercise.TotalCalories),
		Priority: model.PriorityLow,
	}}
}

func conditionRule(snap Snapshot) []model.Advice {
	if snap.TodayCondition == nil {
		return []model.Advice{{
			ID:       "cond1",
			Category: model.AdviceGeneral,
			Icon:     "📋",
			Title:    "今日の体調を記録しましょう",
			Message:  "毎日の体調記録は、自分の健康パターンを知るのに役立ちます。動悸やむくみの有無も記録しておきましょう。",
			Priority: model.PriorityMedium,
		}}
	}
	if snap.TodayCondition.Palpitation {
		return []model.Advice{{
			ID:       "cond2",
			Category: model.AdviceGeneral,
			Icon:     "💗",
			Title:    "動悸があるんですね",
			Message:  "動悸がある時は無理せず休息を。糖質の多い食事の後に動悸が出やすい場合は、糖質を控えめにしてみましょう。続く場合は医師に相談を。",
			Priority: model.PriorityHigh,
		}}
	}
	return nil
}

func visitRule(snap Snapshot) []model.Advice {
	if snap.VisitCount > 0 {
		return nil
	}
	return []model.Advice{{
		ID:       "med1",
		Category: model.AdviceGeneral,
		Icon:     "🏥",
		Title:    "循環器内科の受診をおすすめします",
		Message:  fmt.Sprintf("血圧が %d/%d と高い状態です。専門医に相談して、適切な治療を受けることが大切です。", snap.Profile.Systolic, snap.Profile.Diastolic),
		Priority: model.PriorityHigh,
	}}
}

func streakRule(snap Snapshot) []model.Advice {
	if snap.ConditionDays < 3 {
		return nil
	}
	return []model.Advice{{
		ID:       "gen1",
		Category: model.AdviceGeneral,
		Icon:     "🔥",
		Title:    fmt.Sprintf("%d日連続で記録中！", snap.ConditionDays),
		Message:  "継続は力なり！毎日の積み重ねが健康につながります。この調子で頑張りましょう！",
		Priority: model.PriorityLow,
	}}
}
