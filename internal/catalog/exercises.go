// Package catalog holds the static reference data served by the API:
// the seated-exercise menu, the seasoning salt table, eating-out
// presets, daily mission templates and the starter recipes.
package catalog

import "github.com/karadarhythm/health-api/internal/model"

var exercises = []model.Exercise{
	{
		ID:             "e1",
		Name:           "首のストレッチ",
		Description:    "デスクワークで凝った首をほぐす",
		DurationMin:    3,
		Category:       model.ExerciseStretch,
		Difficulty:     1,
		CaloriesBurned: 5,
		Steps: []string{
			"背筋を伸ばして椅子に座る",
			"頭をゆっくり右に傾け、10秒キープ",
			"左も同様に10秒キープ",
			"頭を前に倒し、10秒キープ",
			"3セット繰り返す",
		},
		Benefits: []string{"肩こり解消", "頭痛予防", "リラックス効果"},
	},
	{
		ID:             "e2",
		Name:           "肩回し",
		Description:    "肩甲骨をほぐして血流改善",
		DurationMin:    2,
		Category:       model.ExerciseStretch,
		Difficulty:     1,
		CaloriesBurned: 5,
		Steps: []string{
			"両肩を耳に近づけるように上げる",
			"後ろに大きく回す（10回）",
			"前に大きく回す（10回）",
			"肩を上げたまま5秒キープして、ストンと落とす",
		},
		Benefits: []string{"肩こり解消", "血行促進", "姿勢改善"},
	},
	{
		ID:             "e3",
		Name:           "背中のストレッチ",
		Description:    "猫背を解消し、背中の緊張をほぐす",
		DurationMin:    3,
		Category:       model.ExerciseStretch,
		Difficulty:     1,
		CaloriesBurned: 5,
		Steps: []string{
			"椅子に座り、両手を前で組む",
			"背中を丸めながら腕を前に伸ばす（猫のポーズ）",
			"10秒キープ",
			"今度は胸を張り、肩甲骨を寄せる",
			"10秒キープ、これを5回繰り返す",
		},
		Benefits: []string{"背中の疲れ解消", "姿勢改善", "呼吸が楽になる"},
	},
	{
		ID:             "e4",
		Name:           "足首回し",
		Description:    "むくみ解消に効果的",
		DurationMin:    2,
		Category:       model.ExerciseStretch,
		Difficulty:     1,
		CaloriesBurned: 3,
		Steps: []string{
			"片足を床から浮かせる",
			"足首を右に10回、左に10回回す",
			"反対の足も同様に行う",
			"つま先を上げ下げする（各10回）",
		},
		Benefits: []string{"むくみ解消", "血行促進", "冷え性改善"},
	},
	{
		ID:             "e5",
		Name:           "座ったままスクワット",
		Description:    "太ももを鍛えて基礎代謝アップ",
		DurationMin:    5,
		Category:       model.ExerciseStrength,
		Difficulty:     2,
		CaloriesBurned: 20,
		Steps: []string{
			"椅子の前半分に座る",
			"足を肩幅に開く",
			"腕を前に伸ばしながら、ゆっくり立ち上がる",
			"ゆっくり座る（お尻が椅子に着く直前で止める）",
			"10回 × 3セット",
		},
		Benefits: []string{"下半身強化", "基礎代謝アップ", "膝の負担が少ない"},
		Caution:  "膝に痛みがある場合は中止してください",
	},
	{
		ID:             "e6",
		Name:           "かかと上げ",
		Description:    "ふくらはぎを鍛えて血流改善",
		DurationMin:    3,
		Category:       model.ExerciseStrength,
		Difficulty:     1,
		CaloriesBurned: 10,
		Steps: []string{
			"椅子に座り、足を床につける",
			"かかとを高く上げる（つま先立ち）",
			"3秒キープしてゆっくり下ろす",
			"20回 × 2セット",
		},
		Benefits: []string{"むくみ解消", "ふくらはぎ強化", "血行促進"},
	},
	{
		ID:             "e7",
		Name:           "座ったまま腹筋",
		Description:    "お腹を引き締める",
		DurationMin:    5,
		Category:       model.ExerciseStrength,
		Difficulty:     2,
		CaloriesBurned: 15,
		Steps: []string{
			"椅子の前半分に座る",
			"背もたれに寄りかからず、背筋を伸ばす",
			"両膝を揃えて、床から10cm浮かせる",
			"5秒キープして下ろす",
			"10回 × 3セット",
		},
		Benefits: []string{"腹筋強化", "姿勢改善", "腰痛予防"},
		Caution:  "腰に痛みがある場合は無理しないでください",
	},
	{
		ID:             "e8",
		Name:           "手のグーパー運動",
		Description:    "握力強化と血流改善",
		DurationMin:    2,
		Category:       model.ExerciseStrength,
		Difficulty:     1,
		CaloriesBurned: 5,
		Steps: []string{
			"両手を前に伸ばす",
			"力強くグーを握る（3秒）",
			"指を大きく開いてパー（3秒）",
			"30回繰り返す",
		},
		Benefits: []string{"握力強化", "血行促進", "脳の活性化"},
	},
	{
		ID:             "e9",
		Name:           "座ったまま足踏み",
		Description:    "心肺機能を高める簡単有酸素運動",
		DurationMin:    5,
		Category:       model.ExerciseCardio,
		Difficulty:     2,
		CaloriesBurned: 25,
		Steps: []string{
			"椅子に浅く座る",
			"背筋を伸ばす",
			"太ももを交互に上げ下げ（足踏み）",
			"テンポよく1分間続ける",
			"30秒休憩して、計3セット",
		},
		Benefits: []string{"心肺機能向上", "カロリー消費", "足の筋力維持"},
		Caution:  "動悸がしたら休憩してください",
	},
	{
		ID:             "e10",
		Name:           "腕振り運動",
		Description:    "上半身の有酸素運動",
		DurationMin:    3,
		Category:       model.ExerciseCardio,
		Difficulty:     1,
		CaloriesBurned: 15,
		Steps: []string{
			"椅子に座り、肘を90度に曲げる",
			"腕を前後に大きく振る",
			"テンポよく30秒続ける",
			"15秒休憩して、計3セット",
		},
		Benefits: []string{"肩こり解消", "代謝アップ", "二の腕引き締め"},
	},
	{
		ID:             "e11",
		Name:           "深呼吸エクササイズ",
		Description:    "ストレス解消と血圧低下に",
		DurationMin:    5,
		Category:       model.ExerciseRelaxation,
		Difficulty:     1,
		CaloriesBurned: 3,
		Steps: []string{
			"椅子に座り、目を閉じる",
			"4秒かけて鼻から息を吸う",
			"4秒間息を止める",
			"8秒かけて口からゆっくり吐く",
			"5回繰り返す",
		},
		Benefits: []string{"ストレス軽減", "血圧低下", "自律神経を整える"},
	},
	{
		ID:             "e12",
		Name:           "瞑想ミニセッション",
		Description:    "心を落ち着かせる5分間の瞑想",
		DurationMin:    5,
		Category:       model.ExerciseRelaxation,
		Difficulty:     1,
		CaloriesBurned: 3,
		Steps: []string{
			"椅子に座り、背筋を伸ばす",
			"目を閉じて呼吸に意識を向ける",
			"雑念が浮かんでも、呼吸に意識を戻す",
			"5分間続ける",
		},
		Benefits: []string{"ストレス軽減", "集中力向上", "心の安定"},
	},
}

// Exercises returns the seated-exercise menu, optionally filtered by
// category. The returned slice is a copy; entries are shared.
func Exercises(category model.ExerciseCategory) []model.Exercise {
	if category == "" {
		out := make([]model.Exercise, len(exercises))
		copy(out, exercises)
		return out
	}
	out := []model.Exercise{}
	for _, e := range exercises {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// ExerciseByID looks up one catalog entry. The second return is false
// when the id is unknown.
func ExerciseByID(id string) (model.Exercise, bool) {
	for _, e := range exercises {
		if e.ID == id {
			return e, true
		}
	}
	return model.Exercise{}, false
}
