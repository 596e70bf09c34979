package catalog

import (
	"sort"

	"github.com/karadarhythm/health-api/internal/model"
)

func f(v float64) *float64 { return &v }

// Typical nutrition for common restaurant and convenience-store meals.
// Warnings flag items that blow the per-meal salt or carb budget.
var eatingOutPresets = []model.EatingOutPreset{
	{ID: "eo1", Name: "牛丼（並盛）", Category: "丼もの", Calories: f(635), SaltG: f(2.7), CarbsG: f(92), ProteinG: f(20), Warning: "糖質が1食の目安を大きく超えます"},
	{ID: "eo2", Name: "醤油ラーメン", Category: "麺類", Calories: f(470), SaltG: f(6.3), CarbsG: f(65), ProteinG: f(18), Warning: "スープを残しても塩分過多。1日の塩分目標に相当します"},
	{ID: "eo3", Name: "かけそば", Category: "麺類", Calories: f(330), SaltG: f(3.5), CarbsG: f(58), ProteinG: f(11), Warning: "つゆを残せば塩分を約4割減らせます"},
	{ID: "eo4", Name: "幕の内弁当", Category: "弁当", Calories: f(750), SaltG: f(3.8), CarbsG: f(95), ProteinG: f(25), Warning: "ごはんを半分残すと糖質を抑えられます"},
	{ID: "eo5", Name: "おにぎり（鮭）", Category: "コンビニ", Calories: f(180), SaltG: f(1.1), CarbsG: f(37), ProteinG: f(5)},
	{ID: "eo6", Name: "サラダチキン", Category: "コンビニ", Calories: f(120), SaltG: f(1.1), CarbsG: f(1), ProteinG: f(25)},
	{ID: "eo7", Name: "ざるそば", Category: "麺類", Calories: f(300), SaltG: f(2.0), CarbsG: f(55), ProteinG: f(10)},
	{ID: "eo8", Name: "焼き魚定食", Category: "定食", Calories: f(550), SaltG: f(3.0), CarbsG: f(70), ProteinG: f(30), Warning: "ごはん少なめで注文すると糖質を抑えられます"},
	{ID: "eo9", Name: "ハンバーガーセット", Category: "ファストフード", Calories: f(900), SaltG: f(4.0), CarbsG: f(110), ProteinG: f(28), Warning: "カロリー・塩分・糖質すべて高め。単品に変更を"},
	{ID: "eo10", Name: "サンドイッチ（ハム）", Category: "コンビニ", Calories: f(250), SaltG: f(1.6), CarbsG: f(28), ProteinG: f(11)},
	{ID: "eo11", Name: "回転寿司（8皿）", Category: "寿司", Calories: f(640), SaltG: f(3.2), CarbsG: f(120), ProteinG: f(32), Warning: "シャリの糖質に注意。醤油は控えめに"},
	{ID: "eo12", Name: "カレーライス", Category: "定食", Calories: f(760), SaltG: f(3.3), CarbsG: f(110), ProteinG: f(17), Warning: "糖質・塩分とも高め。ルー少なめがおすすめ"},
}

// EatingOutPresets returns the preset list sorted by name.
func EatingOutPresets() []model.EatingOutPreset {
	out := make([]model.EatingOutPreset, len(eatingOutPresets))
	copy(out, eatingOutPresets)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
