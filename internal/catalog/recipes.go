package catalog

import (
	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
)

// recipeNamespace derives stable ids for the starter recipes so that
// repeated seeding never duplicates them.
var recipeNamespace = uuid.MustParse("7b1c9a52-3e4d-4f60-9a21-c85e10f4d7aa")

func seedID(name string) uuid.UUID {
	return uuid.NewSHA1(recipeNamespace, []byte(name))
}

// SeedRecipes returns the low-salt starter collection loaded on first
// run. Nutrition values are per serving.
func SeedRecipes() []*model.Recipe {
	recipes := []*model.Recipe{
		{
			Name:        "鶏むね肉の塩麹焼き",
			Category:    "main",
			CookTimeMin: 20,
			Servings:    2,
			Calories:    f(220),
			SaltG:       1.0,
			CarbsG:      f(4),
			ProteinG:    f(28),
			FiberG:      f(0.5),
			Ingredients: []model.Ingredient{
				{Name: "鶏むね肉", Amount: "1枚（300g）"},
				{Name: "塩麹", Amount: "大さじ1"},
				{Name: "こしょう", Amount: "少々"},
				{Name: "オリーブオイル", Amount: "小さじ1"},
			},
			Steps: []string{
				"鶏むね肉をそぎ切りにして塩麹をもみ込み、15分おく",
				"フライパンにオリーブオイルを熱し、中火で両面を焼く",
				"蓋をして弱火で5分蒸し焼きにする",
			},
			SaltTips: []string{
				"塩麹の量を守れば下味だけで十分な塩味になります",
				"仕上げにレモンをしぼると薄味でも満足感が出ます",
			},
		},
		{
			Name:        "ほうれん草の胡麻和え",
			Category:    "side",
			CookTimeMin: 10,
			Servings:    2,
			Calories:    f(60),
			SaltG:       0.5,
			CarbsG:      f(4),
			ProteinG:    f(3),
			FiberG:      f(2.5),
			PotassiumMg: f(490),
			Ingredients: []model.Ingredient{
				{Name: "ほうれん草", Amount: "1束"},
				{Name: "すりごま", Amount: "大さじ1"},
				{Name: "減塩醤油", Amount: "小さじ1"},
				{Name: "砂糖", Amount: "小さじ1/2"},
			},
			Steps: []string{
				"ほうれん草を茹でて水にさらし、3cm幅に切る",
				"水気をよくしぼる",
				"すりごま・減塩醤油・砂糖を和える",
			},
			SaltTips: []string{
				"ごまの香りで醤油が少なくても物足りなさを感じません",
			},
		},
		{
			Name:        "減塩豚汁",
			Category:    "soup",
			CookTimeMin: 25,
			Servings:    4,
			Calories:    f(150),
			SaltG:       1.1,
			CarbsG:      f(10),
			ProteinG:    f(9),
			FiberG:      f(3),
			PotassiumMg: f(420),
			Ingredients: []model.Ingredient{
				{Name: "豚こま肉", Amount: "150g"},
				{Name: "大根", Amount: "1/4本"},
				{Name: "にんじん", Amount: "1/2本"},
				{Name: "ごぼう", Amount: "1/2本"},
				{Name: "減塩味噌", Amount: "大さじ2"},
				{Name: "顆粒だし", Amount: "小さじ1/2"},
			},
			Steps: []string{
				"野菜を食べやすい大きさに切る",
				"豚肉を炒め、野菜を加えてさっと炒める",
				"水600mlとだしを加えて野菜が柔らかくなるまで煮る",
				"火を止めてから減塩味噌を溶き入れる",
			},
			SaltTips: []string{
				"具だくさんにすると汁の量が減り、自然に減塩になります",
				"味噌は火を止めてから入れると香りが立ち薄味でも美味しい",
			},
		},
		{
			Name:        "しらたき入り炊き込みごはん",
			Category:    "rice",
			CookTimeMin: 60,
			Servings:    4,
			Calories:    f(230),
			SaltG:       0.9,
			CarbsG:      f(45),
			ProteinG:    f(6),
			FiberG:      f(2),
			Ingredients: []model.Ingredient{
				{Name: "米", Amount: "1.5合"},
				{Name: "しらたき（刻む）", Amount: "100g"},
				{Name: "鶏もも肉", Amount: "100g"},
				{Name: "にんじん", Amount: "1/3本"},
				{Name: "減塩醤油", Amount: "大さじ1.5"},
				{Name: "みりん", Amount: "大さじ1"},
			},
			Steps: []string{
				"米を研ぎ、刻んだしらたきと具材をのせる",
				"調味料と規定量の水を加えて炊く",
				"炊き上がったら全体を混ぜる",
			},
			SugarTips: []string{
				"しらたきでかさ増しすると1杯あたりの糖質を約2割減らせます",
			},
		},
		{
			Name:        "オートミール味噌雑炊",
			Category:    "breakfast",
			CookTimeMin: 10,
			Servings:    1,
			Calories:    f(210),
			SaltG:       1.0,
			CarbsG:      f(28),
			ProteinG:    f(10),
			FiberG:      f(4),
			Ingredients: []model.Ingredient{
				{Name: "オートミール", Amount: "30g"},
				{Name: "卵", Amount: "1個"},
				{Name: "減塩味噌", Amount: "小さじ1"},
				{Name: "ねぎ", Amount: "適量"},
			},
			Steps: []string{
				"水200mlにオートミールを入れて2分煮る",
				"溶き卵を回し入れる",
				"火を止めて味噌を溶き、ねぎを散らす",
			},
			SugarTips: []string{
				"白米の雑炊よりも糖質が低く食物繊維がとれます",
			},
		},
		{
			Name:        "きのこのレンジマリネ",
			Category:    "prep",
			CookTimeMin: 10,
			Servings:    4,
			Calories:    f(40),
			SaltG:       0.4,
			CarbsG:      f(3),
			ProteinG:    f(2),
			FiberG:      f(2.5),
			Ingredients: []model.Ingredient{
				{Name: "しめじ・えのき・まいたけ", Amount: "計300g"},
				{Name: "酢", Amount: "大さじ2"},
				{Name: "オリーブオイル", Amount: "大さじ1"},
				{Name: "減塩醤油", Amount: "小さじ2"},
			},
			Steps: []string{
				"きのこをほぐして耐熱容器に入れ、600Wで4分加熱する",
				"熱いうちに調味料と和える",
				"冷蔵庫で保存（4日程度）",
			},
			SaltTips: []string{
				"酢の酸味が塩味の物足りなさを補います",
			},
		},
	}

	for _, r := range recipes {
		r.ID = seedID(r.Name)
	}
	return recipes
}
