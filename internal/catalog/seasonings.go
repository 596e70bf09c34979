package catalog

import (
	"math"

	"github.com/karadarhythm/health-api/internal/model"
)

// Grams of salt per tablespoon / teaspoon.
var seasonings = []model.Seasoning{
	{ID: "s1", Name: "醤油", SaltPerTbsp: 2.6, SaltPerTsp: 0.9, Category: "基本"},
	{ID: "s2", Name: "減塩醤油", SaltPerTbsp: 1.3, SaltPerTsp: 0.4, Category: "基本"},
	{ID: "s3", Name: "味噌", SaltPerTbsp: 2.2, SaltPerTsp: 0.7, Category: "基本"},
	{ID: "s4", Name: "減塩味噌", SaltPerTbsp: 1.1, SaltPerTsp: 0.4, Category: "基本"},
	{ID: "s5", Name: "塩", SaltPerTbsp: 18, SaltPerTsp: 6, Category: "基本"},
	{ID: "s6", Name: "めんつゆ（3倍濃縮）", SaltPerTbsp: 1.8, SaltPerTsp: 0.6, Category: "基本"},
	{ID: "s7", Name: "めんつゆ（ストレート）", SaltPerTbsp: 0.5, SaltPerTsp: 0.17, Category: "基本"},
	{ID: "s8", Name: "ポン酢", SaltPerTbsp: 1.5, SaltPerTsp: 0.5, Category: "基本"},
	{ID: "s9", Name: "ウスターソース", SaltPerTbsp: 1.5, SaltPerTsp: 0.5, Category: "ソース"},
	{ID: "s10", Name: "中濃ソース", SaltPerTbsp: 1.0, SaltPerTsp: 0.3, Category: "ソース"},
	{ID: "s11", Name: "ケチャップ", SaltPerTbsp: 0.5, SaltPerTsp: 0.17, Category: "ソース"},
	{ID: "s12", Name: "マヨネーズ", SaltPerTbsp: 0.3, SaltPerTsp: 0.1, Category: "ソース"},
	{ID: "s13", Name: "オイスターソース", SaltPerTbsp: 2.1, SaltPerTsp: 0.7, Category: "ソース"},
	{ID: "s14", Name: "顆粒だし", SaltPerTbsp: 3.9, SaltPerTsp: 1.3, Category: "だし"},
	{ID: "s15", Name: "減塩顆粒だし", SaltPerTbsp: 1.5, SaltPerTsp: 0.5, Category: "だし"},
	{ID: "s16", Name: "鶏ガラスープの素", SaltPerTbsp: 4.5, SaltPerTsp: 1.5, Category: "だし"},
	{ID: "s17", Name: "コンソメ（顆粒）", SaltPerTbsp: 4.3, SaltPerTsp: 1.4, Category: "だし"},
	{ID: "s18", Name: "味の素", SaltPerTbsp: 0, SaltPerTsp: 0, Category: "その他"},
	{ID: "s19", Name: "酢", SaltPerTbsp: 0, SaltPerTsp: 0, Category: "その他"},
	{ID: "s20", Name: "みりん", SaltPerTbsp: 0, SaltPerTsp: 0, Category: "その他"},
	{ID: "s21", Name: "料理酒", SaltPerTbsp: 0.4, SaltPerTsp: 0.13, Category: "その他"},
	{ID: "s22", Name: "塩麹", SaltPerTbsp: 2.0, SaltPerTsp: 0.7, Category: "その他"},
	{ID: "s23", Name: "白だし", SaltPerTbsp: 2.4, SaltPerTsp: 0.8, Category: "だし"},
	{ID: "s24", Name: "焼肉のタレ", SaltPerTbsp: 1.2, SaltPerTsp: 0.4, Category: "ソース"},
}

// Seasonings returns the full salt reference table.
func Seasonings() []model.Seasoning {
	out := make([]model.Seasoning, len(seasonings))
	copy(out, seasonings)
	return out
}

// SeasoningByID looks up one table row.
func SeasoningByID(id string) (model.Seasoning, bool) {
	for _, s := range seasonings {
		if s.ID == id {
			return s, true
		}
	}
	return model.Seasoning{}, false
}

// CalculateSalt converts an amount of a seasoning into grams of salt,
// rounded to one decimal. Unknown ids count as zero.
func CalculateSalt(seasoningID string, amount float64, unit model.SeasoningUnit) float64 {
	s, ok := SeasoningByID(seasoningID)
	if !ok {
		return 0
	}
	perUnit := s.SaltPerTsp
	if unit == model.UnitTablespoon {
		perUnit = s.SaltPerTbsp
	}
	return math.Round(perUnit*amount*10) / 10
}
