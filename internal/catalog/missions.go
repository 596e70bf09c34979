package catalog

// One of these is picked at random the first time a day's mission is
// requested. All are doable while seated or during normal cooking.
var missionTemplates = []string{
	"今日の味噌汁はだしを効かせて味噌を半量に",
	"夕食のごはんを一口分減らす",
	"深呼吸エクササイズを1回やる",
	"醤油は「かける」ではなく「つける」で使う",
	"座ったまま足踏みを3分やる",
	"寝る前に体重を測る",
	"朝の血圧を測って記録する",
	"間食を果物かナッツに置き換える",
	"食事の最初に野菜から食べる",
	"麺類のスープは半分以上残す",
	"かかと上げを20回やる",
	"今夜は22時半までに布団に入る",
	"CPAPを朝まで外さない",
	"水を1日1.5リットル飲む",
}

// MissionTemplates returns the template pool.
func MissionTemplates() []string {
	out := make([]string, len(missionTemplates))
	copy(out, missionTemplates)
	return out
}
