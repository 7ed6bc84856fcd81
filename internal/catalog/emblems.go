package catalog

import (
	"fmt"
	"sync"

	"github.com/ChaseHampton/headstones/internal/record"
)

const emblemImagePattern = "Emblems/emb-%s.jpg"

// PadCode renders an emblem code with at least two digits.
func PadCode(code int) string {
	return fmt.Sprintf("%02d", code)
}

// EmblemImagePath is the relative path of the image for an emblem code. Code 0
// (unknown) has no image.
func EmblemImagePath(code int) string {
	if code == 0 {
		return ""
	}
	return fmt.Sprintf(emblemImagePattern, PadCode(code))
}

var emblemNames = []struct {
	code int
	name string
}{
	{0, "UNKNOWN"},
	{1, "CHRISTIAN CROSS"},
	{2, "BUDDHIST (Wheel of Righteousness)"},
	{3, "JUDAISM (Star of David)"},
	{4, "PRESBYTERIAN CROSS"},
	{5, "RUSSIAN ORTHODOX CROSS"},
	{6, "LUTHERAN CROSS"},
	{7, "EPISCOPAL CROSS"},
	{8, "UNITARIAN CHRUCH"},
	{9, "PRESBYTERIAN CROSS"},
	{10, "RUSSIAN ORTHODOX CROSS"},
	{11, "MORMON (Angel Moroni)"},
	{12, "NATIVE AMERICAN CHURCH OF NORTH AMERICA"},
	{13, "SERBIAN ORTHODOX"},
	{14, "GREEK CROSS"},
	{15, "BAHAI (9 Pointed Star)"},
	{16, "ATHEIST"},
	{17, "MUSLIM (Crescent and Star)"},
	{18, "HINDU"},
	{19, "KONKO-KYO FAITH"},
	{20, "COMMUNITY OF CHRIST"},
	{21, "SUFISM REORIENTED"},
	{22, "TENRIKYO CHURCH"},
	{23, "SEICHO-NO-IE"},
	{24, "CHURCH OF WORLD MESSIANITY"},
	{25, "UNITED CHURCH OF RELIGIOUS SCIENCE"},
	{26, "CHRISTIAN REFORMED CHURCH"},
	{27, "UNITED MORAVIAN CHURCH"},
	{28, "ECKANKAR"},
	{29, "CHRISTIAN CHURCH"},
	{30, "CHRISTIAN & MISSIONARY ALLIANCE"},
	{31, "UNITED CHURCH OF CHRIST"},
	{32, "HUMANIST"},
	{33, "PRESBYTERIAN CHURCH (USA)"},
	{34, "IZUMO TAISHAKYO MISSION OF HAWAII"},
	{35, "SOKA GAKKAI INTERNATIONAL (USA)"},
	{36, "SIKH (KHANDA)"},
	{37, "WICCA (Pentacle)"},
	{38, "LUTHERAN CHURCH MISSOURI SYNOD"},
	{39, "NEW APOSTOLIC CHURCH"},
	{40, "SEVENTH DAY ADVENTIST CHURCH"},
	{41, "CELTIC CROSS"},
	{42, "ARMENIAN CROSS"},
	{43, "FAROHAR"},
	{44, "MESSIANIC JEWISH"},
	{45, "KOHEN HANDS"},
	{46, "CATHOLIC CELTIC CROSS"},
	{47, "CHRISTIAN SCIENTIST (Cross & Crown)"},
	{48, "MEDICINE WHEEL"},
	{49, "INFINITY"},
	{50, "SOUTHERN CROSS OF HONOR (Confederate States)"},
	{51, "LUTHER ROSE"},
	{52, "LANDING EAGLE"},
	{53, "FOUR DIRECTIONS"},
	{54, "CHURCH OF NAZARENE"},
	{55, "HAMMER OF THOR"},
	{56, "UNIFICATION CHURCH"},
	{57, "SANDHILL CRANE"},
	{58, "CHURCH OF GOD"},
	{59, "POMEGRANATE"},
	{60, "MESSIANIC"},
	{61, "SHINTO"},
	{62, "SACRED HEART"},
	{63, "AFRICAN ANCESTRAL TRADITIONALIST"},
	{64, "MALTESE CROSS"},
	{65, "DRUID (AWEN)"},
	{66, "WISCONSIN EVANGELICAL LUTHERAN SYNOD"},
	{67, "POLISH NATIONAL CATHOLIC CHURCH"},
	{68, "GUARDIAN ANGEL"},
	{69, "HEART"},
	{70, "SHEPHERD AND FLAG"},
	{71, "AFRICAN METHODIST EPISCOPAL"},
	{72, "EVANGELICAL LUTHERAN CHURCH"},
	{73, "UNIVERSALIST CROSS"},
	{74, "FAITH AND PRAYER"},
	{98, "MUSLIM (Islamic 5-Pointed Star)"},
	{99, "NON REQUESTED"},
}

var emblems = sync.OnceValue(func() []record.Emblem {
	out := make([]record.Emblem, 0, len(emblemNames))
	for _, e := range emblemNames {
		out = append(out, record.Emblem{
			Code:  PadCode(e.code),
			Name:  e.name,
			Image: EmblemImagePath(e.code),
		})
	}
	return out
})

// Emblems returns a copy of the emblem catalog in code order.
func Emblems() []record.Emblem {
	src := emblems()
	out := make([]record.Emblem, len(src))
	copy(out, src)
	return out
}
