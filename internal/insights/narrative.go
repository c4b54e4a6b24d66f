package insights

import (
	"fmt"
	"math"

	"github.com/zenithapp/zenith-server/internal/habits"
)

// Insight is the narrative card rendered on the history page. Color is
// the stable contract: positive | warning | pink | neutral.
type Insight struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Color string `json:"color"`
	Tip   string `json:"tip"`
}

const (
	ColorPositive = "positive"
	ColorWarning  = "warning"
	ColorPink     = "pink"
	ColorNeutral  = "neutral"
)

// complianceWarningThreshold: below this wajib compliance the message is
// always a warning, whatever the velocity says.
const complianceWarningThreshold = 85

// GenerateInsight turns a trend result into the narrative card. It never
// fails: a nil trend yields the fixed "not enough data" message, and a
// menstruating female user always receives the exemption narrative
// instead of any prayer-shortfall messaging.
func GenerateInsight(trend *TrendResult, user UserContext, scope habits.InsightScope) Insight {
	if trend == nil {
		return Insight{
			Title: "Mulai Perjalanan",
			Text:  "Belum ada data cukup. Mulai isi jurnalmu untuk melihat analisa.",
			Color: ColorNeutral,
			Tip:   "Isi jurnal hari ini.",
		}
	}

	if user.Gender == "female" && user.IsMenstruating {
		return Insight{
			Title: "Masa Rehat Berkah",
			Text:  "Istirahat sholat adalah ketaatan. Saatnya fokus memperkuat hati dengan dzikir dan shalawat. Jangan khawatir dengan heatmap yang kosong.",
			Color: ColorPink,
			Tip:   "Fokus pada amalan lisan seperti Shalawat Nabi hari ini.",
		}
	}

	weakestDay := trend.WeakestDay
	if weakestDay == "" {
		weakestDay = "tertentu"
	}

	if scope == habits.ScopeWajib && trend.WajibCompliance < complianceWarningThreshold {
		return Insight{
			Title: "Prioritas Utama",
			Text:  fmt.Sprintf("Kepatuhan sholat wajib baru %d%%. Ini fondasi segalanya, dahulukan sebelum amalan lain. Hari %s butuh perhatian lebih.", trend.WajibCompliance, weakestDay),
			Color: ColorWarning,
			Tip:   "Pasang alarm 10 menit sebelum tiap waktu sholat.",
		}
	}

	delta := int(math.Round(math.Abs(trend.ScoreVelocity)))

	if trend.ScoreVelocity < 0 {
		if user.Gender == "female" {
			return Insight{
				Title: "Pelan tapi Pasti",
				Text:  fmt.Sprintf("Jangan patah semangat ya. Walau turun %d poin, istiqomah itu perjalanan. Yuk, perbaiki pelan-pelan mulai dari hari %s nanti.", delta, weakestDay),
				Color: ColorWarning,
				Tip:   "Mulai dari satu amalan yang paling ringan dulu.",
			}
		}
		return Insight{
			Title: "Evaluasi Disiplin",
			Text:  fmt.Sprintf("Pekannya sedang berat? Performa turun %d poin. Waspadai hari %s, biasanya antum lengah di sana. Bangkit!", delta, weakestDay),
			Color: ColorWarning,
			Tip:   "Coba paksa bangun 15 menit lebih awal besok.",
		}
	}

	habitNote := trend.HabitInDanger
	if habitNote == "" {
		habitNote = "Semua amalan terjaga"
	} else {
		habitNote = fmt.Sprintf("Amalan %s mulai jarang terlihat, jangan sampai lepas", habitNote)
	}

	if user.Gender == "female" {
		return Insight{
			Title: "Progress Cantik",
			Text:  fmt.Sprintf("Keren sekali! Kamu %d poin lebih rajin dari minggu lalu. Hati jadi lebih tenang kan? %s.", delta, habitNote),
			Color: ColorPositive,
			Tip:   "Luangkan waktu 5 menit untuk muhasabah sebelum tidur.",
		}
	}
	return Insight{
		Title: "Mental Pejuang",
		Text:  fmt.Sprintf("Masya Allah, naik %d poin! Pertahankan konsistensi ini. %s.", delta, habitNote),
		Color: ColorPositive,
		Tip:   "Tambahkan satu amalan sunnah baru untuk pekan depan?",
	}
}
