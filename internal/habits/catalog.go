// Package habits holds the static worship habit catalog. The catalog is
// immutable build-time data: user preferences only toggle which optional
// entries are shown, never the definitions themselves.
package habits

// Category of a habit. Wajib (obligatory) habits are always physical and
// never user-removable.
type Category string

const (
	CategoryWajib  Category = "wajib"
	CategorySunnah Category = "sunnah"
	CategoryCustom Category = "custom"
)

// Type distinguishes simple checkboxes from numeric counters.
type Type string

const (
	TypeCheckbox Type = "checkbox"
	TypeCounter  Type = "counter"
)

// TimeBlock places a habit in the daily timeline.
type TimeBlock string

const (
	BlockDeepNight TimeBlock = "sepertiga_malam"
	BlockDawn      TimeBlock = "subuh"
	BlockMidday    TimeBlock = "pagi_siang"
	BlockAfternoon TimeBlock = "sore"
	BlockSunset    TimeBlock = "maghrib_isya"
	BlockBedtime   TimeBlock = "malam_tidur"
	BlockAnytime   TimeBlock = "kapan_saja"
	BlockWeekly    TimeBlock = "weekly"
	BlockMonthly   TimeBlock = "monthly"
	BlockYearly    TimeBlock = "yearly"
)

// BlockOrder is the display order of timeline sections.
var BlockOrder = []TimeBlock{
	BlockDeepNight, BlockDawn, BlockMidday, BlockAfternoon,
	BlockSunset, BlockBedtime, BlockAnytime, BlockWeekly, BlockMonthly, BlockYearly,
}

// Definition describes one entry of the static catalog.
type Definition struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Type      Type      `json:"type"`
	TimeBlock TimeBlock `json:"timeBlock"`
	StartHour int       `json:"startHour"`

	Target int    `json:"target,omitempty"`
	Unit   string `json:"unit,omitempty"`

	Removable bool   `json:"isRemovable"`
	GuideURL  string `json:"guideUrl,omitempty"`

	// IsPhysical marks bodily acts, suspended during menstruation.
	// IsVerbal marks recitation acts that remain permitted.
	IsPhysical bool `json:"isPhysical"`
	IsVerbal   bool `json:"isVerbal"`

	// Weight is the habit's contribution to the daily quality score.
	Weight int      `json:"weight"`
	Tags   []string `json:"tags,omitempty"`

	// AvailableDays restricts the habit to given weekdays (0=Sunday).
	AvailableDays []int `json:"availableDays,omitempty"`
	// HijriDates restricts the habit to given Hijri days of month.
	HijriDates []int `json:"hijriDates,omitempty"`
	// HijriMonth restricts the habit to one Hijri month (1-12), 0 = any.
	HijriMonth int `json:"hijriMonth,omitempty"`
}

// IsExemptPhysical is the single menstruation rule shared by the
// eligibility filter, the compliance calculation and the at-risk habit
// analysis: a physical act is suspended while the user is menstruating,
// obligatory prayers included. Verbal acts stay permitted.
func IsExemptPhysical(def Definition, menstruating bool) bool {
	return menstruating && def.IsPhysical
}

// HasTag reports whether the definition carries the given tag.
func (d Definition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Master is the full catalog, ordered by timeline.
var Master = []Definition{
	// Sepertiga malam
	{ID: "tahajjud", Title: "Sholat Tahajjud", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockDeepNight, StartHour: 2, Removable: true, IsPhysical: true, Weight: 5, Tags: []string{"qiyam"}},

	// Subuh
	{ID: "qobliyah_subuh", Title: "Qobliyah Subuh", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockDawn, StartHour: 4, Removable: true, IsPhysical: true, Weight: 3, Tags: []string{"rawatib", "muakkad"}},
	{ID: "sholat_subuh", Title: "Sholat Subuh", Category: CategoryWajib, Type: TypeCheckbox, TimeBlock: BlockDawn, StartHour: 4, IsPhysical: true, Weight: 10, Tags: []string{"wajib"}},
	{ID: "dzikir_pagi", Title: "Dzikir Al-Matsurat Pagi", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockDawn, StartHour: 4, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"dzikir"}, GuideURL: "https://almatsurat.net/sugro"},
	{ID: "sedekah_subuh", Title: "Sedekah Subuh", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockDawn, StartHour: 4, Removable: true, Weight: 2, Tags: []string{"sedekah"}},
	{ID: "baca_waqiah", Title: "Membaca Q.S. Al-Waqiah", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockDawn, StartHour: 4, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"quran"}, GuideURL: "https://quran.com/56"},
	{ID: "syuruq", Title: "Sholat Syuruq", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockDawn, StartHour: 6, Removable: true, IsPhysical: true, Weight: 2, Tags: []string{"duha"}, GuideURL: "https://khazanah.republika.co.id/berita/siog99483/tata-cara-sholat-syuruq-yang-pahalanya-bernilai-haji-dan-umrah"},

	// Pagi - siang
	{ID: "sholat_dhuha", Title: "Sholat Dhuha", Category: CategorySunnah, Type: TypeCounter, Target: 4, Unit: "rakaat", TimeBlock: BlockMidday, StartHour: 7, Removable: true, IsPhysical: true, Weight: 2, Tags: []string{"duha"}, GuideURL: "https://www.zalora.co.id/blog/fashion/muslimwear/niat-sholat-dhuha-bacaan-tata-cara-dan-doa-setelah-sholat/"},
	{ID: "qobliyah_zuhur", Title: "Qobliyah Zuhur", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockMidday, StartHour: 11, Removable: true, IsPhysical: true, Weight: 3, Tags: []string{"rawatib", "muakkad"}},
	{ID: "sholat_zuhur", Title: "Sholat Zuhur", Category: CategoryWajib, Type: TypeCheckbox, TimeBlock: BlockMidday, StartHour: 11, IsPhysical: true, Weight: 10, Tags: []string{"wajib"}},
	{ID: "badiyah_zuhur", Title: "Ba'diyah Zuhur", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockMidday, StartHour: 12, Removable: true, IsPhysical: true, Weight: 3, Tags: []string{"rawatib", "muakkad"}},
	{ID: "baca_arrahman", Title: "Membaca Q.S. Ar-Rahman", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockMidday, StartHour: 7, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"quran"}, GuideURL: "https://quran.com/55"},

	// Sore
	{ID: "qobliyah_asar", Title: "Qobliyah Asar", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockAfternoon, StartHour: 15, Removable: true, IsPhysical: true, Weight: 1, Tags: []string{"rawatib"}},
	{ID: "sholat_asar", Title: "Sholat Asar", Category: CategoryWajib, Type: TypeCheckbox, TimeBlock: BlockAfternoon, StartHour: 15, IsPhysical: true, Weight: 10, Tags: []string{"wajib"}},
	{ID: "baca_assajdah", Title: "Membaca Q.S. As-Sajdah", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockAfternoon, StartHour: 15, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"quran"}, GuideURL: "https://quran.com/32"},
	{ID: "dzikir_petang", Title: "Dzikir Al-Matsurat Petang", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockAfternoon, StartHour: 15, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"dzikir"}, GuideURL: "https://almatsurat.net/sugro"},

	// Maghrib - isya
	{ID: "qobliyah_maghrib", Title: "Qobliyah Maghrib", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockSunset, StartHour: 17, Removable: true, IsPhysical: true, Weight: 1, Tags: []string{"rawatib"}},
	{ID: "sholat_maghrib", Title: "Sholat Maghrib", Category: CategoryWajib, Type: TypeCheckbox, TimeBlock: BlockSunset, StartHour: 17, IsPhysical: true, Weight: 10, Tags: []string{"wajib"}},
	{ID: "badiyah_maghrib", Title: "Ba'diyah Maghrib", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockSunset, StartHour: 18, Removable: true, IsPhysical: true, Weight: 3, Tags: []string{"rawatib", "muakkad"}},
	{ID: "baca_yasin", Title: "Membaca Q.S. Yasin", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockSunset, StartHour: 18, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"quran"}, GuideURL: "https://quran.com/36"},

	// Malam - tidur
	{ID: "qobliyah_isya", Title: "Qobliyah Isya", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 19, Removable: true, IsPhysical: true, Weight: 1, Tags: []string{"rawatib"}},
	{ID: "sholat_isya", Title: "Sholat Isya", Category: CategoryWajib, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 19, IsPhysical: true, Weight: 10, Tags: []string{"wajib"}},
	{ID: "badiyah_isya", Title: "Ba'diyah Isya", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 19, Removable: true, IsPhysical: true, Weight: 3, Tags: []string{"rawatib", "muakkad"}},
	{ID: "sholat_tarawih", Title: "Sholat Tarawih", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 19, Removable: true, IsPhysical: true, Weight: 5, Tags: []string{"qiyam"}, HijriMonth: 9},
	{ID: "sholat_witir", Title: "Sholat Witir", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 19, Removable: true, IsPhysical: true, Weight: 5, Tags: []string{"qiyam"}},
	{ID: "baca_almulk", Title: "Membaca Q.S. Al-Mulk", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 20, Removable: true, IsVerbal: true, Weight: 1, Tags: []string{"quran"}, GuideURL: "https://quran.com/67"},
	{ID: "wudhu_tidur", Title: "Menjaga wudhu", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 20, Removable: true, IsPhysical: true, Weight: 1, Tags: []string{"thaharah"}},
	{ID: "muhasabah", Title: "Muhasabah / Maafkan Orang", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockBedtime, StartHour: 20, Removable: true, Weight: 2, Tags: []string{"tazkiyah"}},

	// Kapan saja
	{ID: "tilawah_target", Title: "Tilawah", Category: CategorySunnah, Type: TypeCounter, Unit: "halaman", TimeBlock: BlockAnytime, Removable: true, IsPhysical: true, IsVerbal: true, Weight: 3, Tags: []string{"quran"}},
	{ID: "shalawat_target", Title: "Shalawat Nabi", Category: CategorySunnah, Type: TypeCounter, Target: 1000, Unit: "kali", TimeBlock: BlockAnytime, Removable: true, IsVerbal: true, Weight: 2, Tags: []string{"dzikir"}},

	// Periodic
	{ID: "puasa_senin", Title: "Puasa Senin", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockWeekly, Removable: true, IsPhysical: true, Weight: 5, Tags: []string{"puasa"}, AvailableDays: []int{1}},
	{ID: "puasa_kamis", Title: "Puasa Kamis", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockWeekly, Removable: true, IsPhysical: true, Weight: 5, Tags: []string{"puasa"}, AvailableDays: []int{4}},
	{ID: "jumat_alkahfi", Title: "Baca Al-Kahfi", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockWeekly, Removable: true, IsVerbal: true, Weight: 3, Tags: []string{"quran"}, AvailableDays: []int{5}, GuideURL: "https://quran.com/18"},
	{ID: "puasa_ayyamul_bidh", Title: "Puasa Ayyamul Bidh", Category: CategorySunnah, Type: TypeCheckbox, TimeBlock: BlockMonthly, Removable: true, IsPhysical: true, Weight: 5, Tags: []string{"puasa"}, HijriDates: []int{13, 14, 15}},
}

// ByID looks up a catalog entry. The second result is false for unknown ids.
func ByID(id string) (Definition, bool) {
	for _, d := range Master {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// InsightScope selects the habit subset the history analyzer looks at.
type InsightScope string

const (
	ScopeGlobal  InsightScope = "global"
	ScopeWajib   InsightScope = "wajib"
	ScopeRawatib InsightScope = "rawatib"
	ScopeQiyam   InsightScope = "qiyam"
	ScopeDuha    InsightScope = "duha"
	ScopeQuran   InsightScope = "quran"
	ScopePuasa   InsightScope = "puasa"
)

// WajibPrayerIDs lists the five canonical daily prayers used for the
// compliance percentage.
var WajibPrayerIDs = []string{"sholat_subuh", "sholat_zuhur", "sholat_asar", "sholat_maghrib", "sholat_isya"}

// InsightGroups maps each scope to its fixed habit-id subset. The global
// scope is empty, meaning "all habits".
var InsightGroups = map[InsightScope][]string{
	ScopeGlobal:  {},
	ScopeWajib:   WajibPrayerIDs,
	ScopeRawatib: {"qobliyah_subuh", "qobliyah_zuhur", "badiyah_zuhur", "qobliyah_asar", "qobliyah_maghrib", "badiyah_maghrib", "qobliyah_isya", "badiyah_isya"},
	ScopeQiyam:   {"tahajjud", "sholat_witir", "sholat_tarawih"},
	ScopeDuha:    {"sholat_dhuha", "syuruq"},
	ScopeQuran:   {"baca_waqiah", "baca_arrahman", "baca_assajdah", "baca_yasin", "baca_almulk", "jumat_alkahfi", "tilawah_target"},
	ScopePuasa:   {"puasa_senin", "puasa_kamis", "puasa_ayyamul_bidh"},
}

// ValidScope reports whether the given string names a known scope.
func ValidScope(s string) bool {
	_, ok := InsightGroups[InsightScope(s)]
	return ok
}

// InScope reports whether a habit id belongs to the scope. Everything is
// in the global scope.
func InScope(habitID string, scope InsightScope) bool {
	ids, ok := InsightGroups[scope]
	if !ok {
		return false
	}
	if scope == ScopeGlobal {
		return true
	}
	for _, id := range ids {
		if id == habitID {
			return true
		}
	}
	return false
}
