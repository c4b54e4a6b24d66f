package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zenithapp/zenith-server/internal/habits"
)

func TestGenerateInsight_NilTrendIsNeutral(t *testing.T) {
	got := GenerateInsight(nil, UserContext{Gender: "male"}, habits.ScopeGlobal)
	assert.Equal(t, ColorNeutral, got.Color)
	assert.Equal(t, "Mulai Perjalanan", got.Title)
	assert.NotEmpty(t, got.Tip)
}

func TestGenerateInsight_MenstruatingFemaleAlwaysPink(t *testing.T) {
	// Even with terrible numbers the exemption narrative wins.
	trend := &TrendResult{ScoreVelocity: -30, WajibCompliance: 10}
	user := UserContext{Gender: "female", IsMenstruating: true}

	got := GenerateInsight(trend, user, habits.ScopeWajib)
	assert.Equal(t, ColorPink, got.Color)
	assert.Equal(t, "Masa Rehat Berkah", got.Title)
	assert.NotContains(t, got.Text, "%")
}

func TestGenerateInsight_LowComplianceWarnsOnWajibScope(t *testing.T) {
	trend := &TrendResult{ScoreVelocity: 5, WajibCompliance: 60, WeakestDay: "Senin"}
	user := UserContext{Gender: "male"}

	got := GenerateInsight(trend, user, habits.ScopeWajib)
	assert.Equal(t, ColorWarning, got.Color)
	assert.Equal(t, "Prioritas Utama", got.Title)
	assert.Contains(t, got.Text, "60%")
	assert.Contains(t, got.Text, "Senin")

	// The same numbers outside the wajib scope follow the velocity.
	got = GenerateInsight(trend, user, habits.ScopeGlobal)
	assert.Equal(t, ColorPositive, got.Color)
}

func TestGenerateInsight_NegativeVelocityWarns(t *testing.T) {
	trend := &TrendResult{ScoreVelocity: -7.4, WajibCompliance: 95, WeakestDay: "Kamis"}

	male := GenerateInsight(trend, UserContext{Gender: "male"}, habits.ScopeGlobal)
	assert.Equal(t, ColorWarning, male.Color)
	assert.Equal(t, "Evaluasi Disiplin", male.Title)
	assert.Contains(t, male.Text, "7 poin")

	female := GenerateInsight(trend, UserContext{Gender: "female"}, habits.ScopeGlobal)
	assert.Equal(t, ColorWarning, female.Color)
	assert.Equal(t, "Pelan tapi Pasti", female.Title)
}

func TestGenerateInsight_PositiveVelocity(t *testing.T) {
	trend := &TrendResult{ScoreVelocity: 12, WajibCompliance: 95}

	male := GenerateInsight(trend, UserContext{Gender: "male"}, habits.ScopeGlobal)
	assert.Equal(t, ColorPositive, male.Color)
	assert.Equal(t, "Mental Pejuang", male.Title)
	assert.Contains(t, male.Text, "12 poin")

	female := GenerateInsight(trend, UserContext{Gender: "female"}, habits.ScopeGlobal)
	assert.Equal(t, ColorPositive, female.Color)
	assert.Equal(t, "Progress Cantik", female.Title)
}

func TestGenerateInsight_MentionsHabitInDanger(t *testing.T) {
	trend := &TrendResult{ScoreVelocity: 3, WajibCompliance: 95, HabitInDanger: "Sholat Witir"}

	got := GenerateInsight(trend, UserContext{Gender: "male"}, habits.ScopeGlobal)
	assert.Equal(t, ColorPositive, got.Color)
	assert.Contains(t, got.Text, "Sholat Witir")

	clean := &TrendResult{ScoreVelocity: 3, WajibCompliance: 95}
	got = GenerateInsight(clean, UserContext{Gender: "male"}, habits.ScopeGlobal)
	assert.True(t, strings.Contains(got.Text, "Semua amalan terjaga"))
}

func TestGenerateInsight_UnknownWeakestDayPlaceholder(t *testing.T) {
	trend := &TrendResult{ScoreVelocity: -2, WajibCompliance: 95}

	got := GenerateInsight(trend, UserContext{Gender: "male"}, habits.ScopeGlobal)
	assert.Contains(t, got.Text, "tertentu")
}
