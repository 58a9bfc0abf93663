package hebcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEmptyResponseIsWeekday(t *testing.T) {
	info := classify(nil)
	assert.Equal(t, DayTypeWeekday, info.DayType)
	assert.Empty(t, info.Parsha)
	assert.Empty(t, info.Yomtov)
}

func TestClassifyShabbatParsha(t *testing.T) {
	info := classify([]item{
		{Title: "Parashat Yitro", Hebrew: "פרשת יתרו", Category: "parashat"},
		{Title: "Shabbat", Hebrew: "שבת", Category: "shabbat"},
	})
	assert.Equal(t, DayTypeShabbat, info.DayType)
	assert.Equal(t, "שבת", info.Parsha, "later items overwrite the portion name")
	assert.Empty(t, info.Yomtov)
}

func TestClassifyPrefersHebrewNameFallsBackToTitle(t *testing.T) {
	info := classify([]item{
		{Title: "Parashat Bo", Category: "parashat"},
	})
	assert.Equal(t, "Parashat Bo", info.Parsha)

	info = classify([]item{
		{Title: "Parashat Bo", Hebrew: "פרשת בא", Category: "parashat"},
	})
	assert.Equal(t, "פרשת בא", info.Parsha)
}

func TestClassifyYomtovCapturesHolidayName(t *testing.T) {
	info := classify([]item{
		{Title: "Shavuot", Hebrew: "שבועות", Category: "yomtov"},
	})
	assert.Equal(t, DayTypeYomTov, info.DayType)
	assert.Equal(t, "שבועות", info.Yomtov)
}

func TestClassifyRoshChodesh(t *testing.T) {
	info := classify([]item{
		{Title: "Rosh Chodesh Adar", Hebrew: "ראש חודש אדר", Category: "roshchodesh"},
	})
	assert.Equal(t, DayTypeRoshChodesh, info.DayType)
	assert.Equal(t, "ראש חודש אדר", info.Yomtov)
}

func TestClassifyYomKippurOverride(t *testing.T) {
	info := classify([]item{
		{Title: "Yom Kippur", Hebrew: "יום כיפור", Category: "yomtov"},
	})
	assert.Equal(t, DayTypeYomKippur, info.DayType)
	assert.Equal(t, "יום כיפור", info.Yomtov)
}

func TestClassifySimchatTorahOverride(t *testing.T) {
	info := classify([]item{
		{Title: "Simchat Torah", Hebrew: "שמחת תורה", Category: "yomtov"},
	})
	assert.Equal(t, DayTypeSimchatTorah, info.DayType)
	assert.Equal(t, "שמחת תורה", info.Yomtov)
}

func TestClassifyNamelessItemDoesNotClearPortion(t *testing.T) {
	info := classify([]item{
		{Title: "Parashat Bo", Hebrew: "פרשת בא", Category: "parashat"},
		{Category: "candles"},
	})
	assert.Equal(t, "פרשת בא", info.Parsha, "an item with no name leaves the previous candidate in place")
}

func TestClassifyLastItemWins(t *testing.T) {
	info := classify([]item{
		{Title: "Rosh Chodesh", Hebrew: "ראש חודש", Category: "roshchodesh"},
		{Title: "Chanukah", Hebrew: "חנוכה", Category: "yomtov"},
	})
	assert.Equal(t, DayTypeYomTov, info.DayType)
	assert.Equal(t, "חנוכה", info.Yomtov)
	assert.Equal(t, "חנוכה", info.Parsha)
}
