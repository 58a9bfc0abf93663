package hebcal

import "strings"

// Hebrew substrings that force a dedicated day classification. The
// congregation's front end special-cases these two days, so the match
// rules here are a compatibility contract and must not be "improved".
const (
	yomKippurMarker    = "כיפור"
	simchatTorahMarker = "שמחת תורה"
)

// classify scans the Hebcal items in response order and reduces them to
// a single LeyningInfo. The candidate portion name is the item's Hebrew
// name when present, else its English title; the last item wins. A
// shabbat item sets the day type; yomtov and roshchodesh items also
// capture the holiday name.
func classify(items []item) LeyningInfo {
	info := LeyningInfo{DayType: DayTypeWeekday}

	for _, it := range items {
		name := it.Hebrew
		if name == "" {
			name = it.Title
		}
		if name != "" {
			info.Parsha = name
		}

		switch it.Category {
		case "shabbat":
			info.DayType = DayTypeShabbat
		case "yomtov":
			info.Yomtov = it.Hebrew
			info.DayType = overrideDayType(it.Hebrew, DayTypeYomTov)
		case "roshchodesh":
			info.Yomtov = it.Hebrew
			info.DayType = overrideDayType(it.Hebrew, DayTypeRoshChodesh)
		}
	}

	return info
}

// overrideDayType applies the special-cased holiday classifications,
// falling back to the category's own day type.
func overrideDayType(hebrewName, fallback string) string {
	switch {
	case strings.Contains(hebrewName, yomKippurMarker):
		return DayTypeYomKippur
	case strings.Contains(hebrewName, simchatTorahMarker):
		return DayTypeSimchatTorah
	default:
		return fallback
	}
}
