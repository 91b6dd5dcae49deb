package domain

// CalendarYear is the year the collection calendar below is valid for.
const CalendarYear = 2025

// calendar2025 is the official Calvenzano collection calendar: for each
// category, the days of each month on which it is picked up. The data is
// kept verbatim from the published schedule, including entries that break
// the nominal weekly pattern (holiday shifts and the like). The textile
// column is the municipality's precomputed "last Thursday of the month"
// list and must not be replaced by weekday arithmetic: December lists the
// 25th even though the true last Thursday of that month falls in the next
// year.
var calendar2025 = map[WasteCategory]map[int][]int{
	PaperCardboard: { // every other Saturday
		1:  {4, 18},
		2:  {1, 15},
		3:  {1, 15, 29},
		4:  {12, 26},
		5:  {10, 24},
		6:  {7, 21},
		7:  {5, 19},
		8:  {2, 16, 30},
		9:  {13, 27},
		10: {11, 25},
		11: {8, 22},
		12: {6, 20},
	},
	Unsorted: { // every Wednesday; January 2 is a Thursday
		1:  {2, 8, 15, 22, 29},
		2:  {5, 12, 19, 26},
		3:  {5, 12, 19, 26},
		4:  {2, 9, 16, 23, 30},
		5:  {7, 14, 21, 28},
		6:  {4, 11, 18, 25},
		7:  {2, 9, 16, 23, 30},
		8:  {6, 13, 20, 27},
		9:  {3, 10, 17, 24},
		10: {1, 8, 15, 22, 29},
		11: {5, 12, 19, 26},
		12: {3, 10, 17, 24, 31},
	},
	Organic: { // every Saturday; Wednesday and Saturday in summer
		1:  {4, 11, 18, 25},
		2:  {1, 8, 15, 22},
		3:  {1, 8, 15, 22, 29},
		4:  {5, 12, 19, 26},
		5:  {3, 10, 17, 24, 31},
		6:  {4, 7, 11, 14, 18, 21, 25, 28},
		7:  {2, 5, 9, 12, 16, 19, 23, 26, 30},
		8:  {2, 6, 9, 13, 16, 20, 23, 27, 30},
		9:  {3, 6, 10, 13, 17, 20, 24, 27},
		10: {4, 11, 18, 25},
		11: {3, 8, 15, 22, 29}, // November 3 is a Monday
		12: {6, 13, 20, 27},
	},
	Plastic: { // every Saturday
		1:  {4, 11, 18, 25},
		2:  {1, 8, 15, 22},
		3:  {1, 8, 15, 22, 29},
		4:  {5, 12, 19, 26},
		5:  {3, 10, 17, 24, 31},
		6:  {7, 14, 21, 28},
		7:  {5, 12, 19, 26},
		8:  {2, 9, 16, 23, 30},
		9:  {6, 13, 20, 27},
		10: {4, 11, 18, 25},
		11: {4, 8, 15, 22, 29}, // November 4 is a Tuesday
		12: {6, 13, 20, 27},
	},
	GlassCans: { // every Friday; August 16 is a Saturday
		1:  {3, 10, 17, 24, 31},
		2:  {7, 14, 21, 28},
		3:  {7, 14, 21, 28},
		4:  {4, 11, 18, 25},
		5:  {2, 9, 16, 23, 30},
		6:  {6, 13, 20, 27},
		7:  {4, 11, 18, 25},
		8:  {1, 8, 16, 22, 29},
		9:  {5, 12, 19, 26},
		10: {3, 10, 17, 24, 31},
		11: {7, 14, 21, 28},
		12: {5, 12, 19, 26},
	},
	Textiles: { // last Thursday of each month, as published
		1:  {30},
		2:  {27},
		3:  {27},
		4:  {24},
		5:  {29},
		6:  {26},
		7:  {31},
		8:  {28},
		9:  {25},
		10: {30},
		11: {27},
		12: {25},
	},
}

// CollectionFor returns the categories collected on the given day and month,
// in calendar order. An empty result means no collection that day. Passing a
// date outside the calendar (day 0, month 13) simply yields an empty result;
// validity of the date is the caller's concern.
func CollectionFor(day, month int) []WasteCategory {
	var out []WasteCategory
	for _, cat := range Categories {
		for _, d := range calendar2025[cat][month] {
			if d == day {
				out = append(out, cat)
				break
			}
		}
	}
	return out
}
