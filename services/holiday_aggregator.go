package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"holidayapi/models"
)

// UpcomingHoliday là ngày lễ kèm số ngày còn lại tính từ hôm nay
type UpcomingHoliday struct {
	models.Holiday
	DaysUntil int `json:"daysUntil"`
}

// GroupByMonth buckets holidays by calendar month (1-12). Only months with at
// least one holiday get a key; order inside a bucket follows the input.
func GroupByMonth(holidays []models.Holiday) map[int][]models.Holiday {
	byMonth := make(map[int][]models.Holiday)
	for _, h := range holidays {
		m := h.Month()
		if m == 0 {
			continue
		}
		byMonth[m] = append(byMonth[m], h)
	}
	return byMonth
}

// FilterByMonth trả về các ngày lễ trong tháng và tên tiếng Anh của tháng
func FilterByMonth(holidays []models.Holiday, month int) ([]models.Holiday, string) {
	out := make([]models.Holiday, 0)
	for _, h := range holidays {
		if h.Month() == month {
			out = append(out, h)
		}
	}
	return out, MonthName(month)
}

// MonthName returns the English name of a 1-indexed month, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// Upcoming keeps holidays on or after today, sorts them by date (stable),
// truncates to count and annotates each with DaysUntil.
func Upcoming(holidays []models.Holiday, today time.Time, count int) []UpcomingHoliday {
	today = truncateToDate(today)

	type dated struct {
		h   models.Holiday
		day time.Time
	}
	kept := make([]dated, 0, len(holidays))
	for _, h := range holidays {
		day, ok := h.Day()
		if !ok || day.Before(today) {
			continue
		}
		kept = append(kept, dated{h: h, day: day})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].day.Before(kept[j].day)
	})
	if count >= 0 && len(kept) > count {
		kept = kept[:count]
	}

	out := make([]UpcomingHoliday, 0, len(kept))
	for _, d := range kept {
		out = append(out, UpcomingHoliday{
			Holiday:   d.h,
			DaysUntil: int(math.Ceil(d.day.Sub(today).Hours() / 24)),
		})
	}
	return out
}

// FindByDate so khớp chính xác ngày dạng YYYY-MM-DD, không phải khoảng thời gian
func FindByDate(holidays []models.Holiday, date time.Time) (models.Holiday, bool) {
	want := date.Format(models.DateLayout)
	for _, h := range holidays {
		got, err := NormalizeDate(h.Date)
		if err != nil {
			continue
		}
		if got == want {
			return h, true
		}
	}
	return models.Holiday{}, false
}

// GroupByType puts a holiday under every type it carries. The returned keys are
// in first-seen order and equal the union of all Types.
func GroupByType(holidays []models.Holiday) ([]string, map[string][]models.Holiday) {
	keys := make([]string, 0)
	byType := make(map[string][]models.Holiday)
	for _, h := range holidays {
		for _, t := range h.Types {
			if _, ok := byType[t]; !ok {
				keys = append(keys, t)
			}
			byType[t] = append(byType[t], h)
		}
	}
	return keys, byType
}

// SearchByName matches holidays whose name or local name contains query after
// transliteration and case folding, closest names first. When nothing matches
// it suggests the nearest holiday name instead.
func SearchByName(holidays []models.Holiday, query string) ([]models.Holiday, string) {
	q := foldName(query)
	if q == "" {
		return []models.Holiday{}, ""
	}

	type ranked struct {
		h    models.Holiday
		dist int
	}
	matches := make([]ranked, 0)
	for _, h := range holidays {
		name := foldName(h.Name)
		if !strings.Contains(name, q) && !strings.Contains(foldName(h.LocalName), q) {
			continue
		}
		dist := levenshtein.DistanceForStrings([]rune(name), []rune(q), levenshtein.DefaultOptions)
		matches = append(matches, ranked{h: h, dist: dist})
	}

	if len(matches) == 0 {
		return []models.Holiday{}, suggestName(holidays, q)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	out := make([]models.Holiday, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.h)
	}
	return out, ""
}

func suggestName(holidays []models.Holiday, folded string) string {
	if len(holidays) == 0 {
		return ""
	}
	byFolded := make(map[string]string, len(holidays))
	bag := make([]string, 0, len(holidays))
	for _, h := range holidays {
		f := foldName(h.Name)
		if _, seen := byFolded[f]; seen {
			continue
		}
		byFolded[f] = h.Name
		bag = append(bag, f)
	}
	cm := closestmatch.New(bag, []int{2, 3})
	return byFolded[cm.Closest(folded)]
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}
