package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Names is the name table a renderer uses for headers and the weekday row.
// Weekdays are ordered Monday first.
type Names struct {
	Months   [12]string
	Weekdays [7]string
}

// MonthName returns the name of m
func (n Names) MonthName(m time.Month) string {
	return n.Months[m-1]
}

// Russian is the default table. Month names are nominative and lowercase, as ru-RU
// formats "MMMM yyyy" (январь 2024).
var Russian = Names{
	Months: [12]string{
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	},
	Weekdays: [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
}

var English = Names{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Weekdays: [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
}

var locales = map[string]Names{
	"ru": Russian,
	"en": English,
}

// LookupNames returns the name table registered for locale ("ru", "en").
// Region suffixes such as "ru-RU" or "en_US" are accepted.
func LookupNames(locale string) (Names, error) {
	key := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(key, "-_"); i > 0 {
		key = key[:i]
	}
	names, ok := locales[key]
	if !ok {
		return Names{}, fmt.Errorf("unsupported locale %q (available: %s)", locale, strings.Join(Locales(), ", "))
	}
	return names, nil
}

// Locales lists the registered locale keys
func Locales() []string {
	keys := make([]string, 0, len(locales))
	for k := range locales {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
