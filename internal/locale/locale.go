// Package locale resolves the interface language of a request and supplies
// the pre-translated labels the calendar needs. The calendar itself never
// looks at the language.
package locale

import (
	"fmt"
	"strings"

	"cloudeng.io/datetime"
	"golang.org/x/text/language"

	"github.com/Abdo0422/GestionReservation/internal/calendar"
	"github.com/Abdo0422/GestionReservation/internal/domain"
)

const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Locale is a resolved interface language.
type Locale struct {
	Code        string
	RightToLeft bool
	Weekdays    [7]string // Sunday first
	Months      [12]string
	ShortMonths [12]string
	Statuses    map[string]string // status key -> label
}

var french = &Locale{
	Code:        domain.LanguageFrench,
	Weekdays:    [7]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"},
	Months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	ShortMonths: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	Statuses:    map[string]string{"pending": "En attente", "confirmed": "Confirmé"},
}

var arabic = &Locale{
	Code:        domain.LanguageArabic,
	RightToLeft: true,
	Weekdays:    [7]string{"الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"},
	Months:      [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
	ShortMonths: [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
	Statuses:    map[string]string{"pending": "قيد الانتظار", "confirmed": "مؤكد"},
}

// Order matches the matcher's supported tags.
var (
	locales = []*Locale{french, arabic}
	matcher = language.NewMatcher([]language.Tag{language.French, language.Arabic})
)

// Get returns the locale for an exact code, falling back to French.
func Get(code string) *Locale {
	for _, l := range locales {
		if l.Code == code {
			return l
		}
	}
	return french
}

// Resolve picks the locale from an explicit lang parameter, then from an
// Accept-Language header, then falls back to fallback.
func Resolve(lang, acceptLanguage, fallback string) *Locale {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if l, ok := match(tag); ok {
				return l
			}
		}
	}

	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if l, ok := match(tags...); ok {
				return l
			}
		}
	}

	return Get(fallback)
}

func match(tags ...language.Tag) (*Locale, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return nil, false
	}
	return locales[index], true
}

func (l *Locale) Direction() string {
	if l.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// MonthLabel renders the calendar header, e.g. "mars 2025".
func (l *Locale) MonthLabel(c calendar.Cursor) string {
	return fmt.Sprintf("%s %d", l.Months[c.Month-1], c.Year)
}

// FormatDate renders d as "D MMM YYYY", e.g. "10 mars 2025".
func (l *Locale) FormatDate(d datetime.CalendarDate) string {
	return fmt.Sprintf("%d %s %d", d.Day, l.ShortMonths[d.Month-1], d.Year)
}

// StatusLabel translates a reservation status key.
func (l *Locale) StatusLabel(key string) string {
	if label, ok := l.Statuses[key]; ok {
		return label
	}
	return key
}
