package domain

// DateFormat is the YYYY-MM-DD layout of reservation dates.
const DateFormat = "2006-01-02"

// Supported interface languages
const (
	LanguageFrench  = "fr"
	LanguageArabic  = "ar"
	DefaultLanguage = LanguageFrench
)

// Source kinds for reservations
const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)
