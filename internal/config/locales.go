package config

import "log/slog"

const (
	LangEN = "en"
	LangES = "es"
)

// GetLocaleConfig returns lang when a message catalogue exists for it and
// English otherwise.
func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		slog.Warn("unsupported language, falling back to English", "language", lang)
		return LangEN
	}
}
