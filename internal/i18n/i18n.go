package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var builtinLocales embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle. English messages are built in,
// the shipped locales are embedded, and active.*.toml files found in
// localesDir (when not empty) are loaded last so they can override both.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, errors.New("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	builtin, err := builtinLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("error reading built-in locales: %w", err)
	}
	for _, entry := range builtin {
		if _, err := bundle.LoadMessageFileFS(builtinLocales, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("error loading built-in locale %s: %w", entry.Name(), err)
		}
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Average and percentile flight time between two airports"

	[app_description]
	other = "Reads a JSON file of flight tickets, drops the ones that are off-route or malformed, and reports the average flight time and its percentile."

	[flag_origin_usage]
	other = "IATA code of the origin airport"

	[flag_destination_usage]
	other = "IATA code of the destination airport"

	[flag_percentile_usage]
	other = "Percentile to report (1-100)"

	[flag_include_negative_usage]
	other = "Keep tickets whose arrival precedes departure"

	[flag_lang_usage]
	other = "Language of messages (en, es)"

	[flag_config_usage]
	other = "Path of the configuration file"

	[flag_verbose_usage]
	other = "Show informational logs"

	[flag_debug_usage]
	other = "Show debug logs"

	[report_average]
	other = "Average time of flight = {{.Value}}"

	[report_percentile]
	other = "{{.Percentile}}th percentile of flight time = {{.Value}}"

	[report_no_tickets]
	other = "No tickets"

	[ticket_invalid]
	other = "Ticket number {{.Number}} is wrong"

	[error_open_input]
	other = "Cannot open input file: {{.Detail}}"

	[error_read_input]
	other = "Cannot parse input file: {{.Detail}}"

	[error_schema]
	other = "Error while reading input file: {{.Detail}}"

	[error_syntax]
	other = "Wrong syntax in input file: {{.Detail}}"

	[error_unexpected]
	other = "Unexpected error: {{.Detail}}"

	[config_command_usage]
	other = "Manage the configuration"

	[config_init_usage]
	other = "Create a configuration file with the default values"

	[config_show_usage]
	other = "Show the effective configuration"

	[config_saved]
	other = "Configuration saved to {{.Path}}"

	[config_exists]
	other = "{{.Path}} already exists, use --force to overwrite it"

	[config_force_usage]
	other = "Overwrite an existing file"

	[config_title]
	other = "Current configuration"

	[config_route]
	other = "Route"

	[config_percentile]
	other = "Percentile"

	[config_input]
	other = "Input file"

	[config_language]
	other = "Language"

	[config_include_negative]
	other = "Include negative durations"

	[factory_already_registered]
	other = "Command factory {{.FactoryName}} is already registered"
	`
