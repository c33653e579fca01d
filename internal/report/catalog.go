package report

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-dob/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog translates user-facing texts from the embedded locale files.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer

	// Languages lists the locale codes found in the embedded files.
	Languages []string

	// BurstParticles is the confetti size requested when a report celebrates.
	BurstParticles int
}

// NewCatalog loads every embedded locale and selects lang, falling back to English.
func NewCatalog(lang string) *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	c := &Catalog{
		bundle:         bundle,
		BurstParticles: config.DefaultBurstParticles,
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		c.SetLanguage(lang)
		return c
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		c.Languages = append(c.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	c.SetLanguage(lang)
	return c
}

// SetLanguage switches the active locale. An empty lang means config.DefaultLanguage.
func (c *Catalog) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	c.localizer = i18n.NewLocalizer(c.bundle, lang, config.DefaultLanguage)
}

// Text translates key. A missing key is returned as is.
func (c *Catalog) Text(key string) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: key})
}

// Count translates a plural key with {{.Count}} set to n.
func (c *Catalog) Count(key string, n int) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]interface{}{"Count": n},
		PluralCount:  n,
	})
}

// Format translates key with the given template data.
func (c *Catalog) Format(key string, data map[string]interface{}) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
}

func (c *Catalog) localize(lc *i18n.LocalizeConfig) string {
	if c == nil || c.localizer == nil {
		return lc.MessageID
	}
	msg, err := c.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return lc.MessageID
	}
	return msg
}
