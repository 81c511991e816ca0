// Package i18n provides the localized user-visible strings.
//
// Message files are embedded; English is the fallback for any locale or
// message that is missing.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Strings resolves messages for one locale.
type Strings struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// NewBundle loads every embedded message file.
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			return nil, fmt.Errorf("i18n: loading %s: %w", f, err)
		}
	}
	return bundle, nil
}

// New returns the strings for locale. An unknown or malformed locale falls
// back to English.
func New(locale string) (*Strings, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return ForBundle(bundle, locale), nil
}

// ForBundle matches locale against the bundle's languages.
func ForBundle(bundle *goi18n.Bundle, locale string) *Strings {
	tag := Match(bundle.LanguageTags(), locale)
	return &Strings{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
	}
}

// Match picks the supported tag closest to locale, or the first supported tag.
func Match(supported []language.Tag, locale string) language.Tag {
	if len(supported) == 0 {
		return language.English
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return supported[0]
	}

	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Tag is the locale actually in use.
func (s *Strings) Tag() language.Tag {
	return s.tag
}

// Get returns the message with the given id, or the id itself when no
// translation exists.
func (s *Strings) Get(id string, data map[string]any) string {
	msg, err := s.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// Count returns a pluralized message.
func (s *Strings) Count(id string, n int) string {
	msg, err := s.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil || msg == "" {
		return fmt.Sprintf("%d", n)
	}
	return msg
}

// CountriesLabels returns the labels of the country list.
func (s *Strings) CountriesLabels() screens.Labels {
	return s.labels(s.Get("CountriesTitle", nil))
}

// ProvincesLabels returns the labels of the province list for one country.
func (s *Strings) ProvincesLabels(country string) screens.Labels {
	return s.labels(s.Get("ProvincesTitle", map[string]any{"Country": country}))
}

func (s *Strings) labels(title string) screens.Labels {
	return screens.Labels{
		Title:        title,
		AlertTitle:   s.Get("AlertTitle", nil),
		AlertMessage: s.Get("AlertMessage", nil),
		RetryLabel:   s.Get("Retry", nil),
	}
}
