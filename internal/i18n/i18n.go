// Package i18n holds the translated texts shown by the game.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Message keys.
const (
	LabelRange    = "LABEL_RANGE"
	LabelAttempts = "LABEL_ATTEMPTS"
	LabelStage    = "LABEL_STAGE"
	LabelHi       = "LABEL_HI"
	ChooseRange   = "CHOOSE_RANGE"
	InfoRetro     = "INFO_RETRO"
	InfoPort      = "INFO_PORT"
	InfoKeys      = "INFO_KEYS"
	BankLine      = "BANK_LINE"
	Version       = "VERSION"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned for languages without a catalog.
var ErrUnknownLanguage = errors.New("i18n: unknown language")

//go:embed locales/*.po
var locales embed.FS

// Catalog translates message keys for one language.
type Catalog struct {
	lang     string
	messages map[string]string
}

// New loads the catalog for lang ("" means DefaultLanguage).
// Region suffixes are ignored, so "ru_RU.UTF-8" loads "ru".
func New(lang string) (*Catalog, error) {
	lang = normalize(lang)
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	messages := make(map[string]string)
	for key, tr := range po.GetDomain().GetTranslations() {
		if key != "" && po.IsTranslated(key) {
			messages[key] = tr.Get()
		}
	}
	return &Catalog{lang: lang, messages: messages}, nil
}

// Default returns the catalog of DefaultLanguage.
func Default() *Catalog {
	c, err := New(DefaultLanguage)
	if err != nil {
		panic(err) // embedded catalog is always present
	}
	return c
}

// Lang returns the catalog language.
func (c *Catalog) Lang() string {
	return c.lang
}

// Get returns the translation of key, formatted with vars when given.
// Unknown keys are returned unchanged and never formatted.
func (c *Catalog) Get(key string, vars ...any) string {
	if c == nil {
		return key
	}
	msg, ok := c.messages[key]
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, vars...)
}

// Languages returns the available catalog languages, sorted.
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}

func normalize(lang string) string {
	if lang == "" || lang == "C" || lang == "POSIX" {
		return DefaultLanguage
	}
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "_.-@"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
