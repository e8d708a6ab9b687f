// Package i18n loads the bot's message catalogs and resolves dialog labels
// through golang.org/x/text/message.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every catalog falls back to
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds the parsed catalogs for every locale
type Bundle struct {
	builder   *catalog.Builder
	tags      []language.Tag
	supported []language.Tag
	matcher   language.Matcher
	keys      map[language.Tag]map[string]struct{}
}

// LoadEmbedded loads the catalogs shipped with the bot
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS loads every locales/*.yaml file in fsys
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	b := &Bundle{
		builder: catalog.NewBuilder(catalog.Fallback(base)),
		keys:    map[language.Tag]map[string]struct{}{},
	}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		if err := b.add(path, data); err != nil {
			return nil, err
		}
	}

	if _, ok := b.keys[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// matcher prefers the base locale on a tie
	tags := []language.Tag{base}
	for _, tag := range b.tags {
		if tag != base {
			tags = append(tags, tag)
		}
	}
	b.supported = tags
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

func (b *Bundle) add(path string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", path)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale %q: %w", path, locale, err)
	}
	if _, exists := b.keys[tag]; exists {
		return fmt.Errorf("catalog %s: locale %q defined twice", path, locale)
	}

	keys := make(map[string]struct{}, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		// catalog strings are printf formats; labels are literal text
		if err := b.builder.SetString(tag, key, strings.ReplaceAll(value, "%", "%%")); err != nil {
			return fmt.Errorf("catalog %s: set %q: %w", path, key, err)
		}
		keys[key] = struct{}{}
	}

	b.keys[tag] = keys
	b.tags = append(b.tags, tag)
	return nil
}

// Locales returns the loaded locale tags, sorted
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.tags))
	for _, tag := range b.tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// Localizer returns a Localizer for the closest supported locale. Unknown or
// malformed locales get the base locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		desired = []language.Tag{language.MustParse(BaseLocale)}
	}
	_, index, _ := b.matcher.Match(desired...)
	tag := b.supported[index]

	// keys of the matched locale and of the base locale it falls back to
	known := make(map[string]struct{})
	maps.Copy(known, b.keys[language.MustParse(BaseLocale)])
	maps.Copy(known, b.keys[tag])

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
		known:   known,
	}
}

// Localizer resolves message keys for one locale
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]struct{}
}

// Locale returns the locale this localizer resolves for
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Localize returns the translation for key, or key itself when no catalog
// defines it
func (l *Localizer) Localize(key string) string {
	if _, ok := l.known[key]; !ok {
		return key
	}
	return l.printer.Sprintf(message.Key(key, key))
}
