package i18n

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/pt"
	ut "github.com/go-playground/universal-translator"
)

// FromCountry maps an ISO country code to a language, case-insensitively.
// Unknown codes yield DefaultLanguage.
func FromCountry(code string) Language {
	if lang, ok := countryToLanguage[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return lang
	}
	return DefaultLanguage
}

// Parse accepts a language name ("german") or a country code ("DE").
func Parse(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dictionaries[lang]; ok {
		return lang, nil
	}
	if lang, ok := countryToLanguage[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return lang, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Translator resolves label keys for one language, falling back to English
// and finally to the key itself.
type Translator struct {
	lang     Language
	trans    ut.Translator
	fallback ut.Translator
}

// New builds a Translator for lang.
func New(lang Language) (*Translator, error) {
	if _, ok := dictionaries[lang]; !ok {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	uni := ut.New(en.New(), en.New(), pt.New(), de.New(), es.New(), fr.New())

	for l, dict := range dictionaries {
		trans, found := uni.GetTranslator(locales[l])
		if !found {
			return nil, fmt.Errorf("no locale registered for %s", l)
		}
		for key, text := range dict {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add %s/%s: %w", l, key, err)
			}
		}
	}

	trans, _ := uni.GetTranslator(locales[lang])
	fallback, _ := uni.GetTranslator(locales[DefaultLanguage])

	return &Translator{
		lang:     lang,
		trans:    trans,
		fallback: fallback,
	}, nil
}

func (t *Translator) Language() Language {
	return t.lang
}

// Label returns the localized text for key.
func (t *Translator) Label(key string) string {
	if s, err := t.trans.T(key); err == nil {
		return s
	}
	if s, err := t.fallback.T(key); err == nil {
		return s
	}
	return key
}
