package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Languages are the message files shipped under `i18n.dir`
var Languages = []string{"en", "hi"}

var bundle *i18n.Bundle

func InitI18NBundle() {
	if err := LoadI18NBundle(viper.GetString("i18n.dir")); err != nil {
		panic(err)
	}
}

// LoadI18NBundle reads the message file of every supported language in dir
func LoadI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, lang := range Languages {
		if _, err := b.LoadMessageFile(path.Join(dir, lang+".yaml")); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

// NewLocalizer returns a localizer of a language which falls back to English
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang, language.English.String())
}
