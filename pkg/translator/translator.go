// Package translator owns the process-wide i18n bundle. Message catalogs
// are flat TOML files, one per language, loaded once at startup.
package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads every catalog found in the translation folder.
// A missing folder or an unparseable file is logged, not fatal; lookups
// for the affected language fall back to English, then to the key.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := filepath.Glob(filepath.Join(cfg.TranslationFolder, "*.toml"))
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}
	if len(files) == 0 {
		zap.L().Error("no translation files found", zap.String("folder", cfg.TranslationFolder))
		return
	}

	for _, file := range files {
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", file), zap.Error(err))
		}
	}
}
