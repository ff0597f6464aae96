package translator

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // Files for other languages are skipped; empty loads everything.
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}

		lang := strings.TrimSuffix(f.Name(), ".toml")
		if len(cfg.SupportedLanguages) > 0 && !slices.Contains(cfg.SupportedLanguages, lang) {
			zap.L().Debug("skipping unsupported translation", zap.String("file", f.Name()))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}
