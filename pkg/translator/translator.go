package translator

import (
	"embed"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

//go:embed translation/*.toml
var builtin embed.FS

type Config struct {
	// TranslationFolder overrides the built-in message files when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageEn = "en"
	LanguageFr = "fr"
	LanguageZh = "zh"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if cfg.TranslationFolder == "" {
		loadBuiltin()
		return
	}

	lstFiles, err := filepath.Glob(filepath.Join(cfg.TranslationFolder, "*.toml"))
	if err != nil || len(lstFiles) == 0 {
		zap.L().Error("no translation files found, using built-in messages", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		loadBuiltin()
		return
	}

	for _, file := range lstFiles {
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", file), zap.Error(err))
		}
	}
}

func loadBuiltin() {
	files, err := fs.Glob(builtin, "translation/*.toml")
	if err != nil {
		zap.L().Error("failed to list built-in translations", zap.Error(err))
		return
	}
	for _, file := range files {
		if _, err := Translator.LoadMessageFileFS(builtin, file); err != nil {
			zap.L().Warn("failed to load built-in translation", zap.String("file", path.Base(file)), zap.Error(err))
		}
	}
}
