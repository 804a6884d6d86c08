package middleware

import (
	"dayplanner/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

// Order matters: the first tag is the fallback when nothing matches.
var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Chinese,
	language.French,
})

// LanguageMiddleware resolves Accept-Language to one of the planner's message
// languages (en, zh, fr) and stores it for error translation.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tag, _ := language.MatchStrings(languageMatcher, header)
	base, _ := tag.Base()
	switch lang := base.String(); lang {
	case translator.LanguageZh, translator.LanguageFr:
		return lang
	default:
		return translator.LanguageEn
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
