package middleware

import (
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/pkg/translator"

	"github.com/gin-gonic/gin"
)

const langKey = "lang"

// LanguageMiddleware stores the preferred language from the Accept-Language
// header, falling back to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, primaryLanguage(c.GetHeader("Accept-Language")))
		c.Next()
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

// primaryLanguage keeps the first entry of an Accept-Language value, without
// its quality weight ("fr-CH, fr;q=0.9" -> "fr-CH").
func primaryLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.TrimSpace(first)
	if first == "" || first == "*" {
		return translator.LanguageEn
	}
	return first
}
