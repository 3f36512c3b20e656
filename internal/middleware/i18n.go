// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/jobtracker/internal/i18n"
)

func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	if defaultLang == "" {
		defaultLang = i18n.DefaultLanguage
	}

	return func(c *gin.Context) {
		c.Set("lang", parseAcceptLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}

// parseAcceptLanguage picks the first supported entry of a header such as
// "zh-TW,zh;q=0.9,en;q=0.8".
func parseAcceptLanguage(header, defaultLang string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" {
			continue
		}

		// Convert common language codes
		switch tag {
		case "zh-TW", "zh-Hant", "zh_TW", "zh-HK":
			tag = "zh_TW"
		default:
			tag = strings.ToLower(strings.SplitN(strings.ReplaceAll(tag, "_", "-"), "-", 2)[0])
		}

		if i18n.IsSupported(tag) {
			return tag
		}
	}
	return defaultLang
}
