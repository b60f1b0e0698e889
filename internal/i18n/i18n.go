package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleZhCN    = "zh-CN"
	LocaleEnUS    = "en-US"
	DefaultLocale = LocaleZhCN

	// HeaderLocale 显式指定语言的请求头，优先于 Accept-Language
	HeaderLocale = "X-Locale"
)

var supportedLocales = []string{LocaleZhCN, LocaleEnUS}

var matcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.AmericanEnglish,
})

// ResolveLocale 从请求解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if explicit := strings.TrimSpace(c.GetHeader(HeaderLocale)); explicit != "" {
		return Match(explicit)
	}
	return Match(c.GetHeader("Accept-Language"))
}

// Match 将任意语言描述归一到受支持的语言
func Match(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[index]
}

// T 翻译消息 key，缺失时回退默认语言再回退 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
