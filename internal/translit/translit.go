// Package translit 将名称转写为拉丁字母别名
// 别名用作磁盘路径的一段，因此只保留 [a-z0-9_']
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cyrillic 西里尔字母(小写)到拉丁字母的转写表
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "ye", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "iy", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "'",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// Transliterate 将文本转写为拉丁字母，保留大小写以外的其它字符
// 西里尔字母按转写表替换，拉丁字母去掉变音符号
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		lower := unicode.ToLower(r)
		if latin, ok := cyrillic[lower]; ok {
			if lower != r && latin != "" {
				latin = strings.ToUpper(latin[:1]) + latin[1:]
			}
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}
	return foldDiacritics(b.String())
}

// ToAlias 由显示名称生成别名
// 小写，空白与连字符变为下划线，连续下划线合并，首尾下划线去除
func ToAlias(name string) string {
	translit := strings.ToLower(Transliterate(name))

	var b strings.Builder
	b.Grow(len(translit))
	lastUnderscore := false
	for _, r := range translit {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			b.WriteRune(r)
			lastUnderscore = false
		case r == '_' || r == '-' || unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// foldDiacritics 去掉拉丁字母上的变音符号，如 é -> e
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
