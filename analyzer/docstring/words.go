package docstring

import (
	"strings"
	"unicode"
)

// Words splits snake_case, camelCase and acronym identifiers into words
func Words(name string) []string {
	runes := []rune(strings.ReplaceAll(name, "_", " "))
	var ret []string
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			ret = append(ret, string(runes[i:j]))
			i = j
		case unicode.IsLower(r):
			j := i
			for j < len(runes) && unicode.IsLower(runes[j]) {
				j++
			}
			ret = append(ret, string(runes[i:j]))
			i = j
		case unicode.IsUpper(r):
			j := i
			for j < len(runes) && unicode.IsUpper(runes[j]) {
				j++
			}
			if j < len(runes) && unicode.IsLower(runes[j]) {
				if j-1 > i {
					ret = append(ret, string(runes[i:j-1]))
				}
				k := j
				for k < len(runes) && unicode.IsLower(runes[k]) {
					k++
				}
				ret = append(ret, string(runes[j-1:k]))
				i = k
				continue
			}
			ret = append(ret, string(runes[i:j]))
			i = j
		default:
			i++
		}
	}
	return ret
}

// Readable returns lower-cased space-joined words of the name
func Readable(name string) string {
	return strings.ToLower(strings.Join(Words(name), " "))
}

// Capitalize upper-cases the first letter and lower-cases the rest
func Capitalize(text string) string {
	if text == "" {
		return text
	}
	runes := []rune(strings.ToLower(text))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
