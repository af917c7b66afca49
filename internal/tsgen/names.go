package tsgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Identifier turns a hyphenated index name into a type identifier:
// "azure-indexer" becomes "AzureIndexer". Only the first rune of each
// segment is uppercased, the rest is kept verbatim.
func Identifier(name string) string {
	var sb strings.Builder
	for _, segment := range strings.Split(name, "-") {
		sb.WriteString(titleFirst(segment))
	}
	return sb.String()
}

func titleFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
