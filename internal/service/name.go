package service

import (
	"strings"
	"unicode"
)

var localPartSeparators = strings.NewReplacer(".", " ", "_", " ", "-", " ")

// DisplayName derives a human display name from an email address by
// cleaning up its local part: separators become spaces, digits are
// dropped, and each token is title-cased. "jane.doe2@example.com"
// becomes "Jane Doe". Inputs without an @ yield "".
func DisplayName(address string) string {
	at := strings.Index(address, "@")
	if address == "" || at < 0 {
		return ""
	}

	name := localPartSeparators.Replace(address[:at])
	name = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, name)

	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(w)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
