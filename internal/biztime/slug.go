package biztime

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letterFolds spells out Latin letters that have no canonical decomposition,
// so removing accents alone would drop them.
var letterFolds = strings.NewReplacer(
	"ß", "ss", "ẞ", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"ø", "o", "Ø", "o",
	"ł", "l", "Ł", "l",
	"đ", "d", "Đ", "d",
	"ð", "d", "Ð", "d",
	"þ", "th", "Þ", "th",
	"ı", "i",
)

// Slugify derives a company code from a company name.
//
// The name is lowercased, accents are removed and every run of characters that are not
// ASCII letters or digits becomes a single hyphen. Leading and trailing hyphens are dropped,
// e.g. "Apple Computer, Inc." becomes "apple-computer-inc".
// A few letters are spelled out first ("Straße" becomes "strasse", "Øresund" "oresund");
// other non-Latin letters are dropped.
//
// The result only contains [a-z0-9-] so Slugify(Slugify(s)) == Slugify(s).
// An empty string is returned when the name has no letters or digits.
func Slugify(name string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		letterFolds.Replace(name),
	)
	if err != nil {
		stripped = letterFolds.Replace(name)
	}

	var b strings.Builder
	b.Grow(len(stripped))

	pendingHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
