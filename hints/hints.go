// Package hints scans extracted raw text for contact-like tokens: email
// addresses, phone-like digit sequences, URLs, and LinkedIn profile paths.
// Matching is purely lexical; false positives are acceptable, missed
// well-formed tokens are not.
package hints

import (
	"regexp"
	"sort"
	"strings"

	"github.com/deckraw/deckraw/model"
)

// minPhoneDigits is the digit count below which a separator-tolerant match
// is rejected as not phone-like.
const minPhoneDigits = 8

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\(?\d[\d\s().\-/]{5,}\d`)
	urlPattern      = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"']+`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub|company)/[A-Za-z0-9\-_%.]+`)
	digitPattern    = regexp.MustCompile(`\d`)
)

// Scan extracts hint sets from the whole-document raw text. Every set is
// de-duplicated and sorted; sets are never nil.
func Scan(text string) model.Hints {
	return model.Hints{
		Emails:   collect(emailPattern.FindAllString(text, -1), nil),
		Phones:   collect(phonePattern.FindAllString(text, -1), phoneLike),
		URLs:     collect(urlPattern.FindAllString(text, -1), trimURL),
		LinkedIn: collect(linkedinPattern.FindAllString(text, -1), nil),
	}
}

// collect de-duplicates, optionally normalizes/filters, and sorts matches.
// The normalizer may return "" to drop a match.
func collect(matches []string, normalize func(string) string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := []string{}
	for _, m := range matches {
		if normalize != nil {
			m = normalize(m)
		}
		if m == "" {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// phoneLike keeps only matches carrying enough digits to plausibly be a
// phone number, trimming stray trailing separators.
func phoneLike(m string) string {
	if len(digitPattern.FindAllString(m, -1)) < minPhoneDigits {
		return ""
	}
	return strings.TrimRight(m, " .-/")
}

// trimURL drops trailing punctuation that sentence context glues onto URLs.
func trimURL(m string) string {
	return strings.TrimRight(m, ".,;:)]}'\"")
}
