package conversation

import (
	"regexp"
	"strings"
)

// emailPattern matches common email address formats
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// phonePattern matches North American 10-digit numbers with an optional
// leading country code and any of the usual separator styles.
var phonePattern = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`)

// namePatterns matches self-introduction phrasings. Order matters: the first
// construct that matches wins.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*)?)`),
	regexp.MustCompile(`(?i)\bi'?m\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*)?)`),
	regexp.MustCompile(`(?i)\bthis is\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*)?)`),
	regexp.MustCompile(`(?i)\bcall me\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*)?)`),
}

// nameStopWords are leading captures that indicate the construct was not
// actually introducing a name ("call me at ...", "I'm looking for ...").
var nameStopWords = map[string]bool{
	"at": true, "on": true, "in": true, "a": true, "an": true, "the": true,
	"looking": true, "interested": true, "not": true, "so": true, "back": true,
	"here": true, "anytime": true, "just": true, "really": true, "very": true,
	"trying": true, "hoping": true, "wondering": true, "going": true, "sure": true,
}

// ExtractContactInfo scans free-form conversation text for an email address,
// a phone number, and (heuristically) a name. Fields that cannot be found are
// left empty; extraction never fails.
func ExtractContactInfo(text string) ContactInfo {
	info := ContactInfo{}

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	if m := phonePattern.FindStringSubmatch(text); len(m) == 4 {
		info.Phone = "(" + m[1] + ") " + m[2] + "-" + m[3]
	}

	info.Name = extractName(text)
	return info
}

// extractName tries the self-introduction patterns in order. Free-text name
// extraction is unreliable, so an empty result is expected and the caller
// must source the name elsewhere (e.g. a form field).
func extractName(text string) string {
	for _, pat := range namePatterns {
		m := pat.FindStringSubmatch(text)
		if len(m) != 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		first := strings.ToLower(strings.Fields(candidate)[0])
		if nameStopWords[first] {
			continue
		}
		if len(candidate) < 2 || len(candidate) > 30 {
			continue
		}
		return titleCase(candidate)
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
