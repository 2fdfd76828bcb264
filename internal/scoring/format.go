package scoring

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	formatBase           = 50.0
	formatBadExtension   = 30.0
	formatSectionsCredit = 30.0
	formatBannedMarker   = 5.0
	formatShortText      = 20.0
	formatMissingContact = 10.0
	formatMinTextRunes   = 200
)

var (
	// AcceptedExtensions are the document formats an ATS parses cleanly.
	AcceptedExtensions = []string{".pdf", ".docx"}

	sectionHeaders = []string{"education", "experience", "skills"}
	bannedMarkers  = []string{"photograph", "image", "fancy"}
)

// Finding is one observation made by the format heuristic.
type Finding struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Delta   float64 `json:"delta"`
}

// FormatReport holds the format score and the findings that produced it.
type FormatReport struct {
	Score    float64   `json:"score"`
	Findings []Finding `json:"findings"`
}

// FormatScore is a text-only proxy for how cleanly an applicant tracking
// system would parse the document. It always returns a value in [0,100].
func FormatScore(text, filename string) float64 {
	return EvaluateFormat(text, filename).Score
}

// EvaluateFormat applies the additive format heuristic and records each
// adjustment as a Finding.
func EvaluateFormat(text, filename string) FormatReport {
	score := formatBase
	findings := make([]Finding, 0, 4)
	note := func(code, msg string, delta float64) {
		score += delta
		findings = append(findings, Finding{Code: code, Message: msg, Delta: delta})
	}

	if !HasAcceptedExtension(filename) {
		note("unsupported_extension", "File should be PDF or DOCX", -formatBadExtension)
	}

	lower := strings.ToLower(text)
	sections := 0
	var absent []string
	for _, h := range sectionHeaders {
		if strings.Contains(lower, h) {
			sections++
		} else {
			absent = append(absent, h)
		}
	}
	if sections > 0 {
		note("sections_found", "Standard sections present", formatSectionsCredit*float64(sections)/float64(len(sectionHeaders)))
	}
	if len(absent) > 0 {
		findings = append(findings, Finding{
			Code:    "sections_missing",
			Message: "Missing sections: " + strings.Join(absent, ", "),
		})
	}

	for _, m := range bannedMarkers {
		if strings.Contains(lower, m) {
			note("banned_marker", "Avoid "+m+" content; ATS may not parse it", -formatBannedMarker)
		}
	}

	if utf8.RuneCountInString(text) < formatMinTextRunes {
		note("too_short", "Resume text is too short", -formatShortText)
	}

	if !strings.Contains(text, "@") || !containsDigit(text) {
		note("missing_contact", "Contact details (email and phone) not found", -formatMissingContact)
	}

	return FormatReport{Score: clampScore(score), Findings: findings}
}

// HasAcceptedExtension reports whether filename ends in .pdf or .docx,
// ignoring case.
func HasAcceptedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	return containsString(AcceptedExtensions, ext)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
