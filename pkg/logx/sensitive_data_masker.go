package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Listing payloads carry landlord contact details; request/response dumps
// must not land in logs verbatim.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile(`(?s)("[Pp]hone":\s?").+?(")`),
	regexp.MustCompile(`(?s)("[Ee]mail":\s?").+?(")`),
	regexp.MustCompile(`(?s)("landlord_name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("contact_number":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
