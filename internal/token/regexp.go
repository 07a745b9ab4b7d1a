package token

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	alnumWordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	alphaWordPattern = regexp.MustCompile(`\p{L}+`)
	sentenceEnd      = regexp.MustCompile(`[.!?]+`)
	paragraphBreak   = regexp.MustCompile(`\n{2,}`)
)

// RegexpScanner is the reference backend. It spells out each rule as a
// separate split or match pass and exists to pin down the contract the
// optimized scanner must honor.
type RegexpScanner struct{}

func (RegexpScanner) Name() string { return "regexp" }

func (RegexpScanner) Scan(text string, policy Policy) Result {
	var res Result

	pattern := alnumWordPattern
	if policy == AlphabeticOnly {
		pattern = alphaWordPattern
	}
	for _, span := range pattern.FindAllStringIndex(text, -1) {
		res.Words = append(res.Words, newToken(text, span[0], span[1]))
	}

	res.Sentences = countSegments(sentenceEnd.Split(text, -1))
	res.Paragraphs = countSegments(paragraphBreak.Split(text, -1))

	for _, r := range text {
		res.Characters++
		if !unicode.IsSpace(r) {
			res.CharactersNoSpace++
		}
	}
	return res
}

func countSegments(segments []string) int {
	count := 0
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}
