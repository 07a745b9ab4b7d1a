package token

import (
	"strings"
	"unicode"
)

// FastScanner extracts words, sentence and paragraph counts, and character
// counts in a single left-to-right pass with no regexp machinery. It is the
// default backend and must stay report-identical to RegexpScanner.
type FastScanner struct{}

func (FastScanner) Name() string { return "fast" }

func (FastScanner) Scan(text string, policy Policy) Result {
	var res Result

	wordStart := -1
	sentenceContent := false
	paragraphContent := false
	newlineRun := 0

	for i, r := range text {
		res.Characters++
		isSpace := unicode.IsSpace(r)
		if !isSpace {
			res.CharactersNoSpace++
		}

		if isWordRune(r, policy) {
			if wordStart < 0 {
				wordStart = i
			}
		} else if wordStart >= 0 {
			res.Words = append(res.Words, newToken(text, wordStart, i))
			wordStart = -1
		}

		switch {
		case r == '.' || r == '!' || r == '?':
			// A run of terminators closes at most one sentence segment.
			if sentenceContent {
				res.Sentences++
				sentenceContent = false
			}
		case !isSpace:
			sentenceContent = true
		}

		if r == '\n' {
			newlineRun++
			if newlineRun == 2 && paragraphContent {
				res.Paragraphs++
				paragraphContent = false
			}
		} else {
			newlineRun = 0
			if !isSpace {
				paragraphContent = true
			}
		}
	}

	if wordStart >= 0 {
		res.Words = append(res.Words, newToken(text, wordStart, len(text)))
	}
	if sentenceContent {
		res.Sentences++
	}
	if paragraphContent {
		res.Paragraphs++
	}
	return res
}

func newToken(text string, start, end int) Token {
	return Token{Start: start, End: end, Canonical: strings.ToLower(text[start:end])}
}

func isWordRune(r rune, policy Policy) bool {
	if policy == AlphabeticOnly {
		return unicode.IsLetter(r)
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
