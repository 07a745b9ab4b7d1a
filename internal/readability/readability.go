package readability

import (
	"math"
	"strings"
	"unicode"
)

// Scores holds the six readability indices plus the discrete classification
// derived from the Flesch Reading Ease value. Flesch Reading Ease is clamped
// to [0,100]; the remaining indices are reported unclamped.
type Scores struct {
	FleschReadingEase    float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade   float64 `json:"flesch_kincaid_grade"`
	GunningFog           float64 `json:"gunning_fog"`
	ColemanLiau          float64 `json:"coleman_liau"`
	SMOG                 float64 `json:"smog"`
	AutomatedReadability float64 `json:"automated_readability_index"`
	Syllables            int     `json:"syllables"`
	ComplexWords         int     `json:"complex_words"`
	Level                string  `json:"reading_level"`
	Audience             string  `json:"target_audience"`
}

// Score computes all indices from the canonical word stream and the sentence
// count. Any formula whose denominator would be zero reports 0.0 for that
// field only; the rest of the scores are still produced.
func Score(words []string, sentences int) Scores {
	var s Scores

	wordCount := len(words)
	letters := 0
	for _, w := range words {
		syl := Syllables(w)
		s.Syllables += syl
		if syl >= 3 {
			s.ComplexWords++
		}
		letters += countLetters(w)
	}

	if wordCount > 0 && sentences > 0 {
		wps := float64(wordCount) / float64(sentences)
		spw := float64(s.Syllables) / float64(wordCount)

		s.FleschReadingEase = clamp(206.835-1.015*wps-84.6*spw, 0, 100)
		s.FleschKincaidGrade = 0.39*wps + 11.8*spw - 15.59
		s.GunningFog = 0.4 * (wps + 100*float64(s.ComplexWords)/float64(wordCount))
		s.AutomatedReadability = 4.71*float64(letters)/float64(wordCount) + 0.5*wps - 21.43
	}
	if wordCount > 0 {
		l := float64(letters) / float64(wordCount) * 100
		sc := float64(sentences) / float64(wordCount) * 100
		s.ColemanLiau = 0.0588*l - 0.296*sc - 15.8
	}
	if sentences > 0 {
		s.SMOG = 3.1291 + 1.0430*math.Sqrt(float64(s.ComplexWords)*(30.0/float64(sentences)))
	}

	s.Level, s.Audience = LevelFor(s.FleschReadingEase)
	return s
}

// Syllables estimates the syllable count of one word by counting vowel
// groups, discounting a trailing silent "e" and crediting a consonant+"le"
// ending. Any non-empty word counts at least one syllable.
func Syllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			groups++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") {
		groups--
	}
	if strings.HasSuffix(word, "le") && len(word) > 2 {
		if !strings.ContainsRune("aeiouy", rune(word[len(word)-3])) {
			groups++
		}
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}

// LevelFor maps a Flesch Reading Ease score to the fixed reading-level and
// target-audience labels. The 90/80/70/60/50/30 boundaries are the standard
// Flesch bands and must not drift.
func LevelFor(flesch float64) (level, audience string) {
	switch {
	case flesch >= 90:
		return "Very Easy", "5th grade"
	case flesch >= 80:
		return "Easy", "6th grade"
	case flesch >= 70:
		return "Fairly Easy", "7th grade"
	case flesch >= 60:
		return "Standard", "8th & 9th grade"
	case flesch >= 50:
		return "Fairly Difficult", "10th to 12th grade"
	case flesch >= 30:
		return "Difficult", "College"
	default:
		return "Very Difficult", "College graduate"
	}
}

func countLetters(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
