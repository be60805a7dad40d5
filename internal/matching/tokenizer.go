// Package matching implements the lexical primitives shared by the
// recommendation assembler and the category router: text tokenization and
// listing relevance scoring.
package matching

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[0-9A-Za-z가-힣]+`)

// Particles and filler verbs that carry no matching signal.
var stopWords = map[string]struct{}{
	"나는": {}, "원해": {}, "찾고": {}, "싶어": {}, "해요": {},
	"하고": {}, "싶은": {}, "에서": {}, "으로": {}, "그리고": {},
	"입니다": {}, "주세요": {}, "찾아줘": {}, "찾아주세요": {},
	"사고": {}, "팔고": {}, "싶습니다": {},
}

// compoundSuffixes are domain nouns that commonly close a brand+item
// compound ("아이패드" -> "아이" + "패드"). Splitting them lets a query hit
// listings that mention either half.
var compoundSuffixes = []string{"패드", "폰", "북", "워치", "버즈", "백", "팀"}

const (
	minTokenLen    = 2
	MaxQueryTokens = 8
	MaxTagTokens   = 4
)

func keep(token string) bool {
	if len([]rune(token)) < minTokenLen {
		return false
	}
	_, stopped := stopWords[token]
	return !stopped
}

// Tokenize normalizes free text into an ordered, deduplicated sequence of
// lowercase alphanumeric tokens. Tokens ending in a known compound suffix are
// additionally split into (prefix, suffix) sub-tokens, appended after the
// original, subject to the same stop-word and length rules.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	add := func(token string) {
		if !keep(token) {
			return
		}
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	for _, token := range raw {
		if !keep(token) {
			continue
		}
		add(token)
		for _, suffix := range compoundSuffixes {
			if !strings.HasSuffix(token, suffix) || token == suffix {
				continue
			}
			add(strings.TrimSuffix(token, suffix))
			add(suffix)
			break
		}
	}
	return out
}

// QueryTokens extracts up to MaxQueryTokens search terms from a message.
func QueryTokens(message string) []string {
	tokens := Tokenize(message)
	if len(tokens) > MaxQueryTokens {
		tokens = tokens[:MaxQueryTokens]
	}
	return tokens
}

// TagTokens extracts up to MaxTagTokens listing tags from a message,
// falling back to generic tags when nothing survives tokenization.
func TagTokens(message string) []string {
	tokens := Tokenize(message)
	if len(tokens) > MaxTagTokens {
		tokens = tokens[:MaxTagTokens]
	}
	if len(tokens) == 0 {
		return []string{"매칭", "조건"}
	}
	return tokens
}
