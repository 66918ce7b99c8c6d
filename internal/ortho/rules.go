package ortho

import (
	"fmt"
	"slices"
)

// Letter classes of the classical syllable frame.
var (
	prefixLetters = []rune{'ག', 'ད', 'བ', 'མ', 'འ'}
	suffixLetters = []rune{'ག', 'ང', 'ད', 'ན', 'བ', 'མ', 'འ', 'ར', 'ལ', 'ས'}
	vowelSigns    = []rune{'ི', 'ུ', 'ེ', 'ོ'}
)

// joinedParticles are case and copula endings written onto the previous
// syllable. Order matters: the first match is stripped.
var joinedParticles = []string{"འི་", "འོ་", "འང་", "འམ་", "འས་", "འི", "འོ"}

// prefixRoots lists the root letters each prefix may precede.
var prefixRoots = map[rune][]rune{
	'ག': {'ཅ', 'ཉ', 'ཏ', 'ད', 'ན', 'ཙ', 'ཞ', 'ཟ', 'ཡ', 'ཤ', 'ས'},
	'ད': {'ཀ', 'ག', 'ང', 'པ', 'བ', 'མ'},
	'བ': {'ཀ', 'ག', 'ཅ', 'ཏ', 'ད', 'ཙ', 'ཞ', 'ཟ', 'ཤ', 'ས', 'ར', 'ལ'},
	'མ': {'ཁ', 'ག', 'ང', 'ཆ', 'ཇ', 'ཉ', 'ཐ', 'ད', 'ན', 'ཚ', 'ཛ'},
	'འ': {'ཁ', 'ག', 'ཆ', 'ཇ', 'ཐ', 'ད', 'ཕ', 'བ', 'ཚ', 'ཛ'},
}

// postSuffixAfter lists, for each post-suffix, the suffixes it may follow.
// Da is the archaic da-drag.
var postSuffixAfter = map[rune][]rune{
	'ས': {'ག', 'ང', 'བ', 'མ'},
	'ད': {'ན', 'ར', 'ལ'},
}

func isPrefix(r rune) bool    { return slices.Contains(prefixLetters, r) }
func isSuffix(r rune) bool    { return slices.Contains(suffixLetters, r) }
func isVowelSign(r rune) bool { return slices.Contains(vowelSigns, r) }

// isSubjoined reports whether r is in the subjoined consonant range.
func isSubjoined(r rune) bool { return r >= 0x0F90 && r <= 0x0FBC }

func isTibetan(r rune) bool { return r >= 0x0F00 && r <= 0x0FFF }

func prefixFits(prefix, root rune) bool {
	roots, ok := prefixRoots[prefix]
	return !ok || slices.Contains(roots, root)
}

// Diagnostics.
const (
	msgStackedVowels = "དབྱངས་གཅིག་ལས་མང་བ་བརྩེགས་མི་ཆོག"
	msgMalformed     = "ཡི་གེའི་སྒྲོམ་གཞི་མ་དག་པ།"
	msgThirdSuffix   = "རྗེས་འཇུག་གསུམ་པ་མི་ཆོག"
)

func msgIllegalPrefix(p rune) string {
	return fmt.Sprintf("སྔོན་འཇུག་'%c'མ་དག་པ།", p)
}

func msgPrefixRoot(p, root rune) string {
	return fmt.Sprintf("སྔོན་འཇུག་'%c'དང་མིང་གཞི་'%c'མི་མཐུན།", p, root)
}

func msgIllegalSuffix(s rune) string {
	return fmt.Sprintf("རྗེས་འཇུག་'%c'མ་དག་པ།", s)
}

func msgPostSuffix(suffix, post rune) string {
	return fmt.Sprintf("ཡང་འཇུག་'%c'དེ་རྗེས་འཇུག་'%c'ཀྱི་རྗེས་སུ་སྦྱོར་མི་ཆོག", post, suffix)
}
