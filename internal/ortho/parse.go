package ortho

// Parsed is a syllable split into its frame positions.
// Prefix and Vowel are zero when absent.
type Parsed struct {
	Prefix   rune
	Root     []rune
	Vowel    rune
	Suffixes []rune

	prefixAt int // rune offset of Prefix, -1 when absent
	suffixAt int // rune offset of the first suffix
}

// Sanskrit reports whether the root stack is too deep for a native syllable.
func (p Parsed) Sanskrit() bool { return len(p.Root) > 2 }

// PostSuffix returns the second suffix, or zero.
func (p Parsed) PostSuffix() rune {
	if len(p.Suffixes) > 1 {
		return p.Suffixes[1]
	}
	return 0
}

// Parse locates the root of a single Unicode syllable.
//
// The root head is the letter before the first vowel sign, or the first
// letter carrying subjoined letters. Syllables with neither are split by
// length alone; anything longer than four letters is rejected.
func Parse(chars []rune) (Parsed, bool) {
	head := -1
	for i, r := range chars {
		if isVowelSign(r) {
			if head == -1 {
				head = i - 1
			}
			break
		}
		if i+1 < len(chars) && isSubjoined(chars[i+1]) {
			head = i
			break
		}
	}
	if head == -1 {
		return parseByLength(chars)
	}

	p := Parsed{Root: []rune{chars[head]}, prefixAt: -1}
	if head > 0 {
		p.Prefix = chars[head-1]
		p.prefixAt = head - 1
	}
	k := head + 1
	for k < len(chars) && isSubjoined(chars[k]) {
		p.Root = append(p.Root, chars[k])
		k++
	}
	if k < len(chars) && isVowelSign(chars[k]) {
		p.Vowel = chars[k]
		k++
	}
	p.Suffixes = append([]rune{}, chars[k:]...)
	p.suffixAt = k
	return p, true
}

func parseByLength(chars []rune) (Parsed, bool) {
	switch len(chars) {
	case 1:
		return Parsed{Root: []rune{chars[0]}, Suffixes: []rune{}, prefixAt: -1, suffixAt: 1}, true
	case 2:
		return Parsed{Root: []rune{chars[0]}, Suffixes: []rune{chars[1]}, prefixAt: -1, suffixAt: 1}, true
	case 3:
		if isPrefix(chars[0]) {
			return Parsed{Prefix: chars[0], Root: []rune{chars[1]}, Suffixes: []rune{chars[2]}, suffixAt: 2}, true
		}
		return Parsed{Root: []rune{chars[0]}, Suffixes: []rune{chars[1], chars[2]}, prefixAt: -1, suffixAt: 1}, true
	case 4:
		return Parsed{Prefix: chars[0], Root: []rune{chars[1]}, Suffixes: []rune{chars[2], chars[3]}, suffixAt: 2}, true
	}
	return Parsed{}, false
}
