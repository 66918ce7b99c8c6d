package ewts

import "strings"

// member is one consonant or special mark inside a cluster.
type member struct {
	name     string
	explicit bool // marked with "+"
}

// ToUnicode converts EWTS text to Tibetan Unicode.
//
// Consonants are grouped into clusters ended by a vowel or any other token.
// Within a cluster the stack head is inferred from the prefix, superscript
// and subscript letter sets; members after the head and before any inferred
// suffix are written as subjoined letters. Unmapped input is echoed as is,
// so the function never fails and text that is already Tibetan passes
// through unchanged.
func ToUnicode(text string) string {
	if text == "" {
		return ""
	}
	tokens := Tokenize(text)

	var b strings.Builder
	b.Grow(len(text) * 2)

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.Kind {
		case Punct:
			b.WriteString(punctuation[tok.Text])
			i++
			continue
		case Vowel:
			b.WriteRune(baseA)
			b.WriteString(vowels[tok.Text])
			i++
			continue
		}

		var (
			cluster  []member
			vowel    string
			hasVowel bool
			dangling bool
		)
	collect:
		for i < len(tokens) {
			t := tokens[i]
			switch t.Kind {
			case Vowel:
				vowel, hasVowel = vowels[t.Text], true
				i++
				break collect
			case Consonant, Special:
				cluster = append(cluster, member{name: t.Text})
				i++
			case Subjoin:
				i++
				if i < len(tokens) {
					cluster = append(cluster, member{name: tokens[i].Text, explicit: true})
				} else {
					dangling = true
				}
				i++
			default:
				break collect
			}
		}

		if len(cluster) == 0 {
			if dangling {
				b.WriteString("+")
			} else if i < len(tokens) {
				b.WriteString(tokens[i].Text)
				i++
			}
			continue
		}

		writeCluster(&b, cluster, hasVowel)
		if hasVowel {
			b.WriteString(vowel)
		}
		if dangling {
			b.WriteString("+")
		}
	}
	return b.String()
}

// writeCluster renders cluster members in base or subjoined form.
func writeCluster(b *strings.Builder, cluster []member, hasVowel bool) {
	root, suffix := stackBounds(cluster, hasVowel)

	for j, m := range cluster {
		if m.explicit || (j > root && j < suffix) {
			if r, ok := subjoined[m.name]; ok {
				b.WriteRune(r)
			} else if r, ok := consonants[m.name]; ok {
				b.WriteRune(r)
			} else {
				b.WriteString(m.name)
			}
			continue
		}
		if r, ok := consonants[m.name]; ok {
			b.WriteRune(r)
		} else if r, ok := specials[m.name]; ok {
			b.WriteRune(r)
		} else {
			b.WriteString(m.name)
		}
	}
}

// stackBounds returns the index of the stack head and the index where the
// trailing suffix begins (len(cluster) when there is none).
func stackBounds(cluster []member, hasVowel bool) (root, suffix int) {
	n := len(cluster)
	suffix = n

	// Explicit members never take part in role inference.
	name := func(j int) string {
		if j >= n || cluster[j].explicit {
			return ""
		}
		return cluster[j].name
	}

	if n >= 2 && prefixLetters[name(0)] {
		c2 := name(1)
		c3IsSub := n > 2 && subscriptLetters[name(2)]
		switch {
		case n >= 3 && superscriptLetters[c2] && !c3IsSub:
			root = 1
		case !subscriptLetters[c2] || (c2 == "r" && n > 2):
			root = 1
		}
	}

	if !hasVowel && n > 2 {
		switch {
		case n >= 4:
			suffix = n - 1
		case root == 1:
			suffix = 2
		}
	}
	return root, suffix
}
