package ewts

// baseA is the Tibetan letter A (U+0F68), the carrier for a bare vowel.
const baseA = 'ཨ'

// consonants maps EWTS consonant names to base-row letters.
var consonants = map[string]rune{
	"k": 'ཀ', "kh": 'ཁ', "g": 'ག', "ng": 'ང',
	"c": 'ཅ', "ch": 'ཆ', "j": 'ཇ', "ny": 'ཉ',
	"t": 'ཏ', "th": 'ཐ', "d": 'ད', "n": 'ན',
	"p": 'པ', "ph": 'ཕ', "b": 'བ', "m": 'མ',
	"ts": 'ཙ', "tsh": 'ཚ', "dz": 'ཛ', "w": 'ཝ',
	"zh": 'ཞ', "z": 'ཟ', "'": 'འ', "y": 'ཡ',
	"r": 'ར', "l": 'ལ', "sh": 'ཤ', "s": 'ས',
	"h": 'ཧ',

	// Sanskrit retroflex and aspirate letters
	"T": 'ཊ', "Th": 'ཋ', "D": 'ཌ', "N": 'ཎ', "Sh": 'ཥ',
	"D+h": '\u0F4D', "g+h": '\u0F43', "d+h": '\u0F52', "b+h": '\u0F57', "dz+h": '\u0F5C',
}

// subjoined maps EWTS consonant names to their subjoined forms (U+0F90–U+0FB7).
// W, Y and R are the fixed-form subjoined wa, ya and ra, reachable through "+".
var subjoined = map[string]rune{
	"k": 'ྐ', "kh": 'ྑ', "g": 'ྒ', "ng": 'ྔ',
	"c": 'ྕ', "ch": 'ྖ', "j": 'ྗ', "ny": 'ྙ',
	"t": 'ྟ', "th": 'ྠ', "d": 'ྡ', "n": 'ྣ',
	"p": 'ྤ', "ph": 'ྥ', "b": 'ྦ', "m": 'ྨ',
	"ts": 'ྩ', "tsh": 'ྪ', "dz": 'ྫ', "w": 'ྭ',
	"zh": 'ྮ', "z": 'ྯ', "'": 'ྰ', "y": 'ྱ',
	"r": 'ྲ', "l": 'ླ', "sh": 'ྴ', "s": 'ྶ',
	"h": 'ྷ',
	"T": 'ྚ', "Th": 'ྛ', "D": 'ྜ', "N": 'ྞ', "Sh": 'ྵ',
	"W": 'ྭ', "Y": 'ྱ', "R": 'ྲ',
}

// vowels maps EWTS vowel letters to vowel signs. The inherent "a" has no sign.
var vowels = map[string]string{
	"a": "", "i": "ི", "u": "ུ", "e": "ེ", "o": "ོ",
	"A": "\u0F71", "I": "\u0F71\u0F72", "U": "\u0F71\u0F74",
}

// specials maps EWTS codes for marks that attach to a cluster.
var specials = map[string]rune{
	"M": 'ཾ', // anusvara
	"H": 'ཿ', // visarga
	"~": 'ྃ', // candrabindu
	"R": 'ཪ', // fixed-form ra
}

// punctuation maps EWTS punctuation and spacing to Tibetan marks.
var punctuation = map[string]string{
	" ":  "་", // tsheg
	".":  "་",
	";":  "་",
	"/":  "།", // shad
	"//": "༎", // double shad
	":":  "༔",
	"*":  "༑",
	"\n": "\n",
}

// Role sets used by cluster inference.
var (
	prefixLetters      = map[string]bool{"g": true, "d": true, "b": true, "m": true, "'": true}
	superscriptLetters = map[string]bool{"r": true, "l": true, "s": true}
	subscriptLetters   = map[string]bool{"y": true, "r": true, "l": true, "w": true}
)

// Tsheg is the intersyllabic mark U+0F0B.
const Tsheg = '་'

// Entry is one row of a symbol table, in EWTS and Unicode.
type Entry struct {
	EWTS      string `json:"ewts"`
	Unicode   string `json:"unicode"`
	Subjoined string `json:"subjoined,omitempty"` // consonants only
}

// Reference tables in alphabet order, for help output.
var (
	consonantOrder = []string{
		"k", "kh", "g", "ng", "c", "ch", "j", "ny", "t", "th", "d", "n",
		"p", "ph", "b", "m", "ts", "tsh", "dz", "w", "zh", "z", "'", "y",
		"r", "l", "sh", "s", "h",
		"T", "Th", "D", "N", "Sh", "D+h", "g+h", "d+h", "b+h", "dz+h",
	}
	vowelOrder   = []string{"a", "i", "u", "e", "o", "A", "I", "U"}
	specialOrder = []string{"M", "H", "~", "R"}
	punctOrder   = []string{" ", ".", ";", "/", "//", ":", "*"}
)

// Consonants returns the base consonant table with subjoined forms, in alphabet order.
// Subjoined is empty for letters that have no subjoined form.
func Consonants() []Entry {
	out := make([]Entry, 0, len(consonantOrder))
	for _, name := range consonantOrder {
		e := Entry{EWTS: name, Unicode: string(consonants[name])}
		if r, ok := subjoined[name]; ok {
			e.Subjoined = string(r)
		}
		out = append(out, e)
	}
	return out
}

// Vowels returns the vowel table rendered on the carrier letter.
func Vowels() []Entry {
	out := make([]Entry, 0, len(vowelOrder))
	for _, name := range vowelOrder {
		out = append(out, Entry{EWTS: name, Unicode: string(baseA) + vowels[name]})
	}
	return out
}

// Specials returns the special mark table.
func Specials() []Entry {
	out := make([]Entry, 0, len(specialOrder))
	for _, name := range specialOrder {
		out = append(out, Entry{EWTS: name, Unicode: string(specials[name])})
	}
	return out
}

// Punctuation returns the punctuation table.
func Punctuation() []Entry {
	out := make([]Entry, 0, len(punctOrder))
	for _, name := range punctOrder {
		out = append(out, Entry{EWTS: name, Unicode: punctuation[name]})
	}
	return out
}
