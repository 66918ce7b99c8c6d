package ops

import "github.com/thonmi/tshegbar/internal/ewts"

// GuideExample is a worked transliteration.
type GuideExample struct {
	EWTS    string `json:"ewts"`
	Unicode string `json:"unicode"`
	Note    string `json:"note"`
}

// GuideOutput is the EWTS reference, rendered by the codec itself.
type GuideOutput struct {
	Consonants  []ewts.Entry   `json:"consonants"`
	Vowels      []ewts.Entry   `json:"vowels"`
	Specials    []ewts.Entry   `json:"specials"`
	Punctuation []ewts.Entry   `json:"punctuation"`
	Examples    []GuideExample `json:"examples"`
}

var guideExamples = []struct{ ewts, note string }{
	{"bkra shis bde legs", "greeting"},
	{"thugs rje che", "thank you"},
	{"bsgrubs", "prefix, superscript, subscript and post-suffix"},
	{"k+ya", "explicit stacking with +"},
	{"oM ma Ni pad+me hU~M/", "mantra with special marks"},
}

// Guide returns the EWTS reference tables with worked examples.
func Guide() *GuideOutput {
	out := &GuideOutput{
		Consonants:  ewts.Consonants(),
		Vowels:      ewts.Vowels(),
		Specials:    ewts.Specials(),
		Punctuation: ewts.Punctuation(),
	}
	for _, ex := range guideExamples {
		out.Examples = append(out.Examples, GuideExample{
			EWTS:    ex.ewts,
			Unicode: ewts.ToUnicode(ex.ewts),
			Note:    ex.note,
		})
	}
	return out
}
