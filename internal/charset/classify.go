package charset

// Category names a classification bucket.
type Category string

const (
	ASCIILetters   Category = "ascii_letters"
	ASCIIDigits    Category = "ascii_digits"
	ASCIISymbols   Category = "ascii_symbols"
	Chinese        Category = "chinese"
	ChineseSymbols Category = "chinese_symbols"
	Whitespace     Category = "whitespace"
	Other          Category = "other"
)

// Categories lists every category in report order.
var Categories = []Category{
	ASCIILetters,
	ASCIIDigits,
	ASCIISymbols,
	Chinese,
	ChineseSymbols,
	Whitespace,
	Other,
}

type rule struct {
	category Category
	match    func(rune) bool
}

// Evaluated in order; the first match wins. Space is claimed by the
// printable ASCII rule before the whitespace rule is reached.
var rules = []rule{
	{ASCIILetters, func(r rune) bool { return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') }},
	{ASCIIDigits, func(r rune) bool { return r >= '0' && r <= '9' }},
	{ASCIISymbols, func(r rune) bool { return r >= 32 && r <= 126 }},
	{Chinese, IsCJKIdeograph},
	{ChineseSymbols, IsCJKPunctuation},
	{Whitespace, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }},
}

// IsCJKIdeograph reports whether r is in the CJK unified ideographs block.
func IsCJKIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsCJKPunctuation reports whether r is in the CJK symbols and punctuation block.
func IsCJKPunctuation(r rune) bool {
	return r >= 0x3000 && r <= 0x303F
}

// IsChinese reports whether r survives the chinese-only filter.
func IsChinese(r rune) bool {
	return IsCJKIdeograph(r) || IsCJKPunctuation(r)
}

// Classify returns the category of r.
func Classify(r rune) Category {
	for _, rl := range rules {
		if rl.match(r) {
			return rl.category
		}
	}
	return Other
}

// Classified maps each category to its characters sorted by code point.
type Classified map[Category][]rune

// ClassifyAll partitions chars into categories.
func ClassifyAll(chars []rune) Classified {
	out := Classified{}
	for _, r := range chars {
		c := Classify(r)
		out[c] = append(out[c], r)
	}
	for _, runes := range out {
		sortRunes(runes)
	}
	return out
}
