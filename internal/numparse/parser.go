package numparse

import "github.com/standardbeagle/tokcat/internal/term"

// Match is one valid-length cardinal-number prefix recognized by Parse.
type Match struct {
	Value  int64
	Length int
}

type wordKind int

const (
	kindUnit wordKind = iota
	kindTens
	kindHundred
	kindScale
)

type wordInfo struct {
	kind  wordKind
	value int64
}

// unitWords covers zero through nineteen; tensWords covers the decades;
// scaleWords covers the large multipliers. "hundred" is kept out of
// scaleWords because it composes with the preceding unit or tens chunk
// ("one hundred") rather than with an accumulated total.
var unitWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19,
}

var tensWords = map[string]int64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scaleWords = map[string]int64{
	"thousand": 1000, "million": 1000000, "billion": 1000000000,
}

// Parser recognizes cardinal-number phrases over a term model's fingerprint
// space. A Parser is built once and is read-only thereafter.
type Parser struct {
	model *term.Model
	words map[term.Hash]wordInfo
	terms map[term.Hash]string
}

// NewParser builds a number parser over model, registering every cardinal
// word's fingerprint as numeric on model so the lexicon can mark them
// downstream for every domain.
func NewParser(model *term.Model) *Parser {
	p := &Parser{
		model: model,
		words: make(map[term.Hash]wordInfo),
		terms: make(map[term.Hash]string),
	}
	for w, v := range unitWords {
		p.register(w, wordInfo{kindUnit, v})
	}
	for w, v := range tensWords {
		p.register(w, wordInfo{kindTens, v})
	}
	p.register("hundred", wordInfo{kindHundred, 100})
	for w, v := range scaleWords {
		p.register(w, wordInfo{kindScale, v})
	}
	return p
}

func (p *Parser) register(word string, info wordInfo) {
	h := p.model.StemAndHash(word)
	p.words[h] = info
	p.terms[h] = word
	p.model.RegisterNumberHash(h)
}

// Parse consumes a prefix of hashes matching a cardinal-number phrase,
// appending every valid-length prefix to output. Parse never looks past the
// longest valid prefix; a token that does not grammatically continue the
// number in progress stops the scan.
func (p *Parser) Parse(hashes []term.Hash, output *[]Match) {
	var total, chunk int64
	lastKind := wordKind(-1)

	for i, h := range hashes {
		info, ok := p.words[h]
		if !ok {
			return
		}

		switch info.kind {
		case kindUnit:
			if lastKind == kindUnit {
				return
			}
			if lastKind == kindTens && (info.value < 1 || info.value > 9) {
				return
			}
			chunk += info.value
		case kindTens:
			if lastKind == kindUnit || lastKind == kindTens {
				return
			}
			chunk += info.value
		case kindHundred:
			if lastKind == kindTens || lastKind == kindHundred {
				return
			}
			if chunk == 0 {
				chunk = 1
			}
			chunk *= 100
		case kindScale:
			if lastKind == kindScale {
				return
			}
			if chunk == 0 {
				chunk = 1
			}
			total += chunk * info.value
			chunk = 0
		}

		lastKind = info.kind
		*output = append(*output, Match{Value: total + chunk, Length: i + 1})
	}
}

// OwnHashedTerms returns the fingerprints of every surface word the parser
// might consume.
func (p *Parser) OwnHashedTerms() map[term.Hash]struct{} {
	set := make(map[term.Hash]struct{}, len(p.words))
	for h := range p.words {
		set[h] = struct{}{}
	}
	return set
}

// AddTermsToSet adds the surface terms the parser recognizes to set.
func (p *Parser) AddTermsToSet(set map[string]struct{}) {
	for _, w := range p.terms {
		set[w] = struct{}{}
	}
}
