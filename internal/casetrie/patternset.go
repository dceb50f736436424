package casetrie

import "errors"

// ErrEmptyKey is returned by Add when key is empty.
var ErrEmptyKey = errors.New("casetrie: empty key")

// InvalidRule is the sentinel rule id a SearchContext carries when it has no
// current candidate hit.
const InvalidRule = -1

// Rule is the payload attached to one inserted key: the text to substitute
// in and whether a match must land on word boundaries to be accepted.
type Rule struct {
	Replacement []byte
	WholeWord   bool
}

// PatternSet pairs a Trie with the equality predicate it is searched under,
// plus the rule records addressed by each terminal node's token id. The two
// instances an engine needs - one Exact, one Fold - share this same type;
// only the predicate differs.
type PatternSet struct {
	trie  *Trie
	equal Equal
	rules []Rule
}

// NewPatternSet returns an empty pattern set searched under equal.
func NewPatternSet(equal Equal) *PatternSet {
	return &PatternSet{trie: NewTrie(), equal: equal}
}

// Add inserts key with its replacement and whole-word flag.
//
// It returns (false, nil) when key already resolves to a valid terminal
// under the set's own equality predicate - the duplicate-rendering path for
// preserve-case variants, and the path that turns a second fold-equivalent
// insert into a reported non-insert rather than a redundant trie branch. It
// returns (false, ErrEmptyKey) for an empty key, and (true, nil) once a new
// rule has been installed.
//
// Node creation itself always walks by byte equality, even for a fold set,
// so two keys that only the fold predicate would deem equal land on
// separate branches if both made it past the duplicate check above.
func (ps *PatternSet) Add(key, replacement []byte, wholeWord bool) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}
	if n, consumed := ps.trie.Lookup(key, ps.equal); consumed == len(key) && ps.trie.TokenAt(n) != invalidToken {
		return false, nil
	}

	terminal := ps.trie.Insert(key)
	id := len(ps.rules)
	rep := append([]byte(nil), replacement...)
	ps.rules = append(ps.rules, Rule{Replacement: rep, WholeWord: wholeWord})
	ps.trie.SetToken(terminal, id)
	return true, nil
}

// RuleAt returns the rule record for a valid rule id produced by Find.
func (ps *PatternSet) RuleAt(id int) Rule { return ps.rules[id] }

// SearchContext is the ephemeral per-scan state: the fixed bounds of the
// input, the cursor the next Find call resumes from, and the currently
// cached candidate hit (if any).
type SearchContext struct {
	Input []byte
	Begin int
	End   int

	Cursor int

	HitBegin  int
	HitEnd    int
	HitRuleID int
}

// NewSearch starts a scan of input[begin:end] with the cursor at begin.
func (ps *PatternSet) NewSearch(input []byte, begin, end int) *SearchContext {
	return &SearchContext{Input: input, Begin: begin, End: end, Cursor: begin, HitRuleID: InvalidRule}
}

func isASCIIAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// wholeWordOK implements the whole-word gate: both boundaries of
// [hitBegin, hitEnd) must be either the edge of the scanned region or a
// non-alphanumeric byte.
func wholeWordOK(input []byte, begin, end, hitBegin, hitEnd int) bool {
	if hitBegin != begin && isASCIIAlnum(input[hitBegin-1]) {
		return false
	}
	if hitEnd != end && isASCIIAlnum(input[hitEnd]) {
		return false
	}
	return true
}

// Find advances ctx from its cursor, searching positions p = cursor,
// cursor+1, ... until end for the longest valid terminal match, skipping
// any candidate that fails its rule's whole-word gate (the search resumes
// from p+1 in that case, not from the rejected hit's end). It sets
// ctx.HitRuleID to InvalidRule when no candidate matches anywhere in range.
func (ps *PatternSet) Find(ctx *SearchContext) {
	for p := ctx.Cursor; p < ctx.End; p++ {
		id, end, ok := ps.trie.LongestMatchAt(ctx.Input[:ctx.End], p, ps.equal)
		if !ok {
			continue
		}
		rule := ps.rules[id]
		if rule.WholeWord && !wholeWordOK(ctx.Input, ctx.Begin, ctx.End, p, end) {
			continue
		}
		ctx.HitBegin, ctx.HitEnd, ctx.HitRuleID = p, end, id
		return
	}
	ctx.HitRuleID = InvalidRule
}
