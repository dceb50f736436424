package caserepl

import (
	"io"

	"github.com/twinfer/caserepl/internal/casetrie"
)

// scan drives two independent search contexts - one over the exact pattern
// set, one over the fold pattern set - in lock-step, resolving positional
// overlap between their candidate hits, and writes literal spans plus
// replacement text to sink as it goes.
func (r *Replacer) scan(input []byte, sink io.Writer) error {
	begin, end := 0, len(input)
	ex := r.exact.NewSearch(input, begin, end)
	fo := r.fold.NewSearch(input, begin, end)
	r.exact.Find(ex)
	r.fold.Find(fo)

	for ex.HitRuleID != casetrie.InvalidRule || fo.HitRuleID != casetrie.InvalidRule {
		var a, b *casetrie.SearchContext
		var aSet, bSet *casetrie.PatternSet

		switch {
		case ex.HitRuleID != casetrie.InvalidRule && fo.HitRuleID != casetrie.InvalidRule:
			overlap := (ex.HitBegin < fo.HitEnd && fo.HitBegin < ex.HitEnd) || ex.HitBegin == fo.HitBegin
			if ex.HitBegin <= fo.HitBegin {
				// Ties go to the exact set.
				a, aSet, b, bSet = ex, r.exact, fo, r.fold
			} else {
				a, aSet, b, bSet = fo, r.fold, ex, r.exact
			}

			if err := emitMatch(input, sink, a, aSet); err != nil {
				return err
			}
			newCursor := a.Cursor // emitMatch set a.Cursor = a.HitEnd; Find never rewinds Cursor.
			aSet.Find(a)

			if b.HitRuleID != casetrie.InvalidRule && b.HitBegin < newCursor {
				b.HitRuleID = casetrie.InvalidRule
			}
			if b.Cursor < newCursor {
				b.Cursor = newCursor
			}
			if overlap {
				bSet.Find(b)
			}

		case ex.HitRuleID != casetrie.InvalidRule:
			a, aSet = ex, r.exact
			if err := emitMatch(input, sink, a, aSet); err != nil {
				return err
			}
			aSet.Find(a)

		default:
			a, aSet = fo, r.fold
			if err := emitMatch(input, sink, a, aSet); err != nil {
				return err
			}
			aSet.Find(a)
		}
	}

	tail := ex.Cursor
	if fo.Cursor > tail {
		tail = fo.Cursor
	}
	return writeSpan(sink, input, tail, end)
}

// emitMatch writes the literal span preceding a's cached hit and then its
// replacement, and advances a.Cursor to the end of the hit. It must be
// called before a's hit fields are overwritten by a subsequent Find.
func emitMatch(input []byte, sink io.Writer, a *casetrie.SearchContext, aSet *casetrie.PatternSet) error {
	if err := writeSpan(sink, input, a.Cursor, a.HitBegin); err != nil {
		return err
	}
	rule := aSet.RuleAt(a.HitRuleID)
	if len(rule.Replacement) > 0 {
		if _, err := sink.Write(rule.Replacement); err != nil {
			return err
		}
	}
	a.Cursor = a.HitEnd
	return nil
}

func writeSpan(sink io.Writer, input []byte, begin, end int) error {
	if end <= begin {
		return nil
	}
	_, err := sink.Write(input[begin:end])
	return err
}
