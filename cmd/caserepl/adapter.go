package main

import (
	"github.com/twinfer/caserepl"
	"github.com/twinfer/caserepl/internal/caseparse"
)

// replacerBuilder adapts *caserepl.Replacer to caseparse.Builder, translating
// the replacements-file vocabulary onto the engine's Mode type. It exists so
// the core engine package never has to know about the CLI's file format.
type replacerBuilder struct {
	*caserepl.Replacer
}

func (b replacerBuilder) Add(find, replace string, mode caseparse.ReplMode, wholeWord bool) error {
	var m caserepl.Mode
	switch mode {
	case caseparse.PreserveCase:
		m = caserepl.PreserveCase
	case caseparse.IgnoreCase:
		m = caserepl.IgnoreCase
	case caseparse.MatchCase:
		m = caserepl.MatchCase
	}
	return b.Replacer.AddReplacement(find, replace, m, wholeWord)
}
