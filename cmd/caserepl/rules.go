package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/twinfer/caserepl/internal/caseparse"
)

// loadReplacements reads a replacements file and installs every rule it
// describes into r.
//
// File format:
//
//	# a comment
//	@mode preserve_case      (or ignore_case, match_case - sticky until changed)
//	@whole_word true         (or false - sticky until changed)
//	find-->replace
//
// Rule lines use the current sticky @mode and @whole_word. Both operands
// accept the escapes decodeEscapes understands.
func loadReplacements(r caseparse.Builder, src io.Reader) error {
	scanner := bufio.NewScanner(src)
	mode := caseparse.PreserveCase
	wholeWord := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "@") {
			directive, arg, _ := strings.Cut(line[1:], " ")
			arg = strings.TrimSpace(arg)
			switch directive {
			case "mode":
				m, err := caseparse.ParseMode(arg)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				mode = m
			case "whole_word":
				switch arg {
				case "true":
					wholeWord = true
				case "false":
					wholeWord = false
				default:
					return fmt.Errorf("line %d: @whole_word expects true or false, got %q", lineNo, arg)
				}
			default:
				return fmt.Errorf("line %d: unknown directive %q", lineNo, directive)
			}
			continue
		}

		find, replace, ok := strings.Cut(line, "-->")
		if !ok {
			return fmt.Errorf("line %d: expected find-->replace, got %q", lineNo, line)
		}
		if err := r.Add(decodeEscapes(find), decodeEscapes(replace), mode, wholeWord); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
