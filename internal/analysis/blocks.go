package analysis

import (
	"strings"

	"github.com/yTakatsukasa/verible/internal/lexer"
)

// ConditionalBlock is one parsed unit of conditional structure. Positions are
// indices into the token sequence and strictly increase:
// Open < Elsifs... < Else < Endif.
type ConditionalBlock struct {
	Open   int
	Elsifs []int
	Else   int // -1 when absent
	Endif  int
}

// extractBlocks scans the token sequence once, pairing each opening directive
// with its alternatives and closing `endif, validating nesting with a stack
// of currently open blocks. Macro names of `ifdef/`ifndef/`elsif directives
// are registered as a side effect.
func (t *FlowTree) extractBlocks() error {
	var stack []*ConditionalBlock
	for i := 0; i < len(t.seq); i++ {
		switch t.seq[i].Type {
		case lexer.TokenIfdef, lexer.TokenIfndef:
			if err := t.registerMacro(i); err != nil {
				return err
			}
			stack = append(stack, &ConditionalBlock{Open: i, Else: -1})

		case lexer.TokenElsif:
			if len(stack) == 0 {
				return &AnalysisError{
					Kind:    ErrKindDanglingAlternative,
					Pos:     t.seq[i].Pos,
					Message: "`elsif without a matching `ifdef/`ifndef",
				}
			}
			top := stack[len(stack)-1]
			if top.Else != -1 {
				return &AnalysisError{
					Kind:    ErrKindBranchAfterElse,
					Pos:     t.seq[i].Pos,
					Message: "`elsif after `else in the same block",
				}
			}
			if err := t.registerMacro(i); err != nil {
				return err
			}
			top.Elsifs = append(top.Elsifs, i)

		case lexer.TokenElse:
			if len(stack) == 0 {
				return &AnalysisError{
					Kind:    ErrKindDanglingAlternative,
					Pos:     t.seq[i].Pos,
					Message: "`else without a matching `ifdef/`ifndef",
				}
			}
			top := stack[len(stack)-1]
			if top.Else != -1 {
				return &AnalysisError{
					Kind:    ErrKindBranchAfterElse,
					Pos:     t.seq[i].Pos,
					Message: "duplicate `else in the same block",
				}
			}
			top.Else = i

		case lexer.TokenEndif:
			if len(stack) == 0 {
				return &AnalysisError{
					Kind:    ErrKindUnmatchedEndif,
					Pos:     t.seq[i].Pos,
					Message: "`endif without a matching `ifdef/`ifndef",
				}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.Endif = i
			t.blocks = append(t.blocks, *top)
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &AnalysisError{
			Kind:    ErrKindMissingEndif,
			Pos:     t.seq[top.Open].Pos,
			Message: "conditional block never closed by `endif",
		}
	}
	return nil
}

// registerMacro locates the macro-name identifier following the directive at
// pos, registers it, and records the name index and macro ID for traversal.
// Spaces between the directive and its macro name are tolerated, but the name
// must appear before the end of the directive's line.
func (t *FlowTree) registerMacro(pos int) error {
	j := pos + 1
	for j < len(t.seq) && t.seq[j].Type == lexer.TokenWhitespace &&
		!strings.Contains(t.seq[j].Literal, "\n") {
		j++
	}
	if j >= len(t.seq) || t.seq[j].Type != lexer.TokenIdentifier {
		return &AnalysisError{
			Kind:    ErrKindMissingName,
			Pos:     t.seq[pos].Pos,
			Message: t.seq[pos].Literal + " not followed by a macro name",
		}
	}
	id, err := t.registry.IDFor(t.seq[j].Literal)
	if err != nil {
		if ae, ok := err.(*AnalysisError); ok && ae.Pos.Line == 0 {
			ae.Pos = t.seq[j].Pos
		}
		return err
	}
	t.macroIDs[pos] = id
	t.nameIdx[pos] = j
	return nil
}
