// Package analysis enumerates the preprocessing variants of a lexed
// Verilog/SystemVerilog token sequence. A source file with conditional
// compilation directives compiles to a different token sequence for each
// combination of macro-definedness assumptions that affects control flow;
// FlowTree discovers the conditional structure, builds a control flow graph
// over token positions, and walks it depth-first, reporting every reachable
// variant together with the assumptions that produced it.
package analysis

import (
	"strings"

	"github.com/yTakatsukasa/verible/internal/lexer"
)

// Variant is one complete, directive-free token sequence together with the
// macro assumptions that produced it.
type Variant struct {
	// Sequence holds the selected tokens in original relative order, with
	// all conditional directives and their macro names stripped.
	Sequence []lexer.Token

	// Macros bit i is set when the macro with ID i is assumed defined.
	Macros BitSet

	// Assumed bit i is set when macro i's assumption was fixed on this
	// path, in either direction. Macros never tested on this path leave
	// both bits clear: they are irrelevant to the variant.
	Assumed BitSet
}

// Text reconstructs the variant's source text.
func (v *Variant) Text() string {
	var sb strings.Builder
	for _, tok := range v.Sequence {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

// VariantReceiver receives one complete variant per call. Returning false
// stops the enumeration immediately: no further positions are visited and
// GenerateVariants returns success.
type VariantReceiver func(v *Variant) bool

// FlowTree builds the control flow graph of a token sequence and enumerates
// every distinguishable preprocessing variant. The token sequence is read-only
// for the lifetime of the FlowTree.
type FlowTree struct {
	seq      []lexer.Token
	registry *MacroRegistry
	blocks   []ConditionalBlock
	edges    map[int][]int
	macroIDs map[int]int // directive position -> macro ID
	nameIdx  map[int]int // directive position -> macro name position

	// Variant being grown by the depth-first walk. It has exactly one
	// writer at a time; strict backtracking keeps sibling branches from
	// observing each other's state.
	current   Variant
	wantsMore bool
}

// NewFlowTree creates a FlowTree over a lexed token sequence.
func NewFlowTree(seq []lexer.Token) *FlowTree {
	return &FlowTree{seq: seq}
}

// Registry returns the macro registry populated by the last GenerateVariants
// call, mapping conditional macro names to the bit offsets used in Variant
// bit vectors.
func (t *FlowTree) Registry() *MacroRegistry { return t.registry }

// GenerateVariants validates the conditional structure, builds the control
// flow graph and hands every reachable variant to receiver. Structural and
// capacity failures are reported before any variant is emitted. A receiver
// requesting an early stop is a normal, successful termination.
func (t *FlowTree) GenerateVariants(receiver VariantReceiver) error {
	t.registry = NewMacroRegistry()
	t.blocks = nil
	t.macroIDs = make(map[int]int)
	t.nameIdx = make(map[int]int)
	t.current = Variant{}
	t.wantsMore = true

	if err := t.extractBlocks(); err != nil {
		return err
	}
	t.buildEdges()

	if len(t.seq) == 0 {
		t.emit(receiver)
		return nil
	}
	t.depthFirstSearch(receiver, 0)
	return nil
}

// depthFirstSearch explores the graph from pos, growing t.current and
// backtracking between branches. Enter/leave mutations are kept symmetric on
// every exit path so sibling explorations never observe a prior sibling's
// tokens or assumption bits.
func (t *FlowTree) depthFirstSearch(receiver VariantReceiver, pos int) {
	if !t.wantsMore {
		return
	}
	tt := t.seq[pos].Type
	switch {
	case tt.TestsMacro():
		t.branch(receiver, pos)
	case tt.IsConditional():
		// `else and `endif carry no payload; flow straight through.
		t.follow(receiver, pos)
	default:
		t.current.Sequence = append(t.current.Sequence, t.seq[pos])
		defer func() {
			t.current.Sequence = t.current.Sequence[:len(t.current.Sequence)-1]
		}()
		t.follow(receiver, pos)
	}
}

// follow advances along the single successor edge of pos, emitting the
// completed variant when the sequence ends.
func (t *FlowTree) follow(receiver VariantReceiver, pos int) {
	succ := t.edges[pos]
	if len(succ) == 0 {
		t.emit(receiver)
		return
	}
	t.depthFirstSearch(receiver, succ[0])
}

// branch handles an `ifdef/`ifndef/`elsif directive testing a macro. If the
// macro's assumption is already fixed on this path it is honored without
// forking; otherwise both assumptions are explored, defined first.
func (t *FlowTree) branch(receiver VariantReceiver, pos int) {
	id := t.macroIDs[pos]
	succ := t.edges[pos] // [branch body, next alternative or `endif]
	positive := t.seq[pos].Type != lexer.TokenIfndef

	if t.current.Assumed.Test(id) {
		t.depthFirstSearch(receiver, chosen(succ, t.current.Macros.Test(id) == positive))
		return
	}

	for _, defined := range [2]bool{true, false} {
		if !t.wantsMore {
			break
		}
		if defined {
			t.current.Macros.Set(id)
		}
		t.current.Assumed.Set(id)
		t.depthFirstSearch(receiver, chosen(succ, defined == positive))
		t.current.Assumed.Clear(id)
		t.current.Macros.Clear(id)
	}
}

// chosen picks the branch-body successor when the test succeeded, the
// next-alternative successor otherwise.
func chosen(succ []int, takeBody bool) int {
	if takeBody {
		return succ[0]
	}
	return succ[1]
}

// emit hands a completed copy of the current variant to the receiver and
// records whether more variants are wanted.
func (t *FlowTree) emit(receiver VariantReceiver) {
	if !t.wantsMore {
		return
	}
	v := Variant{
		Sequence: append([]lexer.Token(nil), t.current.Sequence...),
		Macros:   t.current.Macros,
		Assumed:  t.current.Assumed,
	}
	t.wantsMore = receiver(&v)
}
