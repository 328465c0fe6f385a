package analysis

// buildEdges constructs the successor edges over token positions. Every token
// starts with a single edge to the lexically next token; each conditional
// block then adds its branch and merge edges. Blocks are independent once
// extracted, so the order they are applied in does not matter.
func (t *FlowTree) buildEdges() {
	t.edges = make(map[int][]int, len(t.seq))
	for i := range t.seq {
		if i+1 < len(t.seq) {
			t.edges[i] = []int{i + 1}
		}
	}
	for _, b := range t.blocks {
		t.addBlockEdges(b)
	}
}

// addBlockEdges wires one conditional block:
//   - each `ifdef/`ifndef/`elsif gets two successors: its own branch body and
//     the next alternative (or the `endif when it is the last alternative);
//   - `else gets a single successor, its branch body;
//   - the last token of every branch body is rewired to the block's `endif,
//     so that a taken branch merges past the remaining alternatives. The
//     `endif itself carries no payload and keeps its default successor, which
//     lets merges chain through nested blocks.
//
// An empty branch body degenerates to an edge straight to the `endif.
func (t *FlowTree) addBlockEdges(b ConditionalBlock) {
	entries := make([]int, 0, len(b.Elsifs)+2)
	entries = append(entries, b.Open)
	entries = append(entries, b.Elsifs...)
	if b.Else != -1 {
		entries = append(entries, b.Else)
	}

	for k, entry := range entries {
		next := b.Endif
		if k+1 < len(entries) {
			next = entries[k+1]
		}

		// The branch body starts after the macro name for `ifdef/`ifndef/
		// `elsif, and directly after the directive for `else.
		bodyStart := entry + 1
		if name, ok := t.nameIdx[entry]; ok {
			bodyStart = name + 1
		}

		taken := bodyStart
		if bodyStart >= next {
			taken = b.Endif
		}
		if entry == b.Else {
			t.edges[entry] = []int{taken}
		} else {
			t.edges[entry] = []int{taken, next}
		}

		if last := next - 1; last >= bodyStart {
			t.edges[last] = []int{b.Endif}
		}
	}
}
