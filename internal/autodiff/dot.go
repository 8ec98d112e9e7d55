package autodiff

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT renders the graph reachable from out in Graphviz DOT format.
//
// Each value becomes a record node with its data and gradient; each
// non-leaf value also gets an operation node feeding it. Pipe the output
// through `dot -Tsvg` to view it.
func WriteDOT(w io.Writer, out *Value) error {
	bw := bufio.NewWriter(w)
	ids := make(map[*Value]int)
	topo := TopoSort(out)
	for i, v := range topo {
		ids[v] = i
	}

	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "  rankdir=LR;")
	for _, v := range topo {
		id := ids[v]
		fmt.Fprintf(bw, "  n%d [shape=record, label=\"{data %.4f | grad %.4f}\"];\n", id, v.data, v.grad)
		if v.IsLeaf() {
			continue
		}
		fmt.Fprintf(bw, "  op%d [label=%q];\n", id, v.op)
		fmt.Fprintf(bw, "  op%d -> n%d;\n", id, id)
		for _, p := range v.prev {
			fmt.Fprintf(bw, "  n%d -> op%d;\n", ids[p], id)
		}
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write DOT graph: %w", err)
	}
	return nil
}
