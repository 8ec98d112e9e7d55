package autodiff

// TopoSort returns every node reachable from out through producer edges,
// each exactly once, with producers before the nodes built from them.
//
// The order comes from a post-order depth-first search keyed by node
// identity, so out is always the last element. Walking the result back to
// front visits every consumer of a node before the node itself.
func TopoSort(out *Value) []*Value {
	var (
		topo    []*Value
		visited = make(map[*Value]struct{})
	)

	var build func(*Value)
	build = func(v *Value) {
		if _, ok := visited[v]; ok {
			return
		}
		visited[v] = struct{}{}
		for _, p := range v.prev {
			build(p)
		}
		topo = append(topo, v)
	}
	build(out)

	return topo
}

// Backward computes d(v)/d(n) for every node n reachable from v.
//
// Algorithm:
//  1. Order the reachable graph topologically (TopoSort)
//  2. Seed v's gradient with 1 (dv/dv)
//  3. Apply backward closures from v down to the leaves
//
// By step 3 each node has received contributions from all of its consumers
// before it distributes its own gradient. Contributions are added, never
// assigned, so a second call without zeroing keeps accumulating. Nodes not
// reachable from v are left untouched.
func (v *Value) Backward() {
	topo := TopoSort(v)

	v.grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		if node := topo[i]; node.backward != nil {
			node.backward()
		}
	}
}

// ZeroGrads resets the gradient of every node reachable from out, out included.
func ZeroGrads(out *Value) {
	for _, v := range TopoSort(out) {
		v.grad = 0
	}
}
