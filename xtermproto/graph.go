package xtermproto

// Graph is the command state machine: an arena of nodes and edges addressed
// by index (edgeIdx/nodeIdx) rather than pointers, per spec §9's redesign
// note to replace pointer-heavy graph structures with flat indexed slices.
// It is built once by Build and is immutable thereafter; Machine only ever
// reads it.
type Graph struct {
	nodes []node
	edges []edgeRec
	root  nodeIdx
}

func (g *Graph) newNode() nodeIdx {
	g.nodes = append(g.nodes, node{edgeMap: make(map[rune]edgeIdx)})
	return nodeIdx(len(g.nodes) - 1)
}

func (g *Graph) newEdge(e Edge, next nodeIdx) edgeIdx {
	g.edges = append(g.edges, edgeRec{edge: e, next: next})
	return edgeIdx(len(g.edges) - 1)
}

// addLiteralEdge returns the node reached by consuming the exact byte val
// from cur, creating that edge (and its target node) the first time it is
// requested for a given (cur, val) pair.
func (g *Graph) addLiteralEdge(cur nodeIdx, val rune) nodeIdx {
	nd := &g.nodes[cur]
	if ei, ok := nd.edgeMap[val]; ok {
		return g.edges[ei].next
	}
	target := g.newNode()
	ei := g.newEdge(LiteralEdge{}, target)
	g.nodes[cur].edgeMap[val] = ei
	return target
}

func (g *Graph) addSingleCharEdge(cur nodeIdx, varnum int) nodeIdx {
	target := g.newNode()
	ei := g.newEdge(SingleCharEdge{Varnum: varnum}, target)
	g.nodes[cur].edgeList = append([]edgeIdx{ei}, g.nodes[cur].edgeList...)
	return target
}

func (g *Graph) addSingleNumericEdge(cur nodeIdx, varnum int, terminator rune) nodeIdx {
	for _, ei := range g.nodes[cur].edgeList {
		if e, ok := g.edges[ei].edge.(SingleNumericEdge); ok {
			e.Terminators = append(e.Terminators, terminator)
			g.edges[ei].edge = e
			return g.addLiteralEdge(g.edges[ei].next, terminator)
		}
	}
	target := g.newNode()
	ei := g.newEdge(SingleNumericEdge{Varnum: varnum, Terminators: []rune{terminator}}, target)
	g.nodes[cur].edgeList = append([]edgeIdx{ei}, g.nodes[cur].edgeList...)
	return g.addLiteralEdge(target, terminator)
}

func (g *Graph) addMultiNumericEdge(cur nodeIdx, varnum int, separator, terminator rune) nodeIdx {
	for _, ei := range g.nodes[cur].edgeList {
		if e, ok := g.edges[ei].edge.(MultiNumericEdge); ok {
			e.Terminators = append(e.Terminators, terminator)
			g.edges[ei].edge = e
			return g.addLiteralEdge(g.edges[ei].next, terminator)
		}
	}
	target := g.newNode()
	ei := g.newEdge(MultiNumericEdge{Varnum: varnum, Separator: separator, Terminators: []rune{terminator}}, target)
	g.nodes[cur].edgeList = append([]edgeIdx{ei}, g.nodes[cur].edgeList...)
	return g.addLiteralEdge(target, terminator)
}

func (g *Graph) addSingleTextEdge(cur nodeIdx, varnum int, terminator rune) nodeIdx {
	for _, ei := range g.nodes[cur].edgeList {
		if e, ok := g.edges[ei].edge.(SingleTextEdge); ok {
			e.Terminators = append(e.Terminators, terminator)
			g.edges[ei].edge = e
			return g.addLiteralEdge(g.edges[ei].next, terminator)
		}
	}
	target := g.newNode()
	ei := g.newEdge(SingleTextEdge{Varnum: varnum, Terminators: []rune{terminator}}, target)
	g.nodes[cur].edgeList = append([]edgeIdx{ei}, g.nodes[cur].edgeList...)
	return g.addLiteralEdge(target, terminator)
}

// addCommand walks one command's pattern string, where the kind-marker
// bytes (KindSingleNumeric etc) select which builder consumes the
// following byte(s) of the pattern instead of being matched literally.
func (g *Graph) addCommand(root nodeIdx, cmd command) {
	cur := root
	varnum := 0
	seq := cmd.sequence

	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case KindSingleNumeric:
			i++
			cur = g.addSingleNumericEdge(cur, varnum, rune(seq[i]))
			varnum++
		case KindMultiNumeric:
			sep := rune(seq[i+1])
			term := rune(seq[i+2])
			i += 2
			cur = g.addMultiNumericEdge(cur, varnum, sep, term)
			varnum++
		case KindSingleText:
			i++
			cur = g.addSingleTextEdge(cur, varnum, rune(seq[i]))
			varnum++
		case KindSingleChar:
			cur = g.addSingleCharEdge(cur, varnum)
			varnum++
		default:
			cur = g.addLiteralEdge(cur, rune(seq[i]))
		}
	}

	g.nodes[cur].isLeaf = true
	g.nodes[cur].slot = cmd.id
	g.nodes[cur].slotName = cmd.name
}

// Build constructs the full command graph from the static command table,
// plus the control-intercept and bare-printable leaves every node falls
// back to.
func Build() *Graph {
	g := &Graph{}
	root := g.newNode()
	g.root = root

	for _, cmd := range commandTable {
		g.addCommand(root, cmd)
	}

	// Control edge: every node not overridden above falls back to this,
	// which intercepts control codes wherever they appear in a sequence.
	controlTarget := g.newNode()
	g.nodes[controlTarget].isLeaf = true
	g.nodes[controlTarget].slot = HProcess
	g.nodes[controlTarget].slotName = "process"
	controlEdge := g.newEdge(ControlEdge{}, controlTarget)

	// Bare printable fallback at the root: any byte not otherwise claimed.
	printTarget := g.newNode()
	g.nodes[printTarget].isLeaf = true
	g.nodes[printTarget].slot = HProcess
	g.nodes[printTarget].slotName = "process"
	printEdge := g.newEdge(LiteralEdge{}, printTarget)
	g.nodes[root].edgeList = append(g.nodes[root].edgeList, printEdge)

	// Every non-root node falls back to the control edge, mirroring
	// XTermNode's default constructor argument in the original.
	for i := range g.nodes {
		if nodeIdx(i) == root {
			continue
		}
		g.nodes[i].edgeList = append(g.nodes[i].edgeList, controlEdge)
	}

	return g
}
