package graphstate

import (
	"fmt"
	"io"
)

// WriteDOT emits g as a Graphviz "graph" (undirected) or "digraph" (directed)
// with edges in canonical storage order. labeling is optional (nil for ER);
// when present it is interpreted as a block assignment and vertices in
// block 0 are colored red, block 1 blue — blocks beyond 1 are left
// uncolored, matching the upstream presenter which never extended its
// two-color scheme to B>2.
//
// Kept as a free function over (graph, optional labeling) rather than a
// method the ensemble overrides, so Graphviz emission never needs to know
// which policy produced the graph.
func WriteDOT(w io.Writer, g *Graph, name string, labeling []int) error {
	kind := "graph"
	arrow := "--"
	if g.directed {
		kind = "digraph"
		arrow = "->"
	}

	if _, err := fmt.Fprintf(w, "%s %s {\n", kind, name); err != nil {
		return err
	}

	for v := 0; v < g.n; v++ {
		color := ""
		if labeling != nil {
			switch labeling[v] {
			case 0:
				color = " [color=red]"
			case 1:
				color = " [color=blue]"
			}
		}
		if color != "" {
			if _, err := fmt.Fprintf(w, "  %d%s;\n", v, color); err != nil {
				return err
			}
		}
	}

	if g.directed {
		for i := 0; i < g.n; i++ {
			for j := 0; j < g.n; j++ {
				if g.adj[i][j] {
					if _, err := fmt.Fprintf(w, "  %d %s %d;\n", i, arrow, j); err != nil {
						return err
					}
				}
			}
		}
	} else {
		for i := 1; i < g.n; i++ {
			for j := 0; j < i; j++ {
				if g.adj[i][j] {
					if _, err := fmt.Fprintf(w, "  %d %s %d;\n", i, arrow, j); err != nil {
						return err
					}
				}
			}
		}
		if g.loopsAllowed {
			for i := 0; i < g.n; i++ {
				if g.adj[i][i] {
					if _, err := fmt.Fprintf(w, "  %d %s %d;\n", i, arrow, i); err != nil {
						return err
					}
				}
			}
		}
	}

	_, err := fmt.Fprint(w, "}\n")
	return err
}
