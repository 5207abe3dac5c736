package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/cs-au-dk/ineq/solver"
	"github.com/cs-au-dk/ineq/utils"
	"github.com/cs-au-dk/ineq/utils/dot"
	"github.com/cs-au-dk/ineq/utils/slices"
)

// secondaryTask checks whether a task other than reduction was provided,
// and executes it. It returns false if no such task was requested.
func (pl pipeline) secondaryTask(args []string) (bool, error) {
	switch {
	// roots : print the distinct real roots of every polynomial argument.
	case task.IsRoots():
		for _, arg := range args {
			if len(args) > 1 {
				pl.printf("%s:\n", utils.CanColorize(color.New(color.FgCyan).SprintFunc())(arg))
			}
			if err := pl.rootsTask(arg); err != nil {
				return true, err
			}
		}
		return true, nil

	// case-split : print the absolute value case split of every argument and
	// optionally render it as a decision tree.
	case task.IsCaseSplit():
		for i, arg := range args {
			branches, err := pl.caseSplitTask(arg)
			if err != nil {
				return true, err
			}
			if !opts.Visualize() {
				continue
			}

			format := opts.OutputFormat()
			if !slices.OneOf(format, "svg", "png", "jpg", "dot") {
				log.Printf("Unknown format %q, rendering svg instead", format)
				format = "svg"
			}

			out := opts.Out()
			if out != "" && len(args) > 1 {
				out += "_" + strconv.Itoa(i)
			}

			g := caseSplitGraph(arg, branches)
			img, err := g.Render(out, format)
			if err != nil {
				return true, err
			}
			log.Println("Rendered case split to", utils.CanColorize(color.New(color.FgGreen).SprintFunc())(img))
		}
		return true, nil
	}

	return false, nil
}

// caseSplitGraph lays the branches out as a decision tree. Branches sharing
// a prefix of conditions share the path from the root.
func caseSplitGraph(title string, branches []solver.Branch) *dot.DotGraph {
	g := &dot.DotGraph{
		Title:   title,
		Options: map[string]string{"rankdir": "TB"},
	}

	root := g.AddNode(title, dot.DotAttrs{"fillcolor": "lightblue"})
	inner := map[string]*dot.DotNode{"": root}

	for _, b := range branches {
		parent, path := root, ""
		for _, c := range b.Conds {
			path += "\x00" + c.String()
			n, ok := inner[path]
			if !ok {
				n = g.AddNode(c.String(), dot.DotAttrs{"shape": "point"})
				g.AddEdge(parent, n, c.String())
				inner[path] = n
			}
			parent = n
		}

		leaf := g.AddNode(b.Expr.String(), dot.DotAttrs{"fillcolor": "honeydew"})
		g.AddEdge(parent, leaf, "")
	}

	if len(branches) == 0 {
		g.Title = strings.TrimSpace(title) + " (no cases)"
	}
	return g
}
