package dot

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

// DotToImage renders a dot graph to outfname.format and returns the path of
// the image. Without an output name the image is placed in the temporary
// directory.
func DotToImage(outfname string, format string, dot []byte) (string, error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		g.Close()
		return "", err
	}
	defer func() {
		if err := graph.Close(); err != nil {
			log.Println(err)
		}
		g.Close()
	}()

	var img string
	if outfname == "" {
		img = filepath.Join(os.TempDir(), fmt.Sprintf("ineq_case_split.%s", format))
	} else {
		img = fmt.Sprintf("%s.%s", outfname, format)
	}
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", err
	}
	return img, nil
}

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

const tmplGraph = `digraph CaseSplit {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	rankdir="{{or .Options.rankdir "TB"}}";
	bgcolor="lightgray";
	style="solid";
	penwidth="0.5";
	pad="0.0";
	nodesep="{{or .Options.nodesep "0.25"}}";

	node [shape="box" style="filled" fillcolor="honeydew" fontname="Verdana" penwidth="1.0" margin="0.05,0.0"];
	edge [minlen="{{or .Options.minlen "1"}}" fontname="Verdana" fontsize="10"]

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{template "edge" .}}
	{{- end}}
}
`

// ==[ type def/func: DotNode    ]===============================================
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// ==[ type def/func: DotEdge    ]===============================================
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// ==[ type def/func: DotAttrs   ]===============================================
type DotAttrs map[string]string

// List renders the attributes sorted by key, so the output is stable.
func (p DotAttrs) List() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	l := []string{}
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q;", k, p[k]))
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

// ==[ type def/func: DotGraph   ]===============================================
type DotGraph struct {
	Title   string
	Nodes   []*DotNode
	Edges   []*DotEdge
	Options map[string]string
}

// AddNode adds a node with the given label and returns it. Node IDs are
// assigned in insertion order.
func (g *DotGraph) AddNode(label string, attrs DotAttrs) *DotNode {
	if attrs == nil {
		attrs = make(DotAttrs)
	}
	attrs["label"] = label
	n := &DotNode{ID: fmt.Sprintf("n%d", len(g.Nodes)), Attrs: attrs}
	g.Nodes = append(g.Nodes, n)
	return n
}

// AddEdge connects two nodes with an optionally labelled edge.
func (g *DotGraph) AddEdge(from, to *DotNode, label string) *DotEdge {
	attrs := make(DotAttrs)
	if label != "" {
		attrs["label"] = label
	}
	e := &DotEdge{From: from, To: to, Attrs: attrs}
	g.Edges = append(g.Edges, e)
	return e
}

func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	t.Option("missingkey=zero") // Make missing map keys return the zero value of appropriate type
	for _, s := range []string{tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Render writes the graph as an image with DotToImage.
func (g *DotGraph) Render(outfname, format string) (string, error) {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return "", err
	}
	return DotToImage(outfname, format, buf.Bytes())
}
