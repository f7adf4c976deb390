package dnn

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/lfv-hep/pdnn/arrayutil"
)

//DrawGraph builds the architecture graph of the network, one node per
//dense layer.
func (m *Model) DrawGraph() (*graphviz.Graphviz, *cgraph.Graph) {
	graphViz := graphviz.New()
	graph, err := graphViz.Graph()
	arrayutil.HandleError(err)

	prev, err := graph.CreateNode("input")
	arrayutil.HandleError(err)
	prev.Set("label", fmt.Sprintf("input\n%d features", m.NumFeatures()))
	prev.Set("shape", "box")

	last := len(m.Layers) - 1
	for i, l := range m.Layers {
		in, out := l.W.Dims()
		activation := "relu"
		if i == last {
			activation = "sigmoid"
		}
		node, err := graph.CreateNode(fmt.Sprintf("dense_%d", i))
		arrayutil.HandleError(err)
		node.Set("label", fmt.Sprintf("dense %d\n%d x %d\n%s", i, in, out, activation))
		_, err = graph.CreateEdge("", prev, node)
		arrayutil.HandleError(err)
		prev = node
	}
	return graphViz, graph
}

//Render writes the architecture graph to a picture file, figureType being
//one of png, svg or jpg.
func (m *Model) Render(fileName, figureType string) error {
	graphvizType, ok := map[string]graphviz.Format{
		"png": graphviz.PNG,
		"svg": graphviz.SVG,
		"jpg": graphviz.JPG,
	}[figureType]
	if !ok {
		return fmt.Errorf("unknown figure type %q", figureType)
	}
	graphViz, graph := m.DrawGraph()
	return graphViz.RenderFilename(graph, graphvizType, fileName)
}
