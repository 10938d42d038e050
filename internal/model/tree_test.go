package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/ax-inspector/internal/ax"
	"github.com/mj1618/ax-inspector/internal/ax/axtest"
)

func flat(depthTitles ...any) []Element {
	var out []Element
	for i := 0; i < len(depthTitles); i += 2 {
		out = append(out, Element{Depth: depthTitles[i].(int), Title: depthTitles[i+1].(string)})
	}
	return out
}

func TestBuildTree_Nesting(t *testing.T) {
	tree := BuildTree(flat(0, "window", 1, "toolbar", 2, "back", 2, "forward", 1, "content", 2, "label"))

	require.Len(t, tree, 1)
	root := tree[0]
	assert.Equal(t, "window", root.Title)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "toolbar", root.Children[0].Title)
	assert.Equal(t, "content", root.Children[1].Title)
	require.Len(t, root.Children[0].Children, 2)
	assert.Equal(t, "back", root.Children[0].Children[0].Title)
	assert.Equal(t, "forward", root.Children[0].Children[1].Title)
	require.Len(t, root.Children[1].Children, 1)
	assert.Equal(t, "label", root.Children[1].Children[0].Title)
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestBuildTree_SingleRoot(t *testing.T) {
	tree := BuildTree(flat(0, "only"))
	require.Len(t, tree, 1)
	assert.Nil(t, tree[0].Children)
}

func TestBuildTree_RoundTripsThroughFlatten(t *testing.T) {
	in := flat(0, "a", 1, "b", 2, "c", 3, "d", 1, "e", 2, "f", 2, "g")
	out := FlattenElements(BuildTree(in))
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Title, out[i].Title)
		assert.Equal(t, in[i].Depth, out[i].Depth)
	}
}

func TestFromFrame(t *testing.T) {
	el := FromFrame(ax.Frame{Depth: 3, Snapshot: ax.Snapshot{
		ax.AttrRole:            ax.Text("AXSlider"),
		ax.AttrRoleDescription: ax.Text("slider"),
		ax.AttrValue:           ax.Number(0.75),
		ax.AttrPosition:        ax.Point{X: 4, Y: 8},
	}})
	assert.Equal(t, Element{
		Depth:           3,
		Role:            "AXSlider",
		RoleDescription: "slider",
		Value:           "0.75",
		Attributes: map[string]string{
			ax.AttrRole:            "AXSlider",
			ax.AttrRoleDescription: "slider",
			ax.AttrValue:           "0.75",
			ax.AttrPosition:        "{4, 8}",
		},
	}, el)
}

func TestFromFrame_EmptySnapshot(t *testing.T) {
	el := FromFrame(ax.Frame{Depth: 1, Snapshot: ax.Snapshot{}})
	assert.Equal(t, Element{Depth: 1}, el)
}

func TestCollector_WalkToTree(t *testing.T) {
	root := axtest.Element("AXWindow",
		axtest.Element("AXGroup",
			axtest.Element("AXButton").With(ax.AttrTitle, ax.Text("OK")),
		),
		axtest.Element("AXStaticText").With(ax.AttrValue, ax.Text("ready")),
	)
	var c Collector
	err := ax.NewWalker(&axtest.Service{}, ax.Options{Mode: ax.ModeFull, MaxDepth: 10}, nil).Walk(root, c.Visit)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	tree := c.Tree()
	require.Len(t, tree, 1)
	assert.Equal(t, "AXWindow", tree[0].Role)
	assert.Equal(t, "<2 elements>", tree[0].Attributes[ax.AttrChildren])
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "OK", tree[0].Children[0].Children[0].Title)
	assert.Equal(t, "ready", tree[0].Children[1].Value)
}
