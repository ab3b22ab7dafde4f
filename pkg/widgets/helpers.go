package widgets

import (
	"github.com/glacier-ui/glacier/pkg/core"
	"github.com/glacier-ui/glacier/pkg/geometry"
	"github.com/glacier-ui/glacier/pkg/layout"
	"github.com/glacier-ui/glacier/pkg/renderer"
)

// overlayFromChildren collects the overlays of a container's children,
// grouping when more than one child produced one.
func overlayFromChildren[M any](
	children []core.Element[M],
	tree *core.Tree,
	lay layout.Layout,
	r renderer.Renderer,
	viewport geometry.Rectangle,
	translation geometry.Vector,
) *core.OverlayElement[M] {
	var overlays []*core.OverlayElement[M]
	for i, child := range lay.Children() {
		overlay := core.OverlayOf(children[i].Widget(), tree.Children[i], child, r, viewport, translation)
		if overlay != nil {
			overlays = append(overlays, overlay)
		}
	}

	switch len(overlays) {
	case 0:
		return nil
	case 1:
		return overlays[0]
	default:
		return core.NewGroup(overlays).Element()
	}
}
