// Package svg accumulates drawing primitives into independent named layers
// and serializes them into one SVG document.
//
// A [Builder] keeps two kinds of layer:
//   - solid layers hold individual primitives (rect, circle, ring, polygon)
//   - path layers hold path data merged into a single <path> element
//
// Solid layers must be registered before use; appending to an unknown solid
// layer is a no-op. Path layers are registered on first append. [Builder.Build]
// writes the preamble, then every non-empty solid layer, then every non-empty
// path layer, each group in registration order:
//
//	doc := svg.NewBuilder().
//	    SetViewport(svg.ViewBox{Width: 29, Height: 29}, svg.RenderCrispEdges).
//	    SetBackground("#fff").
//	    SetPrimaryColor("#000").
//	    RegisterSolidLayer("data").
//	    AddRect("data", 4, 4, 1, "").
//	    Build()
package svg
