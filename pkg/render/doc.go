// Package render turns a QR module matrix into a styled SVG document.
//
// # Overview
//
// Rendering has two steps:
//
//  1. [Options.Resolve] turns a possibly partial [Options] value into an
//     immutable [Config], applying defaults and rejecting invalid input.
//  2. [Render] walks the matrix and dispatches every region to the
//     strategy selected for it in the config.
//
// # Walk
//
// The walk runs in two phases. Finder-scope styles (circle-inside,
// bagel-border and friends) draw once per finder pattern, anchors taken in
// fixed order: top-left, top-right, bottom-left. Module-scope styles then
// draw once per dark module in row-major order.
//
// Each region owns one layer, so the three regions can be styled and
// colored independently:
//
//	cfg, err := render.Options{
//	    DataStyle:   "circle",
//	    BorderStyle: "bagel-border",
//	    Foreground:  "#1d4ed8",
//	}.Resolve()
//	if err != nil {
//	    return err
//	}
//	doc := render.Render(matrix, cfg)
//
// [Render] never fails. It returns the empty string when the matrix is
// missing or smaller than [qr.MinSize], or when the config was not produced
// by [Options.Resolve].
package render
