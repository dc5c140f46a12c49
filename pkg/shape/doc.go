// Package shape holds one drawing algorithm per visual style and emits the
// resulting primitives into an svg.Builder.
//
// Styles form a closed set ([Style]). Each style has a fixed [Scope]:
//
//   - [ScopeModule] styles draw one primitive per dark module (square,
//     circle, triangle, diamond, rounded-square).
//   - [ScopeFinder] styles draw one shape per finder pattern, spanning the
//     whole 7×7 window or its inner 3×3 (circle-inside, diamond-inside,
//     squircle-inside, cornerflow-inside, bagel-border, squircle-border,
//     cornerflow-border).
//
// Not every style is valid in every region; [Supports] reports the allowed
// pairings. [Resolve] looks a style up in a static table; [StyleNone] and
// values outside the table resolve to nothing, and callers skip drawing.
package shape
