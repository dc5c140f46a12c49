// Package qr models the module matrix of a QR symbol and the structural
// questions the renderer asks about it.
//
// A [Matrix] is a read-only square grid of modules produced by an encoder.
// The package classifies every coordinate into one of three structural
// [Region] values using the three fixed 7×7 finder windows, and answers
// adjacency questions used by corner-aware shapes.
//
// # Regions
//
// The three finder anchors sit at (0,0), (size-7,0) and (0,size-7). Inside
// each 7×7 window the outer ring is [RegionFinderBorder] and the remaining
// 5×5 block is [RegionFinderInterior]. Every other coordinate is
// [RegionData]:
//
//	region := qr.Classify(qr.Point{X: 3, Y: 3}, 25) // RegionFinderInterior
//
// # Encoding
//
// [Encode] wraps github.com/skip2/go-qrcode and returns a [Bitmap] without a
// quiet zone; the margin is added by the renderer. Callers with their own
// encoder can implement [Matrix] directly or fill a [Grid].
package qr
