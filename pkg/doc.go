// Package pkg provides the libraries behind qrsvg, a renderer that turns QR
// codes into layered, styled SVG documents.
//
// # Overview
//
// A QR code has three kinds of dark modules: the 3x3 core of each finder
// pattern, the 7x7 ring around it, and everything else. qrsvg classifies
// each module into one of those regions and draws it with the style
// selected for that region, so a code can have round data dots, a bagel
// shaped finder ring and a diamond finder core in the same document.
//
// # Architecture
//
// The typical data flow:
//
//	content fields
//	     ↓
//	[content] package (build the payload string)
//	     ↓
//	[qr] package (encode to a module matrix, classify regions)
//	     ↓
//	[render] package (walk the matrix, dispatch to [shape] strategies)
//	     ↓
//	[svg] package (layered document builder)
//	     ↓
//	SVG document
//
// [pipeline] runs these stages behind a [cache] and is shared by the CLI
// and the [server] HTTP API.
//
// # Quick Start
//
//	m, _ := qr.Encode("https://example.com", qr.ECCMedium)
//	cfg, _ := render.Options{
//	    DataStyle:     "circle",
//	    BorderStyle:   "bagel-border",
//	    InteriorStyle: "circle-inside",
//	}.Resolve()
//	doc := render.Render(m, cfg)
//
// # Main Packages
//
// ## Rendering
//
// [qr] - The Matrix capability, module coordinates, region classification,
// finder anchors and the four-neighbor adjacency prober. Also adapts the
// skip2/go-qrcode encoder.
//
// [shape] - The closed set of module styles, which styles each region
// accepts, and the strategy table mapping a style to its drawing routine.
//
// [svg] - A builder that collects primitives into named layers and serializes
// them in registration order.
//
// [render] - Option resolution, color validation and the two-phase walk that
// draws finder patterns once per anchor and everything else per module.
//
// ## Payloads
//
// [content] - Payload formatting for text, URL, WiFi, phone, SMS and email.
//
// ## Infrastructure
//
// [pipeline] - Format, encode and render with cache lookup, used by the CLI
// and the HTTP API.
//
// [cache] - Artifact cache backends: file, Redis, MongoDB and a null cache.
//
// [server] - The HTTP API built on chi.
//
// [observability] - Hook interfaces for pipeline, cache and HTTP events, with
// a logging implementation.
//
// [errors] - Coded errors and input validation shared by every entry point.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
//	go test ./...              # All tests
//	go test ./pkg/render/...   # Specific package
//
// [qr]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/qr
// [shape]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/shape
// [svg]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/svg
// [render]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/render
// [content]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/content
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/qrsvg/pkg/buildinfo
package pkg
