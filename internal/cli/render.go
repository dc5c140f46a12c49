package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/qrsvg/pkg/content"
	"github.com/matzehuels/qrsvg/pkg/errors"
	"github.com/matzehuels/qrsvg/pkg/pipeline"
	"github.com/matzehuels/qrsvg/pkg/qr"
	"github.com/matzehuels/qrsvg/pkg/render"
)

// renderFlags holds the command-line flags for the render command.
// Only flags the user set explicitly override the configuration file.
type renderFlags struct {
	contentType string
	content     content.Config
	encryption  string
	ecc         string

	output string

	margin         int
	scale          float64
	fg             string
	bg             string
	dataStyle      string
	borderStyle    string
	interiorStyle  string
	ringWidth      float64
	shapeRendering string

	noCache     bool
	refresh     bool
	interactive bool
	preview     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [content]",
		Short: "Render a QR code as styled SVG",
		Long: `Render encodes content as a QR code and writes it as SVG.

The optional argument fills the main field of the selected type: the text,
the URL, the WiFi SSID, the phone number or the email address.

Without --output the document is written to stdout.`,
		Example: `  qrsvg render "hello" -o hello.svg
  qrsvg render -t url example.com --data-style circle --border-style bagel
  qrsvg render -t wifi --ssid Home --password secret --fg "#1d3557" -o wifi.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.contentType, "type", "t", string(content.DefaultType), "content type: text, url, wifi, phone, sms, email")
	fl.StringVar(&f.content.Text, "text", "", "text payload")
	fl.StringVar(&f.content.URL, "url", "", "URL payload (https:// is added when no scheme is given)")
	fl.StringVar(&f.content.SSID, "ssid", "", "WiFi network name")
	fl.StringVar(&f.content.Password, "password", "", "WiFi password")
	fl.StringVar(&f.encryption, "encryption", string(content.WiFiWPA), "WiFi encryption: WPA, WEP, nopass")
	fl.BoolVar(&f.content.Hidden, "hidden", false, "WiFi network is hidden")
	fl.StringVar(&f.content.Phone, "phone", "", "phone number (phone, sms)")
	fl.StringVar(&f.content.Message, "message", "", "SMS message")
	fl.StringVar(&f.content.Email, "email", "", "email address")
	fl.StringVar(&f.content.Subject, "subject", "", "email subject")
	fl.StringVar(&f.content.Body, "body", "", "email body")
	fl.StringVar(&f.ecc, "ecc", qr.ECCLow.String(), "error correction: low, medium, quartile, high")

	fl.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	fl.IntVar(&f.margin, "margin", render.DefaultMargin, "quiet zone in modules")
	fl.Float64Var(&f.scale, "scale", render.DefaultScale, "module scale, in (0, 1]")
	fl.StringVar(&f.fg, "fg", render.DefaultForeground, "foreground color")
	fl.StringVar(&f.bg, "bg", render.DefaultBackground, "background color or transparent")
	fl.StringVar(&f.dataStyle, "data-style", render.DefaultStyle.String(), "data module style")
	fl.StringVar(&f.borderStyle, "border-style", render.DefaultStyle.String(), "finder border style")
	fl.StringVar(&f.interiorStyle, "interior-style", render.DefaultStyle.String(), "finder interior style")
	fl.Float64Var(&f.ringWidth, "ring-width", render.DefaultRingStrokeWidth, "bagel ring stroke width")
	fl.StringVar(&f.shapeRendering, "shape-rendering", render.DefaultShapeRendering, "SVG shape-rendering hint")

	fl.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	fl.BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "pick region styles interactively")
	fl.BoolVar(&f.preview, "preview", false, "print a terminal preview of the matrix")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, f *renderFlags) error {
	ctx := cmd.Context()

	fc, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	opts := fc.pipelineOptions()
	if err := f.apply(cmd.Flags().Changed, &opts, args); err != nil {
		return err
	}
	if f.output != "" {
		if err := errors.ValidateOutputPath(f.output); err != nil {
			return err
		}
	}

	if f.interactive {
		picked, ok, err := pickStyles(opts.Render)
		if err != nil {
			return err
		}
		if !ok {
			return context.Canceled
		}
		opts.Render = picked
	}

	runner, err := c.newRunner(ctx, fc.Cache, f.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Rendered", "bytes", len(result.SVG), "cached", result.CacheHit)

	out := cmd.OutOrStdout()
	status := out
	if f.output == "" {
		if _, err := out.Write(result.SVG); err != nil {
			return err
		}
		fmt.Fprintln(out)
		status = cmd.ErrOrStderr()
	} else {
		if err := os.WriteFile(f.output, result.SVG, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", f.output)
		}
		printSuccess(out, "Rendered %s", StyleHighlight.Render(string(mustType(opts.ContentType))))
		printFile(out, f.output)
		printStats(out, result.Size, result.Render.Drawn, result.Render.Skipped, result.CacheHit)
	}

	if f.preview {
		return writePreview(status, opts, result.Payload)
	}
	return nil
}

// apply copies explicitly set flags into opts. A positional argument fills
// the main field of the selected content type.
func (f *renderFlags) apply(changed func(string) bool, opts *pipeline.Options, args []string) error {
	set := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	set("type", &opts.ContentType, f.contentType)
	set("text", &opts.Content.Text, f.content.Text)
	set("url", &opts.Content.URL, f.content.URL)
	set("ssid", &opts.Content.SSID, f.content.SSID)
	set("password", &opts.Content.Password, f.content.Password)
	set("phone", &opts.Content.Phone, f.content.Phone)
	set("message", &opts.Content.Message, f.content.Message)
	set("email", &opts.Content.Email, f.content.Email)
	set("subject", &opts.Content.Subject, f.content.Subject)
	set("body", &opts.Content.Body, f.content.Body)
	set("ecc", &opts.ECC, f.ecc)
	if changed("encryption") {
		opts.Content.Encryption = content.WiFiEncryption(f.encryption)
	}
	if changed("hidden") {
		opts.Content.Hidden = f.content.Hidden
	}

	r := &opts.Render
	if changed("margin") {
		r.Margin = render.Margin(f.margin)
	}
	if changed("scale") {
		r.Scale = f.scale
	}
	if changed("ring-width") {
		r.RingStrokeWidth = f.ringWidth
	}
	set("fg", &r.Foreground, f.fg)
	set("bg", &r.Background, f.bg)
	set("data-style", &r.DataStyle, f.dataStyle)
	set("border-style", &r.BorderStyle, f.borderStyle)
	set("interior-style", &r.InteriorStyle, f.interiorStyle)
	set("shape-rendering", &r.ShapeRendering, f.shapeRendering)

	opts.Refresh = f.refresh

	if len(args) == 0 {
		return nil
	}
	t, err := content.ParseType(opts.ContentType)
	if err != nil {
		return err
	}
	switch t {
	case content.TypeURL:
		opts.Content.URL = args[0]
	case content.TypeWiFi:
		opts.Content.SSID = args[0]
	case content.TypePhone, content.TypeSMS:
		opts.Content.Phone = args[0]
	case content.TypeEmail:
		opts.Content.Email = args[0]
	default:
		opts.Content.Text = args[0]
	}
	return nil
}

// writePreview re-encodes payload and draws it as terminal cells.
func writePreview(w io.Writer, opts pipeline.Options, payload string) error {
	level, err := qr.ParseECCLevel(opts.ECC)
	if err != nil {
		return err
	}
	cfg, err := opts.Render.Resolve()
	if err != nil {
		return err
	}
	m, err := qr.Encode(payload, level)
	if err != nil {
		return err
	}
	fmt.Fprint(w, terminalPreview(m, cfg))
	return nil
}

func mustType(s string) content.Type {
	t, err := content.ParseType(s)
	if err != nil {
		return content.Type(s)
	}
	return t
}
