package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sxyafiq/fixedid"
)

// ============================================================================
// New Command
// ============================================================================

type newOptions struct {
	kind   string
	count  int
	format string
	source string
	v4     bool
	json   bool
}

func newNewCommand() *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new [flags]",
		Short: "Generate identifiers",
		Example: `  fixedid new
  fixedid new --type id --count 10
  fixedid new --v4 --format hex
  FIXEDID_SOURCE=time fixedid new --count 1000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.OutOrStdout(), opts)
		},
	}

	defaultSource := os.Getenv(envSource)
	if defaultSource == "" {
		defaultSource = fixedid.SourceCrypto.String()
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.kind, "type", "t", "guid", "Identifier type: guid, uuid, id")
	flags.IntVarP(&opts.count, "count", "n", 1, "Number of identifiers to generate")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: canonical, base64, hex (default: canonical for guid, base64 otherwise)")
	flags.StringVar(&opts.source, "source", defaultSource, "Random source: crypto, time (env "+envSource+")")
	flags.BoolVar(&opts.v4, "v4", false, "Stamp RFC 4122 version 4 bits (guid only)")
	flags.BoolVar(&opts.json, "json", false, "Output as JSON with full details")
	return cmd
}

type newOutput struct {
	Count      int         `json:"count"`
	Source     string      `json:"source"`
	Duration   string      `json:"duration"`
	RatePerSec float64     `json:"rate_per_sec"`
	IDs        []described `json:"ids"`
}

func runNew(out io.Writer, opts newOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", opts.count)
	}
	layout, ok := fixedid.LayoutByName(opts.kind)
	if !ok {
		return fmt.Errorf("unknown type %q (want guid, uuid or id)", opts.kind)
	}
	if opts.v4 && layout != fixedid.LayoutGUID {
		return fmt.Errorf("--v4 applies only to guid, not %s", layout.Name)
	}

	src, err := fixedid.ParseSource(opts.source)
	if err != nil {
		return err
	}
	gen, err := fixedid.NewWithConfig(fixedid.Config{Source: src, EnableMetrics: true})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"type":   layout.Name,
		"count":  opts.count,
		"source": src,
	}).Debug("generating identifiers")

	next := generatorFor(gen, layout, opts.v4)
	ids := make([]described, 0, opts.count)
	start := time.Now()
	for i := 0; i < opts.count; i++ {
		d, err := next()
		if err != nil {
			return err
		}
		ids = append(ids, d)
	}
	duration := time.Since(start)
	rate := float64(opts.count) / duration.Seconds()

	m := gen.GetMetrics()
	logrus.WithFields(logrus.Fields{
		"generated":  m.Generated,
		"bytes_read": m.BytesRead,
		"duration":   duration,
	}).Debug("generation complete")

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newOutput{
			Count:      len(ids),
			Source:     src.String(),
			Duration:   duration.String(),
			RatePerSec: rate,
			IDs:        ids,
		})
	}

	for _, d := range ids {
		s, err := render(d, opts.format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	}

	// Show performance stats for large batches
	if opts.count > 100 {
		logrus.Infof("generated %d identifiers in %v (%.0f/sec)", opts.count, duration, rate)
	}
	return nil
}

func generatorFor(gen *fixedid.Generator, layout fixedid.Layout, v4 bool) func() (described, error) {
	switch {
	case layout == fixedid.LayoutUUID:
		return func() (described, error) {
			u, err := gen.NewUUID()
			return describe(u), err
		}
	case layout == fixedid.LayoutID:
		return func() (described, error) {
			id, err := gen.NewID()
			return describe(id), err
		}
	case v4:
		return func() (described, error) {
			g, err := gen.NewGUIDv4()
			return describeGUID(g), err
		}
	default:
		return func() (described, error) {
			g, err := gen.NewGUID()
			return describeGUID(g), err
		}
	}
}

// ============================================================================
// Parse Command
// ============================================================================

func newParseCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <value>",
		Short: "Inspect an identifier of any width",
		Example: `  fixedid parse 550e8400-e29b-41d4-a716-446655440000
  fixedid parse VQ6EAOKbQdSnFkRmVUQAAA==`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func runParse(out io.Writer, value string, asJSON bool) error {
	d, err := decodeAny(value)
	if err != nil {
		return err
	}
	logrus.WithField("type", d.Type).Debug("recognized identifier")

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	fmt.Fprintf(out, "Type:       %s (%d bits)\n", d.Type, d.Bits)
	if d.Canonical != "" {
		fmt.Fprintf(out, "Canonical:  %s\n", d.Canonical)
		fmt.Fprintf(out, "Version:    %d\n", d.Version)
	}
	fmt.Fprintf(out, "Base64:     %s\n", d.Base64)
	fmt.Fprintf(out, "Hex:        %s\n", d.Hex)
	fmt.Fprintf(out, "Hash:       %s\n", d.Hash)
	fmt.Fprintf(out, "Nil:        %v\n", d.Nil)
	return nil
}

// ============================================================================
// Convert Command
// ============================================================================

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <value> <format>",
		Aliases: []string{"encode"},
		Short:   "Re-encode an identifier as canonical, base64 or hex",
		Example: `  fixedid convert 550e8400-e29b-41d4-a716-446655440000 base64
  fixedid convert VQ6EAOKbQdSnFkRmVUQAAA== canonical`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decodeAny(args[0])
			if err != nil {
				return err
			}
			s, err := render(d, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// ============================================================================
// Layout / Version Commands
// ============================================================================

func newLayoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Show the supported identifier widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.OutOrStdout())
		},
	}
}

func runLayout(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tBITS\tBYTES\tUNITS\tUNIT SIZE\tBASE64\tTEXT")
	for _, l := range fixedid.Layouts() {
		text := "base64"
		if l == fixedid.LayoutGUID {
			text = "canonical"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			strings.ToUpper(l.Name), l.Bits, l.ByteLength(), l.ArrayLength(), l.WordBytes, l.EncodedLength(), text)
	}
	return w.Flush()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fixedid CLI version %s\n", version)
		},
	}
}
