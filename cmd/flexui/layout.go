package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	flexui "github.com/grindlemire/go-flexui"
	"github.com/grindlemire/go-flexui/internal/anim"
	"github.com/grindlemire/go-flexui/internal/config"
	"github.com/grindlemire/go-flexui/internal/debug"
	"github.com/grindlemire/go-flexui/internal/design"
	"github.com/grindlemire/go-flexui/internal/headless"
)

type layoutOptions struct {
	frames  int
	width   float64
	height  float64
	windows []string
	metrics bool
}

func newLayoutCmd(root *rootOptions) *cobra.Command {
	opts := &layoutOptions{}
	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Build a scene headlessly and print its element tree",
		Long: `layout links the scene design, binds headless host windows, simulates
the configured number of frames and prints every element with its
screen rect. The scene defaults to the one named in the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *root.cfg
			if len(args) == 1 {
				cfg.Scene = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("frames") {
				cfg.Frames = opts.frames
			}
			if flags.Changed("width") {
				cfg.Surface.Width = opts.width
			}
			if flags.Changed("height") {
				cfg.Surface.Height = opts.height
			}
			if flags.Changed("window") {
				cfg.Windows = opts.windows
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runLayout(cmd.OutOrStdout(), &cfg, opts.metrics)
		},
	}

	d := config.DefaultConfig()
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", d.Frames, "Number of frames to simulate")
	cmd.Flags().Float64Var(&opts.width, "width", d.Surface.Width, "Surface width")
	cmd.Flags().Float64Var(&opts.height, "height", d.Surface.Height, "Surface height")
	cmd.Flags().StringSliceVarP(&opts.windows, "window", "w", nil, "Open a host window only for these classes")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print transition metrics after the run")
	return cmd
}

func runLayout(out io.Writer, cfg *config.Config, withMetrics bool) (err error) {
	if cfg.Scene == "" {
		return fmt.Errorf("no scene given")
	}
	if len(cfg.Designs) == 0 {
		return fmt.Errorf("no design files given")
	}

	f, err := design.LoadFiles(cfg.Designs...)
	if err != nil {
		return err
	}
	reg, err := f.Registry()
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	var schedOpts []anim.Option
	metrics := prometheus.NewRegistry()
	if withMetrics {
		schedOpts = append(schedOpts, anim.WithMetrics(metrics))
	}

	s, err := flexui.NewScene(design.NewPart(cfg.Scene), reg,
		flexui.WithScheduler(anim.New(schedOpts...)),
		flexui.WithLogger(debug.Logger()),
	)
	if err != nil {
		return err
	}
	defer s.Close()

	host := headless.NewHost(cfg.Surface.Width, cfg.Surface.Height, cfg.LineHeight)
	for _, class := range host.Attach(s, cfg.Windows...) {
		fmt.Fprintf(out, "%s no element for window %s\n", warnStyle.Render("!"), class)
	}

	// Layout policies panic on invalid configuration, such as a list item
	// outside a selectable window.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layout %s: %v", cfg.Scene, r)
		}
	}()
	s.Step(cfg.Frames, cfg.FrameDuration())

	fmt.Fprintln(out, elementTree(s.Root()))

	status := successStyle.Render("settled")
	if !s.Settled() {
		status = warnStyle.Render("animating")
	}
	fmt.Fprintf(out, "%s after %d frame(s) at %d fps, %d element(s)\n", status, s.Frames(), cfg.FPS, s.Len())

	if withMetrics {
		return printMetrics(out, metrics)
	}
	return nil
}

// elementTree renders e and its live descendants.
func elementTree(e *flexui.Element) *tree.Tree {
	t := tree.Root(elementLabel(e)).EnumeratorStyle(mutedStyle)
	for _, c := range e.Children() {
		if c.Destroyed() {
			continue
		}
		if len(c.Children()) == 0 {
			t.Child(elementLabel(c))
			continue
		}
		t.Child(elementTree(c))
	}
	return t
}

func elementLabel(e *flexui.Element) string {
	var sb strings.Builder
	name := e.Class()
	if name == "" {
		name = string(e.Kind())
	}
	sb.WriteString(classStyle.Render(name))
	if e.Class() != "" {
		sb.WriteString(" " + mutedStyle.Render(string(e.Kind())))
	}
	if e.Text() != "" {
		sb.WriteString(fmt.Sprintf(" %q", e.Text()))
	}
	if !e.Arranged() {
		sb.WriteString(" " + warnStyle.Render("not arranged"))
		return sb.String()
	}
	sb.WriteString(" " + formatRect(e.ScreenRect()))
	if e.Window() != nil {
		sb.WriteString(" " + mutedStyle.Render(fmt.Sprintf("opacity=%g", e.ActualStyle().Opacity)))
	}
	if !e.LayoutEnabled() {
		sb.WriteString(" " + mutedStyle.Render("disabled"))
	}
	return sb.String()
}

func formatRect(r flexui.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// printMetrics writes every gathered counter and gauge in name order.
func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if gauge := m.GetGauge(); gauge != nil {
				v = gauge.GetValue()
			}
			fmt.Fprintf(out, "%s %g\n", mf.GetName(), v)
		}
	}
	return nil
}
