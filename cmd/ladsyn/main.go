package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avetk/ladsyn/internal/cfrac"
	"github.com/avetk/ladsyn/internal/config"
	"github.com/avetk/ladsyn/internal/export"
	"github.com/avetk/ladsyn/internal/poly"
	"github.com/avetk/ladsyn/internal/storage"
	"github.com/avetk/ladsyn/internal/synth"
	"github.com/avetk/ladsyn/internal/tui"
	"github.com/avetk/ladsyn/internal/viz"
)

var (
	dataDir    string
	numFlag    string
	denFlag    string
	configFile string
	renderCmd  string
	outFile    string
	freqMin    float64
	freqMax    float64
	samples    int
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ladsyn",
		Short: "passive LC ladder synthesis from rational impedance functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive coefficient entry when no command given.
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ladsyn", "data directory")

	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "synthesize a ladder network from N(s)/D(s)",
		RunE:  runSynth,
	}
	synthCmd.Flags().StringVar(&numFlag, "num", "", "numerator coefficients a0,a1,... (ascending powers)")
	synthCmd.Flags().StringVar(&denFlag, "den", "", "denominator coefficients b0,b1,... (ascending powers)")
	synthCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	synthCmd.Flags().StringVar(&renderCmd, "render-cmd", "", "external drawing command run in the run directory")

	expandCmd := &cobra.Command{
		Use:   "expand",
		Short: "print the continued-fraction partial quotients",
		RunE:  runExpand,
	}
	expandCmd.Flags().StringVar(&numFlag, "num", "", "numerator coefficients a0,a1,... (ascending powers)")
	expandCmd.Flags().StringVar(&denFlag, "den", "", "denominator coefficients b0,b1,... (ascending powers)")
	expandCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	drawCmd := &cobra.Command{
		Use:   "draw [run_id]",
		Short: "draw a stored ladder network",
		Args:  cobra.ExactArgs(1),
		RunE:  drawRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the magnitude response of N(s)/D(s)",
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&numFlag, "num", "", "numerator coefficients a0,a1,... (ascending powers)")
	plotCmd.Flags().StringVar(&denFlag, "den", "", "denominator coefficients b0,b1,... (ascending powers)")
	plotCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	plotCmd.Flags().Float64Var(&freqMin, "fmin", config.DefaultFreqMin, "lowest frequency (rad/s)")
	plotCmd.Flags().Float64Var(&freqMax, "fmax", config.DefaultFreqMax, "highest frequency (rad/s)")
	plotCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of frequency samples")
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultWidth, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultHeight, "plot height")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a stored ladder as an SVG schematic",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "network.svg", "output file")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive coefficient entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(synthCmd, expandCmd, listCmd, drawCmd, plotCmd, exportSVGCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadInput resolves the numerator/denominator coefficients from flags and
// an optional config file, flags taking precedence.
func loadInput(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("num") {
		coeffs, err := parseCoeffList(numFlag)
		if err != nil {
			return nil, fmt.Errorf("numerator: %w", err)
		}
		cfg.Numerator = coeffs
	}
	if cmd.Flags().Changed("den") {
		coeffs, err := parseCoeffList(denFlag)
		if err != nil {
			return nil, fmt.Errorf("denominator: %w", err)
		}
		cfg.Denominator = coeffs
	}
	if cmd.Flags().Changed("render-cmd") {
		cfg.RenderCmd = renderCmd
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseCoeffList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("no coefficients given")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func runSynth(cmd *cobra.Command, args []string) error {
	cfg, err := loadInput(cmd)
	if err != nil {
		return err
	}

	num := poly.New(cfg.Numerator)
	den := poly.New(cfg.Denominator)

	fmt.Printf("synthesizing %s / %s ...\n", num, den)

	ladder, err := synth.Synthesize(num, den)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Numerator, cfg.Denominator, ladder)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n\n", runID)
	fmt.Println(viz.Summary(ladder.Z, ladder.Y, ladder.Kind))
	fmt.Println()
	if drawing := viz.Ladder(ladder.Z, ladder.Y); drawing != "" {
		fmt.Println(drawing)
	}

	// The external renderer runs after persistence; its failure is reported
	// but the stored tokens stay valid.
	if cfg.RenderCmd != "" {
		c := exec.Command("sh", "-c", cfg.RenderCmd)
		c.Dir = filepath.Join(dataDir, runID)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "render command failed: %v\n", err)
		}
	}

	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, err := loadInput(cmd)
	if err != nil {
		return err
	}

	parts, err := cfrac.Expand(poly.New(cfg.Numerator), poly.New(cfg.Denominator))
	if err != nil {
		return err
	}

	fmt.Printf("%d partial quotients:\n", len(parts))
	for i, p := range parts {
		fmt.Printf("  q%d = %s\n", i, p)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tKIND\tZ\tY")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Kind, r.SeriesCount, r.ShuntCount)
	}
	return w.Flush()
}

func drawRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	z, y, err := st.LoadTokens(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(z, y, meta.Kind))
	fmt.Println()
	if drawing := viz.Ladder(z, y); drawing != "" {
		fmt.Println(drawing)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadInput(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("fmin") {
		cfg.Plot.FreqMin = freqMin
	}
	if cmd.Flags().Changed("fmax") {
		cfg.Plot.FreqMax = freqMax
	}
	if cmd.Flags().Changed("samples") {
		cfg.Plot.Samples = samples
	}
	if cmd.Flags().Changed("width") {
		cfg.Plot.Width = plotWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	graph := viz.PlotResponse(
		poly.New(cfg.Numerator), poly.New(cfg.Denominator),
		cfg.Plot.FreqMin, cfg.Plot.FreqMax,
		cfg.Plot.Samples, cfg.Plot.Width, cfg.Plot.Height,
	)
	fmt.Println(graph)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	z, y, err := st.LoadTokens(args[0])
	if err != nil {
		return err
	}

	svg := export.LadderSVG(z, y)
	if svg == "" {
		return fmt.Errorf("run %s has no elements to draw", args[0])
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
