package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/supermattydomain/AttractorCanvas/internal/catalog"
	"github.com/supermattydomain/AttractorCanvas/internal/config"
	"github.com/supermattydomain/AttractorCanvas/internal/engine"
	"github.com/supermattydomain/AttractorCanvas/internal/gui"
	"github.com/supermattydomain/AttractorCanvas/internal/store"
	"github.com/supermattydomain/AttractorCanvas/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	budget     int
	zoom       float64
	centreX    float64
	centreY    float64
	width      int
	height     int
	colour     string
	paramFlags []string
	saveRun    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attractor",
		Short: "strange attractor renderer and lyapunov estimator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the windowed view when no command given
			return gui.Run(engine.New(catalog.New()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".attractor", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "render headless and report the lyapunov estimate",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().IntVar(&budget, "budget", 0, "iteration budget")
	runCmd.Flags().Float64Var(&zoom, "zoom", 0, "pixels per plane unit")
	runCmd.Flags().Float64Var(&centreX, "cx", 0, "viewport centre x")
	runCmd.Flags().Float64Var(&centreY, "cy", 0, "viewport centre y")
	runCmd.Flags().IntVar(&width, "width", 0, "buffer width in pixels")
	runCmd.Flags().IntVar(&height, "height", 0, "buffer height in pixels")
	runCmd.Flags().StringVar(&colour, "colour", "", "colour mode (hue, periodic, parity, white)")
	runCmd.Flags().StringSliceVar(&paramFlags, "set", nil, "override parameter, e.g. --set a=-0.89")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save run metadata to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(engine.New(catalog.New()))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list systems and parameter sets",
		RunE:  listSystems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list ready-made render presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(config.Presets))
			for name := range config.Presets {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, presetsCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.System = args[0]
	}
	if budget > 0 {
		cfg.Budget = budget
	}
	if zoom > 0 {
		cfg.Zoom = zoom
	}
	if centreX != 0 {
		cfg.CentreX = centreX
	}
	if centreY != 0 {
		cfg.CentreY = centreY
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if colour != "" {
		cfg.Colour = colour
	}

	if len(paramFlags) > 0 {
		cfg.Params = map[string]float64{}
		for _, kv := range paramFlags {
			name, val, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("bad --set %q, want name=value", kv)
			}
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("bad --set %q: %v", kv, err)
			}
			cfg.Params[name] = f
		}
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args)
	if err != nil {
		return err
	}
	eng, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	eng.AddObserver(engine.FuncObserver{
		Progress: func(frac float64) {
			fmt.Printf("\r%3.0f%%", frac*100)
		},
	})

	if err := eng.StartRun(); err != nil {
		return err
	}
	outcome := eng.Run(context.Background())
	fmt.Println()

	fmt.Printf("system:     %s (%s)\n", eng.CurrentSystem().Name, setName(eng))
	fmt.Printf("outcome:    %s\n", outcome)
	fmt.Printf("iterations: %d / %d\n", eng.IterationIndex(), eng.IterationBudget())
	fmt.Printf("pixels:     %d lit\n", eng.Buffer().Lit())
	if est, ok := eng.LyapunovEstimate(); ok {
		fmt.Printf("lyapunov:   %.6f (%d samples)\n", est, eng.LyapunovSamples())
	} else {
		fmt.Println("lyapunov:   unavailable (run ended before warm-up)")
	}

	if history := eng.EstimateHistory(); len(history) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("lyapunov estimate per slice"),
		))
	}

	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(eng)
		if err != nil {
			return err
		}
		fmt.Printf("saved:      %s\n", id)
	}
	return nil
}

func setName(eng *engine.Engine) string {
	sets, err := eng.Catalog().ParamSets(eng.SystemIndex())
	if err != nil {
		return "?"
	}
	return sets[eng.ParamSetIndex()].Name
}

func listSystems(cmd *cobra.Command, args []string) error {
	cat := catalog.New()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tZOOM\tPARAMETER SETS")
	for i := 0; i < cat.Len(); i++ {
		sys, err := cat.System(i)
		if err != nil {
			return err
		}
		names := make([]string, len(sys.ParamSets))
		for j, set := range sys.ParamSets {
			names[j] = set.Name
		}
		fmt.Fprintf(w, "%s\t%g\t%s\n", sys.Name, sys.InitialZoom, strings.Join(names, ", "))
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tOUTCOME\tITERATIONS\tLYAPUNOV")
	for _, r := range runs {
		lyap := "-"
		if r.Samples > 0 {
			lyap = strconv.FormatFloat(r.Lyapunov, 'f', 5, 64)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.System, r.Outcome, r.Iterations, lyap)
	}
	return w.Flush()
}
