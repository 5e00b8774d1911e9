package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/combispec/sampling"
)

// mode describes one sampling subcommand.
type mode struct {
	use      string
	short    string
	method   string
	defaultT int
	maps     []string // map flags the mode reads
}

// Map flag names.
const (
	flagCardinalityMap        = "cardinality-map"
	flagClusterInteractionMap = "cluster-interaction-map"
	flagWeightMap             = "weight-map"
	flagPriorityMap           = "priority-map"
)

var (
	modeCardinality = mode{
		use:      "cardinality",
		short:    "Require clusters to appear in at least N rows",
		method:   sampling.MethodCardinality,
		defaultT: 2,
		maps:     []string{flagCardinalityMap},
	}
	modeClusterInteraction = mode{
		use:      "cluster-interaction",
		short:    "Pair clusters with every (w-1)-combination of outside literals",
		method:   sampling.MethodClusterInteraction,
		defaultT: 2,
		maps:     []string{flagClusterInteractionMap},
	}
	modeWeighted = mode{
		use:      "weighted",
		short:    "Require k-wise coverage over weighted variable subsets",
		method:   sampling.MethodWeighted,
		defaultT: 2,
		maps:     []string{flagWeightMap},
	}
	modePrioritized = mode{
		use:      "prioritized",
		short:    "Require prioritized assignments and emit their ranks",
		method:   sampling.MethodPrioritized,
		defaultT: 2,
		maps:     []string{flagPriorityMap},
	}
	modeCombined = mode{
		use:      "combined",
		short:    "Combine every sampling mode over one variable space",
		method:   sampling.MethodCombined,
		defaultT: 1,
		maps:     []string{flagCardinalityMap, flagClusterInteractionMap, flagWeightMap, flagPriorityMap},
	}
)

// modeFlags holds the raw flag values of a mode command.
type modeFlags struct {
	featureModel string
	t            int
	iterations   int
	prefix       string
	maps         map[string]*string
}

func modeCmd(g *globalFlags, m mode) *cobra.Command {
	mf := &modeFlags{maps: make(map[string]*string, len(m.maps))}

	cmd := &cobra.Command{
		Use:   m.use,
		Short: m.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, g, mf)
			if err != nil {
				return err
			}
			return runMode(cmd, m, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&mf.featureModel, "feature-model", "f", "", "Feature model file (one variable name per line)")
	f.IntVar(&mf.t, "t", m.defaultT, "Baseline interaction strength")
	f.IntVarP(&mf.iterations, "iterations", "i", 1, "Iterations passed to the sampler")
	f.StringVar(&mf.prefix, "artificial-prefix", "", "Name artificial variables <prefix>0, <prefix>1, ... instead of UUIDs")
	for _, name := range m.maps {
		mf.maps[name] = f.String(name, "", "Value map file ("+strings.TrimSuffix(name, "-map")+")")
	}

	return cmd
}

// resolveConfig layers defaults, the config file and changed flags.
func resolveConfig(cmd *cobra.Command, g *globalFlags, mf *modeFlags) (Config, error) {
	cfg := DefaultConfig()
	if g.configPath != "" {
		var err error
		if cfg, err = LoadFromFile(g.configPath); err != nil {
			return cfg, err
		}
	}

	overlay(cmd.Flags(), &cfg, g, mf)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func overlay(fs *pflag.FlagSet, cfg *Config, g *globalFlags, mf *modeFlags) {
	if fs.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = strings.ToLower(g.logLevel)
	}
	if fs.Changed("output") || cfg.Output == "" {
		cfg.Output = strings.ToLower(g.output)
	}
	if fs.Changed("feature-model") {
		cfg.FeatureModel = mf.featureModel
	}
	if fs.Changed("t") {
		t := mf.t
		cfg.T = &t
	}
	if fs.Changed("iterations") {
		cfg.Iterations = mf.iterations
	}
	if fs.Changed("artificial-prefix") {
		cfg.ArtificialPrefix = mf.prefix
	}
	set := map[string]*string{
		flagCardinalityMap:        &cfg.CardinalityMap,
		flagClusterInteractionMap: &cfg.ClusterInteractionMap,
		flagWeightMap:             &cfg.WeightMap,
		flagPriorityMap:           &cfg.PriorityMap,
	}
	for name, v := range mf.maps {
		if fs.Changed(name) {
			*set[name] = *v
		}
	}
}

// scope clears the map paths m does not read, so a shared config file does
// not trigger loads or warnings for unrelated maps.
func (m mode) scope(cfg Config) Config {
	used := make(map[string]bool, len(m.maps))
	for _, name := range m.maps {
		used[name] = true
	}
	if !used[flagCardinalityMap] {
		cfg.CardinalityMap = ""
	}
	if !used[flagClusterInteractionMap] {
		cfg.ClusterInteractionMap = ""
	}
	if !used[flagWeightMap] {
		cfg.WeightMap = ""
	}
	if !used[flagPriorityMap] {
		cfg.PriorityMap = ""
	}

	return cfg
}

func runMode(cmd *cobra.Command, m mode, cfg Config) error {
	logger := newLogger(cfg.LogLevel, cmd.ErrOrStderr())

	model, err := loadFeatureModel(cfg.FeatureModel)
	if err != nil {
		return err
	}
	maps, err := loadMaps(cmd.Context(), m.scope(cfg), logger)
	if err != nil {
		return err
	}

	opts := []sampling.Option{
		sampling.WithT(cfg.TOr(m.defaultT)),
		sampling.WithIterations(cfg.Iterations),
		sampling.WithLogger(logger),
	}
	if cfg.ArtificialPrefix != "" {
		opts = append(opts, sampling.WithSequentialNames(cfg.ArtificialPrefix))
	}

	var res *sampling.Result
	switch m.method {
	case sampling.MethodCardinality:
		res, err = sampling.Cardinality(model, maps.Cardinality, opts...)
	case sampling.MethodClusterInteraction:
		res, err = sampling.ClusterInteraction(model, maps.ClusterInteraction, opts...)
	case sampling.MethodWeighted:
		res, err = sampling.Weighted(model, maps.Weight, opts...)
	case sampling.MethodPrioritized:
		res, err = sampling.Prioritized(model, maps.Priority, opts...)
	case sampling.MethodCombined:
		res, err = sampling.Combined(model, maps, opts...)
	default:
		err = fmt.Errorf("unknown sampling mode %q", m.method)
	}
	if err != nil {
		return err
	}
	logger.Info("Combination specification ready",
		slog.String("mode", m.method),
		slog.Int("variables", res.Space.Size()),
		slog.Int("artificial", len(res.Artificial)),
		slog.Int64("interactions", res.Spec.Count()))

	return writeReport(cmd.OutOrStdout(), cfg.Output, newReport(m.method, res))
}

func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
