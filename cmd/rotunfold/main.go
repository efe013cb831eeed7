// Command rotunfold drives the three-stage overlapping-unfolding
// pipeline: enumerate candidate partial unfoldings (unfold), drop
// isomorphic duplicates (noniso), and keep only exactly verified
// overlaps (exact). Each stage reads its predecessor's output from the
// deterministic location derived from the polyhedron identity.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unfoldlab/rotunfold/exact"
	"github.com/unfoldlab/rotunfold/noniso"
	"github.com/unfoldlab/rotunfold/pipeline"
	"github.com/unfoldlab/rotunfold/polyhedron"
	"github.com/unfoldlab/rotunfold/provenance"
	"github.com/unfoldlab/rotunfold/unfold"
)

var (
	// Global flags
	polyPath  string
	rootsPath string
	symMode   string
	outRoot   string
	verbose   bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rotunfold",
	Short: "Enumerate and verify overlapping edge unfoldings of convex regular-faced polyhedra",
	Long: `rotunfold explores path-shaped partial edge unfoldings of a convex
regular-faced polyhedron and decides which of them exhibit a genuine
planar overlap between the first and last face of the path.

The pipeline is a strict three-stage filter chain:

  unfold   depth-first search with circumradius-based overlap flagging
  noniso   removal of isomorphic duplicates (canonical forms)
  exact    exact-arithmetic overlap verification and classification

Each stage writes to <out-root>/<class>/<name>/ and re-running a stage
overwrites its previous output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var unfoldCmd = &cobra.Command{
	Use:   "unfold",
	Short: "Stage 1: enumerate candidate partial unfoldings into raw.jsonl",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnfoldStage(os.Args)
	},
}

var nonisoCmd = &cobra.Command{
	Use:   "noniso",
	Short: "Stage 2: drop isomorphic duplicates, raw.jsonl -> noniso.jsonl",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNonisoStage()
	},
}

var exactCmd = &cobra.Command{
	Use:   "exact",
	Short: "Stage 3: keep exactly verified overlaps, noniso.jsonl -> exact.jsonl",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExactStage()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all three stages in order, stopping at the first failure",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runUnfoldStage(os.Args); err != nil {
			return err
		}
		if err := runNonisoStage(); err != nil {
			return err
		}
		return runExactStage()
	},
}

func loadPolyhedron() (*polyhedron.Polyhedron, string, error) {
	p, err := polyhedron.Load(polyPath)
	if err != nil {
		return nil, "", err
	}
	dir, err := pipeline.OutputDir(outRoot, p)
	if err != nil {
		return nil, "", err
	}
	return p, dir, nil
}

func runUnfoldStage(argv []string) error {
	started := time.Now()

	p, dir, err := loadPolyhedron()
	if err != nil {
		return err
	}
	roots, err := polyhedron.LoadRootPairs(rootsPath)
	if err != nil {
		return err
	}
	symmetric, basis, err := unfold.ResolveSymmetry(symMode, p.Name)
	if err != nil {
		return err
	}
	logger.Info("unfold: starting search",
		zap.String("polyhedron", p.Class+"/"+p.Name),
		zap.Int("num_faces", p.NumFaces),
		zap.Int("root_pairs", len(roots)),
		zap.Bool("symmetric", symmetric),
		zap.String("symmetry_basis", basis),
	)

	rawPath := pipeline.RawPath(dir)
	out, err := os.Create(rawPath)
	if err != nil {
		return fmt.Errorf("open output %s: %w", rawPath, err)
	}
	n, searchErr := unfold.Run(p, roots, out, symmetric)
	closeErr := out.Close()

	exitCode := 0
	if searchErr != nil || closeErr != nil {
		exitCode = 1
	}
	doc := &provenance.Document{
		SchemaVersion: provenance.SchemaVersion,
		RecordType:    "run_metadata",
		Run: provenance.Run{
			RunID:      provenance.NewRunID(started),
			StartedAt:  provenance.Stamp(started),
			FinishedAt: provenance.Stamp(time.Now()),
			ExitCode:   exitCode,
		},
		Command: provenance.Command{
			ExecutablePath: executablePath(),
			Argv:           argv,
			Cwd:            workingDir(),
		},
		Inputs: provenance.Inputs{
			Polyhedron: provenance.InputPolyhedron{
				Path:          absPath(polyPath),
				SchemaVersion: polyhedron.SchemaVersion,
				Class:         p.Class,
				Name:          p.Name,
				NumFaces:      p.NumFaces,
			},
			RootPairs: provenance.InputRootPairs{
				Path:          absPath(rootsPath),
				SchemaVersion: polyhedron.SchemaVersion,
				NumRootPairs:  len(roots),
			},
		},
		Options: provenance.Options{
			Symmetric: provenance.Symmetric{
				ModeRequested: symMode,
				SymmetricUsed: symmetric,
				Basis:         basis,
			},
		},
		Outputs: provenance.Outputs{
			RawPath:    absPath(rawPath),
			NumRecords: n,
		},
	}
	if perr := provenance.Write(pipeline.RunPath(dir), doc); perr != nil {
		logger.Warn("unfold: provenance write failed", zap.Error(perr))
	}

	if searchErr != nil {
		return searchErr
	}
	if closeErr != nil {
		return fmt.Errorf("close output %s: %w", rawPath, closeErr)
	}
	logger.Info("unfold: done",
		zap.Int("records", n),
		zap.String("output", rawPath),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func runNonisoStage() error {
	started := time.Now()

	p, dir, err := loadPolyhedron()
	if err != nil {
		return err
	}
	in, err := os.Open(pipeline.RawPath(dir))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	outPath := pipeline.NonisoPath(dir)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("open output %s: %w", outPath, err)
	}

	read, kept, ferr := noniso.Filter(p, in, out)
	if cerr := out.Close(); ferr == nil && cerr != nil {
		ferr = fmt.Errorf("close output %s: %w", outPath, cerr)
	}
	if ferr != nil {
		return ferr
	}
	logger.Info("noniso: done",
		zap.Int("records_in", read),
		zap.Int("records_kept", kept),
		zap.Int("records_dropped", read-kept),
		zap.String("output", outPath),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func runExactStage() error {
	started := time.Now()

	p, dir, err := loadPolyhedron()
	if err != nil {
		return err
	}
	// Refuse structures the convexity-based skipping rules cannot serve.
	vi, err := p.VertexIncidence()
	if err != nil {
		return err
	}
	if err := vi.ValidateDegrees(); err != nil {
		return err
	}

	in, err := os.Open(pipeline.NonisoPath(dir))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	outPath := pipeline.ExactPath(dir)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("open output %s: %w", outPath, err)
	}

	read, kept, ferr := exact.Filter(p, in, out)
	if cerr := out.Close(); ferr == nil && cerr != nil {
		ferr = fmt.Errorf("close output %s: %w", outPath, cerr)
	}
	if ferr != nil {
		return ferr
	}
	logger.Info("exact: done",
		zap.Int("records_in", read),
		zap.Int("records_kept", kept),
		zap.Int("records_rejected", read-kept),
		zap.String("output", outPath),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func executablePath() string {
	exe, err := os.Executable()
	if err != nil {
		return os.Args[0]
	}
	return exe
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func init() {
	rootCmd.PersistentFlags().StringVar(&polyPath, "polyhedron", "", "path to the polyhedron.json document (required)")
	rootCmd.PersistentFlags().StringVar(&outRoot, "out-root", "out", "root directory for stage outputs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("polyhedron")

	for _, c := range []*cobra.Command{unfoldCmd, runCmd} {
		c.Flags().StringVar(&rootsPath, "roots", "", "path to the root_pairs.json document (required)")
		c.Flags().StringVar(&symMode, "symmetric", "auto", "symmetry pruning: auto, on, or off")
		_ = c.MarkFlagRequired("roots")
	}

	rootCmd.AddCommand(unfoldCmd, nonisoCmd, exactCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rotunfold: %v\n", err)
		os.Exit(1)
	}
}
