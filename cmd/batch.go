package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/constants"
	"github.com/jsphweid/autochart/onset"
	"github.com/jsphweid/autochart/util"
	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var batchFlags chartFlags
var batchMax int
var batchJobs int

func init() {
	addChartFlags(batchCmd, &batchFlags)
	batchCmd.Flags().IntVar(&batchMax, "max", 0, "stop after this many inputs (0 for all)")
	batchCmd.Flags().IntVar(&batchJobs, "jobs", runtime.NumCPU(), "charts generated at once")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Generates a chart for every input in a directory",
	Long: `Generates a chart for every analysis document and MIDI file under a
directory. Charts are written to CHART_OUT_PATH (default ./out).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := batchFlags.options(cmd)
		if err != nil {
			return err
		}
		done, err := Batch(args[0], constants.GetOutDir(), batchMax, batchJobs, opts)
		if err != nil {
			return err
		}
		fmt.Printf("Generated %v charts\n", len(done))
		return nil
	},
}

func buildChart(input string, opts chart.Options) (chart.Result, error) {
	a, err := onset.Load(input)
	if err != nil {
		return chart.Result{}, err
	}
	return chart.Generate(a, opts)
}

// chartPath flattens the input's path below dir, so x/song.json becomes
// x_song.chart.json.
func chartPath(dir string, outDir string, input string) string {
	rel, err := filepath.Rel(dir, input)
	if err != nil {
		rel = filepath.Base(input)
	}
	name := strings.TrimSuffix(rel, filepath.Ext(rel))
	name = strings.ReplaceAll(filepath.ToSlash(name), "/", "_")
	return filepath.Join(outDir, name+".chart.json")
}

// Batch returns the paths of the charts it wrote. A failing input is
// reported and skipped.
func Batch(dir string, outDir string, maxNum int, jobs int, opts chart.Options) ([]string, error) {
	paths, err := util.GatherPaths(dir, onset.Extensions, maxNum)
	if err != nil {
		return nil, err
	}
	if err := util.EnsureDir(outDir); err != nil {
		return nil, errors.Wrap(err, "could not create output dir")
	}

	// song.json and song.mid in one folder still share a chart name
	outputs := make(map[string]string)
	var inputs []string
	for _, path := range paths {
		out := chartPath(dir, outDir, path)
		if first, ok := outputs[out]; ok {
			fmt.Printf("Skipping %v because: %v is already written from %v\n", path, out, first)
			continue
		}
		outputs[out] = path
		inputs = append(inputs, path)
	}

	var mu sync.Mutex
	var written []string
	swg := sizedwaitgroup.New(util.Max(jobs, 1))
	for i, path := range inputs {
		swg.Add()
		go func(i int, path string) {
			defer swg.Done()
			out := chartPath(dir, outDir, path)
			res, err := buildChart(path, opts)
			if err == nil {
				err = chart.WriteFile(out, res.Chart)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Printf("Skipping %v because: %v\n", path, err)
				return
			}
			fmt.Printf("Processed %v of %v inputs: %v (%v notes)\n", i+1, len(inputs), out, res.NumFiltered)
			written = append(written, out)
		}(i, path)
	}
	swg.Wait()

	slices.Sort(written)
	return written, nil
}
