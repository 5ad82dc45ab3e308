// Command tune measures compression ratio and speed of the lz77 writer on
// samples of the Silesia corpus for a range of window sizes.
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"testing"

	"github.com/kr/pretty"
	"github.com/spf13/pflag"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ulikunitz/lz77"
	"github.com/ulikunitz/lz77/internal/tuning"
)

// result records the benchmark of a single window size.
type result struct {
	WindowBits int
	Ratio      float64
	MBPerSec   float64
	Bench      testing.BenchmarkResult
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

func searcher(name string) (lz77.Searcher, error) {
	switch name {
	case "linear":
		return lz77.LinearSearcher{}, nil
	case "hash":
		return lz77.HashSearcher{}, nil
	}
	return nil, fmt.Errorf("unknown searcher %q", name)
}

// measure benchmarks the window sizes from minBits to maxBits.
func measure(files []tuning.File, s lz77.Searcher, minBits, maxBits int) (results []result, err error) {
	for wb := minBits; wb <= maxBits; wb++ {
		cfg := lz77.Config{WindowBits: wb, Searcher: s}
		if err = cfg.Verify(); err != nil {
			return results, err
		}
		r := testing.Benchmark(writerBenchmark(files, cfg))
		results = append(results, result{
			WindowBits: wb,
			Ratio:      ratio(r),
			MBPerSec:   mbPerSec(r),
			Bench:      r,
		})
	}
	return results, nil
}

func printTable(w io.Writer, results []result) {
	fmt.Fprintf(w, "bits\tc/u\tMB/s\n")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%.3f\t%.2f\n", r.WindowBits, r.Ratio,
			r.MBPerSec)
	}
}

// writeChart renders ratio and speed over the window bits as SVG.
func writeChart(w io.Writer, results []result) error {
	var xs, ratios, speeds []float64
	for _, r := range results {
		xs = append(xs, float64(r.WindowBits))
		ratios = append(ratios, r.Ratio)
		speeds = append(speeds, r.MBPerSec)
	}
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "window bits"},
		YAxis: chart.YAxis{Name: "c/u"},
		YAxisSecondary: chart.YAxis{
			Name: "MB/s",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "ratio",
				Style:   chart.Style{DotWidth: 3},
				XValues: xs,
				YValues: ratios,
			},
			chart.ContinuousSeries{
				Name:    "speed",
				Style:   chart.Style{DotWidth: 3},
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: speeds,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.SVG, w)
}

func main() {
	log.SetPrefix("tune: ")
	log.SetFlags(0)
	testing.Init()

	var (
		verbose = pflag.BoolP("verbose", "v", false, "dump benchmark results")
		svgPath = pflag.String("svg", "", "write chart to `file`")
		minBits = pflag.Int("min", 4, "smallest window bits")
		maxBits = pflag.Int("max", 14, "largest window bits")
		sample  = pflag.Int("sample", 32<<10, "sample size per corpus file")
		sname   = pflag.String("searcher", "hash", "linear or hash")
	)
	pflag.Parse()

	s, err := searcher(*sname)
	if err != nil {
		log.Fatal(err)
	}
	files := silesiaFiles(*sample)
	results, err := measure(files, s, *minBits, *maxBits)
	if err != nil {
		log.Fatal(err)
	}
	printTable(os.Stdout, results)
	if *verbose {
		pretty.Println(results)
	}
	if *svgPath == "" {
		return
	}
	f, err := os.Create(*svgPath)
	if err != nil {
		log.Fatal(err)
	}
	if err = writeChart(f, results); err != nil {
		f.Close()
		log.Fatalf("writeChart error %s", err)
	}
	if err = f.Close(); err != nil {
		log.Fatal(err)
	}
}
