package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gulfpulse/gulfpulse/charts"
	"github.com/gulfpulse/gulfpulse/dataset"
	"github.com/gulfpulse/gulfpulse/server"
)

// ============================================================================
// GULFPULSE CLI — serve the API or emit a single chart spec
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	serve := flag.Bool("serve", false, "Start the HTTP API server")
	chartName := flag.String("chart", "", "Chart to build (see --list)")
	list := flag.Bool("list", false, "Print available chart names and exit")
	method := flag.String("method", "", "Aggregation method: simple or weighted (default weighted)")
	highlight := flag.String("highlight", "", "Comma-separated countries to highlight (trajectory)")
	entity := flag.String("entity", "", "Entity for radar charts (default GCC (Weighted))")
	compare := flag.String("compare", "", "Comparison country for dual/overlay radar")
	format := flag.String("format", "json", "Output format: json, pretty, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `gulfpulse — GCC competitiveness chart specs

Usage:
  gulfpulse --serve
  gulfpulse --chart world-ranking --method simple --format pretty
  gulfpulse --chart trajectory --highlight "UAE,Qatar" --format csv --out out.csv
  gulfpulse --chart overlay-radar --entity "GCC (Weighted)" --compare UAE

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  PORT     Listen port for --serve (default 8080)
  DEBUG    Enable debug logging ("true"/"false")

Formats:
  json     Compact JSON chart spec (default)
  pretty   Pretty-printed JSON
  csv      Series data as CSV (ready for Sheets/Excel)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("gulfpulse %s\n", version)
		os.Exit(0)
	}

	if *list {
		fmt.Println(strings.Join(charts.Names, "\n"))
		os.Exit(0)
	}

	if *serve {
		server.Run()
		return
	}

	if *chartName == "" {
		fmt.Fprintln(os.Stderr, "Error: either --serve or --chart is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Build ─────────────────────────────────────────────────────────────
	ds := dataset.Build()

	params := charts.Params{
		Method:  *method,
		Entity:  *entity,
		Compare: *compare,
	}
	if *highlight != "" {
		params.Highlight = strings.Split(*highlight, ",")
	}

	spec, err := charts.Build(*chartName, ds, params)
	if err != nil {
		fatalf("Failed to build chart: %v", err)
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "csv":
		writeCSV(writer, spec)
	case "pretty":
		writeJSON(writer, spec, true)
	default:
		writeJSON(writer, spec, false)
	}
}

// ============================================================================
// CSV OUTPUT — chart series as Sheets-ready rows
// ============================================================================

func writeCSV(w *os.File, spec *charts.ChartSpec) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if len(spec.Series) == 0 {
		cw.Write([]string{"Result", "No data"})
		return
	}

	// Heatmap: matrix with row labels
	first := spec.Series[0]
	if len(first.Z) > 0 {
		cw.Write(append([]string{""}, first.X...))
		for i, row := range first.Z {
			label := ""
			if i < len(first.Text) {
				label = first.Text[i]
			}
			out := []string{label}
			for _, v := range row {
				out = append(out, fmtNum(v))
			}
			cw.Write(out)
		}
		return
	}

	// Single series → two columns
	if len(spec.Series) == 1 {
		cw.Write([]string{"Label", first.Name})
		for i, label := range first.X {
			cw.Write([]string{label, fmtNum(first.Y[i])})
		}
		return
	}

	// Multi-series → label + one column per series
	headers := []string{"Label"}
	for _, s := range spec.Series {
		headers = append(headers, s.Name)
	}
	cw.Write(headers)

	for i, label := range first.X {
		row := []string{label}
		for _, s := range spec.Series {
			if i < len(s.Y) {
				row = append(row, fmtNum(s.Y[i]))
			} else {
				row = append(row, "")
			}
		}
		cw.Write(row)
	}
}

func writeJSON(w *os.File, v interface{}, pretty bool) {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
