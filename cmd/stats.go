package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/services"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/pkg/ui"
)

var statsChartPath string

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Long: `Analyze your document corpus and display useful statistics.

Includes:
  - Document and byte totals
  - Status distribution
  - Top file types

With --chart, also writes an interactive HTML chart you can open in a
browser.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChartPath, "chart", "", "Write an HTML chart to the given path")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load documents"))
		requireAuthHint(err)
		return err
	}

	stats := services.Aggregate(resp.Documents)

	fmt.Println()
	fmt.Println(ui.FormatTitle("Corpus Analytics"))
	fmt.Println()

	// --- General Stats (Tabular) ---
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Documents:"), stats.Count)
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Total Size:"), domain.FormatSize(stats.TotalBytes))

	avgSize := int64(0)
	if stats.Count > 0 {
		avgSize = stats.TotalBytes / int64(stats.Count)
	}
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Average Size:"), domain.FormatSize(avgSize))
	w.Flush()

	fmt.Println()
	renderDistribution("By Status", stats.ByStatus)
	fmt.Println()
	renderDistribution("Top Types", stats.ByType)

	if statsChartPath != "" {
		if err := writeChart(statsChartPath, stats); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Chart written to " + statsChartPath))
	}

	return nil
}

// renderDistribution displays a horizontal bar chart for a count map
func renderDistribution(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	fmt.Println(ui.StyleHeader.Render(title))

	keys := services.SortedKeys(counts)

	// Limit to top 5
	limit := 5
	if len(keys) < limit {
		limit = len(keys)
	}

	maxCount := counts[keys[0]]
	barWidth := 20

	for i := 0; i < limit; i++ {
		k := keys[i]

		length := int(math.Ceil(float64(counts[k]) / float64(maxCount) * float64(barWidth)))
		bar := strings.Repeat("█", length)

		fmt.Printf("%s %-25s %s\n",
			ui.StyleAccent.Render(bar),
			ui.Truncate(k, 25),
			ui.StyleMuted.Render(fmt.Sprintf("%d", counts[k])),
		)
	}
}

// writeChart exports the aggregates as an interactive HTML page.
func writeChart(path string, stats services.CorpusStats) error {
	page := components.NewPage()
	page.PageTitle = "Docan Corpus"

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Documents by Status"}))
	var pieData []opts.PieData
	for _, k := range services.SortedKeys(stats.ByStatus) {
		pieData = append(pieData, opts.PieData{Name: k, Value: stats.ByStatus[k]})
	}
	pie.AddSeries("status", pieData)

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Documents by Type"}))
	typeKeys := services.SortedKeys(stats.ByType)
	var barData []opts.BarData
	for _, k := range typeKeys {
		barData = append(barData, opts.BarData{Value: stats.ByType[k]})
	}
	bar.SetXAxis(typeKeys).AddSeries("documents", barData)

	page.AddCharts(pie, bar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
