// Package utils provides console output helpers for the one-shot CLI mode.
package utils

import (
	"fmt"
	"strings"

	"github.com/myusername/poker-results-scraper/pkg/models"
)

// DisplayPlayerReport prints a report as fixed-width text.
func DisplayPlayerReport(report *models.PlayerReport) {
	fmt.Printf("\n=========== RESULTS FOR %s ===========\n", strings.ToUpper(report.Player))
	fmt.Printf("Tournaments played: %d\n", report.TotalTournaments)
	fmt.Printf("Average ROI:        %s\n", report.AverageROIByCash.StringFixed(4))

	if report.TotalBuyinsText != "" {
		fmt.Println("\nTotal buy-ins:")
		printIndented(report.TotalBuyinsText)
	}
	if report.TotalPrizesText != "" {
		fmt.Println("\nTotal prizes:")
		printIndented(report.TotalPrizesText)
	}
	if report.YearlyStatsText != "" {
		fmt.Println("\nBy year:")
		printIndented(report.YearlyStatsText)
	}

	fmt.Println(strings.Repeat("=", 50))
}

func printIndented(block string) {
	for _, line := range strings.Split(block, "\n") {
		fmt.Printf("  %s\n", line)
	}
}
