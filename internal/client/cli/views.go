package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/api"
	"github.com/eyeglaze/eyeglaze-cli/internal/client/models"
)

func verdictLabel(hasStress bool) string {
	if hasStress {
		return "STRESS"
	}
	return "normal"
}

// Latest shows the most recent analysis, or an empty state when there is none.
func (a *App) Latest(ctx context.Context) error {
	user := a.session.CurrentUser()

	item, err := a.analysis.Latest(ctx, user.Email)
	if err != nil {
		if errors.Is(err, api.ErrDataUnavailable) {
			printlnFn("No analyses yet. Run 'analyze <file>' to get started.")
			return nil
		}
		printlnFn("Could not fetch the latest analysis:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%s  %s  %s", item.CreatedAt, verdictLabel(item.HasStress), item.ImageURL))

	// supplementary read; failure is silent
	if img, err := a.analysis.LatestImage(ctx, user.Email); err == nil {
		printlnFn("Latest photo uploaded " + img.UploadedAt)
	}
	return nil
}

// History lists past analyses, falling back to the local cache when the
// backend is unreachable.
func (a *App) History(ctx context.Context) error {
	user := a.session.CurrentUser()

	items, fromCache, err := a.analysis.History(ctx, user.Email)
	if err != nil {
		if errors.Is(err, api.ErrDataUnavailable) {
			printlnFn("No analyses yet.")
			return nil
		}
		printlnFn("Could not fetch history:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No analyses yet.")
		return nil
	}

	if fromCache {
		printlnFn("Backend unreachable; showing the last fetched history.")
	}
	for _, item := range items {
		line := fmt.Sprintf("%s  %-6s", item.CreatedAt, verdictLabel(item.HasStress))
		if item.ConfidenceLevel != nil {
			line += fmt.Sprintf("  %.0f%%", *item.ConfidenceLevel*100)
		}
		printlnFn(line)
	}
	return nil
}

// Stats shows the aggregate analysis counter.
func (a *App) Stats(ctx context.Context) error {
	user := a.session.CurrentUser()

	count, err := a.analysis.Count(ctx, user.Email)
	if err != nil {
		if errors.Is(err, api.ErrDataUnavailable) {
			printlnFn("No analyses yet.")
			return nil
		}
		printlnFn("Could not fetch stats:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Total analyses: %d", count.TotalAnalyses))
	return nil
}

// Recommendations shows the advice block. With generate=true the backend is
// asked to produce a fresh set instead of returning the stored one.
func (a *App) Recommendations(ctx context.Context, generate bool) error {
	user := a.session.CurrentUser()

	report, err := a.analysis.Recommendations(ctx, user.Email, generate)
	if err != nil {
		if errors.Is(err, api.ErrDataUnavailable) {
			printlnFn("No recommendations yet. Run an analysis first, or try 'recs new'.")
			return nil
		}
		printlnFn("Could not fetch recommendations:", err.Error())
		return err
	}

	printRecommendations(report)
	return nil
}

func printRecommendations(report *models.RecommendationReport) {
	if s := report.Stats; s != nil {
		printlnFn(fmt.Sprintf("Last week: %d analyses, stress in %d (%.0f%%)",
			s.TotalAnalysesLastWeek, s.StressDetectedCount, s.StressPercentage))
	}
	if report.Recommendations.Assessment != "" {
		printlnFn("Assessment: " + report.Recommendations.Assessment)
	}
	if len(report.Recommendations.Recommendations) > 0 {
		printlnFn("Recommendations:")
		for _, r := range report.Recommendations.Recommendations {
			printlnFn("  - " + r)
		}
	}
	if len(report.Recommendations.LifestyleAdjustments) > 0 {
		printlnFn("Lifestyle adjustments:")
		for _, r := range report.Recommendations.LifestyleAdjustments {
			printlnFn("  - " + r)
		}
	}
}

// Summary shows aggregate totals and weekly trends.
func (a *App) Summary(ctx context.Context) error {
	user := a.session.CurrentUser()

	summary, err := a.analysis.Summary(ctx, user.Email)
	if err != nil {
		if errors.Is(err, api.ErrDataUnavailable) {
			printlnFn("No summary available yet.")
			return nil
		}
		printlnFn("Could not fetch the health summary:", err.Error())
		return err
	}

	t := summary.Summary
	printlnFn(fmt.Sprintf("Total analyses: %d, stress detected in %d (%.0f%%), latest: %s",
		t.TotalAnalyses, t.StressDetectedCount, t.StressPercentage, t.LatestStatus))
	for _, w := range summary.WeeklyTrends {
		printlnFn(fmt.Sprintf("  %s: %d analyses, %d with stress (%.0f%%)",
			w.Week, w.Total, w.StressCount, w.Percentage))
	}
	return nil
}
