package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/eyeglaze/eyeglaze-cli/internal/client/services"
)

// Analyze runs one full analysis action on the given image file and prints
// the verdict with the supporting pupil and iris detail.
func (a *App) Analyze(ctx context.Context, path string) error {
	user := a.session.CurrentUser()

	printlnFn("Analyzing " + path + " ...")
	outcome, err := a.analysis.Analyze(ctx, user, path)
	if err != nil {
		if errors.Is(err, services.ErrNotAnImage) {
			printlnFn("Please select a valid image file.")
		} else {
			printlnFn("Analysis failed:", err.Error())
		}
		return err
	}

	verdict := outcome.Prediction.Result
	if outcome.HasStress {
		printlnFn(fmt.Sprintf("Verdict: STRESS detected (%.0f%%)", verdict.StressPercentage))
	} else {
		printlnFn(fmt.Sprintf("Verdict: no stress (%.0f%%)", verdict.StressPercentage))
	}

	if p := outcome.Prediction.PupilAnalysis; p != nil {
		printlnFn(fmt.Sprintf("Pupil: %.2f mm (%s, threshold %.1f mm)", p.DiameterMM, p.Status, p.StressThreshold))
	}
	if ir := outcome.Prediction.IrisAnalysis; ir != nil {
		printlnFn("Iris: " + ir.Interpretation)
	}
	if verdict.NeedsBetterImage {
		printlnFn("Note: the image quality was low; retake the photo for a more reliable reading.")
	}

	if outcome.Submitted {
		printlnFn("Result saved to your history.")
	} else {
		printlnFn("Result could not be saved to your history; it will still show locally.")
	}
	return nil
}
