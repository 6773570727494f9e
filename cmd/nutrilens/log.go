package nutrilens

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/provider/gemini"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal via AI analysis of a photo or description",
}

var logMimeType string

var logPhotoCmd = &cobra.Command{
	Use:   "photo <file>",
	Short: "Analyze a meal photo and add it to today's totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read meal photo: %w", err)
		}
		mimeType := strings.TrimSpace(logMimeType)
		if mimeType == "" {
			mimeType = http.DetectContentType(image)
		}
		return withSession(func(st *store.Store, sess *service.Session) error {
			client := analyzerClient()
			result, err := client.AnalyzeImage(cmd.Context(), image, mimeType)
			if err != nil {
				return fmt.Errorf("failed to analyze meal: the AI model could not process the image: %w", err)
			}
			if err := sess.ApplyMealResult(result); err != nil {
				return err
			}
			printMealResult(cmd, result, sess.Totals())
			return nil
		})
	},
}

var logTextCmd = &cobra.Command{
	Use:   "text <description>",
	Short: "Analyze a meal description and add it to today's totals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.TrimSpace(strings.Join(args, " "))
		if description == "" {
			return fmt.Errorf("meal description is required")
		}
		return withSession(func(st *store.Store, sess *service.Session) error {
			client := analyzerClient()
			result, err := client.AnalyzeText(cmd.Context(), description)
			if err != nil {
				return fmt.Errorf("failed to analyze meal: the AI model could not process the text: %w", err)
			}
			if err := sess.ApplyMealResult(result); err != nil {
				return err
			}
			printMealResult(cmd, result, sess.Totals())
			return nil
		})
	},
}

func analyzerClient() *gemini.Client {
	return &gemini.Client{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
		Model:   os.Getenv("GEMINI_MODEL"),
	}
}

func printMealResult(cmd *cobra.Command, result model.MealAnalysisResult, totals model.NutrientTotals) {
	fmt.Fprintln(cmd.OutOrStdout(), "Recognized foods:")
	for _, food := range result.Foods {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", food.Name, food.Quantity)
	}
	n := result.TotalNutrients
	fmt.Fprintf(cmd.OutOrStdout(), "Meal: %.0f kcal | P %.1fg | F %.1fg | Fiber %.1fg\n", n.Calories, n.ProteinG, n.FatG, n.FiberG)
	if result.Summary != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Summary)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Today: %.0f kcal | P %.1fg | F %.1fg | Fiber %.1fg | Water %d\n",
		totals.Calories, totals.ProteinG, totals.FatG, totals.FiberG, totals.WaterGlasses)
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logPhotoCmd, logTextCmd)

	logPhotoCmd.Flags().StringVar(&logMimeType, "mime", "", "Image MIME type (default sniffed from the file)")
}
