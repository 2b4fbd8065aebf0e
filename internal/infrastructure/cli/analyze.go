package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/preflighthq/preflight/internal/infrastructure/storage"
	"github.com/preflighthq/preflight/pkg/application"
	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/spf13/cobra"
)

// Flag variables for analyze command
var (
	analyzeManifest    string
	analyzePrivacy     string
	analyzeMetadata    string
	analyzeScreenshots string
	analyzeAnswers     string
	analyzeRubric      string
	analyzeJSON        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a submission package and print its readiness report",
	Long: `Analyze a submission package and print its readiness report.

All inputs are optional files; checks run only for the parts you provide.
Questionnaire answers you omit score as unknowns.

  --manifest      Info.plist file
  --privacy       PrivacyInfo.xcprivacy file
  --metadata      App Store metadata (JSON)
  --screenshots   Screenshot dimensions (JSON array of {width,height,name})
  --answers       Questionnaire answers (JSON object of question id to answer)
  --rubric        Custom rubric file (YAML)
  --json          Output in JSON format

Examples:
  preflight analyze --manifest Info.plist --privacy PrivacyInfo.xcprivacy
  preflight analyze --metadata metadata.json --answers answers.json --json`,
	RunE: runAnalyzeCmd,
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	svc, err := loadAnalysisService(analyzeRubric)
	if err != nil {
		return err
	}

	sub, err := buildSubmission()
	if err != nil {
		return err
	}

	result := svc.AnalyzeSubmission(*sub)

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(renderResult(svc.Rubric(), result))
	return nil
}

// loadAnalysisService builds the analysis service, loading a custom rubric
// when one is given.
func loadAnalysisService(rubricPath string) (*application.AnalysisService, error) {
	var rubric *review.Rubric
	if rubricPath != "" {
		loaded, err := storage.NewRubricStore().Load(rubricPath)
		if err != nil {
			return nil, err
		}
		rubric = loaded
	}
	return application.NewAnalysisService(rubric)
}

// buildSubmission reads the analyze flag files into a submission.
func buildSubmission() (*application.Submission, error) {
	sub := &application.Submission{}

	if analyzeManifest != "" {
		content, err := readInputFile(analyzeManifest)
		if err != nil {
			return nil, err
		}
		sub.InfoPlist = content
	}

	if analyzePrivacy != "" {
		content, err := readInputFile(analyzePrivacy)
		if err != nil {
			return nil, err
		}
		sub.PrivacyManifest = content
	}

	if analyzeMetadata != "" {
		content, err := readInputFile(analyzeMetadata)
		if err != nil {
			return nil, err
		}
		var meta review.Metadata
		if err := json.Unmarshal([]byte(content), &meta); err != nil {
			return nil, fmt.Errorf("invalid metadata JSON in %s: %w", analyzeMetadata, err)
		}
		sub.Metadata = &meta
	}

	if analyzeScreenshots != "" {
		content, err := readInputFile(analyzeScreenshots)
		if err != nil {
			return nil, err
		}
		var shots []review.Screenshot
		if err := json.Unmarshal([]byte(content), &shots); err != nil {
			return nil, fmt.Errorf("invalid screenshots JSON in %s: %w", analyzeScreenshots, err)
		}
		sub.Screenshots = shots
		sub.HasScreenshots = true
	}

	if analyzeAnswers != "" {
		content, err := readInputFile(analyzeAnswers)
		if err != nil {
			return nil, err
		}
		answers := map[string]string{}
		if err := json.Unmarshal([]byte(content), &answers); err != nil {
			return nil, fmt.Errorf("invalid answers JSON in %s: %w", analyzeAnswers, err)
		}
		sub.Answers = answers
	}

	return sub, nil
}

func readInputFile(path string) (string, error) {
	// #nosec G304 -- path is operator supplied on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeManifest, "manifest", "", "Info.plist file to analyze")
	analyzeCmd.Flags().StringVar(&analyzePrivacy, "privacy", "", "PrivacyInfo.xcprivacy file to analyze")
	analyzeCmd.Flags().StringVar(&analyzeMetadata, "metadata", "", "App Store metadata JSON file")
	analyzeCmd.Flags().StringVar(&analyzeScreenshots, "screenshots", "", "Screenshot dimensions JSON file")
	analyzeCmd.Flags().StringVar(&analyzeAnswers, "answers", "", "Questionnaire answers JSON file")
	analyzeCmd.Flags().StringVar(&analyzeRubric, "rubric", "", "Custom rubric YAML file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output in JSON format")

	RootCmd.AddCommand(analyzeCmd)
}
