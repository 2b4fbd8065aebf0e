package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/preflighthq/preflight/internal/infrastructure/storage"
	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Flag variables for rubric subcommands
var (
	rubricInitForce bool
	rubricShowJSON  bool
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Manage rubric files",
	Long: `Manage rubric files.

A rubric defines the categories, weights, questions, and reference data an
analysis runs against. The built-in rubric is used unless a command is given
a --rubric flag.`,
}

var rubricInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write the built-in rubric to a YAML file for customization",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "rubric.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		if !rubricInitForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}

		if err := storage.NewRubricStore().Save(path, review.DefaultRubric()); err != nil {
			return err
		}
		fmt.Printf("Wrote default rubric to %s\n", path)
		return nil
	},
}

var rubricShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show a rubric's categories and weights",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rubric := review.DefaultRubric()
		if len(args) > 0 {
			loaded, err := storage.NewRubricStore().Load(args[0])
			if err != nil {
				return err
			}
			rubric = loaded
		}

		if rubricShowJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rubric)
		}

		fmt.Printf("Categories: %d  Questions: %d  Total weight: %.2f\n\n",
			len(rubric.Categories), len(rubric.Questions), rubric.TotalWeight())
		for _, c := range rubric.Categories {
			fmt.Printf("%-28s %5.0f%%  (guideline %s, %d questions)\n",
				c.Name, c.Weight*100, c.GuidelineSection, len(rubric.QuestionsForCategory(c.ID)))
		}
		return nil
	},
}

var rubricValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rubric file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// #nosec G304 -- path is operator supplied on the command line
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var rubric review.Rubric
		if err := yaml.Unmarshal(data, &rubric); err != nil {
			return fmt.Errorf("failed to unmarshal rubric: %w", err)
		}

		if errs := rubric.Validate(); len(errs) > 0 {
			fmt.Printf("%s is invalid:\n", args[0])
			for _, e := range errs {
				fmt.Printf("  - %v\n", e)
			}
			return fmt.Errorf("%d validation errors", len(errs))
		}

		fmt.Printf("%s is valid (%d categories, %d questions)\n",
			args[0], len(rubric.Categories), len(rubric.Questions))
		return nil
	},
}

func init() {
	rubricInitCmd.Flags().BoolVar(&rubricInitForce, "force", false, "Overwrite an existing file")
	rubricShowCmd.Flags().BoolVar(&rubricShowJSON, "json", false, "Output in JSON format")

	rubricCmd.AddCommand(rubricInitCmd)
	rubricCmd.AddCommand(rubricShowCmd)
	rubricCmd.AddCommand(rubricValidateCmd)
	RootCmd.AddCommand(rubricCmd)
}
