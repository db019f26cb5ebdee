package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobguard/go-jobguard/pkg/engine"
)

var assessFlags struct {
	textFile string
	text     string
	email    string
	url      string
	platform string
	asJSON   bool
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess a single job posting",
	Long: `Assess scores one job posting and prints the verdict. The posting
text comes from --text or --file; the remaining fields are optional.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := assessFlags.text
		if assessFlags.textFile != "" {
			data, err := os.ReadFile(assessFlags.textFile)
			if err != nil {
				return fmt.Errorf("read job text: %w", err)
			}
			text = string(data)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("no job text given: use --text or --file")
		}

		guard := engine.New()
		assessment := guard.Assess(engine.Input{
			JobText:        text,
			CompanyURL:     assessFlags.url,
			RecruiterEmail: assessFlags.email,
			PlatformSource: assessFlags.platform,
		})

		if assessFlags.asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(assessment)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Verdict:    %s\n", assessment.Verdict)
		fmt.Fprintf(out, "Risk score: %d/100\n", assessment.RiskScore)
		fmt.Fprintf(out, "Confidence: %s\n", assessment.Confidence)
		if len(assessment.Flags) > 0 {
			fmt.Fprintln(out, "Flags:")
			for _, f := range assessment.Flags {
				fmt.Fprintf(out, "  - %s\n", f)
			}
		}
		fmt.Fprintf(out, "\n%s\n", assessment.Explanation)
		return nil
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessFlags.text, "text", "", "job posting text")
	assessCmd.Flags().StringVar(&assessFlags.textFile, "file", "", "file containing the job posting text")
	assessCmd.Flags().StringVar(&assessFlags.email, "email", "", "recruiter email address")
	assessCmd.Flags().StringVar(&assessFlags.url, "url", "", "company website URL")
	assessCmd.Flags().StringVar(&assessFlags.platform, "platform", "", "platform the posting was found on")
	assessCmd.Flags().BoolVar(&assessFlags.asJSON, "json", false, "print the full assessment as JSON")
	rootCmd.AddCommand(assessCmd)
}
