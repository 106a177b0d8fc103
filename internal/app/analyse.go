package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lettergrade/internal/document"
	"github.com/blackwell-systems/lettergrade/internal/engine"
	"github.com/blackwell-systems/lettergrade/internal/lexicon"
)

var (
	analyseFlagRole     string
	analyseFlagCompany  string
	analyseFlagMinScore int
	analyseFlagPickRole bool
)

// noRoleItem is the picker entry for scoring without role keywords.
const noRoleItem = "(no specific role)"

// errBelowMinScore signals a failed --min-score gate.
var errBelowMinScore = errors.New("score below minimum")

var analyseCmd = &cobra.Command{
	Use:     "analyse [FILE|-]",
	Aliases: []string{"analyze"},
	Short:   "Score a single cover letter",
	Long: `Analyse scores one cover letter and prints a report with the overall
score, the five dimension scores, red flags, and up to five recommendations.

The letter is read from FILE, or from stdin when FILE is omitted or "-".

Examples:
  lettergrade analyse letter.txt --role "Data Scientist" --company Acme
  pbpaste | lettergrade analyse --json
  lettergrade analyse draft.md --min-score 70   # exit 1 below 70%
  lettergrade analyse letter.html --pick-role   # choose the role interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyse,
}

func init() {
	analyseCmd.Flags().StringVar(&analyseFlagRole, "role", "", "Target role, e.g. \"Machine Learning Engineer\" (see 'lettergrade roles')")
	analyseCmd.Flags().StringVar(&analyseFlagCompany, "company", "", "Company the letter is addressed to")
	analyseCmd.Flags().IntVar(&analyseFlagMinScore, "min-score", 0, "Exit non-zero when the overall percentage is below this value")
	analyseCmd.Flags().BoolVar(&analyseFlagPickRole, "pick-role", false, "Choose the target role from an interactive list (needs FILE)")

	rootCmd.AddCommand(analyseCmd)
}

// scoreRequest holds the per-letter inputs shared by analyse, scan and watch.
type scoreRequest struct {
	Role     string `validate:"max=100"`
	Company  string `validate:"max=200"`
	MinScore int    `validate:"gte=0,lte=100"`
}

// resolve validates the request and parses the role name.
func (r scoreRequest) resolve() (lexicon.Role, error) {
	if err := validator.New().Struct(r); err != nil {
		return lexicon.RoleNone, fmt.Errorf("invalid flags: %w", err)
	}
	return lexicon.ParseRole(r.Role)
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	req := scoreRequest{Role: analyseFlagRole, Company: analyseFlagCompany, MinScore: analyseFlagMinScore}
	if analyseFlagPickRole {
		if analyseFlagRole != "" {
			return errors.New("--pick-role and --role are mutually exclusive")
		}
		// The picker reads the terminal, so the letter cannot come from stdin.
		if len(args) == 0 || args[0] == "-" {
			return errors.New("--pick-role needs a FILE argument")
		}
		picked, err := pickRole()
		if err != nil {
			return err
		}
		req.Role = picked
	}
	role, err := req.resolve()
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	text, name, err := readLetter(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if err := engine.CheckInput(text, env.cfg.MaxInputChars); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	analysis := env.engine.Analyse(text, role, req.Company)

	out := cmd.OutOrStdout()
	if flagJSON {
		if err := writeJSON(out, analysis); err != nil {
			return err
		}
	} else {
		renderReport(out, name, analysis, env.engine.Weights(), env.ruleWidth())
	}

	if req.MinScore > 0 && analysis.OverallPercentage < req.MinScore {
		return fmt.Errorf("%w: %s scored %d%%, need %d%%", errBelowMinScore, name, analysis.OverallPercentage, req.MinScore)
	}
	return nil
}

// readLetter reads the letter named by args, or stdin when args is empty or
// "-". It returns the text and a display name.
func readLetter(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	text, err := document.ReadText(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading letter: %w", err)
	}
	return text, filepath.Base(args[0]), nil
}

// pickRole asks for the target role on the terminal. Choosing the first
// entry scores without role keywords.
func pickRole() (string, error) {
	items := []string{noRoleItem}
	for _, r := range lexicon.Roles() {
		items = append(items, r.String())
	}
	prompt := promptui.Select{
		Label: "Target role",
		Items: items,
		Size:  len(items),
	}
	_, picked, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("picking role: %w", err)
	}
	if picked == noRoleItem {
		return "", nil
	}
	return picked, nil
}
