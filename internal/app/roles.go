package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lettergrade/internal/lexicon"
	"github.com/blackwell-systems/lettergrade/internal/output"
)

// roleExamplesShown is how many keywords the table previews per role.
const roleExamplesShown = 4

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles with role-specific keywords",
	Long: `Roles lists every value accepted by --role, with the number of
role-specific keywords scored for it in the active lexicon.`,
	Args: cobra.NoArgs,
	RunE: runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

// roleInfo is the JSON shape of one role.
type roleInfo struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

func runRoles(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	lex := env.engine.Lexicon()

	roles := make([]roleInfo, 0, len(lexicon.Roles()))
	for _, r := range lexicon.Roles() {
		info := roleInfo{Name: r.String(), Keywords: []string{}}
		for _, k := range lex.RoleKeywords[r] {
			info.Keywords = append(info.Keywords, k.Term)
		}
		roles = append(roles, info)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, roles)
	}

	fmt.Fprintln(out, output.Section("Roles", env.ruleWidth()))
	fmt.Fprintln(out)

	tbl := output.NewTable("Role", "Keywords", "Examples")
	for _, r := range roles {
		examples := r.Keywords[:min(len(r.Keywords), roleExamplesShown)]
		preview := strings.Join(examples, ", ")
		if len(r.Keywords) > roleExamplesShown {
			preview += ", ..."
		}
		tbl.AddRow(r.Name, fmt.Sprintf("%d", len(r.Keywords)), output.StyleMuted.Render(preview))
	}
	return tbl.Fprint(out)
}
