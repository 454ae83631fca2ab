package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wexinc/wishmachine/internal/config"
	wisherrors "github.com/wexinc/wishmachine/internal/errors"
	"github.com/wexinc/wishmachine/internal/wish"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "send <wish...>",
		Short: "Send a wish",
		Long: `Send one wish to the starry sky.

All arguments are joined with spaces. Surrounding whitespace is trimmed and
an empty wish is rejected without contacting the server.

Examples:
  wishmachine send a sunny weekend
  wishmachine send --name 龙小猫 "more stars"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.setup(cmd, true)
			if err != nil {
				return err
			}

			author := cfg.Submit.Author
			if cmd.Flags().Changed("name") {
				author = name
			}
			req, err := wish.NewCreateRequest(author, strings.Join(args, " "))
			if err != nil {
				return err
			}

			created, err := client(cfg).Create(commandContext(cmd), req)
			if err != nil {
				return err
			}

			if created != nil {
				cmd.Printf("🌟 您的愿望已送达星空！ (#%d)\n", created.ID)
			} else {
				cmd.Println("🌟 您的愿望已送达星空！")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Author name sent with the wish (default from submit.author)")
	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all wishes",
		Long: `List every wish, newest first.

Examples:
  wishmachine list
  wishmachine list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			cfg, err := opts.setup(cmd, true)
			if err != nil {
				return err
			}

			wishes, err := client(cfg).List(commandContext(cmd))
			if err != nil {
				return err
			}

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), wishes)
			}

			if len(wishes) == 0 {
				cmd.Println("🌟 还没有愿望")
				cmd.Println("成为第一个许愿的人吧！")
				return nil
			}

			formatter := wish.NewFormatter(cfg.Display.Locale)
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("ID", "Name", "Wish", "Created")
			for _, w := range wishes {
				if err := table.Append(
					strconv.FormatInt(w.ID, 10),
					w.Name,
					w.Wish,
					formatter.Format(w),
				); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
			cmd.Printf("\n✨ 共有 %d 个愿望在星空中闪耀 ✨\n", len(wishes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or json")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one wish",
		Long: `Show a single wish by id.

Examples:
  wishmachine show 12
  wishmachine show 12 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.setup(cmd, true)
			if err != nil {
				return err
			}

			w, err := client(cfg).Get(commandContext(cmd), id)
			if err != nil {
				return err
			}

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), w)
			}
			return renderWish(cmd.OutOrStdout(), cfg, w)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or json")
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one wish",
		Long: `Delete a single wish by id. Other wishes are not affected.

Examples:
  wishmachine delete 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := opts.setup(cmd, true)
			if err != nil {
				return err
			}

			if err := client(cfg).Delete(commandContext(cmd), id); err != nil {
				return err
			}
			cmd.Printf("✓ Wish #%d deleted\n", id)
			return nil
		},
	}
}

// parseID parses a wish id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, wisherrors.InvalidID(arg)
	}
	return id, nil
}

func validateOutput(output string) error {
	switch output {
	case outputTable, outputJSON:
		return nil
	default:
		return wisherrors.ConfigValidationError("output",
			fmt.Sprintf("unknown output format %q", output),
			[]string{outputTable, outputJSON})
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// renderWish prints w as a property table.
func renderWish(out io.Writer, cfg *config.Config, w *wish.Wish) error {
	formatter := wish.NewFormatter(cfg.Display.Locale)
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")
	rows := [][]string{
		{"ID", strconv.FormatInt(w.ID, 10)},
		{"Name", w.Name},
		{"Wish", w.Wish},
		{"Created", formatter.Format(*w)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
