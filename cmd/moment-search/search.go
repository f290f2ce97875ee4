// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/moment-search/internal/moment"
	"github.com/pdiddy/moment-search/internal/search"
	"github.com/pdiddy/moment-search/internal/view"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search for video moments from the terminal",
	Long: `Search sends one question to the backend and prints the matching moments in
backend order. The query is the joined arguments, or --query.

Examples:
  moment-search search "where is the select statement explained"
  moment-search search --query "buffered channels" --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		if len(args) > 0 {
			query = strings.Join(args, " ")
		}
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("query is empty")
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "json", "yaml":
		default:
			return fmt.Errorf("unknown format %q: use table, json or yaml", format)
		}

		v := view.New(search.NewClient(appConfig.Backend), view.Options{
			EmbedHost: appConfig.Embed.Host,
			DropStale: appConfig.UI.DropStaleResponses,
			SessionID: "cli",
		})
		v.SetQuery(query)

		if v.Submit(cmd.Context()) == view.OutcomeFailure {
			fmt.Fprintln(os.Stderr, view.FailureMessage)
			return fmt.Errorf("search failed")
		}

		moments := v.State().Results
		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return moment.FormatJSON(moments, out)
		case "yaml":
			return moment.FormatYAML(moments, out)
		default:
			moment.FormatTable(moments, out)
			return nil
		}
	},
}

func init() {
	searchCmd.Flags().String("query", "", "question to search for")
	searchCmd.Flags().String("format", "table", "output format: table, json, yaml")

	rootCmd.AddCommand(searchCmd)
}
