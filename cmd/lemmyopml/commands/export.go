package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lemmyopml/internal/domain"
	"lemmyopml/internal/opml"
)

// export <instance> <username> <outfile>: write subscriptions to an OPML file.
func exportCmd() *cobra.Command {
	var (
		categories      bool
		title           string
		sortBy          string
		includeDate     bool
		includeUserName bool
		includeUserURL  bool
		overwrite       bool
	)
	cmd := &cobra.Command{
		Use:   "export <instance> <username> <outfile>",
		Short: "Export your subscribed communities to an OPML file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, username, outfile := args[0], args[1], args[2]

			a, cfg, err := buildApp(instance, username)
			if err != nil {
				return err
			}

			if sortBy == "" {
				sortBy = cfg.SortBy
			}
			var sort domain.SortOrder
			if sortBy != "" {
				if sort, err = domain.SortByName(sortBy); err != nil {
					return err
				}
			}

			token, err := login(a, username)
			if err != nil {
				return err
			}

			opts := opml.Options{
				Categories: categories,
				Title:      title,
				Date:       includeDate,
				Sort:       sort,
			}
			if includeUserName {
				opts.OwnerName = a.Client.UserHandle(username)
			}
			if includeUserURL {
				opts.OwnerID = a.Client.UserURL(username)
			}

			n, err := a.Export.Run(token, outfile, opts, overwrite)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d communities to %s\n", n, outfile)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&categories, "categories", "c", false, "group communities by home instance")
	cmd.Flags().StringVarP(&title, "title", "t", "", "title to include in the OPML file")
	cmd.Flags().StringVarP(&sortBy, "sort-by", "s", "", "how to sort posts when viewing communities (top, hot, active, new, old, mostcomments, newcomments)")
	cmd.Flags().BoolVarP(&includeDate, "include-date", "d", false, "include the current date and time in the OPML file")
	cmd.Flags().BoolVarP(&includeUserName, "include-user-name", "n", false, "include your federated handle in the OPML file")
	cmd.Flags().BoolVarP(&includeUserURL, "include-user-url", "u", false, "include a link to your profile in the OPML file")
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "w", false, "overwrite the output file if it already exists")
	return cmd
}
