package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lemmyopml/internal/opml"
)

// import <instance> <username> <infile>: subscribe to every community in the file.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <instance> <username> <infile>",
		Short: "Import community subscriptions from an OPML file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, username, infile := args[0], args[1], args[2]

			a, _, err := buildApp(instance, username)
			if err != nil {
				return err
			}

			communities, skipped, err := opml.Parse(infile)
			if err != nil {
				return err
			}
			a.Log.Printf("parsed %d communities from %s (%d entries skipped)", len(communities), infile, skipped)

			token, err := login(a, username)
			if err != nil {
				return err
			}

			subscribed, failed := a.Subscribe.Run(token, communities)
			fmt.Printf("Subscribed to %d communities; %d failures.\n", subscribed, failed)
			return nil
		},
	}
}
