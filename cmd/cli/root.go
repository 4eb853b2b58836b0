package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. build is called lazily by subcommands
// so --help works without configuration.
func newRootCmd(build appBuilder) *cobra.Command {
	root := &cobra.Command{
		Use:   "calendar-attendees",
		Short: "Lists the unique attendees of your upcoming Google Calendar events",
		Long: `calendar-attendees authorizes against Google Calendar, reads the events of
every calendar you can see over the configured window (30 days by default) and
prints the deduplicated attendee list.

Run "auth-url" to get the consent link, then "aggregate --code <code>".
Without --code, aggregate prints the link and prompts for the code.`,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "calendar-attendees version %s\n" .Version}}`)

	root.AddCommand(newAuthURLCmd(build))
	root.AddCommand(newAggregateCmd(build))
	return root
}
