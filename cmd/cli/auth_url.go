package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthURLCmd(build appBuilder) *cobra.Command {
	var (
		accessType string
		scopes     []string
	)

	cmd := &cobra.Command{
		Use:   "auth-url",
		Short: "Print the Google consent URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}

			input := a.authInput
			if accessType != "" {
				input.AccessType = accessType
			}
			if len(scopes) > 0 {
				input.Scopes = scopes
			}

			url, err := a.session.AuthURL(input)
			if err != nil {
				return fmt.Errorf("failed to build auth url: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&accessType, "access-type", "", "OAuth access type: offline or online (default from config)")
	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "OAuth scope, repeatable (default from config)")
	return cmd
}
