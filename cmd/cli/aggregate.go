package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"calendar-attendees/internal/calendar"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func newAggregateCmd(build appBuilder) *cobra.Command {
	var (
		code    string
		exclude []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Fetch upcoming events across all calendars and list unique attendees",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputJSON {
				return fmt.Errorf("unknown output %q, want %s or %s", output, outputText, outputJSON)
			}

			a, err := build()
			if err != nil {
				return err
			}

			if code == "" {
				url, err := a.session.AuthURL(a.authInput)
				if err != nil {
					return fmt.Errorf("failed to build auth url: %w", err)
				}
				code, err = promptCode(cmd.InOrStdin(), cmd.ErrOrStderr(), url)
				if err != nil {
					return err
				}
			}

			out, err := a.uc.Aggregate(cmd.Context(), calendar.AggregateInput{
				Code:          code,
				ExcludeEmails: exclude,
			})
			if err != nil {
				return fmt.Errorf("aggregation failed: %w", err)
			}

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeText(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code from the consent redirect (prompted when empty)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Attendee email to leave out, repeatable")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text or json")
	return cmd
}

func promptCode(in io.Reader, out io.Writer, url string) (string, error) {
	fmt.Fprintln(out, "Open the following URL in your browser and authorize access:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, url)
	fmt.Fprintln(out)
	fmt.Fprint(out, "Paste the authorization code: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read authorization code: %w", err)
		}
		return "", calendar.ErrMissingCode
	}
	code := strings.TrimSpace(scanner.Text())
	if code == "" {
		return "", calendar.ErrMissingCode
	}
	return code, nil
}

type jsonAttendee struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

type jsonCalendar struct {
	ID      string `json:"id"`
	Summary string `json:"summary,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

type jsonOutput struct {
	RunID     string         `json:"runId"`
	TimeMin   time.Time      `json:"timeMin"`
	TimeMax   time.Time      `json:"timeMax"`
	Calendars []jsonCalendar `json:"calendars"`
	Events    int            `json:"events"`
	Attendees []jsonAttendee `json:"attendees"`
}

func writeJSON(w io.Writer, out calendar.AggregateOutput) error {
	res := jsonOutput{
		RunID:     out.RunID,
		TimeMin:   out.TimeMin,
		TimeMax:   out.TimeMax,
		Calendars: make([]jsonCalendar, len(out.Calendars)),
		Events:    len(out.Events),
		Attendees: make([]jsonAttendee, len(out.Attendees)),
	}
	for i, c := range out.Calendars {
		res.Calendars[i] = jsonCalendar{ID: c.ID, Summary: c.Summary, Primary: c.Primary}
	}
	for i, a := range out.Attendees {
		res.Attendees[i] = jsonAttendee{Email: a.Email, DisplayName: a.DisplayName}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func writeText(w io.Writer, out calendar.AggregateOutput) error {
	fmt.Fprintf(w, "Window: %s to %s\n", out.TimeMin.Format(time.RFC3339), out.TimeMax.Format(time.RFC3339))
	fmt.Fprintf(w, "Calendars (%d):\n", len(out.Calendars))
	for _, c := range out.Calendars {
		marker := ""
		if c.Primary {
			marker = " (primary)"
		}
		fmt.Fprintf(w, "  %s%s\n", c.ID, marker)
	}
	fmt.Fprintf(w, "Events: %d\n", len(out.Events))
	fmt.Fprintf(w, "Attendees (%d):\n", len(out.Attendees))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, a := range out.Attendees {
		fmt.Fprintf(tw, "  %s\t%s\n", a.Email, a.DisplayName)
	}
	return tw.Flush()
}
