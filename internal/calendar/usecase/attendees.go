package usecase

import "calendar-attendees/internal/calendar"

// DedupeAttendees folds events left to right and returns each attendee email
// once, in first-seen order, with the display name of its first sighting.
// Emails in exclude are treated as already seen and never returned.
// Emails are compared as raw strings. Attendees without an email, such as
// unresolved resources, carry no identity and are skipped.
func DedupeAttendees(events []calendar.Event, exclude []string) []calendar.UniqueAttendee {
	seen := make(map[string]struct{}, len(exclude))
	for _, email := range exclude {
		seen[email] = struct{}{}
	}

	attendees := make([]calendar.UniqueAttendee, 0)
	for _, ev := range events {
		for _, a := range ev.Attendees {
			if a.Email == "" {
				continue
			}
			if _, ok := seen[a.Email]; ok {
				continue
			}
			seen[a.Email] = struct{}{}
			attendees = append(attendees, calendar.UniqueAttendee{
				Email:       a.Email,
				DisplayName: a.DisplayName,
			})
		}
	}
	return attendees
}
