package domain

// Activity is a school extracurricular with a roster of participant emails.
// The roster preserves signup order and never contains duplicates.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// RosterSize returns the current participant count.
func (a Activity) RosterSize() int {
	return len(a.Participants)
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
