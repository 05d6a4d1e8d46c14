package survey

import "regexp"

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Target is what a /encuesta/<segment> path points at.
type Target interface {
	isTarget()
}

// AppointmentID is a numeric appointment id that still has to be turned
// into a survey token.
type AppointmentID string

// SurveyToken is the canonical survey key.
type SurveyToken string

func (AppointmentID) isTarget() {}
func (SurveyToken) isTarget()   {}

// Classify decides once what the segment is. The router has already
// percent-decoded it.
func Classify(segment string) Target {
	if digitsOnly.MatchString(segment) {
		return AppointmentID(segment)
	}
	return SurveyToken(segment)
}
