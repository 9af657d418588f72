package enum

// Known reports whether the time of day has been determined.
func (e TimeOfDay) Known() bool {
	return e == TimeOfDayDay || e == TimeOfDayNight
}

// Transition returns the name of the transition leading into this time of day:
// "sunrise" for day, "sunset" for night and empty string for unknown.
func (e TimeOfDay) Transition() string {
	switch e {
	case TimeOfDayDay:
		return "sunrise"
	case TimeOfDayNight:
		return "sunset"
	default:
		return ""
	}
}
