package enum

//go:generate go run github.com/go-pkgz/enum@latest -type timeOfDay -lower
type timeOfDay int

const (
	timeOfDayUnknown timeOfDay = iota
	timeOfDayDay
	timeOfDayNight
)

//go:generate go run github.com/go-pkgz/enum@latest -type timeSource -lower
type timeSource int

const (
	timeSourceSchedule timeSource = iota
	timeSourceLocation
)
