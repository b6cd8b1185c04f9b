package progress

import "fmt"

// Counter is a current/total pair. Within one stage, consecutive
// updates must never decrease Current.
type Counter struct {
	Current int
	Total   int
}

// Fraction returns Current/Total, or 0 when Total is 0.
func (c Counter) Fraction() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Current) / float64(c.Total)
}

// Update is one point in a stage's progress stream.
type Update struct {
	StageName string
	Stage     Counter
	Total     Counter
}

// String renders the update in the terminal-friendly form
// "name: [stage/stage] [stage: pct, total: pct]".
func (u Update) String() string {
	return fmt.Sprintf("%s: [%02d/%02d] [stage: %05.2f, total: %05.2f]",
		u.StageName, u.Stage.Current, u.Stage.Total,
		u.Stage.Fraction()*100, u.Total.Fraction()*100)
}

// Observer receives the progress stream for one open stage.
type Observer interface {
	Update(Update)
}

// Reporter opens a named sub-stage and returns the Observer that stage
// should drive. Implementations decide what "opening" means (printing
// a header, resetting a bar, starting a span); the caller releases the
// Observer simply by no longer calling it once the stage finishes.
type Reporter interface {
	BeginStage(name string) Observer
}
