package progress

// Recorder is a Reporter that keeps every update it receives, grouped
// by the stage name passed to BeginStage. Tests use it to assert
// monotonicity (invariant 8) and to count how many stages a build
// opened.
type Recorder struct {
	Stages  []string
	Updates map[string][]Update
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Updates: make(map[string][]Update)}
}

func (r *Recorder) BeginStage(name string) Observer {
	r.Stages = append(r.Stages, name)
	return &recorderObserver{recorder: r, stage: name}
}

type recorderObserver struct {
	recorder *Recorder
	stage    string
}

func (o *recorderObserver) Update(u Update) {
	o.recorder.Updates[o.stage] = append(o.recorder.Updates[o.stage], u)
}

// Monotone reports whether every stage's recorded updates have
// non-decreasing Stage.Current and Total.Current.
func (r *Recorder) Monotone() bool {
	for _, updates := range r.Updates {
		for i := 1; i < len(updates); i++ {
			if updates[i].Stage.Current < updates[i-1].Stage.Current {
				return false
			}
			if updates[i].Total.Current < updates[i-1].Total.Current {
				return false
			}
		}
	}
	return true
}
