package ecs

// Stage is one named step of the frame pipeline.
type Stage struct {
	Name   string
	System System
}

// Scheduler runs its stages in the order they were added.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	s := &Scheduler{}
	for _, st := range stages {
		s.Add(st.Name, st.System)
	}
	return s
}

func (s *Scheduler) Add(name string, system System) {
	if system == nil {
		return
	}
	s.stages = append(s.stages, Stage{Name: name, System: system})
}

// Update runs every stage once. halt is checked after each stage; when it
// reports true the remaining stages are skipped and the name of the last
// stage run is returned.
func (s *Scheduler) Update(w *World, halt func(*World) bool) string {
	for _, st := range s.stages {
		st.System.Update(w)
		if halt != nil && halt(w) {
			return st.Name
		}
	}
	return ""
}

func (s *Scheduler) Stages() []Stage {
	stages := make([]Stage, 0, len(s.stages))
	return append(stages, s.stages...)
}

// Names lists the stage names in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.stages))
	for _, st := range s.stages {
		names = append(names, st.Name)
	}
	return names
}
