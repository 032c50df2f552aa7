package app

import (
	"log/slog"

	"github.com/iw2rmb/strands/frame"
	"github.com/iw2rmb/strands/grid"
	"github.com/iw2rmb/strands/trigram"
)

// session is the state shared between the app model and the editor's change
// hook. The app model is copied on every update; the session is not.
type session struct {
	model *trigram.Model
	value float64
	geom  frame.Geometry
	log   *slog.Logger

	frame frame.Frame
	dirty bool
}

// setValue clamps v into [0, 1] and marks the frame dirty when it moved.
func (s *session) setValue(v float64) {
	v = min(max(v, 0), 1)
	if v != s.value {
		s.value = v
		s.dirty = true
	}
}

func (s *session) threshold() float64 { return s.model.Threshold(s.value) }

// replan rescans doc in full.
func (s *session) replan(doc grid.Document) {
	s.frame = frame.Plan(doc, s.model, s.threshold())
	s.dirty = false
	s.log.Debug("frame planned",
		"cells", len(s.frame.Cells),
		"arrows", s.frame.ArrowCount(),
		"value", s.value,
		"threshold", s.frame.Threshold,
	)
}
