package form

type Key int

const (
	KeyEnter Key = iota
	KeyShiftEnter
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyShiftEnter:
		return "Shift+Enter"
	case KeyEscape:
		return "Escape"
	default:
		return "?"
	}
}

// HandleKey dispatches keyboard shortcut. Escape resets the form only
// if the controller was built with reset on escape.
func (x *Controller) HandleKey(k Key) error {
	switch k {
	case KeyEnter:
		return x.AddRow()
	case KeyShiftEnter:
		x.ShowTable()
	case KeyEscape:
		if x.resetOnEscape {
			x.ResetAll()
		}
	}
	return nil
}
