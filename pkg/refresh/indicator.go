package refresh

// Labels shown by LabelIndicator.
const (
	LabelPull       = "Pull to refresh"
	LabelRelease    = "Release to refresh"
	LabelRefreshing = "Refreshing..."
	LabelComplete   = "Refresh complete"
)

// LabelIndicator is the default header. It shows a text label and counts arrow
// flips, changing only when the will-trigger flag changes rather than on
// every pull.
type LabelIndicator struct {
	// Height is the measured header height in pixels.
	Height int
	// OnLabel, if set, is called whenever the label changes.
	OnLabel func(label string)

	label       string
	willTrigger bool
	flips       int
}

// NewLabelIndicator returns a header of the given height.
func NewLabelIndicator(height int) *LabelIndicator {
	return &LabelIndicator{Height: height, label: LabelPull}
}

// MeasuredHeight implements View.
func (h *LabelIndicator) MeasuredHeight() int {
	return h.Height
}

// Label returns the text currently shown.
func (h *LabelIndicator) Label() string {
	return h.label
}

// Flips returns how many times the arrow flipped between pull and release.
func (h *LabelIndicator) Flips() int {
	return h.flips
}

func (h *LabelIndicator) OnPrepare() {
	h.setLabel(LabelPull)
}

func (h *LabelIndicator) OnPull(willTrigger bool, offset int) {
	if willTrigger == h.willTrigger {
		return
	}
	h.willTrigger = willTrigger
	h.flips++
	if willTrigger {
		h.setLabel(LabelRelease)
	} else {
		h.setLabel(LabelPull)
	}
}

func (h *LabelIndicator) OnStart() {
	h.setLabel(LabelRefreshing)
}

func (h *LabelIndicator) OnComplete() {
	h.willTrigger = false
	h.setLabel(LabelComplete)
}

func (h *LabelIndicator) setLabel(label string) {
	if h.label == label {
		return
	}
	h.label = label
	if h.OnLabel != nil {
		h.OnLabel(label)
	}
}
