package model

// FeedbackState is the state of the copy trigger.
type FeedbackState string

const (
	// FeedbackIdle means no recent copy; the trigger shows its default label
	FeedbackIdle FeedbackState = "Idle"

	// FeedbackConfirmed means a copy succeeded recently and a revert is pending
	FeedbackConfirmed FeedbackState = "Confirmed"
)

// Copy trigger labels
const (
	LabelIdle      = "Copy link"
	LabelConfirmed = "Copied ✓"
)

// String returns the string representation of FeedbackState
func (fs FeedbackState) String() string {
	return string(fs)
}

// Label returns the copy trigger label shown in this state
func (fs FeedbackState) Label() string {
	if fs == FeedbackConfirmed {
		return LabelConfirmed
	}
	return LabelIdle
}

// PreviewStatus represents the status of a preview fetch
type PreviewStatus string

const (
	// PreviewStatusPending means the request was created but not started
	PreviewStatusPending PreviewStatus = "Pending"

	// PreviewStatusLoading means the image is being fetched
	PreviewStatusLoading PreviewStatus = "Loading"

	// PreviewStatusReady means the image was fetched and decoded
	PreviewStatusReady PreviewStatus = "Ready"

	// PreviewStatusCancelled means a newer reference superseded this one
	PreviewStatusCancelled PreviewStatus = "Cancelled"

	// PreviewStatusError means the fetch or decode failed
	PreviewStatusError PreviewStatus = "Error"
)

// String returns the string representation of PreviewStatus
func (ps PreviewStatus) String() string {
	return string(ps)
}

// IsActive returns true while the request may still publish an image
func (ps PreviewStatus) IsActive() bool {
	return ps == PreviewStatusPending || ps == PreviewStatusLoading
}

// IsFinished returns true if the request reached a final state
func (ps PreviewStatus) IsFinished() bool {
	return ps == PreviewStatusReady || ps == PreviewStatusCancelled || ps == PreviewStatusError
}
