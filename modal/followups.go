// ABOUTME: Follow-up history viewer lifecycle
// ABOUTME: Tracks open state, entries, close reasons, and the scroll lock it holds
package modal

import "github.com/harperreed/crmdash/models"

type CloseReason int

const (
	CloseButton CloseReason = iota
	Backdrop
	Escape
	Unmount
)

func (r CloseReason) String() string {
	switch r {
	case CloseButton:
		return "button"
	case Backdrop:
		return "backdrop"
	case Escape:
		return "escape"
	case Unmount:
		return "unmount"
	}
	return "unknown"
}

const (
	EmptyTitle = "No follow-up history available"
	EmptyHint  = "Contact history will appear here once interactions are logged"
)

// FollowUpViewer shows one lead's contact history. While open it holds the
// scroll lock; every close path releases it exactly once.
type FollowUpViewer struct {
	lock     *ScrollLock
	release  func()
	leadID   int
	leadName string
	entries  []models.FollowUp
	onClose  func(CloseReason)
}

func NewFollowUpViewer(lock *ScrollLock) *FollowUpViewer {
	return &FollowUpViewer{lock: lock}
}

// OnClose registers a hook called after the viewer closes.
func (v *FollowUpViewer) OnClose(fn func(CloseReason)) {
	v.onClose = fn
}

// Open shows entries for a lead. Opening an already open viewer swaps the
// content and keeps the existing lock.
func (v *FollowUpViewer) Open(leadID int, leadName string, entries []models.FollowUp) {
	v.leadID = leadID
	v.leadName = leadName
	v.entries = append([]models.FollowUp{}, entries...)
	if v.release == nil {
		v.release = v.lock.Acquire()
	}
}

// Close hides the viewer. Closing a closed viewer is a no-op.
func (v *FollowUpViewer) Close(reason CloseReason) {
	if v.release == nil {
		return
	}
	v.release()
	v.release = nil
	v.entries = nil
	if v.onClose != nil {
		v.onClose(reason)
	}
}

// HandleKey closes on Escape and reports whether the key was consumed.
func (v *FollowUpViewer) HandleKey(key string) bool {
	if !v.IsOpen() {
		return false
	}
	if key == "esc" || key == "Escape" {
		v.Close(Escape)
		return true
	}
	return false
}

func (v *FollowUpViewer) IsOpen() bool {
	return v.release != nil
}

func (v *FollowUpViewer) LeadID() int {
	return v.leadID
}

func (v *FollowUpViewer) LeadName() string {
	return v.leadName
}

func (v *FollowUpViewer) Entries() []models.FollowUp {
	return append([]models.FollowUp{}, v.entries...)
}

// Empty reports whether the empty state should render.
func (v *FollowUpViewer) Empty() bool {
	return len(v.entries) == 0
}
