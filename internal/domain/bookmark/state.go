package bookmark

import (
	"flightdeals/internal/pkg/errs"
)

var (
	ErrBusy      = errs.New("bookmark check or toggle already in flight")
	ErrNotLoaded = errs.New("bookmark status not loaded")
)

type State int

const (
	StateUnknown State = iota
	StateChecking
	StateSaved
	StateUnsaved
	StateMutating
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "CHECKING"
	case StateSaved:
		return "SAVED"
	case StateUnsaved:
		return "UNSAVED"
	case StateMutating:
		return "MUTATING"
	default:
		return "UNKNOWN"
	}
}

func (s State) Steady() bool {
	return s == StateSaved || s == StateUnsaved
}

type IntentKind int

const (
	IntentAdd IntentKind = iota + 1
	IntentRemove
)

func (k IntentKind) String() string {
	if k == IntentRemove {
		return "remove"
	}
	return "add"
}

// Intent is the store mutation a toggle resolved to. Remove always carries the
// identifier obtained from a check or a previous add.
type Intent struct {
	Kind       IntentKind
	BookmarkID int64
}

// Machine tracks one promotion card. It is not safe for concurrent use; the
// owner serializes calls.
type Machine struct {
	state      State
	settled    State
	bookmarkID int64
	pending    IntentKind
}

func NewMachine() *Machine {
	return &Machine{state: StateUnknown, settled: StateUnknown}
}

// Restore seeds a machine from a status the client already confirmed.
func Restore(bookmarkID *int64) *Machine {
	m := NewMachine()
	if bookmarkID != nil {
		m.state, m.bookmarkID = StateSaved, *bookmarkID
	} else {
		m.state = StateUnsaved
	}
	m.settled = m.state
	return m
}

func (m *Machine) State() State { return m.state }

// BookmarkID is only meaningful in StateSaved.
func (m *Machine) BookmarkID() (int64, bool) {
	if m.state != StateSaved {
		return 0, false
	}
	return m.bookmarkID, true
}

func (m *Machine) BeginCheck() error {
	if m.busy() {
		return ErrBusy
	}
	m.settled = m.state
	m.state = StateChecking
	return nil
}

func (m *Machine) CompleteCheck(bookmarkID *int64) {
	if m.state != StateChecking {
		return
	}
	if bookmarkID != nil {
		m.state, m.bookmarkID = StateSaved, *bookmarkID
	} else {
		m.state, m.bookmarkID = StateUnsaved, 0
	}
	m.settled = m.state
}

func (m *Machine) FailCheck() {
	if m.state == StateChecking {
		m.state = m.settled
	}
}

// BeginToggle moves a steady card to MUTATING and returns the mutation to run.
// Requests while CHECKING or MUTATING are rejected, never queued.
func (m *Machine) BeginToggle() (Intent, error) {
	switch m.state {
	case StateChecking, StateMutating:
		return Intent{}, ErrBusy
	case StateUnknown:
		return Intent{}, ErrNotLoaded
	}

	m.settled = m.state
	m.state = StateMutating
	if m.settled == StateSaved {
		m.pending = IntentRemove
		return Intent{Kind: IntentRemove, BookmarkID: m.bookmarkID}, nil
	}
	m.pending = IntentAdd
	return Intent{Kind: IntentAdd}, nil
}

// CompleteToggle lands on the opposite steady state. bookmarkID is the saved
// row for an add and ignored for a remove.
func (m *Machine) CompleteToggle(bookmarkID int64) {
	if m.state != StateMutating {
		return
	}
	if m.pending == IntentAdd {
		m.state, m.bookmarkID = StateSaved, bookmarkID
	} else {
		m.state, m.bookmarkID = StateUnsaved, 0
	}
	m.settled = m.state
	m.pending = 0
}

// FailToggle reverts to the last confirmed steady state.
func (m *Machine) FailToggle() {
	if m.state != StateMutating {
		return
	}
	m.state = m.settled
	m.pending = 0
}

func (m *Machine) busy() bool {
	return m.state == StateChecking || m.state == StateMutating
}
