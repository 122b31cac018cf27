package domain

type SessionState int

const (
	StateLaunching SessionState = iota
	StateNavigating
	StateAwaitingAuthentication
	StateSubmittingJob
	StatePolling
	StateSucceeded
	StateQuotaExceeded
	StateTimedOut
	StateErrored
)

var sessionStateNames = map[SessionState]string{
	StateLaunching:              "launching",
	StateNavigating:             "navigating",
	StateAwaitingAuthentication: "awaiting_authentication",
	StateSubmittingJob:          "submitting_job",
	StatePolling:                "polling",
	StateSucceeded:              "succeeded",
	StateQuotaExceeded:          "quota_exceeded",
	StateTimedOut:               "timed_out",
	StateErrored:                "errored",
}

func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s SessionState) Terminal() bool {
	switch s {
	case StateSucceeded, StateQuotaExceeded, StateTimedOut, StateErrored:
		return true
	default:
		return false
	}
}

// TerminalState maps an outcome onto the state the machine stopped in.
func TerminalState(o Outcome) SessionState {
	switch {
	case o.Kind == OutcomeSuccess:
		return StateSucceeded
	case o.Kind == OutcomeRecoverable && o.Reason == ReasonQuota:
		return StateQuotaExceeded
	case o.Kind == OutcomeRecoverable && o.Reason == ReasonTimeout:
		return StateTimedOut
	default:
		return StateErrored
	}
}
