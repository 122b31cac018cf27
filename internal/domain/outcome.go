package domain

// OutcomeKind classifies how a session attempt ended.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota + 1
	OutcomeRecoverable
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRecoverable:
		return "recoverable"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// FailureReason distinguishes recoverable failures for operator triage only;
// rotation treats every reason the same way.
type FailureReason string

const (
	ReasonQuota   FailureReason = "quota"
	ReasonTimeout FailureReason = "timeout"
	ReasonError   FailureReason = "error"
)

// Outcome is produced exactly once per session attempt.
type Outcome struct {
	Kind   OutcomeKind
	Reason FailureReason
	Detail string
	// Artifact is the intended destination of the generated video, when known.
	Artifact string
}

func Succeeded(artifact string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Artifact: artifact}
}

func Recoverable(reason FailureReason, detail string) Outcome {
	return Outcome{Kind: OutcomeRecoverable, Reason: reason, Detail: detail}
}

func Fatal(detail string) Outcome {
	return Outcome{Kind: OutcomeFatal, Detail: detail}
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// Label is the short form used in log lines: "success", "quota", "timeout",
// "error" or "fatal".
func (o Outcome) Label() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "success"
	case OutcomeRecoverable:
		return string(o.Reason)
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}
