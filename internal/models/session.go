package models

// Session is a read-only snapshot of the query lifecycle pushed to the UI.
type Session struct {
	Query     Query
	Loading   bool
	LastError error
	Result    *Result
	Seq       uint64 // sequence number of the latest issued request
}

// Phase is the lifecycle phase of a session.
type Phase string

const (
	PhaseIdle    Phase = "Idle"
	PhaseLoading Phase = "Loading"
	PhaseError   Phase = "Error"
	PhaseSuccess Phase = "Success"
)

// Phase derives the lifecycle phase shown in the status bar.
func (s Session) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.LastError != nil:
		return PhaseError
	case s.Result != nil:
		return PhaseSuccess
	}
	return PhaseIdle
}

// NoticeType classifies a start-up notice line.
type NoticeType int

const (
	NoticeBanner NoticeType = iota
	NoticeInfo
	NoticeWarning
	NoticeHint
)

// Notice is a line of program text shown above the results panel.
type Notice struct {
	Content string
	Type    NoticeType
}
