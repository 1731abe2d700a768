package core

import "errors"

// User-facing failure messages. They are fixed and mode independent within a
// family.
const (
	MsgNASAQueryFailed  = "Failed to fetch data from NASA API"
	MsgNASARandomFailed = "Failed to fetch random space facts"
	MsgAIQueryFailed    = "Failed to get a response. Please check your API key or try again later."
	MsgAIRandomFailed   = "Failed to get a random fact. Please try again later."
)

// FetchFailure is the single failure kind surfaced to the session. It covers
// transport errors, HTTP status errors and malformed payloads alike.
type FetchFailure struct {
	Message string
	Err     error
}

func (f *FetchFailure) Error() string {
	return f.Message
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// IsFetchFailure reports whether err is (or wraps) a FetchFailure.
func IsFetchFailure(err error) bool {
	var f *FetchFailure
	return errors.As(err, &f)
}

func failure(ai, random bool, err error) *FetchFailure {
	msg := MsgNASAQueryFailed
	switch {
	case ai && random:
		msg = MsgAIRandomFailed
	case ai:
		msg = MsgAIQueryFailed
	case random:
		msg = MsgNASARandomFailed
	}
	return &FetchFailure{Message: msg, Err: err}
}
