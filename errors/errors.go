package errors

import "fmt"

var (
	ErrInvalidMessage        = fmt.Errorf("invalid message")
	ErrUnorderedMessages     = fmt.Errorf("messages are not ordered by timestamp")
	ErrUnsupportedTranscript = fmt.Errorf("transcript file is not a text format")
	ErrEmptyLexicon          = fmt.Errorf("lexicon has no entries")
)
