package errors

import "fmt"

var (
	ErrConfiguration       = fmt.Errorf("invalid bootstrap configuration")
	ErrWriteThrough        = fmt.Errorf("write-through persistence failed")
	ErrPhaseOrdering       = fmt.Errorf("generation phase ran before its prerequisites")
	ErrNameTaken           = fmt.Errorf("display name already taken")
	ErrUnknownUser         = fmt.Errorf("unknown user")
	ErrUnknownConversation = fmt.Errorf("unknown conversation")
	ErrEmptyContent        = fmt.Errorf("message content is empty")
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials")
	ErrInvalidPassword     = fmt.Errorf("password does not meet complexity rules")
)
