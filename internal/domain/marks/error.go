package marks

import "errors"

const MsgStudentNameRequired = "Student name is required."

var (
	ErrUnknownSubject = errors.New("unknown subject")
)
