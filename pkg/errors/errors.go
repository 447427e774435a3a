package errors

const (
	CodeConfigNotFound      = "CONFIG_NOT_FOUND"
	CodeGhostscriptNotFound = "GHOSTSCRIPT_NOT_FOUND"
)

// Types ////////////////////////////////////////

type CodedError interface {
	Code() string
}

type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

func (e *codedError) Code() string {
	return e.code
}

// Error Creators ///////////////////////////////

// The pdfpress config was not found
func ConfigNotFound(msg string) error {
	return &codedError{
		code: CodeConfigNotFound,
		msg:  msg,
	}
}

// Ghostscript is not installed or not on PATH
func GhostscriptNotFound(msg string) error {
	return &codedError{
		code: CodeGhostscriptNotFound,
		msg:  msg,
	}
}

// Helpers //////////////////////////////////////

func IsConfigNotFound(err error) bool {
	return Code(err) == CodeConfigNotFound
}

func IsGhostscriptNotFound(err error) bool {
	return Code(err) == CodeGhostscriptNotFound
}

// Return the error code, or the empty string
func Code(err error) string {
	if cerr, ok := err.(CodedError); ok {
		return cerr.Code()
	}

	return ""
}
