package response

// Notice is a toast-style message riding alongside otherwise successful
// payloads, e.g. the catalog degrading to an empty list.
type Notice struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

func ErrorNotice(message string) *Notice {
	return &Notice{Severity: SeverityError, Message: message}
}
