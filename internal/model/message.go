package model

import "time"

// Message is the plain message record handed to the core by the surrounding
// application (mail retrieval, auth and rendering live outside this service).
type Message struct {
	ID         string    // Provider-assigned message id
	Sender     string    // Sender address or display handle
	Subject    string    // Subject line
	Body       string    // Plain-text body
	ReceivedAt time.Time // When the message arrived; anchor for deadline resolution
}

// Text returns the subject and body joined the way the extraction
// patterns expect to scan them.
func (m Message) Text() string {
	return m.Subject + "\n" + m.Body
}
