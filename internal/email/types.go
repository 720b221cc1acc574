package email

// Email represents an outgoing message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider abstracts the delivery mechanism so the rest of the app never
// talks SMTP directly (and tests can swap in a mock).
type Provider interface {
	Send(email *Email) error
	Validate() error
}
