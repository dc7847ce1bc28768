package email

// Provider sends transactional mail. It is constructed once at process start
// and injected into its consumers; delivery failures stay with the caller as
// ordinary errors and are never retried here.
type Provider interface {
	Send(email *Email) error
	Close() error
}

// NoopProvider is used when email is disabled in config and in tests.
type NoopProvider struct{}

func (NoopProvider) Send(*Email) error { return nil }
func (NoopProvider) Close() error      { return nil }
