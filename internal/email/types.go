package email

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

type Email struct {
	To      []string
	Subject string
	Body    string // text/html
}
