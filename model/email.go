package model

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// Complete reports whether every field required to open an SMTP session is set.
func (c EmailConfig) Complete() bool {
	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != ""
}

type EmailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
	IsHTML  bool
}
