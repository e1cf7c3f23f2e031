package mail

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/academiaskate/academia-api/internal/application/usecase"
	"github.com/academiaskate/academia-api/pkg/config"
)

var _ usecase.Mailer = (*Mailer)(nil)

// Mailer envía correo saliente por SMTP: activaciones de cuenta, recibos en
// PDF y campañas masivas.
type Mailer struct {
	host     string
	addr     string
	user     string
	password string
	from     string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		addr:     cfg.Addr(),
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Enviar envía un correo con cuerpo HTML.
func (m *Mailer) Enviar(to, asunto, cuerpoHTML string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = asunto
	e.HTML = []byte(cuerpoHTML)

	if err := e.Send(m.addr, m.auth()); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", to, err)
	}
	return nil
}

// EnviarConAdjunto envía un correo con un adjunto en memoria (recibos PDF).
func (m *Mailer) EnviarConAdjunto(to, asunto, cuerpo string, adjunto []byte, nombreArchivo string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = asunto
	e.Text = []byte(cuerpo)

	if len(adjunto) > 0 {
		if _, err := e.Attach(bytes.NewReader(adjunto), nombreArchivo, "application/pdf"); err != nil {
			return fmt.Errorf("mailer: adjuntar %s: %w", nombreArchivo, err)
		}
	}

	if err := e.Send(m.addr, m.auth()); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) auth() smtp.Auth {
	return smtp.PlainAuth("", m.user, m.password, m.host)
}
