package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("⚠️ MailService disabled: Missing SMTP environment variables.")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: StudyVibe 通讯员 <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		err := smtp.SendMail(addr, auth, s.From, to, msg)
		if err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		}
	}()
}

// SendReplyNotification 评论被回复时给原作者发邮件提醒
func (s *MailService) SendReplyNotification(to, actorName, homeworkTitle, replyContent, originalContent string) {
	subject := fmt.Sprintf("%s 回复了您在《%s》下的评论", actorName, homeworkTitle)
	body := fmt.Sprintf(`
		<p>%s 回复了您的评论：</p>
		<blockquote style="color:#555;border-left:3px solid #ccc;padding-left:8px;">%s</blockquote>
		<p>您的原评论：</p>
		<blockquote style="color:#999;border-left:3px solid #eee;padding-left:8px;">%s</blockquote>
		<p>登录 StudyVibe 查看完整讨论。</p>`,
		html.EscapeString(actorName),
		html.EscapeString(replyContent),
		html.EscapeString(originalContent))

	s.sendAsync([]string{to}, subject, body)
}
