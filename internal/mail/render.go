package mail

import (
	"bytes"
	"html/template"
	"strings"
)

var htmlTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 12px 24px; background-color: #2D3748; color: white; text-decoration: none; border-radius: 6px; }
        .footer { margin-top: 30px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Hello!</h1>
        {{range .Intro}}<p>{{.}}</p>
        {{end}}{{if .ActionURL}}<p><a href="{{.ActionURL}}" class="button">{{.ActionText}}</a></p>
        {{end}}{{range .Outro}}<p>{{.}}</p>
        {{end}}{{if .ActionURL}}<div class="footer">
            <p>If you're having trouble clicking the "{{.ActionText}}" button, copy and paste this URL into your web browser: {{.ActionURL}}</p>
        </div>
        {{end}}
    </div>
</body>
</html>
`))

// RenderHTML renders the HTML body of msg.
func RenderHTML(msg Message) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderText renders a plain-text body of msg.
func RenderText(msg Message) string {
	var b strings.Builder
	b.WriteString("Hello!\n\n")
	for _, line := range msg.Intro {
		b.WriteString(line)
		b.WriteString("\n\n")
	}
	if msg.ActionURL != "" {
		b.WriteString(msg.ActionText)
		b.WriteString(": ")
		b.WriteString(msg.ActionURL)
		b.WriteString("\n\n")
	}
	for _, line := range msg.Outro {
		b.WriteString(line)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
