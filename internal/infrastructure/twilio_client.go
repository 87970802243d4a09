package infrastructure

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"project_cloudi/internal/config"
)

const twilioBaseURL = "https://api.twilio.com"

// TwilioClient sends outbound SMS and WhatsApp messages through the Twilio
// REST API.
type TwilioClient struct {
	sid     string
	token   string
	phone   string
	baseURL string
	http    *http.Client
}

func NewTwilioClient(cfg config.TwilioConfig) *TwilioClient {
	return &TwilioClient{
		sid:     cfg.SID,
		token:   cfg.Token,
		phone:   cfg.Phone,
		baseURL: twilioBaseURL,
		http:    http.DefaultClient,
	}
}

// SendMessage sends a plain SMS.
func (t *TwilioClient) SendMessage(to, content string) error {
	return t.post(to, content)
}

// SendWhatsApp sends a WhatsApp message. phone is the bare number; Twilio's
// channel prefix is added here.
func (t *TwilioClient) SendWhatsApp(phone, content string) error {
	return t.post("whatsapp:"+phone, content)
}

func (t *TwilioClient) post(to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.sid)
	form := url.Values{
		"From": {t.phone},
		"To":   {to},
		"Body": {body},
	}
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(t.sid, t.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio send failed: %s", resp.Status)
	}
	return nil
}
