package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const graphBaseURL = "https://graph.facebook.com/v18.0"

// GraphClient sends replies through the Facebook graph API. Messenger and
// Instagram use the same endpoint with different page tokens.
type GraphClient struct {
	accessToken string
	baseURL     string
	http        *http.Client
}

func NewGraphClient(accessToken string) *GraphClient {
	return &GraphClient{
		accessToken: accessToken,
		baseURL:     graphBaseURL,
		http:        http.DefaultClient,
	}
}

func (g *GraphClient) SendMessage(recipientID, content string) error {
	payload := map[string]any{
		"recipient": map[string]string{"id": recipientID},
		"message":   map[string]string{"text": content},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/me/messages?access_token=%s", g.baseURL, g.accessToken)
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("graph send failed: %s", resp.Status)
	}
	return nil
}
