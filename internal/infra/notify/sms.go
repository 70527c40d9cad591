package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"namunjari/internal/app/policies"
)

const mmsAPIBase = "https://api-sms.cloud.toast.com"

// MMSClient sends guest texts through the NHN Cloud MMS API.
type MMSClient struct {
	AppKey    string
	SecretKey string
	SendNo    string // registered sender number
	HTTP      *http.Client
	BaseURL   string // overridden in tests
}

type mmsRequest struct {
	Title         string         `json:"title"`
	Body          string         `json:"body"`
	SendNo        string         `json:"sendNo"`
	RecipientList []mmsRecipient `json:"recipientList"`
}

type mmsRecipient struct {
	RecipientNo string `json:"recipientNo"`
}

type mmsResponse struct {
	Header struct {
		IsSuccessful  bool   `json:"isSuccessful"`
		ResultCode    int    `json:"resultCode"`
		ResultMessage string `json:"resultMessage"`
	} `json:"header"`
}

// Send delivers one message. The carrier's result code comes back even on
// logical failure so the caller can report it.
func (c *MMSClient) Send(ctx context.Context, phone, title, body string) (policies.SMSResult, error) {
	payload, err := json.Marshal(mmsRequest{
		Title:         title,
		Body:          body,
		SendNo:        c.SendNo,
		RecipientList: []mmsRecipient{{RecipientNo: phone}},
	})
	if err != nil {
		return policies.SMSResult{}, err
	}

	base := c.BaseURL
	if base == "" {
		base = mmsAPIBase
	}
	url := fmt.Sprintf("%s/sms/v3.0/appKeys/%s/sender/mms", base, c.AppKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return policies.SMSResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Secret-Key", c.SecretKey)

	resp, err := c.client().Do(req)
	if err != nil {
		return policies.SMSResult{}, err
	}
	defer resp.Body.Close()

	var out mmsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return policies.SMSResult{}, fmt.Errorf("mms: decode response: %w", err)
	}

	result := policies.SMSResult{
		Success:    out.Header.IsSuccessful,
		ResultCode: fmt.Sprintf("%d", out.Header.ResultCode),
	}
	if !result.Success {
		return result, fmt.Errorf("mms: send failed: %s (%s)", out.Header.ResultMessage, result.ResultCode)
	}
	return result, nil
}

func (c *MMSClient) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
