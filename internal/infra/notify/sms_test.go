package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMMSClientSend(t *testing.T) {
	var gotSecret string
	var gotBody mmsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Secret-Key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		var resp mmsResponse
		resp.Header.IsSuccessful = true
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c := &MMSClient{AppKey: "app", SecretKey: "secret", SendNo: "0700000000", BaseURL: srv.URL}
	result, err := c.Send(context.Background(), "01012345678", "예약 안내", "본문")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !result.Success {
		t.Error("result should be successful")
	}
	if gotSecret != "secret" {
		t.Errorf("secret header = %q", gotSecret)
	}
	if gotBody.SendNo != "0700000000" || len(gotBody.RecipientList) != 1 ||
		gotBody.RecipientList[0].RecipientNo != "01012345678" {
		t.Errorf("request = %+v", gotBody)
	}
}

func TestMMSClientCarrierRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var resp mmsResponse
		resp.Header.IsSuccessful = false
		resp.Header.ResultCode = -1000
		resp.Header.ResultMessage = "invalid sendNo"
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c := &MMSClient{AppKey: "app", BaseURL: srv.URL}
	result, err := c.Send(context.Background(), "01012345678", "t", "b")
	if err == nil || !strings.Contains(err.Error(), "invalid sendNo") {
		t.Fatalf("err = %v, want carrier message", err)
	}
	// The carrier's code still comes back for the outcome report.
	if result.ResultCode != "-1000" {
		t.Errorf("result code = %q, want -1000", result.ResultCode)
	}
}
