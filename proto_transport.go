package macverify

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	pb "github.com/karasz/macverify/proto"
	"google.golang.org/protobuf/proto"
)

// ProtoHTTPTransport implements Transport using Protocol Buffers over
// HTTP/HTTPS. This is more efficient than Gob and language-agnostic.
type ProtoHTTPTransport struct {
	BaseURL string       // Base URL of the verification server
	Client  *http.Client // HTTP client (can customize timeouts, TLS, etc.)
}

// NewProtoHTTPTransport creates a new Protocol Buffer HTTP transport.
func NewProtoHTTPTransport(baseURL string) *ProtoHTTPTransport {
	return &ProtoHTTPTransport{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// RegisterKey sends the key record via HTTP POST using protobuf.
func (t *ProtoHTTPTransport) RegisterKey(rec KeyRecord) error {
	data, err := proto.Marshal(ToProtoKeyRecord(rec))
	if err != nil {
		return fmt.Errorf("marshal key record: %w", err)
	}

	url := t.BaseURL + "/api/v1/keys/register"
	resp, err := t.Client.Post(url, "application/x-protobuf", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post key record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}

	return nil
}

// Sign requests a tag via HTTP POST using protobuf.
func (t *ProtoHTTPTransport) Sign(keyName string, message []byte) ([]byte, error) {
	data, err := proto.Marshal(ToProtoSignRequest(keyName, message))
	if err != nil {
		return nil, fmt.Errorf("marshal sign request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/mac/%s/sign", t.BaseURL, keyName)
	resp, err := t.Client.Post(url, "application/x-protobuf", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("post sign request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var signResp pb.SignResponse
	if err := proto.Unmarshal(body, &signResp); err != nil {
		return nil, fmt.Errorf("unmarshal sign response: %w", err)
	}
	return signResp.Tag, nil
}

// Verify submits a candidate tag via HTTP POST using protobuf.
func (t *ProtoHTTPTransport) Verify(keyName string, message, tag []byte, mode string) (bool, error) {
	data, err := proto.Marshal(ToProtoVerifyRequest(keyName, message, tag, mode))
	if err != nil {
		return false, fmt.Errorf("marshal verify request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/mac/%s/verify", t.BaseURL, keyName)
	resp, err := t.Client.Post(url, "application/x-protobuf", bytes.NewReader(data))
	if err != nil {
		return false, fmt.Errorf("post verify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read response: %w", err)
	}

	var verifyResp pb.VerifyResponse
	if err := proto.Unmarshal(body, &verifyResp); err != nil {
		return false, fmt.Errorf("unmarshal verify response: %w", err)
	}

	if !verifyResp.Verified {
		return false, fmt.Errorf("verification failed: %s", verifyResp.ErrorMessage)
	}

	return true, nil
}
