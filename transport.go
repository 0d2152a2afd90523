package macverify

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
)

// Transport defines how clients reach a verification server.
// Different implementations can use HTTP, shared folders, or direct
// in-process calls.
type Transport interface {
	// RegisterKey provisions a key record on the server.
	RegisterKey(rec KeyRecord) error

	// Sign asks the server for the full tag over message under the
	// named key.
	Sign(keyName string, message []byte) ([]byte, error)

	// Verify asks the server to check tag against the MAC of message.
	// Returns true when the tag authenticates.
	Verify(keyName string, message, tag []byte, mode string) (bool, error)
}

// Gob wire types shared by HTTPTransport and Server.
type signRequest struct {
	KeyName string
	Message []byte
}

type verifyRequest struct {
	KeyName string
	Message []byte
	Tag     []byte
	Mode    string
}

// HTTPTransport implements Transport using Gob bodies over HTTP/HTTPS.
type HTTPTransport struct {
	BaseURL string       // Base URL of the verification server
	Client  *http.Client // HTTP client (can customize timeouts, TLS, etc.)
}

// NewHTTPTransport creates a new HTTP transport for communicating with
// a verification server.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// RegisterKey sends the key record via HTTP POST.
func (t *HTTPTransport) RegisterKey(rec KeyRecord) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rec); err != nil {
		return fmt.Errorf("encode key record: %w", err)
	}

	url := t.BaseURL + "/api/v1/keys/register"
	resp, err := t.Client.Post(url, "application/octet-stream", &buf)
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

// Sign requests a tag via HTTP POST.
func (t *HTTPTransport) Sign(keyName string, message []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(signRequest{KeyName: keyName, Message: message}); err != nil {
		return nil, fmt.Errorf("encode sign request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/mac/%s/sign", t.BaseURL, keyName)
	resp, err := t.Client.Post(url, "application/octet-stream", &buf)
	if err != nil {
		return nil, fmt.Errorf("post sign request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Tag []byte `json:"tag"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode sign response: %w", err)
	}
	return out.Tag, nil
}

// Verify submits a candidate tag via HTTP POST.
func (t *HTTPTransport) Verify(keyName string, message, tag []byte, mode string) (bool, error) {
	var buf bytes.Buffer
	req := verifyRequest{KeyName: keyName, Message: message, Tag: tag, Mode: mode}
	if err := gob.NewEncoder(&buf).Encode(req); err != nil {
		return false, fmt.Errorf("encode verify request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/mac/%s/verify", t.BaseURL, keyName)
	resp, err := t.Client.Post(url, "application/octet-stream", &buf)
	if err != nil {
		return false, fmt.Errorf("post verify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Verified bool   `json:"verified"`
		Error    string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode verify response: %w", err)
	}
	if !out.Verified {
		return false, fmt.Errorf("verification failed: %s", out.Error)
	}
	return true, nil
}

// LocalTransport is a Transport that calls an in-process
// VerifierService. Useful for testing or single-machine deployments.
type LocalTransport struct {
	Service *VerifierService
}

// NewLocalTransport creates a transport over a local VerifierService.
func NewLocalTransport(service *VerifierService) *LocalTransport {
	return &LocalTransport{Service: service}
}

// RegisterKey registers the key with the local service.
func (t *LocalTransport) RegisterKey(rec KeyRecord) error {
	return t.Service.RegisterKey(rec)
}

// Sign computes the tag with the local service.
func (t *LocalTransport) Sign(keyName string, message []byte) ([]byte, error) {
	return t.Service.Sign(keyName, message)
}

// Verify checks the tag with the local service.
func (t *LocalTransport) Verify(keyName string, message, tag []byte, mode string) (bool, error) {
	err := t.Service.Verify(keyName, message, tag, mode)
	return err == nil, err
}

// FolderTransport stores key records in a local folder structure and
// signs/verifies locally. This enables self-contained deployments where
// the "server" is a shared directory.
// Folder structure:
//
//	{dir}/keys/{name}.gob - KeyRecord
type FolderTransport struct {
	BaseDir string
	mu      sync.Mutex
}

// NewFolderTransport creates a new folder-based transport.
func NewFolderTransport(dir string) (*FolderTransport, error) {
	if err := os.MkdirAll(filepath.Join(dir, "keys"), 0700); err != nil {
		return nil, err
	}
	return &FolderTransport{BaseDir: dir}, nil
}

// RegisterKey writes the record to {BaseDir}/keys/{name}.gob.
func (ft *FolderTransport) RegisterKey(rec KeyRecord) error {
	if _, ok := Lookup(rec.Algorithm); !ok {
		return fmt.Errorf("register key %q: unknown algorithm %q", rec.Name, rec.Algorithm)
	}

	ft.mu.Lock()
	defer ft.mu.Unlock()

	path := filepath.Join(ft.BaseDir, "keys", rec.Name+".gob")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(rec)
}

// LoadKey reads a record from {BaseDir}/keys/{name}.gob.
func (ft *FolderTransport) LoadKey(name string) (KeyRecord, error) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	path := filepath.Join(ft.BaseDir, "keys", name+".gob")
	f, err := os.Open(path)
	if err != nil {
		return KeyRecord{}, err
	}
	defer f.Close()

	var rec KeyRecord
	if err := gob.NewDecoder(f).Decode(&rec); err != nil {
		return KeyRecord{}, err
	}
	return rec, nil
}

func (ft *FolderTransport) instance(keyName string) (Mac, error) {
	rec, err := ft.LoadKey(keyName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrUnknownKey
		}
		return nil, fmt.Errorf("load key %q: %w", keyName, err)
	}
	alg, ok := Lookup(rec.Algorithm)
	if !ok {
		return nil, fmt.Errorf("key %q: unknown algorithm %q", keyName, rec.Algorithm)
	}
	m, err := alg.NewFromSlice(rec.Key)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", keyName, err)
	}
	return m, nil
}

// Sign computes the tag using the folder-stored key.
func (ft *FolderTransport) Sign(keyName string, message []byte) ([]byte, error) {
	m, err := ft.instance(keyName)
	if err != nil {
		return nil, err
	}
	m.Update(message)
	return m.Finalize().Bytes(), nil
}

// Verify checks the tag using the folder-stored key.
func (ft *FolderTransport) Verify(keyName string, message, tag []byte, mode string) (bool, error) {
	m, err := ft.instance(keyName)
	if err != nil {
		return false, err
	}
	m.Update(message)

	switch mode {
	case "", ModeFull:
		err = VerifySlice(m, tag)
	case ModeLeft:
		err = VerifyTruncatedLeft(m, tag)
	case ModeRight:
		err = VerifyTruncatedRight(m, tag)
	default:
		return false, fmt.Errorf("unknown mode %q", mode)
	}
	return err == nil, err
}

// RemoteKeyring wraps a local Keystore and mirrors every Put to a
// remote verification server, so signer and verifier share keys.
type RemoteKeyring struct {
	Keystore
	Transport Transport
}

// NewRemoteKeyring creates a keyring bound to a transport.
func NewRemoteKeyring(store Keystore, transport Transport) *RemoteKeyring {
	return &RemoteKeyring{Keystore: store, Transport: transport}
}

// Put stores the record locally and registers it remotely. The local
// write happens first; a remote failure leaves the local copy in place
// so the caller can retry registration.
func (rk *RemoteKeyring) Put(rec KeyRecord) error {
	if err := rk.Keystore.Put(rec); err != nil {
		return err
	}
	if err := rk.Transport.RegisterKey(rec); err != nil {
		return fmt.Errorf("register remote key %q: %w", rec.Name, err)
	}
	return nil
}
