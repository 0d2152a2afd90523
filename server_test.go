package macverify

//revive:disable:cyclomatic High complexity acceptable in tests
//revive:disable:cognitive-complexity High complexity acceptable in tests
//revive:disable:function-length Long test functions are acceptable

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pb "github.com/karasz/macverify/proto"
	"google.golang.org/protobuf/proto"
)

func newTestServer(t *testing.T, keyName, algorithm string) (*Server, KeyRecord) {
	t.Helper()
	srv := NewServer(NewMemoryKeystore())
	rec, err := GenerateKey(keyName, algorithm)
	if err != nil {
		t.Fatal(err)
	}
	if err := srv.Service.RegisterKey(rec); err != nil {
		t.Fatalf("RegisterKey failed: %v", err)
	}
	return srv, rec
}

func gobBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("gob encode failed: %v", err)
	}
	return &buf
}

func TestHandleRegisterKey(t *testing.T) {
	srv := NewServer(NewMemoryKeystore())

	rec, err := GenerateKey("incoming", "HMAC-SHA256")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/keys/register", gobBody(t, rec))
	w := httptest.NewRecorder()
	srv.HandleRegisterKey(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var out map[string]string
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if out["status"] != "registered" || out["name"] != "incoming" {
		t.Errorf("Unexpected response body: %v", out)
	}

	if _, ok, _ := srv.Service.store.Get("incoming"); !ok {
		t.Error("Registered key not present in the store")
	}
}

func TestHandleRegisterKey_Errors(t *testing.T) {
	srv := NewServer(NewMemoryKeystore())

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/keys/register", nil)
		w := httptest.NewRecorder()
		srv.HandleRegisterKey(w, req)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("Expected status 405, got %d", w.Code)
		}
	})

	t.Run("garbage body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/keys/register", bytes.NewBufferString("not gob"))
		w := httptest.NewRecorder()
		srv.HandleRegisterKey(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		rec := KeyRecord{Name: "bad", Algorithm: "no-such", Key: []byte{1, 2}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/keys/register", gobBody(t, rec))
		w := httptest.NewRecorder()
		srv.HandleRegisterKey(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestHandleMac_Sign(t *testing.T) {
	srv, _ := newTestServer(t, "api", "HMAC-SHA256")
	message := []byte("sign me over http")

	body := gobBody(t, signRequest{KeyName: "api", Message: message})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mac/api/sign", body)
	w := httptest.NewRecorder()
	srv.HandleMac(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Tag []byte `json:"tag"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want, err := srv.Service.Sign("api", message)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Tag, want) {
		t.Errorf("Handler tag %x, service tag %x", out.Tag, want)
	}
}

func TestHandleMac_Verify(t *testing.T) {
	srv, _ := newTestServer(t, "api", "HMAC-SHA256")
	message := []byte("verify me over http")

	tag, err := srv.Service.Sign("api", message)
	if err != nil {
		t.Fatal(err)
	}

	post := func(t *testing.T, vreq verifyRequest) (bool, string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mac/"+vreq.KeyName+"/verify", gobBody(t, vreq))
		w := httptest.NewRecorder()
		srv.HandleMac(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var out struct {
			Verified bool   `json:"verified"`
			Error    string `json:"error"`
		}
		if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return out.Verified, out.Error
	}

	t.Run("genuine tag", func(t *testing.T) {
		ok, errMsg := post(t, verifyRequest{KeyName: "api", Message: message, Tag: tag})
		if !ok || errMsg != "" {
			t.Errorf("verified=%v error=%q, want verified with no error", ok, errMsg)
		}
	})

	t.Run("corrupted tag", func(t *testing.T) {
		bad := append([]byte(nil), tag...)
		bad[0] ^= 0x01
		ok, errMsg := post(t, verifyRequest{KeyName: "api", Message: message, Tag: bad})
		if ok {
			t.Error("Corrupted tag verified")
		}
		if errMsg != "MAC tag mismatch" {
			t.Errorf("error = %q, want the uniform mismatch message", errMsg)
		}
	})

	t.Run("truncated left", func(t *testing.T) {
		ok, errMsg := post(t, verifyRequest{KeyName: "api", Message: message, Tag: tag[:8], Mode: ModeLeft})
		if !ok || errMsg != "" {
			t.Errorf("verified=%v error=%q, want verified prefix", ok, errMsg)
		}
	})

	t.Run("truncated right", func(t *testing.T) {
		ok, errMsg := post(t, verifyRequest{KeyName: "api", Message: message, Tag: tag[len(tag)-8:], Mode: ModeRight})
		if !ok || errMsg != "" {
			t.Errorf("verified=%v error=%q, want verified suffix", ok, errMsg)
		}
	})

	t.Run("unknown key named in error", func(t *testing.T) {
		ok, errMsg := post(t, verifyRequest{KeyName: "ghost", Message: message, Tag: tag})
		if ok {
			t.Error("Unknown key verified")
		}
		if errMsg == "" || errMsg == "MAC tag mismatch" {
			t.Errorf("error = %q, want a named non-cryptographic failure", errMsg)
		}
	})
}

func TestHandleMac_Routing(t *testing.T) {
	srv, _ := newTestServer(t, "api", "HMAC-SHA256")

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"wrong method", http.MethodGet, "/api/v1/mac/api/sign", http.StatusMethodNotAllowed},
		{"missing op", http.MethodPost, "/api/v1/mac/api", http.StatusNotFound},
		{"unknown op", http.MethodPost, "/api/v1/mac/api/rotate", http.StatusNotFound},
		{"empty key name", http.MethodPost, "/api/v1/mac//sign", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := gobBody(t, signRequest{KeyName: "api", Message: []byte("m")})
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()
			srv.HandleMac(w, req)
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
		})
	}

	t.Run("sign with unknown key", func(t *testing.T) {
		body := gobBody(t, signRequest{KeyName: "ghost", Message: []byte("m")})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mac/ghost/sign", body)
		w := httptest.NewRecorder()
		srv.HandleMac(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestHandleMac_Protobuf(t *testing.T) {
	srv, _ := newTestServer(t, "api", "BLAKE2b-256")
	message := []byte("protobuf roundtrip")

	signReq, err := proto.Marshal(&pb.SignRequest{KeyName: "api", Message: message})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mac/api/sign", bytes.NewReader(signReq))
	req.Header.Set("Content-Type", "application/x-protobuf")
	w := httptest.NewRecorder()
	srv.HandleMac(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/x-protobuf" {
		t.Errorf("Content-Type = %q, want application/x-protobuf", ct)
	}

	var signResp pb.SignResponse
	if err := proto.Unmarshal(w.Body.Bytes(), &signResp); err != nil {
		t.Fatalf("Failed to unmarshal sign response: %v", err)
	}

	verifyReq, err := proto.Marshal(&pb.VerifyRequest{
		KeyName: "api",
		Message: message,
		Tag:     signResp.Tag,
		Mode:    ModeFull,
	})
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest(http.MethodPost, "/api/v1/mac/api/verify", bytes.NewReader(verifyReq))
	req.Header.Set("Content-Type", "application/x-protobuf")
	w = httptest.NewRecorder()
	srv.HandleMac(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var verifyResp pb.VerifyResponse
	if err := proto.Unmarshal(w.Body.Bytes(), &verifyResp); err != nil {
		t.Fatalf("Failed to unmarshal verify response: %v", err)
	}
	if !verifyResp.Verified {
		t.Errorf("Genuine tag rejected: %s", verifyResp.ErrorMessage)
	}
}

func TestRegisterKey_Protobuf(t *testing.T) {
	srv := NewServer(NewMemoryKeystore())

	rec, err := GenerateKey("pb-key", "SipHash-128")
	if err != nil {
		t.Fatal(err)
	}
	data, err := proto.Marshal(ToProtoKeyRecord(rec))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/keys/register", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/x-protobuf")
	w := httptest.NewRecorder()
	srv.HandleRegisterKey(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	got, ok, err := srv.Service.store.Get("pb-key")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v, want found", ok, err)
	}
	if !bytes.Equal(got.Key, rec.Key) {
		t.Error("Stored key differs from the registered one")
	}
}
