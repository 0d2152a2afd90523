package macverify

import (
	"crypto/tls"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	pb "github.com/karasz/macverify/proto"
	"google.golang.org/protobuf/proto"
)

// Server exposes a VerifierService over HTTP(S): key registration,
// tag production and tag verification by key name. Key material flows
// in only through registration; responses never contain it.
type Server struct {
	Service   *VerifierService
	tlsConfig *tls.Config
}

// NewServer creates a server over the given keystore.
func NewServer(store Keystore) *Server {
	return &Server{Service: NewVerifierService(store)}
}

// SetTLSConfig clones cfg and stores it for use when serving HTTPS
// requests. If cfg is nil a default configuration will be used.
func (s *Server) SetTLSConfig(cfg *tls.Config) {
	if cfg == nil {
		s.tlsConfig = nil
		return
	}
	s.tlsConfig = cfg.Clone()
}

// isProtobuf checks if the request content type is protobuf.
func isProtobuf(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "application/x-protobuf") ||
		strings.HasPrefix(contentType, "application/protobuf")
}

// decodeKeyRecord decodes a KeyRecord from either Gob or Protobuf.
func decodeKeyRecord(r *http.Request) (KeyRecord, error) {
	if isProtobuf(r) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return KeyRecord{}, fmt.Errorf("read body: %w", err)
		}
		var pbRec pb.KeyRecord
		if err := proto.Unmarshal(body, &pbRec); err != nil {
			return KeyRecord{}, fmt.Errorf("unmarshal protobuf: %w", err)
		}
		return FromProtoKeyRecord(&pbRec)
	}

	var rec KeyRecord
	if err := gob.NewDecoder(r.Body).Decode(&rec); err != nil {
		return KeyRecord{}, fmt.Errorf("decode gob: %w", err)
	}
	return rec, nil
}

// decodeSignRequest decodes a sign request from either Gob or Protobuf.
func decodeSignRequest(r *http.Request) (message []byte, err error) {
	if isProtobuf(r) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		var pbReq pb.SignRequest
		if err := proto.Unmarshal(body, &pbReq); err != nil {
			return nil, fmt.Errorf("unmarshal protobuf: %w", err)
		}
		return pbReq.Message, nil
	}

	var req signRequest
	if err := gob.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return req.Message, nil
}

// decodeVerifyRequest decodes a verify request from either Gob or Protobuf.
func decodeVerifyRequest(r *http.Request) (message, tag []byte, mode string, err error) {
	if isProtobuf(r) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, nil, "", fmt.Errorf("read body: %w", err)
		}
		var pbReq pb.VerifyRequest
		if err := proto.Unmarshal(body, &pbReq); err != nil {
			return nil, nil, "", fmt.Errorf("unmarshal protobuf: %w", err)
		}
		_, message, tag, mode, err = FromProtoVerifyRequest(&pbReq)
		return message, tag, mode, err
	}

	var req verifyRequest
	if err := gob.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, nil, "", fmt.Errorf("decode gob: %w", err)
	}
	return req.Message, req.Tag, req.Mode, nil
}

// encodeSignResponse encodes the tag in the appropriate format.
func encodeSignResponse(w http.ResponseWriter, r *http.Request, tag []byte) error {
	if isProtobuf(r) {
		data, err := proto.Marshal(&pb.SignResponse{Tag: tag})
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
		_, err = w.Write(data)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]any{"tag": tag})
}

// encodeVerifyResponse encodes the verdict in the appropriate format.
// The verdict is always a 200 response; failure detail beyond the
// verified flag is limited to non-cryptographic errors.
func encodeVerifyResponse(w http.ResponseWriter, r *http.Request, verified bool, errMsg string) error {
	if isProtobuf(r) {
		data, err := proto.Marshal(&pb.VerifyResponse{
			Verified:     verified,
			ErrorMessage: errMsg,
		})
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
		_, err = w.Write(data)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(map[string]any{
		"verified": verified,
		"error":    errMsg,
	})
}

// HandleRegisterKey handles POST /api/v1/keys/register.
// Supports both Gob and Protocol Buffer encoding.
func (s *Server) HandleRegisterKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rec, err := decodeKeyRecord(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid key record: %v", err), http.StatusBadRequest)
		return
	}

	if err := s.Service.RegisterKey(rec); err != nil {
		http.Error(w, fmt.Sprintf("Register key failed: %v", err), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "registered",
		"name":   rec.Name,
	})
}

// HandleMac handles POST /api/v1/mac/{name}/sign and
// POST /api/v1/mac/{name}/verify.
func (s *Server) HandleMac(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/mac/")
	keyName, op, ok := strings.Cut(rest, "/")
	if !ok || keyName == "" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch op {
	case "sign":
		s.handleSign(w, r, keyName)
	case "verify":
		s.handleVerify(w, r, keyName)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request, keyName string) {
	message, err := decodeSignRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	tag, err := s.Service.Sign(keyName, message)
	if err != nil {
		if errors.Is(err, ErrUnknownKey) {
			http.Error(w, "Unknown key", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Sign failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := encodeSignResponse(w, r, tag); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request, keyName string) {
	message, tag, mode, err := decodeVerifyRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	if err := s.Service.Verify(keyName, message, tag, mode); err != nil {
		msg := ""
		if !errors.Is(err, ErrTagMismatch) {
			// Non-cryptographic failures (unknown key, bad mode) may be
			// named; tag failures stay uniform.
			msg = err.Error()
		} else {
			msg = ErrTagMismatch.Error()
		}
		if encErr := encodeVerifyResponse(w, r, false, msg); encErr != nil {
			http.Error(w, fmt.Sprintf("Verification failed: %v", err), http.StatusUnauthorized)
		}
		return
	}

	if err := encodeVerifyResponse(w, r, true, ""); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// SetupRoutes configures HTTP routes for the verification server.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/keys/register", s.HandleRegisterKey)
	mux.HandleFunc("/api/v1/mac/", s.HandleMac)
}

func (s *Server) tlsConfigWithDefaults() *tls.Config {
	if s.tlsConfig == nil {
		return &tls.Config{MinVersion: tls.VersionTLS12}
	}
	cfg := s.tlsConfig.Clone()
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS12
	}
	return cfg
}

// ListenAndServeTLS starts the HTTPS verification server.
func (s *Server) ListenAndServeTLS(addr, certFile, keyFile string) error {
	mux := http.NewServeMux()
	s.SetupRoutes(mux)
	server := &http.Server{
		Addr:      addr,
		Handler:   mux,
		TLSConfig: s.tlsConfigWithDefaults(),
	}
	return server.ListenAndServeTLS(certFile, keyFile)
}
