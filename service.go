package macverify

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when a sign or verify call names a key the
// service has no record of.
var ErrUnknownKey = errors.New("unknown key")

// Verification modes accepted by VerifierService.Verify and the
// network surface built on it.
const (
	ModeFull  = "full"  // whole tag, length must match the output size
	ModeLeft  = "left"  // prefix of the tag
	ModeRight = "right" // suffix of the tag
)

// VerifierService is the in-process core of a MAC verification server:
// it owns a keystore and answers sign and verify requests by key name.
// Clients never see key material, only tags and verdicts.
type VerifierService struct {
	store Keystore
}

// NewVerifierService creates a service over the given keystore.
func NewVerifierService(store Keystore) *VerifierService {
	return &VerifierService{store: store}
}

// RegisterKey validates the record against the registry and stores it.
// The key length is checked through the algorithm's variable-length
// constructor so a bad record is refused before it can serve requests.
func (s *VerifierService) RegisterKey(rec KeyRecord) error {
	alg, ok := Lookup(rec.Algorithm)
	if !ok {
		return fmt.Errorf("register key %q: unknown algorithm %q", rec.Name, rec.Algorithm)
	}
	if _, err := alg.NewFromSlice(rec.Key); err != nil {
		return fmt.Errorf("register key %q: %w", rec.Name, err)
	}
	return s.store.Put(rec)
}

// Sign computes the full tag over message under the named key.
func (s *VerifierService) Sign(keyName string, message []byte) ([]byte, error) {
	m, err := s.instance(keyName)
	if err != nil {
		return nil, err
	}
	m.Update(message)
	return m.Finalize().Bytes(), nil
}

// Verify checks tag against the MAC of message under the named key.
// Mode selects full, truncated-left or truncated-right comparison; an
// empty mode means full. Authentication failure is always the uniform
// ErrTagMismatch regardless of cause.
func (s *VerifierService) Verify(keyName string, message, tag []byte, mode string) error {
	m, err := s.instance(keyName)
	if err != nil {
		return err
	}
	m.Update(message)
	switch mode {
	case "", ModeFull:
		return VerifySlice(m, tag)
	case ModeLeft:
		return VerifyTruncatedLeft(m, tag)
	case ModeRight:
		return VerifyTruncatedRight(m, tag)
	default:
		return fmt.Errorf("verify with key %q: unknown mode %q", keyName, mode)
	}
}

func (s *VerifierService) instance(keyName string) (Mac, error) {
	rec, ok, err := s.store.Get(keyName)
	if err != nil {
		return nil, fmt.Errorf("load key %q: %w", keyName, err)
	}
	if !ok {
		return nil, ErrUnknownKey
	}
	alg, algOK := Lookup(rec.Algorithm)
	if !algOK {
		return nil, fmt.Errorf("key %q: unknown algorithm %q", keyName, rec.Algorithm)
	}
	m, err := alg.NewFromSlice(rec.Key)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", keyName, err)
	}
	return m, nil
}
