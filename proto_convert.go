package macverify

import (
	"fmt"
	"time"

	pb "github.com/karasz/macverify/proto"
)

// ToProtoKeyRecord converts a KeyRecord to its protobuf message.
func ToProtoKeyRecord(rec KeyRecord) *pb.KeyRecord {
	return &pb.KeyRecord{
		Id:              rec.ID,
		Name:            rec.Name,
		Algorithm:       rec.Algorithm,
		Key:             append([]byte(nil), rec.Key...),
		CreatedUnixNano: rec.Created.UnixNano(),
	}
}

// FromProtoKeyRecord converts a protobuf message to a KeyRecord. The
// key length itself is validated later against the algorithm, at
// registration.
func FromProtoKeyRecord(p *pb.KeyRecord) (KeyRecord, error) {
	if p.Name == "" {
		return KeyRecord{}, fmt.Errorf("key record has empty name")
	}
	if p.Algorithm == "" {
		return KeyRecord{}, fmt.Errorf("key record %q has empty algorithm", p.Name)
	}
	if len(p.Key) == 0 {
		return KeyRecord{}, fmt.Errorf("key record %q has empty key", p.Name)
	}
	return KeyRecord{
		ID:        p.Id,
		Name:      p.Name,
		Algorithm: p.Algorithm,
		Key:       append([]byte(nil), p.Key...),
		Created:   time.Unix(0, p.CreatedUnixNano),
	}, nil
}

// ToProtoVerifyRequest builds the wire form of a verification request.
func ToProtoVerifyRequest(keyName string, message, tag []byte, mode string) *pb.VerifyRequest {
	return &pb.VerifyRequest{
		KeyName: keyName,
		Message: append([]byte(nil), message...),
		Tag:     append([]byte(nil), tag...),
		Mode:    mode,
	}
}

// FromProtoVerifyRequest unpacks a verification request, rejecting
// structurally invalid ones before any key material is touched.
func FromProtoVerifyRequest(p *pb.VerifyRequest) (keyName string, message, tag []byte, mode string, err error) {
	if p.KeyName == "" {
		return "", nil, nil, "", fmt.Errorf("verify request has empty key name")
	}
	switch p.Mode {
	case "", ModeFull, ModeLeft, ModeRight:
	default:
		return "", nil, nil, "", fmt.Errorf("verify request has unknown mode %q", p.Mode)
	}
	return p.KeyName, p.Message, p.Tag, p.Mode, nil
}

// ToProtoSignRequest builds the wire form of a signing request.
func ToProtoSignRequest(keyName string, message []byte) *pb.SignRequest {
	return &pb.SignRequest{
		KeyName: keyName,
		Message: append([]byte(nil), message...),
	}
}

// FromProtoSignRequest unpacks a signing request.
func FromProtoSignRequest(p *pb.SignRequest) (keyName string, message []byte, err error) {
	if p.KeyName == "" {
		return "", nil, fmt.Errorf("sign request has empty key name")
	}
	return p.KeyName, p.Message, nil
}
