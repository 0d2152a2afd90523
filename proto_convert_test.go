package macverify

import (
	"bytes"
	"testing"
	"time"

	pb "github.com/karasz/macverify/proto"
)

func TestKeyRecordProtoConversion(t *testing.T) {
	rec := KeyRecord{
		ID:        "5e8c7f6a-0000-4000-8000-000000000001",
		Name:      "api-signing",
		Algorithm: "HMAC-SHA256",
		Key:       []byte{1, 2, 3, 4},
		Created:   time.Unix(0, 1724630400000000000),
	}

	back, err := FromProtoKeyRecord(ToProtoKeyRecord(rec))
	if err != nil {
		t.Fatalf("FromProtoKeyRecord failed: %v", err)
	}
	if back.ID != rec.ID || back.Name != rec.Name || back.Algorithm != rec.Algorithm {
		t.Error("identity fields changed across conversion")
	}
	if !bytes.Equal(back.Key, rec.Key) {
		t.Error("key bytes changed across conversion")
	}
	if !back.Created.Equal(rec.Created) {
		t.Errorf("creation time %v, want %v", back.Created, rec.Created)
	}
}

func TestFromProtoKeyRecord_Rejections(t *testing.T) {
	tests := []struct {
		name string
		rec  *pb.KeyRecord
	}{
		{"empty name", &pb.KeyRecord{Algorithm: "HMAC-SHA256", Key: []byte{1}}},
		{"empty algorithm", &pb.KeyRecord{Name: "k", Key: []byte{1}}},
		{"empty key", &pb.KeyRecord{Name: "k", Algorithm: "HMAC-SHA256"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromProtoKeyRecord(tt.rec); err == nil {
				t.Error("invalid record accepted")
			}
		})
	}
}

func TestVerifyRequestProtoConversion(t *testing.T) {
	p := ToProtoVerifyRequest("api", []byte("msg"), []byte{9, 9}, ModeLeft)

	keyName, message, tag, mode, err := FromProtoVerifyRequest(p)
	if err != nil {
		t.Fatalf("FromProtoVerifyRequest failed: %v", err)
	}
	if keyName != "api" || mode != ModeLeft {
		t.Errorf("keyName=%q mode=%q, want api/left", keyName, mode)
	}
	if !bytes.Equal(message, []byte("msg")) || !bytes.Equal(tag, []byte{9, 9}) {
		t.Error("payload bytes changed across conversion")
	}
}

func TestFromProtoVerifyRequest_Rejections(t *testing.T) {
	if _, _, _, _, err := FromProtoVerifyRequest(&pb.VerifyRequest{Message: []byte("m")}); err == nil {
		t.Error("empty key name accepted")
	}
	if _, _, _, _, err := FromProtoVerifyRequest(&pb.VerifyRequest{KeyName: "k", Mode: "sideways"}); err == nil {
		t.Error("unknown mode accepted")
	}
	// Empty mode is the full-comparison default.
	if _, _, _, mode, err := FromProtoVerifyRequest(&pb.VerifyRequest{KeyName: "k"}); err != nil || mode != "" {
		t.Errorf("empty mode rejected: mode=%q err=%v", mode, err)
	}
}

func TestSignRequestProtoConversion(t *testing.T) {
	keyName, message, err := FromProtoSignRequest(ToProtoSignRequest("api", []byte("msg")))
	if err != nil {
		t.Fatalf("FromProtoSignRequest failed: %v", err)
	}
	if keyName != "api" || !bytes.Equal(message, []byte("msg")) {
		t.Errorf("keyName=%q message=%q after conversion", keyName, message)
	}

	if _, _, err := FromProtoSignRequest(&pb.SignRequest{Message: []byte("m")}); err == nil {
		t.Error("empty key name accepted")
	}
}
