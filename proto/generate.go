// Package proto contains generated protobuf types for the key
// registration and verification wire protocol.
package proto

//go:generate protoc -I.. --go_out=.. --go_opt=paths=source_relative proto/mac.proto
