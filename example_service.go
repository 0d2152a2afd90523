// Package macverify implements Message Authentication Code verification
// with constant-time tag comparison and truncated-tag support.
package macverify

// Example: MAC verification, local and remote
//
// The core of this package is the verification protocol over the Mac
// capability set. Every comparison of key-derived tag bytes goes
// through constant-time equality; plain byte comparison offers an
// early-exit timing side channel that assists tag-forgery oracles.
//
// Direct use:
//
//   alg, _ := macverify.Lookup("HMAC-SHA256")
//   m, _ := alg.NewFromSlice(key)
//   m.Update(message)
//   tag := m.Finalize()               // Output, constant-time Equal
//
//   // Receiving side: fresh instance, same key and message.
//   m2, _ := alg.NewFromSlice(key)
//   m2.Update(message)
//   if err := macverify.VerifySlice(m2, receivedTag); err != nil {
//       // ErrTagMismatch: do not trust this message.
//   }
//
// Truncated tags (bandwidth-constrained protocols transmit a prefix or
// suffix of the tag; the full tag is still computed, only the
// comparison is truncated):
//
//   macverify.VerifyTruncatedLeft(m, tag[:8])
//   macverify.VerifyTruncatedRight(m, tag[len(tag)-8:])
//
// Verification service:
//
//   // Server side: keys live in a keystore, clients see only verdicts.
//   store, _ := macverify.OpenFileStore("/var/lib/macverify")
//   server := macverify.NewServer(store)
//   go server.ListenAndServeTLS(":8443", certFile, keyFile)
//
//   // Client side: provision a key, then sign and verify by name.
//   transport := macverify.NewProtoHTTPTransport("https://verify.example.com")
//   rec, _ := macverify.GenerateKey("webhook", "HMAC-SHA256")
//   transport.RegisterKey(rec)
//   tag, _ := transport.Sign("webhook", payload)
//   ok, _ := transport.Verify("webhook", payload, tag[:16], macverify.ModeLeft)
//
// Deployment styles mirror the storage and transport choices:
//
//   - NewMemoryKeystore: tests, keys provisioned at startup
//   - OpenFileStore:     append-only file, single-host deployments
//   - OpenSQLiteStore:   SQLite, hosts already running it
//   - HTTPTransport / ProtoHTTPTransport: networked verification server
//   - FolderTransport:   shared-directory deployments without a network
//   - LocalTransport:    in-process, same API as the remote paths
