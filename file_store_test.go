package macverify

import (
	"bytes"
	"io"
	"os"
	"testing"
)

func openFileStore(t *testing.T, dir string) Keystore {
	t.Helper()
	store, err := OpenFileStore(dir)
	if err != nil {
		t.Fatalf("OpenFileStore failed: %v", err)
	}
	return store
}

func closeStore(t *testing.T, store Keystore) {
	t.Helper()
	if c, ok := store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}
}

func TestFileStore_PutGetDelete(t *testing.T) {
	dir, err := os.MkdirTemp("", "macverify-filestore")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store := openFileStore(t, dir)
	defer closeStore(t, store)

	rec, err := GenerateKey("alpha", "HMAC-SHA256")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := store.Get("alpha")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v, want found", ok, err)
	}
	if got.ID != rec.ID || got.Algorithm != rec.Algorithm || !bytes.Equal(got.Key, rec.Key) {
		t.Error("Get returned a different record than was stored")
	}

	if err := store.Delete("alpha"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get("alpha"); ok {
		t.Error("record still present after Delete")
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "macverify-filestore")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	keep, err := GenerateKey("keep", "BLAKE2b-256")
	if err != nil {
		t.Fatal(err)
	}
	gone, err := GenerateKey("gone", "SipHash-64")
	if err != nil {
		t.Fatal(err)
	}

	store := openFileStore(t, dir)
	if err := store.Put(keep); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(gone); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("gone"); err != nil {
		t.Fatal(err)
	}
	closeStore(t, store)

	// Replay must reconstruct the live set: puts applied, tombstones
	// honored.
	reopened := openFileStore(t, dir)
	defer closeStore(t, reopened)

	got, ok, err := reopened.Get("keep")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok=%v err=%v, want found", ok, err)
	}
	if !bytes.Equal(got.Key, keep.Key) {
		t.Error("replayed key differs from stored key")
	}
	if !got.Created.Equal(keep.Created) {
		t.Errorf("replayed creation time %v, want %v", got.Created, keep.Created)
	}

	if _, ok, _ := reopened.Get("gone"); ok {
		t.Error("deleted record resurrected by replay")
	}
}

func TestFileStore_PutOverwrites(t *testing.T) {
	dir, err := os.MkdirTemp("", "macverify-filestore")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store := openFileStore(t, dir)

	first, _ := GenerateKey("rotating", "HMAC-SHA512")
	second, _ := GenerateKey("rotating", "HMAC-SHA512")
	if err := store.Put(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(second); err != nil {
		t.Fatal(err)
	}
	closeStore(t, store)

	reopened := openFileStore(t, dir)
	defer closeStore(t, reopened)

	got, ok, err := reopened.Get("rotating")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v, want found", ok, err)
	}
	if got.ID != second.ID {
		t.Error("replay kept the overwritten record")
	}
}

func TestFileStore_RejectsEmptyName(t *testing.T) {
	dir, err := os.MkdirTemp("", "macverify-filestore")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store := openFileStore(t, dir)
	defer closeStore(t, store)

	if err := store.Put(KeyRecord{Name: "", Algorithm: "HMAC-SHA256", Key: []byte{1}}); err == nil {
		t.Error("Put accepted an empty name")
	}
}

func TestFileStore_ListSorted(t *testing.T) {
	dir, err := os.MkdirTemp("", "macverify-filestore")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store := openFileStore(t, dir)
	defer closeStore(t, store)

	for _, name := range []string{"zulu", "mike", "alpha"} {
		rec, err := GenerateKey(name, "HMAC-SHA256")
		if err != nil {
			t.Fatal(err)
		}
		if err := store.Put(rec); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"alpha", "mike", "zulu"}
	if len(recs) != len(want) {
		t.Fatalf("List returned %d records, want %d", len(recs), len(want))
	}
	for i := range want {
		if recs[i].Name != want[i] {
			t.Errorf("List[%d].Name = %q, want %q", i, recs[i].Name, want[i])
		}
	}
}
