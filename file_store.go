package macverify

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"
)

// fileKeystore implements Keystore using a POSIX append-only file. Every
// mutation is a new record; the live key set is rebuilt by replaying the
// file on open, so a crash mid-write loses at most the last record.
//
// Record format in keys.dat:
//
//	[1]byte:  op (1=put, 2=delete)
//	[2]byte:  name length (uint16)
//	[n]byte:  name
//	put records continue with:
//	[2]byte:  id length (uint16)
//	[n]byte:  id
//	[2]byte:  algorithm length (uint16)
//	[n]byte:  algorithm
//	[4]byte:  key length (uint32)
//	[n]byte:  key
//	[8]byte:  created (int64 unix nanos)
type fileKeystore struct {
	dir  string
	file *os.File
	mu   sync.RWMutex
	recs map[string]KeyRecord
}

const (
	keysFileName = "keys.dat"

	opPut    = 1
	opDelete = 2
)

// OpenFileStore creates or opens a POSIX file-based keystore in the
// given directory.
func OpenFileStore(dir string) (Keystore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	path := filepath.Join(dir, keysFileName)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}

	s := &fileKeystore{dir: dir, file: file, recs: make(map[string]KeyRecord)}
	if err := s.replay(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return s, nil
}

// replay rebuilds the in-memory key set from the file contents.
func (s *fileKeystore) replay() error {
	f, err := os.Open(filepath.Join(s.dir, keysFileName))
	if err != nil {
		return fmt.Errorf("open key file for replay: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for {
		var opBuf [1]byte
		if _, err := io.ReadFull(reader, opBuf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read op: %w", err)
		}

		name, err := readLenPrefixed16(reader)
		if err != nil {
			return fmt.Errorf("read name: %w", err)
		}

		switch opBuf[0] {
		case opDelete:
			delete(s.recs, string(name))
		case opPut:
			rec, err := readPutBody(reader, string(name))
			if err != nil {
				return err
			}
			s.recs[rec.Name] = rec
		default:
			return fmt.Errorf("unknown record op %d", opBuf[0])
		}
	}
}

func readLenPrefixed16(r io.Reader) ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	buf := make([]byte, binary.BigEndian.Uint16(lenBuf[:]))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func readPutBody(r io.Reader, name string) (KeyRecord, error) {
	var rec KeyRecord
	rec.Name = name

	id, err := readLenPrefixed16(r)
	if err != nil {
		return rec, fmt.Errorf("read id: %w", err)
	}
	rec.ID = string(id)

	alg, err := readLenPrefixed16(r)
	if err != nil {
		return rec, fmt.Errorf("read algorithm: %w", err)
	}
	rec.Algorithm = string(alg)

	var keyLenBuf [4]byte
	if _, err := io.ReadFull(r, keyLenBuf[:]); err != nil {
		return rec, fmt.Errorf("read key length: %w", err)
	}
	rec.Key = make([]byte, binary.BigEndian.Uint32(keyLenBuf[:]))
	if _, err := io.ReadFull(r, rec.Key); err != nil {
		return rec, fmt.Errorf("read key: %w", err)
	}

	var createdBuf [8]byte
	if _, err := io.ReadFull(r, createdBuf[:]); err != nil {
		return rec, fmt.Errorf("read created: %w", err)
	}
	rec.Created = time.Unix(0, int64(binary.BigEndian.Uint64(createdBuf[:])))

	return rec, nil
}

// Put appends a put record and updates the in-memory set.
func (s *fileKeystore) Put(rec KeyRecord) error {
	if len(rec.Name) == 0 || len(rec.Name) > 0xFFFF {
		return fmt.Errorf("invalid key name length %d", len(rec.Name))
	}

	buf := make([]byte, 0, 1+2+len(rec.Name)+2+len(rec.ID)+2+len(rec.Algorithm)+4+len(rec.Key)+8)
	buf = append(buf, opPut)
	buf = appendLenPrefixed16(buf, []byte(rec.Name))
	buf = appendLenPrefixed16(buf, []byte(rec.ID))
	buf = appendLenPrefixed16(buf, []byte(rec.Algorithm))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(rec.Key)))
	buf = append(buf, rec.Key...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(rec.Created.UnixNano()))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.appendLocked(buf); err != nil {
		return err
	}

	cp := rec
	cp.Key = append([]byte(nil), rec.Key...)
	s.recs[rec.Name] = cp
	return nil
}

// Delete appends a tombstone record and updates the in-memory set.
func (s *fileKeystore) Delete(name string) error {
	buf := make([]byte, 0, 1+2+len(name))
	buf = append(buf, opDelete)
	buf = appendLenPrefixed16(buf, []byte(name))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.appendLocked(buf); err != nil {
		return err
	}
	delete(s.recs, name)
	return nil
}

func appendLenPrefixed16(buf, data []byte) []byte {
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(data)))
	return append(buf, data...)
}

// appendLocked writes one record under an exclusive file lock and
// fsyncs before returning (caller must hold s.mu).
func (s *fileKeystore) appendLocked(buf []byte) error {
	if err := syscall.Flock(int(s.file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock key file: %w", err)
	}
	defer syscall.Flock(int(s.file.Fd()), syscall.LOCK_UN)

	n, err := s.file.Write(buf)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("incomplete write: %d of %d bytes", n, len(buf))
	}

	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("sync key file: %w", err)
	}
	return nil
}

// Get returns the record stored under name.
func (s *fileKeystore) Get(name string) (KeyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[name]
	if !ok {
		return KeyRecord{}, false, nil
	}
	cp := rec
	cp.Key = append([]byte(nil), rec.Key...)
	return cp, true, nil
}

// List returns all live records sorted by name.
func (s *fileKeystore) List() ([]KeyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]KeyRecord, 0, len(s.recs))
	for _, rec := range s.recs {
		cp := rec
		cp.Key = append([]byte(nil), rec.Key...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Close closes the key file.
func (s *fileKeystore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close key file: %w", err)
	}
	return nil
}
