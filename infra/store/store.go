// Package store persists the ledger's accounts to a flat encoded file: one
// line per account, each line a 4-field CSV record (number, first name,
// last name, balance with two decimals) passed through a pluggable Codec.
package store

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/bankledger/pkg/ledger"
	"github.com/amirasaad/bankledger/pkg/money"
)

const recordFields = 4

// FileStore implements ledger.Store on a single data file.
//
// Save truncates and rewrites the file in place on every call. There is no
// temp-file/rename step, so a crash mid-write can leave a torn file; this
// reproduces the original system's behavior and is a known weak point.
type FileStore struct {
	path   string
	codec  Codec
	logger *slog.Logger
}

// NewFileStore creates a store writing to path through codec.
func NewFileStore(path string, codec Codec, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, codec: codec, logger: logger}
}

// Load reads every account record from the data file. An absent file is not
// an error: the ledger starts empty. Lines that fail to decode or parse are
// skipped and logged, never fatal.
func (s *FileStore) Load() ([]ledger.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no existing data file, starting fresh", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var records []ledger.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r, err := s.decodeLine(line)
		if err != nil {
			s.logger.Warn("skipping unreadable record", "error", err)
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return records, nil
}

// Save overwrites the data file with one encoded line per record.
func (s *FileStore) Save(records []ledger.Record) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, r := range records {
		if _, err := fmt.Fprintln(w, s.codec.Encode(encodeLine(r))); err != nil {
			f.Close() //nolint:errcheck,gosec
			return fmt.Errorf("writing data file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close() //nolint:errcheck,gosec
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}
	return nil
}

func encodeLine(r ledger.Record) string {
	return fmt.Sprintf("%d,%s,%s,%s", r.Number, r.FirstName, r.LastName, r.Balance)
}

func (s *FileStore) decodeLine(line string) (ledger.Record, error) {
	decoded, err := s.codec.Decode(line)
	if err != nil {
		return ledger.Record{}, err
	}
	parts := strings.Split(decoded, ",")
	if len(parts) != recordFields {
		return ledger.Record{}, fmt.Errorf("%w: expected %d fields, got %d", ErrDecode, recordFields, len(parts))
	}
	number, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("%w: bad account number %q", ErrDecode, parts[0])
	}
	balance, err := money.Parse(parts[3])
	if err != nil {
		return ledger.Record{}, fmt.Errorf("%w: bad balance %q", ErrDecode, parts[3])
	}
	return ledger.Record{
		Number:    number,
		FirstName: parts[1],
		LastName:  parts[2],
		Balance:   balance,
	}, nil
}
