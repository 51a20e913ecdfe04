package ay32

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/laixingyu123/ay32-client-go/internal/securefile"
)

// ExportVersion is the current export format version.
const ExportVersion = 1

// ExportedEmailAccounts is the payload stored inside an encrypted
// credentials file.
// WARNING: this contains passwords and refresh tokens - handle securely.
type ExportedEmailAccounts struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// ExportedAt is the export timestamp. Informational only.
	ExportedAt time.Time `json:"exportedAt"`
	// Accounts are the exported mailbox credentials.
	Accounts []EmailAccount `json:"accounts"`
}

// Validate checks that imported data is usable.
func (e *ExportedEmailAccounts) Validate() error {
	if e.Version != ExportVersion {
		return fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidExportData, e.Version, ExportVersion)
	}
	if e.ExportedAt.IsZero() {
		return fmt.Errorf("%w: exportedAt is required", ErrInvalidExportData)
	}
	return nil
}

// ExportEmailAccounts seals accounts under passphrase and writes the
// encrypted container to path. Keep the file out of version control.
func ExportEmailAccounts(path, passphrase string, accounts []EmailAccount) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase must not be empty")
	}

	payload, err := json.Marshal(ExportedEmailAccounts{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Accounts:   accounts,
	})
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}

	sealed, err := securefile.Seal(payload, []byte(passphrase))
	if err != nil {
		return fmt.Errorf("seal accounts: %w", err)
	}

	if err := os.WriteFile(path, sealed, 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ImportEmailAccounts reads a file written by ExportEmailAccounts and
// decrypts it with passphrase. A wrong passphrase or tampered file
// yields ErrDecryptFailed; structural problems yield
// ErrInvalidExportData.
func ImportEmailAccounts(path, passphrase string) (*ExportedEmailAccounts, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase must not be empty")
	}

	sealed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	payload, err := securefile.Open(sealed, []byte(passphrase))
	if err != nil {
		switch {
		case errors.Is(err, securefile.ErrDecryptFailed):
			return nil, ErrDecryptFailed
		case errors.Is(err, securefile.ErrInvalidContainer):
			return nil, fmt.Errorf("%w: %v", ErrInvalidExportData, err)
		default:
			return nil, err
		}
	}

	var data ExportedEmailAccounts
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("%w: parse payload: %v", ErrInvalidExportData, err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}
