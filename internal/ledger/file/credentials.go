package file

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"daybook/internal/core"
)

// Credentials is the append-only users ledger, one username:hash per line.
type Credentials struct {
	path   string
	hasher core.PasswordHasher
}

func NewCredentials(path string, hasher core.PasswordHasher) *Credentials {
	return &Credentials{path: path, hasher: hasher}
}

// Path returns the ledger file location.
func (c *Credentials) Path() string { return c.path }

// Exists implements ledger.CredentialStore.
func (c *Credentials) Exists(ctx context.Context, username string) (bool, error) {
	records, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if r.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// Register implements ledger.CredentialStore. Existing lines are never
// rewritten; the new record is appended.
func (c *Credentials) Register(ctx context.Context, username, password string) (string, error) {
	if err := core.ValidateUsername(username); err != nil {
		return "", err
	}
	exists, err := c.Exists(ctx, username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", core.ErrAlreadyExists
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	if err := c.append(core.Credential{Username: username, PasswordHash: hash}); err != nil {
		return "", err
	}
	return username, nil
}

// Authenticate implements ledger.CredentialStore.
func (c *Credentials) Authenticate(ctx context.Context, username, password string) (string, error) {
	records, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	for _, r := range records {
		if r.Username == username && c.hasher.Verify(r.PasswordHash, password) {
			return username, nil
		}
	}
	return "", core.ErrInvalidCredentials
}

// Count returns the number of well-formed records.
func (c *Credentials) Count(ctx context.Context) (int, error) {
	records, err := c.load(ctx)
	return len(records), err
}

func (c *Credentials) load(ctx context.Context) ([]core.Credential, error) {
	f, err := os.Open(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("open", c.path, err)
	}
	defer f.Close()

	var out []core.Credential
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		cred, ok := core.ParseCredential(sc.Text())
		if !ok {
			slog.WarnContext(ctx, "Skipping malformed credential line", "path", c.path, "line", line)
			continue
		}
		out = append(out, cred)
	}
	if err := sc.Err(); err != nil {
		return nil, storageError("read", c.path, err)
	}
	return out, nil
}

func (c *Credentials) append(cred core.Credential) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return storageError("create directory for", c.path, err)
	}
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return storageError("open", c.path, err)
	}
	defer f.Close()

	line := cred.String() + "\n"
	// A hand-edited ledger may lack the final newline.
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err == nil && last[0] != '\n' {
			line = "\n" + line
		}
	}
	if _, err := f.WriteString(line); err != nil {
		return storageError("append", c.path, err)
	}
	return nil
}
