// File: pkg/media/keys.go
package media

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ContentKey reads r to the end and returns "<base64url(sha256)>/<base name>" along with
// the number of bytes read. Identical content under the same name maps to the same key.
func ContentKey(r io.Reader, name string) (string, int64, error) {
	sum := sha256.New()
	n, err := io.Copy(sum, r)
	if err != nil {
		return "", 0, fmt.Errorf("error computing file hash: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(sum.Sum(nil)) + "/" + filepath.Base(name), n, nil
}

// JoinKey joins object key segments with "/", skipping empty ones
func JoinKey(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// ObjectURL appends an object key to base, escaping each key segment
func ObjectURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}

// DetectContentType sniffs the content type of r and rewinds it
func DetectContentType(r io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("error detecting content type: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
