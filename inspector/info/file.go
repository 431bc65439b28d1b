package info

import (
	"strconv"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// File represents an analyzed Python source file
type File struct {
	Name      string      `json:"name" yaml:"name"`
	Path      string      `json:"path" yaml:"path"`
	Hash      string      `json:"hash" yaml:"hash"`
	Lines     int         `json:"lines" yaml:"lines"`
	Functions []*Function `json:"functions,omitempty" yaml:"functions,omitempty"`
	Classes   []*Class    `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// Fingerprint returns highwayhash of the source, encoded in hex
func Fingerprint(data []byte) (string, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", err
	}
	if _, err = hash.Write(data); err != nil {
		return "", err
	}
	return strconv.FormatUint(hash.Sum64(), 16), nil
}
