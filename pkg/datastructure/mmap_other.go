//go:build !unix

package datastructure

import "os"

// mapFile reads the whole file, there is no mapping on this platform.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
