package util

import "github.com/twmb/murmur3"

// HashFunc computes the lookup hash of an indexed string column
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}
