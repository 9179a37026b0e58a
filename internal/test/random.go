package test

import (
	"math/rand"
	"sync"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string whose length
// falls within the provided bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
