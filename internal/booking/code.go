package booking

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 9
)

var (
	codeMutex sync.Mutex
	codeRand  = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewReservationNumber generates a short human-shareable code. It is not
// cryptographically secure and carries no global uniqueness guarantee.
func NewReservationNumber() string {
	codeMutex.Lock()
	defer codeMutex.Unlock()

	var builder strings.Builder
	builder.Grow(codeLength)
	for i := 0; i < codeLength; i++ {
		builder.WriteByte(codeAlphabet[codeRand.Intn(len(codeAlphabet))])
	}

	return builder.String()
}
