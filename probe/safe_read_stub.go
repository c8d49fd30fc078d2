//go:build !unix

package probe

// stubReader is used on platforms without a fault-tolerant read primitive.
// It classifies every address as unreadable, which is the conservative
// verdict: callers treat the pointer as untrusted.
type stubReader struct{}

func newDefaultReader() SafeReader {
	return stubReader{}
}

func (stubReader) ReadWord(addr uintptr) (uint64, bool) {
	return 0, false
}
