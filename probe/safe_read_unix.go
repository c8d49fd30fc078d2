//go:build unix && !linux

package probe

func newDefaultReader() SafeReader {
	return newPipeReader()
}
