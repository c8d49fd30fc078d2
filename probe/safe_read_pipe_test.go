//go:build unix

package probe

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPipeReaderLiveAddress(t *testing.T) {
	reader := newPipeReader()
	require.True(t, reader.open)

	value := uint64(0x0123456789ABCDEF)
	word, ok := reader.ReadWord(uintptr(unsafe.Pointer(&value)))
	require.True(t, ok)
	require.Equal(t, value, word)
	runtime.KeepAlive(&value)
}

func TestPipeReaderUnmappedAddress(t *testing.T) {
	reader := newPipeReader()

	_, ok := reader.ReadWord(^uintptr(0) - 0xfff)
	require.False(t, ok)
	_, ok = reader.ReadWord(0)
	require.False(t, ok)
}

func TestPipeReaderReusableAfterFailure(t *testing.T) {
	// A failed probe must not leave stale bytes in the pipe that would
	// corrupt the next read.
	reader := newPipeReader()

	_, ok := reader.ReadWord(^uintptr(0) - 0xfff)
	require.False(t, ok)

	value := uint64(0xFEEDFACECAFEBEEF)
	word, ok := reader.ReadWord(uintptr(unsafe.Pointer(&value)))
	require.True(t, ok)
	require.Equal(t, value, word)
	runtime.KeepAlive(&value)
}
