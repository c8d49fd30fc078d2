//go:build unix

package probe_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/icd/probe"
	"golang.org/x/sys/unix"
)

func TestReadableWordDanglingMapping(t *testing.T) {
	page, err := unix.Mmap(-1, 0, unix.Getpagesize(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	require.NoError(t, err)

	page[0] = 0xAB
	addr := uintptr(unsafe.Pointer(&page[0]))
	require.True(t, probe.ReadableWord(probe.DefaultReader(), addr))

	// Once the backing mapping is gone, the same address must classify as
	// not-valid instead of faulting.
	require.NoError(t, unix.Munmap(page))
	require.False(t, probe.ReadableWord(probe.DefaultReader(), addr))
}

func TestReadableWordUnreadableMapping(t *testing.T) {
	page, err := unix.Mmap(-1, 0, unix.Getpagesize(), unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, unix.Munmap(page))
	}()

	addr := uintptr(unsafe.Pointer(&page[0]))
	require.False(t, probe.ReadableWord(probe.DefaultReader(), addr))
}
