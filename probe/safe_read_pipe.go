//go:build unix

package probe

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// pipeReader probes memory by writing one word from the target address into
// a private pipe. The kernel validates the source range during write(2) and
// returns EFAULT for unreadable addresses, so the calling process never
// takes a hardware fault. A word always fits in the pipe buffer and both
// ends are non-blocking, so the round trip is bounded.
type pipeReader struct {
	mu   sync.Mutex
	rfd  int
	wfd  int
	open bool
}

func newPipeReader() *pipeReader {
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		return &pipeReader{}
	}
	_ = unix.SetNonblock(fds[0], true)
	_ = unix.SetNonblock(fds[1], true)
	return &pipeReader{rfd: fds[0], wfd: fds[1], open: true}
}

func (r *pipeReader) ReadWord(addr uintptr) (uint64, bool) {
	if addr == 0 {
		return 0, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return 0, false
	}

	// The suspect address goes straight into the syscall as a raw value, so
	// nothing on this side ever holds a pointer to it; only the kernel
	// touches the memory, inside write(2).
	n, _, errno := unix.Syscall(unix.SYS_WRITE, uintptr(r.wfd), addr, uintptr(WordSize))
	written := int(n)
	if errno != 0 {
		written = 0
	}
	if written > 0 {
		var buf [WordSize]byte
		read := 0
		for read < written {
			c, rerr := unix.Read(r.rfd, buf[read:written])
			if rerr != nil && rerr != unix.EINTR {
				break
			}
			if c > 0 {
				read += c
			}
		}
		if written == WordSize && read == WordSize {
			return *(*uint64)(unsafe.Pointer(&buf[0])), true
		}
	}
	return 0, false
}
