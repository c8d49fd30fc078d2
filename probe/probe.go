// Package probe provides advisory, non-faulting checks of whether a raw
// address currently refers to a live object of the host's dynamic object
// runtime. The driver sometimes receives pointers whose provenance it cannot
// fully trust (legacy or bridged objects from the underlying native
// framework), and it needs a last line of defense before dereferencing them.
//
// Every check in this package is conservative: a negative verdict means only
// "do not trust this pointer", never certainty that the object is dead. No
// check ever faults the calling process; all reads of suspect memory go
// through a SafeReader.
package probe

// WordSize is the number of bytes read by a single SafeReader probe.
const WordSize = 8

// capturedRegionMask matches the tag bits carried by addresses that belong
// to the runtime's captured/recorded object region. It is a heuristic for
// that one storage representation and must not be extended to others.
const capturedRegionMask uint64 = 0xff00000000000000

// SafeReader reads one word of process memory without faulting. The read
// must be bounded and non-blocking: invalid or unmapped addresses report
// failure instead of stalling or raising a hardware fault.
//
// This is the only primitive in the system permitted to touch memory that
// might not exist. It must never be replaced by a direct dereference.
type SafeReader interface {
	// ReadWord attempts to read WordSize bytes at addr. It returns the word
	// and true on success, or zero and false if the address cannot be read.
	ReadWord(addr uintptr) (uint64, bool)
}

// ObjectRuntime exposes the host's dynamic object introspection system. The
// checks query it but never trust it blindly: every address obtained from a
// candidate handle still goes through the SafeReader first.
type ObjectRuntime interface {
	// ClassOf returns the type descriptor of a live object handle, or zero
	// if the runtime does not recognize it. It may only be called on handles
	// that already passed LiveObject.
	ClassOf(handle uintptr) uintptr
	// LookupClass returns the runtime's registered descriptor for the named
	// type, or zero if no such type is registered.
	LookupClass(name string) uintptr
	// NullSentinel returns the runtime's recognized "null object" value, or
	// zero if the runtime has none.
	NullSentinel() uintptr
}

// DefaultReader returns the process-wide SafeReader backed by the best
// fault-tolerant read primitive the platform offers.
func DefaultReader() SafeReader {
	return defaultReader
}

var defaultReader SafeReader = newDefaultReader()

// ReadableWord reports whether addr is a readable, non-null memory location
// holding a nonzero word.
func ReadableWord(r SafeReader, addr uintptr) bool {
	_, ok := readableWord(r, addr)
	return ok
}

func readableWord(r SafeReader, addr uintptr) (uint64, bool) {
	if addr == 0 {
		return 0, false
	}
	val, ok := r.ReadWord(addr)
	if !ok || val == 0 {
		return 0, false
	}
	return val, true
}

// LiveObject reports whether handle behaves like a live dynamic object:
// non-null, not the runtime's null sentinel, itself a readable address, and
// with a nonzero word in its type descriptor slot.
func LiveObject(r SafeReader, rt ObjectRuntime, handle uintptr) bool {
	_, ok := liveObjectWord(r, rt, handle)
	return ok
}

func liveObjectWord(r SafeReader, rt ObjectRuntime, handle uintptr) (uint64, bool) {
	if handle == 0 || handle == rt.NullSentinel() {
		return 0, false
	}
	return readableWord(r, handle)
}

// ObjectHasClass reports whether handle resembles a live dynamic object of
// the named class. The same logical object can be backed by two storage
// representations - a live dynamic object, or a recorded stand-in used for
// capture/replay - and the check accepts either: capturedClass names the
// stand-in's registered type.
//
// The descriptor slot is read one further level of indirection deep, since
// some object flavors store their layout information behind the first word.
// When that second read fails because the address belongs to the captured
// region (recognized by its tag bits), the stand-in's type is still matched
// by direct runtime lookup.
func ObjectHasClass(r SafeReader, rt ObjectRuntime, handle uintptr, class string, capturedClass string) bool {
	word, ok := liveObjectWord(r, rt, handle)
	if !ok {
		return false
	}
	inner, ok := r.ReadWord(uintptr(word))
	if ok {
		if inner == 0 {
			return false
		}
		if captured := rt.LookupClass(capturedClass); captured != 0 && rt.ClassOf(handle) == captured {
			return true
		}
		if desc := rt.LookupClass(class); desc != 0 && handle == desc {
			return true
		}
		return false
	}
	if word&capturedRegionMask != 0 {
		if captured := rt.LookupClass(capturedClass); captured != 0 && rt.ClassOf(handle) == captured {
			return true
		}
	}
	return false
}
