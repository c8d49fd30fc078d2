package apiobject

import (
	"unsafe"

	"github.com/vkngwrapper/icd/probe"
)

// LoaderMagic is the loader-recognition tag the external loader reads from
// the first word of a dispatchable handle before routing a call through it.
const LoaderMagic uintptr = 0x01CDC0DE

// icdRef is the two-word header a dispatchable handle points at: the loader
// magic in the first word, the back-pointer to the owning object in the
// second. The layout is ABI: magic at offset 0, back-pointer one word in.
// The back-pointer is written once at Init and never mutated afterwards.
type icdRef struct {
	magic  uintptr
	object *Dispatchable
}

// Dispatchable is the base for API objects whose handle must satisfy the
// loader's recognition convention. The handle is the address of the
// object's header rather than the object itself.
type Dispatchable struct {
	ObjectBase
	ref icdRef
}

var _ Object = &Dispatchable{}

// Init must be called before the object is used. The reference count starts
// at 1: the client's handle is the first reference.
func (o *Dispatchable) Init(instance *Instance, objType ObjectType, debugType DebugReportObjectType, hooks Hooks) {
	o.ObjectBase.init(instance, objType, debugType, hooks)
	o.register()
}

// InitCopy initializes o as a copy of other, duplicating the debug name but
// starting a fresh reference count and its own handle header.
func (o *Dispatchable) InitCopy(other *Dispatchable, hooks Hooks) {
	o.ObjectBase.initCopy(&other.ObjectBase, hooks)
	o.register()
}

func (o *Dispatchable) register() {
	o.ref.object = o
	o.handle = uintptr(unsafe.Pointer(&o.ref))
	if o.instance != nil {
		o.instance.registerObject(o.handle, o)
	}
}

// VkHandle returns a reference to this object suitable for use as a
// dispatchable API handle.
//
// The loader magic is re-stamped on every call, in case the header memory
// was overwritten before the object was passed back, particularly in pooled
// objects the loader might consider freed.
//
// This is the complement of DispatchableFromHandle.
func (o *Dispatchable) VkHandle() unsafe.Pointer {
	o.ref.magic = LoaderMagic
	return unsafe.Pointer(&o.ref)
}

// DispatchableFromHandle retrieves the object referenced by a dispatchable
// handle. The handle must have been produced by VkHandle on a live
// Dispatchable; decoding any other value is undefined. Callers bridging
// handles from untrusted sources must use DispatchableFromForeignHandle
// instead.
//
// This is the complement of VkHandle.
func DispatchableFromHandle(vkHandle unsafe.Pointer) *Dispatchable {
	if vkHandle == nil {
		return nil
	}
	ref := (*icdRef)(vkHandle)
	debugValidateICDRef(ref)
	return ref.object
}

// DispatchableFromForeignHandle decodes a dispatchable handle whose
// provenance is uncertain. The header's back-pointer word is probed through
// reader before anything is dereferenced; an unreadable or zeroed header
// yields (nil, false) instead of a fault.
func DispatchableFromForeignHandle(reader probe.SafeReader, vkHandle unsafe.Pointer) (*Dispatchable, bool) {
	if vkHandle == nil {
		return nil, false
	}
	backPointerAddr := uintptr(vkHandle) + unsafe.Offsetof(icdRef{}.object)
	if !probe.ReadableWord(reader, backPointerAddr) {
		return nil, false
	}
	return (*icdRef)(vkHandle).object, true
}
