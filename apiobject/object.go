// Package apiobject implements the opaque-handle and lifetime layer shared
// by every driver-exposed API object. Clients manipulate objects only
// through opaque handles; objects are reference counted so that they can
// outlive client-visible destruction until all in-flight work referencing
// them completes.
package apiobject

import (
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// PropagateDebugNameCallback forwards a newly assigned debug name to the
// object's underlying native resources. A semantic failure (the native
// framework rejected the name) is reported through the result and error.
type PropagateDebugNameCallback func(name string) (common.VkResult, error)

// OnReleaseCallback runs when the object's reference count reaches zero,
// strictly before the base storage is torn down, so the concrete variant can
// clean up state the base teardown would otherwise clear.
type OnReleaseCallback func()

type Hooks struct {
	PropagateDebugName PropagateDebugNameCallback
	OnRelease          OnReleaseCallback
}

// NativeResource is an opaque handle to an externally owned resource that
// can carry a text label.
type NativeResource interface {
	SetLabel(label string) error
}

// Object is the base contract every driver-exposed API object implements.
type Object interface {
	// VkHandle returns a reference to this object suitable for use as an
	// opaque API handle. It is stable for the object's lifetime.
	VkHandle() unsafe.Pointer
	// ObjectType returns the API type of this object, fixed at Init.
	ObjectType() ObjectType
	// DebugReportObjectType returns the legacy debug report type of this
	// object, fixed at Init.
	DebugReportObjectType() DebugReportObjectType
	// Instance returns the top-level context that created this object's
	// family. The root context returns itself.
	Instance() *Instance
	// DebugName returns the current debug name, or an empty string if one
	// was never assigned.
	DebugName() string
	// SetDebugName stores a debug name and propagates it to the underlying
	// native resources.
	SetDebugName(name string) (common.VkResult, error)

	// Retain adds a reference. Every component that keeps the object's
	// pointer across an asynchronous boundary must hold one.
	Retain()
	// Release drops a reference. The object is destroyed exactly once, when
	// the count transitions to zero.
	Release()
	// TryRetain adds a reference only if the object is still alive. It
	// returns false once the count has reached zero, never resurrecting a
	// destroyed object.
	TryRetain() bool
}

// ObjectBase carries the reference count, identification tags, debug name
// and owning-instance back-reference shared by all API objects. It is
// embedded by NonDispatchable and Dispatchable rather than used directly.
//
// The reference count is the only field with atomic access guarantees.
// Debug-name reads racing debug-name writes are not synchronized
// internally; callers that mutate names from multiple threads must
// serialize per object.
type ObjectBase struct {
	refCount  int64
	handle    uintptr
	objType   ObjectType
	debugType DebugReportObjectType
	instance  *Instance
	hooks     Hooks
	debugName string
}

func (o *ObjectBase) init(instance *Instance, objType ObjectType, debugType DebugReportObjectType, hooks Hooks) {
	if o.objType != ObjectTypeUnknown {
		panic("attempting to init an object that has already been initialized")
	}
	if objType == ObjectTypeUnknown {
		panic("attempting to init an object without a concrete object type")
	}
	o.refCount = 1
	o.objType = objType
	o.debugType = debugType
	o.instance = instance
	o.hooks = hooks
	o.debugName = ""
}

func (o *ObjectBase) initCopy(other *ObjectBase, hooks Hooks) {
	// Copies are new identities, not aliases: the debug name carries over
	// but the reference count starts fresh. Hooks are supplied by the new
	// object's own concrete variant, never borrowed from the source.
	o.init(other.instance, other.objType, other.debugType, hooks)
	o.debugName = other.debugName
}

func (o *ObjectBase) ObjectType() ObjectType {
	return o.objType
}

func (o *ObjectBase) DebugReportObjectType() DebugReportObjectType {
	return o.debugType
}

func (o *ObjectBase) Instance() *Instance {
	return o.instance
}

func (o *ObjectBase) DebugName() string {
	return o.debugName
}

// SetDebugName validates name, stores a copy, and forwards it to the
// object's underlying native resources. When propagation fails, the stored
// name is still kept so that debugging intent survives, and the failure is
// returned to the caller.
func (o *ObjectBase) SetDebugName(name string) (common.VkResult, error) {
	if name == "" {
		return core1_0.VKErrorUnknown, errors.Wrapf(ErrEmptyDebugName, "setting debug name on %s", o.objType)
	}

	o.debugName = name

	if o.hooks.PropagateDebugName != nil {
		res, err := o.hooks.PropagateDebugName(name)
		if err != nil || res != core1_0.VKSuccess {
			return res, err
		}
	}
	return core1_0.VKSuccess, nil
}

// SetNativeLabel forwards label to an externally owned resource. It is a
// one-way notification: a nil resource is a no-op and failures from the
// native framework are logged but never surfaced. It is distinct from
// SetDebugName because one object may own several native resources that
// all need the same label.
func (o *ObjectBase) SetNativeLabel(resource NativeResource, label string) {
	if resource == nil {
		return
	}
	if err := resource.SetLabel(label); err != nil && o.instance != nil {
		o.instance.logger.Debug("native resource rejected label",
			slog.String("label", label),
			slog.Any("error", err))
	}
}

func (o *ObjectBase) Retain() {
	atomic.AddInt64(&o.refCount, 1)
}

func (o *ObjectBase) TryRetain() bool {
	for {
		count := atomic.LoadInt64(&o.refCount)
		if count <= 0 {
			return false
		}
		if atomic.CompareAndSwapInt64(&o.refCount, count, count+1) {
			return true
		}
	}
}

func (o *ObjectBase) Release() {
	count := atomic.AddInt64(&o.refCount, -1)
	debugValidateRefCount(count)
	if count == 0 {
		o.destroy()
	}
}

// destroy runs exactly once, on the single thread that drops the count to
// zero. The release hook runs before any base state is cleared.
func (o *ObjectBase) destroy() {
	if o.hooks.OnRelease != nil {
		o.hooks.OnRelease()
	}
	if o.instance != nil {
		o.instance.unregisterObject(o.handle)
	}
	o.debugName = ""
	o.objType = ObjectTypeUnknown
	o.debugType = DebugReportObjectTypeUnknown
	o.hooks = Hooks{}
}

// NonDispatchable is the base for API objects whose handle is simply the
// object's own address reinterpreted as an opaque value. Concrete object
// types must embed it as their first field.
type NonDispatchable struct {
	ObjectBase
}

var _ Object = &NonDispatchable{}

// Init must be called before the object is used. The reference count starts
// at 1: the client's handle is the first reference.
func (o *NonDispatchable) Init(instance *Instance, objType ObjectType, debugType DebugReportObjectType, hooks Hooks) {
	o.ObjectBase.init(instance, objType, debugType, hooks)
	o.register()
}

// InitCopy initializes o as a copy of other, duplicating the debug name but
// starting a fresh reference count.
func (o *NonDispatchable) InitCopy(other *NonDispatchable, hooks Hooks) {
	o.ObjectBase.initCopy(&other.ObjectBase, hooks)
	o.register()
}

func (o *NonDispatchable) register() {
	o.handle = uintptr(unsafe.Pointer(o))
	if o.instance != nil {
		o.instance.registerObject(o.handle, o)
	}
}

func (o *NonDispatchable) VkHandle() unsafe.Pointer {
	return unsafe.Pointer(o)
}
