package apiobject

import (
	"unsafe"
)

type objectResolver func(handle uintptr) Object

// The reverse-lookup tables are the single point where an external type tag
// is mapped back to an internal object. They are built once at process
// start and cover the closed set of types the driver supports; anything
// else resolves to nil without the handle ever being dereferenced.
var (
	objectTypeResolvers     = make(map[ObjectType]objectResolver)
	objectTypeToDebugReport = make(map[ObjectType]DebugReportObjectType)
	debugReportToObjectType = make(map[DebugReportObjectType]ObjectType)
)

func registerObjectType(objType ObjectType, debugType DebugReportObjectType, resolver objectResolver) {
	objectTypeResolvers[objType] = resolver
	objectTypeToDebugReport[objType] = debugType
	debugReportToObjectType[debugType] = objType
}

func init() {
	registerObjectType(ObjectTypeInstance, DebugReportObjectTypeInstance, resolveDispatchable)
	registerObjectType(ObjectTypePhysicalDevice, DebugReportObjectTypePhysicalDevice, resolveDispatchable)
	registerObjectType(ObjectTypeDevice, DebugReportObjectTypeDevice, resolveDispatchable)
	registerObjectType(ObjectTypeQueue, DebugReportObjectTypeQueue, resolveDispatchable)
	registerObjectType(ObjectTypeCommandBuffer, DebugReportObjectTypeCommandBuffer, resolveDispatchable)

	registerObjectType(ObjectTypeSemaphore, DebugReportObjectTypeSemaphore, resolveNonDispatchable)
	registerObjectType(ObjectTypeFence, DebugReportObjectTypeFence, resolveNonDispatchable)
	registerObjectType(ObjectTypeDeviceMemory, DebugReportObjectTypeDeviceMemory, resolveNonDispatchable)
	registerObjectType(ObjectTypeBuffer, DebugReportObjectTypeBuffer, resolveNonDispatchable)
	registerObjectType(ObjectTypeImage, DebugReportObjectTypeImage, resolveNonDispatchable)
	registerObjectType(ObjectTypeSampler, DebugReportObjectTypeSampler, resolveNonDispatchable)

	if len(objectTypeToDebugReport) != len(debugReportToObjectType) {
		panic("object type tag tables are not bijective")
	}
}

// ObjectFor returns the object referenced by a handle of the given type, or
// nil if the tag is outside the supported set or the handle is null. The
// handle is never dereferenced for unsupported tags.
func ObjectFor(objType ObjectType, handle uintptr) Object {
	resolver, ok := objectTypeResolvers[objType]
	if !ok || handle == 0 {
		return nil
	}
	return resolver(handle)
}

// ObjectForDebugReport is ObjectFor keyed by the legacy debug report tag.
func ObjectForDebugReport(debugType DebugReportObjectType, handle uintptr) Object {
	objType, ok := debugReportToObjectType[debugType]
	if !ok {
		return nil
	}
	return ObjectFor(objType, handle)
}

// DebugReportTypeFor converts an object type to its legacy debug report
// counterpart, or DebugReportObjectTypeUnknown outside the supported set.
func DebugReportTypeFor(objType ObjectType) DebugReportObjectType {
	debugType, ok := objectTypeToDebugReport[objType]
	if !ok {
		return DebugReportObjectTypeUnknown
	}
	return debugType
}

// ObjectTypeForDebugReport converts a legacy debug report tag to the modern
// object type, or ObjectTypeUnknown outside the supported set.
func ObjectTypeForDebugReport(debugType DebugReportObjectType) ObjectType {
	objType, ok := debugReportToObjectType[debugType]
	if !ok {
		return ObjectTypeUnknown
	}
	return objType
}

func resolveDispatchable(handle uintptr) Object {
	object := DispatchableFromHandle(unsafe.Pointer(handle))
	if object == nil {
		return nil
	}
	return object
}

func resolveNonDispatchable(handle uintptr) Object {
	// The handle is the object's own address; concrete types embed
	// NonDispatchable as their first field.
	return (*NonDispatchable)(unsafe.Pointer(handle))
}
