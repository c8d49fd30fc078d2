package apiobject

// ObjectType identifies the concrete API type of an object. Values match the
// numbering the Vulkan loader and validation layers expect.
type ObjectType int32

const (
	ObjectTypeUnknown        ObjectType = 0
	ObjectTypeInstance       ObjectType = 1
	ObjectTypePhysicalDevice ObjectType = 2
	ObjectTypeDevice         ObjectType = 3
	ObjectTypeQueue          ObjectType = 4
	ObjectTypeSemaphore      ObjectType = 5
	ObjectTypeCommandBuffer  ObjectType = 6
	ObjectTypeFence          ObjectType = 7
	ObjectTypeDeviceMemory   ObjectType = 8
	ObjectTypeBuffer         ObjectType = 9
	ObjectTypeImage          ObjectType = 10
	ObjectTypeSampler        ObjectType = 21
)

var objectTypeMapping = make(map[ObjectType]string)

func (t ObjectType) String() string {
	str, ok := objectTypeMapping[t]
	if !ok {
		return "ObjectTypeUnknown"
	}
	return str
}

func init() {
	objectTypeMapping[ObjectTypeInstance] = "ObjectTypeInstance"
	objectTypeMapping[ObjectTypePhysicalDevice] = "ObjectTypePhysicalDevice"
	objectTypeMapping[ObjectTypeDevice] = "ObjectTypeDevice"
	objectTypeMapping[ObjectTypeQueue] = "ObjectTypeQueue"
	objectTypeMapping[ObjectTypeSemaphore] = "ObjectTypeSemaphore"
	objectTypeMapping[ObjectTypeCommandBuffer] = "ObjectTypeCommandBuffer"
	objectTypeMapping[ObjectTypeFence] = "ObjectTypeFence"
	objectTypeMapping[ObjectTypeDeviceMemory] = "ObjectTypeDeviceMemory"
	objectTypeMapping[ObjectTypeBuffer] = "ObjectTypeBuffer"
	objectTypeMapping[ObjectTypeImage] = "ObjectTypeImage"
	objectTypeMapping[ObjectTypeSampler] = "ObjectTypeSampler"
}

// DebugReportObjectType identifies an object in the legacy debug report
// scheme. It parallels ObjectType over the supported closed set.
type DebugReportObjectType int32

const (
	DebugReportObjectTypeUnknown        DebugReportObjectType = 0
	DebugReportObjectTypeInstance       DebugReportObjectType = 1
	DebugReportObjectTypePhysicalDevice DebugReportObjectType = 2
	DebugReportObjectTypeDevice         DebugReportObjectType = 3
	DebugReportObjectTypeQueue          DebugReportObjectType = 4
	DebugReportObjectTypeSemaphore      DebugReportObjectType = 5
	DebugReportObjectTypeCommandBuffer  DebugReportObjectType = 6
	DebugReportObjectTypeFence          DebugReportObjectType = 7
	DebugReportObjectTypeDeviceMemory   DebugReportObjectType = 8
	DebugReportObjectTypeBuffer         DebugReportObjectType = 9
	DebugReportObjectTypeImage          DebugReportObjectType = 10
	DebugReportObjectTypeSampler        DebugReportObjectType = 21
)

var debugReportObjectTypeMapping = make(map[DebugReportObjectType]string)

func (t DebugReportObjectType) String() string {
	str, ok := debugReportObjectTypeMapping[t]
	if !ok {
		return "DebugReportObjectTypeUnknown"
	}
	return str
}

func init() {
	debugReportObjectTypeMapping[DebugReportObjectTypeInstance] = "DebugReportObjectTypeInstance"
	debugReportObjectTypeMapping[DebugReportObjectTypePhysicalDevice] = "DebugReportObjectTypePhysicalDevice"
	debugReportObjectTypeMapping[DebugReportObjectTypeDevice] = "DebugReportObjectTypeDevice"
	debugReportObjectTypeMapping[DebugReportObjectTypeQueue] = "DebugReportObjectTypeQueue"
	debugReportObjectTypeMapping[DebugReportObjectTypeSemaphore] = "DebugReportObjectTypeSemaphore"
	debugReportObjectTypeMapping[DebugReportObjectTypeCommandBuffer] = "DebugReportObjectTypeCommandBuffer"
	debugReportObjectTypeMapping[DebugReportObjectTypeFence] = "DebugReportObjectTypeFence"
	debugReportObjectTypeMapping[DebugReportObjectTypeDeviceMemory] = "DebugReportObjectTypeDeviceMemory"
	debugReportObjectTypeMapping[DebugReportObjectTypeBuffer] = "DebugReportObjectTypeBuffer"
	debugReportObjectTypeMapping[DebugReportObjectTypeImage] = "DebugReportObjectTypeImage"
	debugReportObjectTypeMapping[DebugReportObjectTypeSampler] = "DebugReportObjectTypeSampler"
}
