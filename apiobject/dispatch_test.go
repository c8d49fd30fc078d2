package apiobject_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/icd/apiobject"
	"github.com/vkngwrapper/icd/probe"
)

// loaderHeader mirrors the two-word layout the external loader reads from a
// dispatchable handle.
type loaderHeader struct {
	Magic  uintptr
	Object unsafe.Pointer
}

func TestDispatchableHandleRoundTrip(t *testing.T) {
	device := &apiobject.Dispatchable{}
	device.Init(nil, apiobject.ObjectTypeDevice, apiobject.DebugReportObjectTypeDevice, apiobject.Hooks{})

	for i := 0; i < 3; i++ {
		handle := device.VkHandle()
		require.Same(t, device, apiobject.DispatchableFromHandle(handle))

		header := (*loaderHeader)(handle)
		require.Equal(t, apiobject.LoaderMagic, header.Magic)
	}
}

func TestDispatchableHandleRestampsMagic(t *testing.T) {
	queue := &apiobject.Dispatchable{}
	queue.Init(nil, apiobject.ObjectTypeQueue, apiobject.DebugReportObjectTypeQueue, apiobject.Hooks{})

	handle := queue.VkHandle()
	header := (*loaderHeader)(handle)

	// A pooling loader may scribble over the header between calls; every
	// retrieval must re-assert the magic.
	header.Magic = 0
	restamped := queue.VkHandle()
	require.Equal(t, handle, restamped)
	require.Equal(t, apiobject.LoaderMagic, header.Magic)
	require.Same(t, queue, apiobject.DispatchableFromHandle(restamped))
}

func TestDispatchableHandleStable(t *testing.T) {
	commandBuffer := &apiobject.Dispatchable{}
	commandBuffer.Init(nil, apiobject.ObjectTypeCommandBuffer, apiobject.DebugReportObjectTypeCommandBuffer, apiobject.Hooks{})

	first := commandBuffer.VkHandle()
	second := commandBuffer.VkHandle()
	require.Equal(t, first, second)
}

func TestDispatchableFromHandleNil(t *testing.T) {
	require.Nil(t, apiobject.DispatchableFromHandle(nil))
}

func TestDispatchableFromForeignHandle(t *testing.T) {
	reader := probe.DefaultReader()

	physicalDevice := &apiobject.Dispatchable{}
	physicalDevice.Init(nil, apiobject.ObjectTypePhysicalDevice, apiobject.DebugReportObjectTypePhysicalDevice, apiobject.Hooks{})

	object, ok := apiobject.DispatchableFromForeignHandle(reader, physicalDevice.VkHandle())
	require.True(t, ok)
	require.Same(t, physicalDevice, object)

	object, ok = apiobject.DispatchableFromForeignHandle(reader, nil)
	require.False(t, ok)
	require.Nil(t, object)

	// A header this system never wrote: readable memory, but the
	// back-pointer word is zero.
	var foreign loaderHeader
	object, ok = apiobject.DispatchableFromForeignHandle(reader, unsafe.Pointer(&foreign))
	require.False(t, ok)
	require.Nil(t, object)
}
