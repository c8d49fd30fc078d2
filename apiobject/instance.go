package apiobject

import (
	"context"
	"fmt"
	"io"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// InstanceCreateFlags indicate specific instance behaviors to activate or deactivate
type InstanceCreateFlags int32

var instanceCreateFlagsMapping = common.NewFlagStringMapping[InstanceCreateFlags]()

func (f InstanceCreateFlags) Register(str string) {
	instanceCreateFlagsMapping.Register(f, str)
}
func (f InstanceCreateFlags) String() string {
	return instanceCreateFlagsMapping.FlagsToString(f)
}

const (
	// InstanceCreateExternallySynchronized ensures that this instance's live-object
	// registry will not be synchronized internally. The consumer must guarantee it is
	// used from only one thread at a time or is synchronized by some other mechanism,
	// but performance may improve because internal mutexes are not used.
	InstanceCreateExternallySynchronized InstanceCreateFlags = 1 << iota
)

func init() {
	InstanceCreateExternallySynchronized.Register("InstanceCreateExternallySynchronized")
}

type InstanceCreateOptions struct {
	Flags InstanceCreateFlags
}

// Instance is the top-level context every API object family hangs off of.
// It is itself a dispatchable object whose Instance() accessor returns the
// receiver.
type Instance struct {
	Dispatchable

	logger  *slog.Logger
	objects registry
}

// NewInstance creates the root context. A nil logger discards all output.
func NewInstance(logger *slog.Logger, options InstanceCreateOptions) *Instance {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	instance := &Instance{
		logger: logger,
	}
	instance.objects.init(options.Flags&InstanceCreateExternallySynchronized == 0)
	instance.Dispatchable.Init(instance, ObjectTypeInstance, DebugReportObjectTypeInstance, Hooks{})
	return instance
}

func (i *Instance) Logger() *slog.Logger {
	return i.logger
}

// DebugExtensions lists the debug-related extensions this layer understands.
func (i *Instance) DebugExtensions() []string {
	return []string{ext_debug_utils.ExtensionName}
}

// ObjectForHandle returns the live object registered under a handle value,
// if any.
func (i *Instance) ObjectForHandle(handle uintptr) (Object, bool) {
	return i.objects.Get(handle)
}

// LiveObjectCount reports how many objects created under this instance are
// still alive, including the instance itself.
func (i *Instance) LiveObjectCount() int {
	return i.objects.Count()
}

// Destroy drops the client's reference to the instance. Objects still alive
// at this point are client bugs and are logged individually.
func (i *Instance) Destroy() {
	i.objects.Each(func(handle uintptr, object Object) {
		if handle == i.handle {
			return
		}
		i.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED OBJECT] object still alive at instance destruction",
			slog.String("type", object.ObjectType().String()),
			slog.String("debugName", object.DebugName()))
	})
	i.Release()
}

func (i *Instance) registerObject(handle uintptr, object Object) {
	i.objects.Add(handle, object)
}

func (i *Instance) unregisterObject(handle uintptr) {
	i.objects.Remove(handle)
}

type statsEntry struct {
	handle uintptr
	object Object
}

// BuildStatsString dumps the instance's live objects as a JSON document.
func (i *Instance) BuildStatsString() string {
	var entries []statsEntry
	i.objects.Each(func(handle uintptr, object Object) {
		entries = append(entries, statsEntry{handle: handle, object: object})
	})
	slices.SortFunc(entries, func(a, b statsEntry) bool {
		return a.handle < b.handle
	})

	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("LiveObjectCount").Int(len(entries))

	arrayState := obj.Name("Objects").Array()
	for _, entry := range entries {
		entryObj := arrayState.Object()
		entryObj.Name("Handle").String(fmt.Sprintf("%#x", entry.handle))
		entryObj.Name("Type").String(entry.object.ObjectType().String())
		entryObj.Name("DebugName").String(entry.object.DebugName())
		entryObj.End()
	}
	arrayState.End()

	obj.End()
	return string(writer.Bytes())
}
