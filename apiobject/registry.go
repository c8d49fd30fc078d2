package apiobject

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/icd/internal/utils"
)

// registry tracks every live object created under an instance, keyed by the
// object's handle value. Objects register during Init and unregister when
// their reference count reaches zero, so the registry never holds the last
// reference to anything.
type registry struct {
	mutex   utils.OptionalRWMutex
	objects *swiss.Map[uintptr, Object]
}

func (r *registry) init(synchronized bool) {
	r.mutex.UseMutex = synchronized
	r.objects = swiss.NewMap[uintptr, Object](42)
}

func (r *registry) Add(handle uintptr, object Object) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.objects.Put(handle, object)
}

func (r *registry) Remove(handle uintptr) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.objects.Delete(handle)
}

func (r *registry) Get(handle uintptr) (Object, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.objects.Get(handle)
}

func (r *registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.objects.Count()
}

func (r *registry) Each(visit func(handle uintptr, object Object)) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	r.objects.Iter(func(handle uintptr, object Object) bool {
		visit(handle, object)
		return false
	})
}
