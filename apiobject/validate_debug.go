//go:build debug_icd_utils

package apiobject

import "fmt"

// debugValidateRefCount panics if a release drove the reference count below
// zero. This method no-ops unless the debug_icd_utils build tag is present.
func debugValidateRefCount(count int64) {
	if count < 0 {
		panic(fmt.Sprintf("object reference count released below zero: %d", count))
	}
}

// debugValidateICDRef panics if a dispatchable handle header carries no
// back-pointer, which means the header was never written by this system.
// This method no-ops unless the debug_icd_utils build tag is present.
func debugValidateICDRef(ref *icdRef) {
	if ref.object == nil {
		panic("dispatchable handle header has a nil back-pointer")
	}
}
