package shared

// Disposable is implemented by element values that own an external resource.
//
// A list with auto delete enabled disposes elements when it drops them in
// bulk: on Clear, and when the last handle releases the store. Erase, SetAt,
// and Iterator.Set never dispose, the caller takes ownership of values it
// removes or replaces.
//
// Dispose is called on every dropped element, including zero values.
// Implementations on pointer receivers must tolerate a nil receiver if nil
// elements may be stored.
//
// Detaching copies element values, not pointees, so disposal through one
// handle invalidates pointees still referenced by detached copies. Enable
// auto delete only on lists that exclusively own what their elements point
// to.
type Disposable interface {
	Dispose()
}

func dispose[T any](value T) bool {
	if d, ok := any(value).(Disposable); ok {
		d.Dispose()
		return true
	}
	return false
}
