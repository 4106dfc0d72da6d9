package pawlist

import (
	"fmt"
	"sync"
)

// Object is a reference-counted value stored in a Heap
type Object struct {
	heap       *Heap
	id         int
	typ        ObjectType
	data       interface{}
	refCount   int // guarded by heap.mu
	destructor func(*Object) error
}

// HeapStats counts reference traffic on a heap. Overreleased and Invalid
// stay at zero while every owner follows the acquire/release discipline.
type HeapStats struct {
	Live         int // objects still stored
	Stored       int // objects ever stored
	Acquires     int
	Releases     int
	Freed        int
	Overreleased int // releases of an object that was already freed
	Invalid      int // acquires of an object that was already freed
}

// Heap is the global reference-counted object store. Objects are handed
// out with a refcount of one owned by the caller.
type Heap struct {
	mu      sync.RWMutex
	objects map[int]*Object
	nextID  int
	logger  *Logger
	stats   HeapStats
}

// NewHeap creates an empty heap configured by cfg (nil means defaults)
func NewHeap(cfg *Config) *Heap {
	return &Heap{
		objects: make(map[int]*Object),
		nextID:  1,
		logger:  NewLoggerFromConfig(cfg),
	}
}

// Logger returns the heap's logger
func (h *Heap) Logger() *Logger {
	return h.logger
}

// storeObject stores an object with an initial refcount of 0.
// The constructor that calls it must claim ownership.
func (h *Heap) storeObject(typ ObjectType, data interface{}) *Object {
	h.mu.Lock()
	defer h.mu.Unlock()

	obj := &Object{heap: h, id: h.nextID, typ: typ, data: data}
	h.nextID++
	h.objects[obj.id] = obj
	h.stats.Stored++

	h.logger.DebugCat(CatMemory, "Stored object %d (type: %s, refcount: 0)", obj.id, typ)
	return obj
}

// newOwned stores an object and claims the caller's reference
func (h *Heap) newOwned(typ ObjectType, data interface{}) *Object {
	obj := h.storeObject(typ, data)
	h.incrementObjectRefCount(obj)
	return obj
}

// incrementObjectRefCount increments the reference count for an object
func (h *Heap) incrementObjectRefCount(obj *Object) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if stored, exists := h.objects[obj.id]; exists && stored == obj {
		obj.refCount++
		h.stats.Acquires++
		h.logger.DebugCat(CatMemory, "Object %d refcount incremented to %d (type: %s)", obj.id, obj.refCount, obj.typ)
		return
	}
	h.stats.Invalid++
	h.logger.WarnCat(CatMemory, "Attempted to increment refcount for freed object %d", obj.id)
}

// decrementObjectRefCount decrements the reference count and frees if zero.
// Teardown runs without the heap lock held since destructors and nested
// lists call back into the heap.
func (h *Heap) decrementObjectRefCount(obj *Object, sink *FailureSink) {
	h.mu.Lock()
	stored, exists := h.objects[obj.id]
	if !exists || stored != obj {
		h.stats.Overreleased++
		h.mu.Unlock()
		h.logger.WarnCat(CatMemory, "Attempted to decrement refcount for freed object %d", obj.id)
		return
	}

	obj.refCount--
	h.stats.Releases++
	h.logger.DebugCat(CatMemory, "Object %d refcount decremented to %d (type: %s)", obj.id, obj.refCount, obj.typ)
	if obj.refCount > 0 {
		h.mu.Unlock()
		return
	}
	delete(h.objects, obj.id)
	h.stats.Freed++
	h.mu.Unlock()

	h.teardown(obj, sink)
	h.logger.DebugCat(CatMemory, "Object %d freed (refcount reached 0)", obj.id)
}

// teardown runs the pre-destruction hook of object-like values, then
// releases nested list contents. A failing hook does not stop the rest.
func (h *Heap) teardown(obj *Object, sink *FailureSink) {
	if obj.destructor != nil {
		if err := obj.destructor(obj); err != nil {
			h.logger.ErrorCat(CatMemory, "Destructor for object %d failed: %v", obj.id, err)
			sink.Report(fmt.Errorf("destructor for %s #%d: %w", obj.Class(), obj.id, err))
		}
	}
	if list, ok := obj.data.(*List); ok && list != nil {
		list.ReleaseAll(sink)
		list.Free()
	}
}

// Lookup retrieves an object from the store without affecting refcount
func (h *Heap) Lookup(id int) (*Object, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	obj, exists := h.objects[id]
	return obj, exists
}

// Stats returns a snapshot of the heap counters
func (h *Heap) Stats() HeapStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	stats := h.stats
	stats.Live = len(h.objects)
	return stats
}

// Live returns the number of objects not yet freed
func (h *Heap) Live() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.objects)
}

// Nil returns a new present-but-empty value
func (h *Heap) Nil() *Object { return h.newOwned(ObjNil, nil) }

// Bool returns a new boolean value
func (h *Heap) Bool(v bool) *Object { return h.newOwned(ObjBool, v) }

// Int returns a new integer value
func (h *Heap) Int(v int64) *Object { return h.newOwned(ObjInt, v) }

// Float returns a new float value
func (h *Heap) Float(v float64) *Object { return h.newOwned(ObjFloat, v) }

// Str returns a new string value
func (h *Heap) Str(v string) *Object { return h.newOwned(ObjString, v) }

// Instance returns a new object-like value. destructor, if not nil, runs
// once when the last reference is released, before normal teardown.
func (h *Heap) Instance(class string, destructor func(*Object) error) *Object {
	obj := h.storeObject(ObjInstance, class)
	obj.destructor = destructor
	h.incrementObjectRefCount(obj)
	return obj
}

// ListValue wraps l as a value. The returned object owns l and releases
// its contents when freed.
func (h *Heap) ListValue(l *List) *Object {
	if l.logger == defaultLogger {
		l.logger = h.logger
	}
	return h.newOwned(ObjList, l)
}

// NewList returns a list that logs through the heap and owns vals
func (h *Heap) NewList(vals ...Value) *List {
	l := NewList()
	l.logger = h.logger
	for _, v := range vals {
		l.Push(v)
	}
	return l
}

// Ints returns a list of freshly stored integers
func (h *Heap) Ints(vs ...int64) *List {
	l := h.NewList()
	for _, v := range vs {
		l.Push(h.Int(v))
	}
	return l
}

// Acquire claims another reference to o
func (o *Object) Acquire() Value {
	o.heap.incrementObjectRefCount(o)
	return o
}

// Release gives up one reference; the last one frees the object
func (o *Object) Release(sink *FailureSink) {
	o.heap.decrementObjectRefCount(o, sink)
}

// Order compares o with other using the default ordering
func (o *Object) Order(other Value) int {
	return compareValues(o, other)
}

// IsMissing is always false for heap objects
func (o *Object) IsMissing() bool { return false }

// IsObjectLike reports whether o is an instance with teardown semantics
func (o *Object) IsObjectLike() bool { return o.typ == ObjInstance }

// Contents returns the list held by a list value, or nil
func (o *Object) Contents() *List {
	if l, ok := o.data.(*List); ok {
		return l
	}
	return nil
}

// ID returns the object's heap ID
func (o *Object) ID() int { return o.id }

// Type returns the object's type
func (o *Object) Type() ObjectType { return o.typ }

// RefCount returns the current reference count
func (o *Object) RefCount() int {
	o.heap.mu.RLock()
	defer o.heap.mu.RUnlock()
	return o.refCount
}

// Data returns the raw Go value behind o
func (o *Object) Data() interface{} { return o.data }

// Class returns the class name of an instance, or the type name otherwise
func (o *Object) Class() string {
	if name, ok := o.data.(string); ok && o.typ == ObjInstance {
		return name
	}
	return o.typ.String()
}

// AsInt returns the integer held by o
func (o *Object) AsInt() (int64, bool) {
	v, ok := o.data.(int64)
	return v, ok && o.typ == ObjInt
}

// AsFloat returns o as a float for either numeric type
func (o *Object) AsFloat() (float64, bool) {
	switch v := o.data.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// AsString returns the string held by o
func (o *Object) AsString() (string, bool) {
	v, ok := o.data.(string)
	return v, ok && o.typ == ObjString
}

// String returns a string representation for display
func (o *Object) String() string {
	return FormatValue(o)
}
