package core

// Object is updated once per frame during the update phase until removed.
type Object interface {
	Update(e *Engine, dt float64)
}

// UpdateFunc adapts a function to Object.
type UpdateFunc func(e *Engine, dt float64)

func (f UpdateFunc) Update(e *Engine, dt float64) { f(e, dt) }

type objectEntry struct {
	id  uint64
	obj Object
}

// Objects is the ordered list of canvas objects.
type Objects struct {
	list   []objectEntry
	nextID uint64
}

// Add appends o and returns a function that removes it again. The remove
// function is idempotent and safe to call from inside Update.
func (ol *Objects) Add(o Object) (remove func()) {
	ol.nextID++
	id := ol.nextID
	ol.list = append(ol.list, objectEntry{id: id, obj: o})
	return func() { ol.remove(id) }
}

func (ol *Objects) remove(id uint64) {
	for i, cur := range ol.list {
		if cur.id == id {
			// copy so an in-flight ForEach snapshot is left untouched
			next := make([]objectEntry, 0, len(ol.list)-1)
			next = append(next, ol.list[:i]...)
			ol.list = append(next, ol.list[i+1:]...)
			return
		}
	}
}

func (ol *Objects) Len() int { return len(ol.list) }

// ForEach visits a snapshot of the list taken at call time.
func (ol *Objects) ForEach(f func(Object)) {
	for _, o := range ol.list {
		f(o.obj)
	}
}

// Update runs the update phase for every object.
func (ol *Objects) Update(e *Engine, dt float64) {
	ol.ForEach(func(o Object) { o.Update(e, dt) })
}
