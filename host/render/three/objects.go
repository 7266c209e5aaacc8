//go:build js

package three

import (
	"sync"
	"syscall/js"

	"github.com/nobonobo/bear-vs-witch/scene"
)

// Objects maps loaded nodes to the three.js objects they came from.
type Objects struct {
	mu      sync.Mutex
	handles map[scene.NodeID]js.Value
}

func NewObjects() *Objects {
	return &Objects{
		handles: make(map[scene.NodeID]js.Value),
	}
}

func (o *Objects) put(id scene.NodeID, object js.Value) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handles[id] = object
}

func (o *Objects) get(id scene.NodeID) (js.Value, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	object, ok := o.handles[id]
	return object, ok
}
