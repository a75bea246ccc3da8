package maplayer

import (
	"errors"
	"sort"
	"sync"
)

// ErrLayerNotAttached возвращается при снятии слоя, которого уже нет на поверхности
var ErrLayerNotAttached = errors.New("maplayer: layer is not attached")

// Surface - поверхность, на которую прикрепляются слои
type Surface interface {
	Attach(overlay *Overlay) error
	Detach(id uint64) error
}

// Canvas - поверхность в памяти, с которой читает локальный API
type Canvas struct {
	mu     sync.RWMutex
	layers map[uint64]*Overlay
}

func NewCanvas() *Canvas {
	return &Canvas{layers: make(map[uint64]*Overlay)}
}

func (c *Canvas) Attach(overlay *Overlay) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layers[overlay.ID] = overlay
	return nil
}

func (c *Canvas) Detach(id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.layers[id]; !ok {
		return ErrLayerNotAttached
	}
	delete(c.layers, id)
	return nil
}

// Layers возвращает прикрепленные слои по возрастанию id
func (c *Canvas) Layers() []*Overlay {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Overlay, 0, len(c.layers))
	for _, l := range c.layers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
