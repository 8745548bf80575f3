package ecs

import "github.com/milk9111/scroller/ecs/component"

// ForEach visits every entity carrying a, in store order. The callback must
// not add or remove components of kind a.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a)
	if sa == nil {
		return
	}
	for i, id := range sa.dense {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		fn(e, sa.values[i])
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, a), storeFor(w, b)
	if sa == nil || sb == nil {
		return
	}
	for i, id := range sa.dense {
		vb, ok := sb.get(id)
		if !ok {
			continue
		}
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		fn(e, sa.values[i], vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeFor(w, a), storeFor(w, b), storeFor(w, c)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for i, id := range sa.dense {
		vb, ok := sb.get(id)
		if !ok {
			continue
		}
		vc, ok := sc.get(id)
		if !ok {
			continue
		}
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		fn(e, sa.values[i], vb, vc)
	}
}
