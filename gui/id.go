package gui

import "hash/fnv"

// ID identifies a widget across frames. It is derived from the label, the
// enclosing ID scope and the call order within the frame, so a widget keeps
// its ID as long as the UI is built in the same order.
type ID uint64

// GetID returns the ID for the next widget called label.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// PushID opens an ID scope; widgets inside get IDs distinct from same-named
// widgets elsewhere. Canvases use their index as scope.
func (ctx *Context) PushID(n int) {
	ctx.idCounter++
	id := ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | uint64(n)&0xFFFF)
	ctx.idStack = append(ctx.idStack, id)
}

func (ctx *Context) PopID() {
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
}

// CurrentID returns the innermost scope, or 0 at the top level.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
