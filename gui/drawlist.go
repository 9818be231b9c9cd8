package gui

import "sync"

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool. Return it with
// ReleaseDrawList once rendered.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList puts dl back into the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList collects one frame of UI geometry. A new command starts whenever
// the texture or the clip rectangle changes.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack   [][4]float32
	currentClip [4]float32
	textureID   uint32
	vtxOffset   uint32 // first vertex of the open command
	idxOffset   uint32 // first index of the open command
}

// Clear empties the list and keeps its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.vtxOffset = 0
	dl.idxOffset = 0
}

// PushClipRect clips everything added until the matching PopClipRect.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.newCommand()
}

func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.newCommand()
}

// SetTexture switches the texture for the primitives that follow.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.newCommand()
}

// newCommand closes the open command and starts one with the current
// texture and clip.
func (dl *DrawList) newCommand() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxOffset = uint32(len(dl.VtxBuffer))
	dl.idxOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxOffset
	}
}

// quad appends four vertices and two triangles. Indices are relative to
// the open command's first vertex.
func (dl *DrawList) quad(a, b, c, d Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.newCommand()
	}
	i := uint16(uint32(len(dl.VtxBuffer)) - dl.vtxOffset)
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.IdxBuffer = append(dl.IdxBuffer, i, i+1, i+2, i, i+2, i+3)
}

// AddRect fills a rectangle. Fully transparent colors are skipped.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.quad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws the four edges of a rectangle inside its bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddImage draws textureID stretched over the rectangle with the given UV
// corners, multiplied by tint. The previous texture is restored afterwards.
func (dl *DrawList) AddImage(textureID uint32, x, y, w, h float32, uv0, uv1 Vec2, tint uint32) {
	prev := dl.textureID
	dl.SetTexture(textureID)
	dl.quad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{uv0.X, uv0.Y}, Color: tint},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{uv1.X, uv0.Y}, Color: tint},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{uv1.X, uv1.Y}, Color: tint},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{uv0.X, uv1.Y}, Color: tint},
	)
	dl.SetTexture(prev)
}

// AddText draws ASCII text from the renderer's glyph atlas: a 16x6 grid of
// equal cells starting at space. The font texture must already be set.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charW, charH float32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	cw, ch := charW*scale, charH*scale
	i := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		g := int(r - 32)
		col, row := float32(g%16), float32(g/16)
		u0, v0 := col/16, row/6
		u1, v1 := (col+1)/16, (row+1)/6

		px := x + float32(i)*cw
		dl.quad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		i++
	}
}

// InsertRect puts a filled rectangle in front of everything already
// recorded, so it draws underneath. Panels use it for their background once
// the content size is known.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	if len(dl.CmdBuffer) == 0 {
		// keep an open command after the inserted one
		dl.newCommand()
	}
	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Indices are command-relative; only the offsets shift.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.vtxOffset += 4
	dl.idxOffset += 6

	dl.CmdBuffer = append([]DrawCmd{{ElemCount: 6, ClipRect: dl.currentClip}}, dl.CmdBuffer...)
}

// Finalize closes the last command and drops empty ones. Call it once
// before handing the list to a renderer.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
