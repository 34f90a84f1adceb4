package vellum

// Buffer is the addressable façade over a piece-rope buffer (BUF): it owns
// one FileBackingStore and a single rope tree, tracks a byte cursor and a
// cached logical size, and translates cursor-relative operations into
// absolute positions on the tree. The RN tree underneath never clamps;
// clamping positions into [0, size] is this layer's job alone.
type Buffer struct {
	fbs  *FileBackingStore
	root *ropeNode

	position     int64
	size         int64
	originalSize int64
}

// Open opens path (creating it if absent) and builds a buffer whose initial
// tree is a single original leaf spanning the whole file.
func Open(path string) (*Buffer, error) {
	fbs, err := OpenFileBackingStore(path)
	if err != nil {
		return nil, err
	}
	length, err := fbs.Length()
	if err != nil {
		fbs.Close()
		return nil, err
	}
	return &Buffer{
		fbs:          fbs,
		root:         newOriginalLeaf(0, length),
		originalSize: length,
		size:         length,
	}, nil
}

// Close releases the underlying file handle.
func (b *Buffer) Close() error {
	return b.fbs.Close()
}

// clamp restricts p to [0, size], the only place in the stack that clamps.
func (b *Buffer) clamp(p int64) int64 {
	if p < 0 {
		return 0
	}
	if p > b.size {
		return b.size
	}
	return p
}

// View reads up to count bytes starting at the cursor. It does not move
// the cursor.
func (b *Buffer) View(count int) ([]byte, error) {
	return b.ViewRange(b.position, int64(count))
}

// ViewRange reads up to count bytes starting at the given absolute
// position, regardless of the cursor.
func (b *Buffer) ViewRange(pos, count int64) ([]byte, error) {
	var out []byte
	if err := b.root.view(pos, count, &out, b.fbs); err != nil {
		return nil, err
	}
	return out, nil
}

// ViewAll returns the whole current logical content of the buffer.
func (b *Buffer) ViewAll() ([]byte, error) {
	return b.ViewRange(0, b.size)
}

// Size returns the cached logical size of the buffer.
func (b *Buffer) Size() int64 {
	return b.size
}

// Replace overwrites len(data) bytes starting at the cursor, extending the
// buffer if the write runs past the current size. Advances the cursor by
// len(data).
func (b *Buffer) Replace(data []byte) error {
	if err := b.root.replace(b.position, data); err != nil {
		return err
	}
	b.position += int64(len(data))
	if b.position > b.size {
		b.size = b.position
	}
	return nil
}

// Insert inserts len(data) bytes at the cursor, shifting later content
// right. Advances the cursor by len(data) and grows size by the same
// amount.
func (b *Buffer) Insert(data []byte) error {
	if err := b.root.insert(b.position, data); err != nil {
		return err
	}
	n := int64(len(data))
	b.position += n
	b.size += n
	return nil
}

// Erase deletes up to count bytes starting at the cursor. The cursor does
// not move.
func (b *Buffer) Erase(count int64) error {
	if err := b.root.erase(b.position, count); err != nil {
		return err
	}
	room := b.size - b.position
	if count < room {
		b.size -= count
	} else {
		b.size -= room
	}
	return nil
}

// Flush writes the rope back to the file in place, truncating if the
// buffer has shrunk below its last flushed length, then forces the write
// to the OS. After this, original_size tracks the new size and the root
// collapses to a single original leaf spanning the whole file.
func (b *Buffer) Flush() error {
	b.fbs.ToStart()
	if err := b.root.flush(b.fbs, 0); err != nil {
		return err
	}
	if b.size < b.originalSize {
		if err := b.fbs.TruncateHere(); err != nil {
			return err
		}
	}
	if err := b.fbs.Flush(); err != nil {
		return err
	}
	b.originalSize = b.size
	return nil
}

// Tell returns the current cursor position.
func (b *Buffer) Tell() int64 {
	return b.position
}

// ToStart moves the cursor to 0.
func (b *Buffer) ToStart() {
	b.position = 0
}

// ToEnd moves the cursor to size.
func (b *Buffer) ToEnd() error {
	b.position = b.size
	return nil
}

// Go moves the cursor by delta relative to its current position, clamped
// to [0, size].
func (b *Buffer) Go(delta int64) {
	b.position = b.clamp(b.position + delta)
}
