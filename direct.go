package vellum

// DirectBuffer is the trivial alternative backend: it bypasses the rope
// entirely and operates straight on the FileBackingStore, the way the
// original's FileTarget does. Replace always overwrites in place and
// extends the file past EOF when needed; it never shifts existing bytes,
// so DirectBuffer implements Appendable but not Insertable.
type DirectBuffer struct {
	fbs      *FileBackingStore
	position int64
	size     int64
}

// NewDirectBuffer opens path (creating it if absent) for direct editing.
func NewDirectBuffer(path string) (*DirectBuffer, error) {
	fbs, err := OpenFileBackingStore(path)
	if err != nil {
		return nil, err
	}
	length, err := fbs.Length()
	if err != nil {
		fbs.Close()
		return nil, err
	}
	return &DirectBuffer{fbs: fbs, size: length}, nil
}

// Close releases the underlying file handle.
func (d *DirectBuffer) Close() error {
	return d.fbs.Close()
}

func (d *DirectBuffer) clamp(p int64) int64 {
	if p < 0 {
		return 0
	}
	if p > d.size {
		return d.size
	}
	return p
}

// View reads up to count bytes starting at the cursor without moving it.
func (d *DirectBuffer) View(count int) ([]byte, error) {
	return d.ViewRange(d.position, int64(count))
}

// ViewRange reads up to count bytes starting at an absolute position.
func (d *DirectBuffer) ViewRange(pos, count int64) ([]byte, error) {
	if pos+count > d.size {
		count = d.size - pos
	}
	if count <= 0 {
		return nil, nil
	}
	buf := make([]byte, count)
	n, err := d.fbs.ReadAt(pos, int(count), buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// ViewAll returns the whole current file content.
func (d *DirectBuffer) ViewAll() ([]byte, error) {
	return d.ViewRange(0, d.size)
}

// Size returns the cached logical size of the file.
func (d *DirectBuffer) Size() int64 {
	return d.size
}

// Replace overwrites len(data) bytes at the cursor, extending the file
// past EOF as needed, and advances the cursor by len(data). Unlike
// Buffer.Replace, nothing downstream of the write point is shifted.
func (d *DirectBuffer) Replace(data []byte) error {
	d.fbs.Go(d.position - d.fbs.Tell())
	if err := d.fbs.Write(data); err != nil {
		return err
	}
	d.position += int64(len(data))
	if d.position > d.size {
		d.size = d.position
	}
	return nil
}

// Flush forces the write to the OS. There is no rope to collapse and no
// truncation to perform: every Replace already wrote in place.
func (d *DirectBuffer) Flush() error {
	return d.fbs.Flush()
}

// Tell returns the current cursor position.
func (d *DirectBuffer) Tell() int64 {
	return d.position
}

// ToStart moves the cursor to 0.
func (d *DirectBuffer) ToStart() {
	d.position = 0
}

// ToEnd moves the cursor to size.
func (d *DirectBuffer) ToEnd() error {
	d.position = d.size
	return nil
}

// Go moves the cursor by delta relative to its current position, clamped
// to [0, size].
func (d *DirectBuffer) Go(delta int64) {
	d.position = d.clamp(d.position + delta)
}
