package vellum

// Appendable is the capability set exposed by every backend: positioned
// view, overwrite-and-extend replace, position control, and flush. The
// direct-to-file backend (DirectBuffer) implements only this much.
type Appendable interface {
	View(count int) ([]byte, error)
	ViewRange(pos, count int64) ([]byte, error)
	ViewAll() ([]byte, error)
	Size() int64
	Replace(data []byte) error
	Flush() error
	Tell() int64
	ToStart()
	ToEnd() error
	Go(delta int64)
}

// Insertable extends Appendable with shifting insert and erase. Only the
// rope-backed Buffer implements this; the direct backend does not, since it
// has no cheap way to shift bytes without rewriting the tail of the file.
type Insertable interface {
	Appendable
	Insert(data []byte) error
	Erase(count int64) error
}

var (
	_ Appendable = (*DirectBuffer)(nil)
	_ Insertable = (*Buffer)(nil)
)
