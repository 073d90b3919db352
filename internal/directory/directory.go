// Package directory defines the storage-boundary contracts the core
// consumes only as interfaces (§6): a byte-stream Directory, a
// ColumnStore values-reader, and a Format bundle of codec factories. The
// core calls only their read side; concrete on-disk codecs are out of
// scope (§1) — this package additionally ships one in-memory reference
// implementation used by this module's own tests.
package directory

import (
	"io"

	"irecore/internal/docid"
)

// Directory is an opaque byte-stream store addressed by name, with
// positional reads (§6). Implementations may back it with a filesystem,
// memory, or a remote object store; none of those concrete backends are
// this module's concern.
type Directory interface {
	OpenInput(name string) (Input, error)
	CreateOutput(name string) (Output, error)
	Exists(name string) bool
	Length(name string) (int64, error)
	Remove(name string) error
	Rename(oldName, newName string) error
	Sync(name string) error
}

// Input is a readable, positionable byte stream.
type Input interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
}

// Output is a writable byte stream, flushed and closed by the writer.
type Output interface {
	io.Writer
	io.Closer
}

// ColumnStore resolves a column id to a function from doc id to its
// stored value, used by norms and stored columns (§6). A false second
// return means the document has no value in that column.
type ColumnStore interface {
	ValuesReader(columnID uint32) (func(id docid.ID) ([]byte, bool), error)
}

// Format bundles the read-side codec factories the core calls against a
// Directory to materialize segment/field/mask/columnstore readers. The
// core never calls a Format's write side (§6: "the core calls only the
// read side").
type Format interface {
	OpenSegmentReader(dir Directory, segmentID string) (SegmentCodec, error)
}

// SegmentCodec is the read-side surface a Format's segment reader
// exposes: field-data/postings access plus the segment's column store
// and document mask, all opaque to the core beyond this contract.
type SegmentCodec interface {
	FieldNames() []string
	Columns() ColumnStore
	DocMask() ([]byte, error)
}
