// Package segment implements the field/segment reader model (§4.7): an
// immutable, point-in-time view over one segment's fields, columns, and
// live-document mask. Segment construction (flush/merge) is out of scope
// — Reader is always built from already-prepared field and column data,
// the same way a directory/format implementation would hand one back.
package segment

import (
	"fmt"

	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/term"
)

// Column is a columnar (stored/doc-value) reader for one field, keyed by
// local doc id, used for things like per-document norms or sort values
// that live outside the inverted term dictionary.
type Column interface {
	Value(local uint32) (any, bool)
}

// Reader is a read-only view over one segment. All doc ids it accepts and
// returns are segment-local and 0-based (§4.7); callers translate to/from
// the global docid.ID space at the index-reader boundary.
type Reader struct {
	id        string
	docCount  uint32
	mask      *DocMask
	fields    map[string]term.Reader
	fieldIDs  map[uint32]string
	columns   map[string]Column
	columnIDs map[uint32]string
}

// Builder assembles a Reader. It exists because segment construction
// (flush/merge) is out of this module's scope (spec.md §1) — callers
// (tests, or a future writer) populate one field/column at a time and
// call Build.
type Builder struct {
	r *Reader
}

// NewBuilder starts a segment with the given id and total (undeleted)
// local doc count.
func NewBuilder(id string, docCount uint32) *Builder {
	return &Builder{r: &Reader{
		id:        id,
		docCount:  docCount,
		mask:      NewDocMask(),
		fields:    make(map[string]term.Reader),
		fieldIDs:  make(map[uint32]string),
		columns:   make(map[string]Column),
		columnIDs: make(map[uint32]string),
	}}
}

// WithField registers a field's term dictionary under both its name and
// stable numeric id.
func (b *Builder) WithField(id uint32, name string, r term.Reader) *Builder {
	b.r.fields[name] = r
	b.r.fieldIDs[id] = name
	return b
}

// WithColumn registers a columnar reader under both its name and id.
func (b *Builder) WithColumn(id uint32, name string, c Column) *Builder {
	b.r.columns[name] = c
	b.r.columnIDs[id] = name
	return b
}

// Delete marks local as not live, prior to Build (e.g. seeding a fixture
// with pre-existing deletes).
func (b *Builder) Delete(local uint32) *Builder {
	b.r.mask.Delete(local)
	return b
}

// Build finalizes the Reader.
func (b *Builder) Build() *Reader { return b.r }

// ID returns the segment's stable identifier.
func (r *Reader) ID() string { return r.id }

// DocCount is the total number of local doc ids ever assigned in this
// segment, live or deleted.
func (r *Reader) DocCount() uint32 { return r.docCount }

// LiveDocsCount is DocCount minus the number of masked-out documents.
func (r *Reader) LiveDocsCount() uint32 {
	deleted := r.mask.Count()
	if deleted > uint64(r.docCount) {
		return 0
	}
	return r.docCount - uint32(deleted)
}

// Live reports whether local is a live (non-deleted) doc id.
func (r *Reader) Live(local uint32) bool {
	return local < r.docCount && !r.mask.Deleted(local)
}

// Mask exposes the segment's deletion bitmap.
func (r *Reader) Mask() *DocMask { return r.mask }

// Field looks up a term reader by field name. ok is false if the segment
// carries no such field.
func (r *Reader) Field(name string) (term.Reader, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// FieldByID looks up a term reader by the field's stable numeric id.
func (r *Reader) FieldByID(id uint32) (term.Reader, error) {
	name, ok := r.fieldIDs[id]
	if !ok {
		return nil, fmt.Errorf("segment %s: no field with id %d", r.id, id)
	}
	return r.fields[name], nil
}

// Column looks up a columnar reader by field name.
func (r *Reader) Column(name string) (Column, bool) {
	c, ok := r.columns[name]
	return c, ok
}

// ColumnByID looks up a columnar reader by numeric id.
func (r *Reader) ColumnByID(id uint32) (Column, error) {
	name, ok := r.columnIDs[id]
	if !ok {
		return nil, fmt.Errorf("segment %s: no column with id %d", r.id, id)
	}
	return r.columns[name], nil
}

// LiveIterator exposes the segment's local doc ids, in ascending order,
// skipping masked-out documents — the base set most filters intersect
// against (conceptually "all docs" restricted by deletions).
func (r *Reader) LiveIterator() *LiveIterator {
	store := attribute.NewStore()
	attribute.Emplace(store, attribute.CostKey, attribute.Cost{Estimate: uint64(r.LiveDocsCount())})
	return &LiveIterator{reader: r, next: 0, value: docid.Invalid, store: store}
}

// LiveIterator walks a segment's live local doc ids and satisfies the
// full iterator.DocIterator contract, so it can stand in directly as an
// "all documents" base iterator (e.g. for a match-all filter).
type LiveIterator struct {
	reader *Reader
	next   uint32
	value  docid.ID
	store  *attribute.Store
}

func (it *LiveIterator) Value() docid.ID { return it.value }

func (it *LiveIterator) Attributes() attribute.View { return attribute.ViewOf(it.store) }

func (it *LiveIterator) Next() bool {
	if it.value == docid.EOF {
		return false
	}
	for it.next < it.reader.docCount {
		local := it.next
		it.next++
		if !it.reader.mask.Deleted(local) {
			it.value = docid.Min + docid.ID(local)
			return true
		}
	}
	it.value = docid.EOF
	return false
}

// Seek advances to the first live doc id >= target, never moving
// backward. Seek(Invalid) from the pre-first state behaves as Seek(Min).
func (it *LiveIterator) Seek(target docid.ID) docid.ID {
	if it.value == docid.EOF {
		return docid.EOF
	}
	if it.value != docid.Invalid && target <= it.value {
		return it.value
	}
	if target == docid.Invalid {
		if it.value != docid.Invalid {
			return it.value
		}
		target = docid.Min
	}
	it.next = target
	if it.Next() {
		return it.value
	}
	return docid.EOF
}
