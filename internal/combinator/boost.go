package combinator

import (
	"irecore/internal/attribute"
	"irecore/internal/docid"
	"irecore/internal/iterator"
)

// Boost wraps a doc iterator and multiplies its score by a constant
// factor, applied at evaluation time (§4.10) — it never touches the
// wrapped iterator's own score attribute eagerly, preserving laziness.
type Boost struct {
	inner  iterator.DocIterator
	factor float32
	store  *attribute.Store
}

// NewBoost wraps inner, scaling whatever score it attaches by factor.
func NewBoost(inner iterator.DocIterator, factor float32) *Boost {
	b := &Boost{inner: inner, factor: factor, store: attribute.NewStore()}
	b.rebuildAttributes()
	return b
}

// rebuildAttributes copies through the inner iterator's attributes,
// substituting a boosted Score when one is present.
func (b *Boost) rebuildAttributes() {
	b.store.Clear()
	if c := attribute.ViewGet(b.inner.Attributes(), attribute.CostKey); c != nil {
		attribute.Emplace(b.store, attribute.CostKey, *c)
	}
	if sc := attribute.ViewGet(b.inner.Attributes(), attribute.ScoreKey); sc != nil {
		inner := sc.Evaluate
		factor := b.factor
		attribute.Emplace(b.store, attribute.ScoreKey, attribute.Score{
			Evaluate: func(buf []byte) {
				inner(buf)
				scaleFloat32Buckets(buf, factor)
			},
		})
	}
	if f := attribute.ViewGet(b.inner.Attributes(), attribute.FrequencyKey); f != nil {
		attribute.Emplace(b.store, attribute.FrequencyKey, *f)
	}
	if d := attribute.ViewGet(b.inner.Attributes(), attribute.DocumentKey); d != nil {
		attribute.Emplace(b.store, attribute.DocumentKey, *d)
	}
}

// scaleFloat32Buckets scales every 4-byte float32 bucket in buf by factor
// in place. Score buffers are laid out as a sequence of fixed-size
// buckets (§4.8); a generic Boost has no scorer-specific decoder, so it
// assumes the common case of float32 buckets throughout.
func scaleFloat32Buckets(buf []byte, factor float32) {
	for i := 0; i+4 <= len(buf); i += 4 {
		v := getFloat32Bucket(buf[i : i+4])
		putFloat32Bucket(buf[i:i+4], v*factor)
	}
}

func (b *Boost) Value() docid.ID { return b.inner.Value() }

func (b *Boost) Attributes() attribute.View { return attribute.ViewOf(b.store) }

func (b *Boost) Next() bool {
	ok := b.inner.Next()
	b.rebuildAttributes()
	return ok
}

func (b *Boost) Seek(target docid.ID) docid.ID {
	v := b.inner.Seek(target)
	b.rebuildAttributes()
	return v
}
