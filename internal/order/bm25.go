package order

import (
	"fmt"
	"math"

	"irecore/internal/attribute"
	"irecore/internal/segment"
)

// Default BM25 parameters, as used throughout the literature and carried
// over from the teacher's scorer (internal/scoring/bm25.go).
const (
	DefaultBM25K1 = 1.2
	DefaultBM25B  = 0.75
)

// BM25 is the standard Okapi BM25 relevance scorer, adapted to this
// module's collector/prepare/score pipeline: corpus statistics are
// gathered per term during preparation instead of being passed in
// directly, and per-document frequency/length are read live off the doc
// iterator's attribute view instead of an explicit (termFreq, docLen)
// argument pair.
type BM25 struct {
	K1 float32
	B  float32
}

// NewBM25 creates a BM25 scorer with the default k1/b parameters.
func NewBM25() *BM25 { return &BM25{K1: DefaultBM25K1, B: DefaultBM25B} }

func (s *BM25) BucketSize() int { return 4 } // one float32

type bm25Stats struct {
	docCount     uint64
	sumFieldLen  uint64
	docFreq      uint64
	totalFieldFr uint64
}

type bm25Collector struct {
	stats bm25Stats
}

func (s *BM25) PrepareCollector() Collector { return &bm25Collector{} }

func (c *bm25Collector) CollectField(liveDocs, sumFieldLength uint64) {
	c.stats.docCount += liveDocs
	c.stats.sumFieldLen += sumFieldLength
}

func (c *bm25Collector) CollectTerm(docFreq, totalTermFreq uint64) {
	c.stats.docFreq += docFreq
	c.stats.totalFieldFr += totalTermFreq
}

func (c *bm25Collector) Finish() Stats { return c.stats }

// idf computes ln(1 + (N - n + 0.5) / (n + 0.5)).
func idf(docCount, docFreq uint64) float32 {
	n := float64(docFreq)
	N := float64(docCount)
	return float32(math.Log(1 + (N-n+0.5)/(n+0.5)))
}

type bm25Scorer struct {
	k1, b     float32
	idf       float32
	avgDocLen float32
	attrs     attribute.View
}

func (s *BM25) PrepareScorer(seg *segment.Reader, field string, stats Stats, attrs attribute.View) (PreparedScorer, error) {
	st, ok := stats.(bm25Stats)
	if !ok {
		return nil, fmt.Errorf("order: BM25.PrepareScorer got unexpected stats type %T", stats)
	}
	avgDocLen := float32(1)
	if st.docCount > 0 {
		avgDocLen = float32(st.sumFieldLen) / float32(st.docCount)
	}
	return &bm25Scorer{
		k1:        s.K1,
		b:         s.B,
		idf:       idf(st.docCount, st.docFreq),
		avgDocLen: avgDocLen,
		attrs:     attrs,
	}, nil
}

func (s *bm25Scorer) Score(buf []byte) {
	freq := attribute.ViewGet(s.attrs, attribute.FrequencyKey)
	norm := attribute.ViewGet(s.attrs, attribute.NormKey)

	tf := float32(1)
	if freq != nil {
		tf = float32(freq.Value)
	}
	docNorm := attribute.DefaultNorm
	if norm != nil {
		docNorm = norm.Value
	}
	// docNorm is field-length normalized to 1.0 at the average; recover
	// an effective length proxy the way the teacher's fixed dl/avgdl
	// ratio does, by treating docNorm itself as that ratio.
	numerator := tf * (s.k1 + 1)
	denominator := tf + s.k1*(1-s.b+s.b*docNorm)
	var score float32
	if denominator != 0 {
		score = s.idf * numerator / denominator
	}
	putFloat32(buf, score)
}

// Less orders ascending by decoded score.
func (s *BM25) Less(a, b []byte) bool {
	return getFloat32(a) < getFloat32(b)
}

func putFloat32(buf []byte, v float32) {
	bits := math.Float32bits(v)
	buf[0] = byte(bits)
	buf[1] = byte(bits >> 8)
	buf[2] = byte(bits >> 16)
	buf[3] = byte(bits >> 24)
}

func getFloat32(buf []byte) float32 {
	bits := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	return math.Float32frombits(bits)
}
