package ckms

import (
	"testing"

	"github.com/hupe1980/quantgo/testutil"
)

func BenchmarkInsert(b *testing.B) {
	rng := testutil.NewRNG(0xDEADBEEF)
	values := rng.ShuffledInt64s(1 << 20)

	s := New[int64](nil, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(values[i&(len(values)-1)])
	}
}

func BenchmarkInsertBatch(b *testing.B) {
	rng := testutil.NewRNG(0xDEADBEEF)
	values := rng.ShuffledInt64s(4096)

	s := New[int64](nil, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InsertBatch(values)
	}
}

func BenchmarkQuery(b *testing.B) {
	rng := testutil.NewRNG(0xDEADBEEF)

	s := New[int64](nil, 0)
	for _, v := range rng.ShuffledInt64s(1 << 20) {
		s.Insert(v)
	}
	s.Flush()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Query(0.99); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlush(b *testing.B) {
	rng := testutil.NewRNG(0xDEADBEEF)
	values := rng.ShuffledInt64s(4096)

	s := New[int64](nil, 8192)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.InsertBatch(values[:2048])
		b.StartTimer()

		s.Flush()
	}
}
