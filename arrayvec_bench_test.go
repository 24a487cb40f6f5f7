package arrayvec_test

import (
	"testing"

	"github.com/hupe1980/arrayvec"
)

func BenchmarkVec_Push(b *testing.B) {
	v := arrayvec.New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.IsFull() {
			v.Clear()
		}
		v.Push(i)
	}
}

func BenchmarkVec_InsertFront(b *testing.B) {
	v := arrayvec.New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.IsFull() {
			v.Clear()
		}
		v.Insert(0, i)
	}
}

func BenchmarkVec_SwapRemove(b *testing.B) {
	v := arrayvec.New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.IsEmpty() {
			b.StopTimer()
			for j := range 1024 {
				v.Push(j)
			}
			b.StartTimer()
		}
		v.SwapRemove(0)
	}
}

func BenchmarkVec_Drain(b *testing.B) {
	v := arrayvec.New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v.Clear()
		for j := range 1024 {
			v.Push(j)
		}
		b.StartTimer()

		d := v.Drain(256, 768)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
}
