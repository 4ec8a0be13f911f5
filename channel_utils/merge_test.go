package channel_utils

import (
	"sort"
	"testing"

	"github.com/panjf2000/ants/v2"
)

func TestMergeChannels(t *testing.T) {
	workerPool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	first := make(chan int, 3)
	second := make(chan int, 3)
	for _, v := range []int{1, 3, 5} {
		first <- v
	}
	for _, v := range []int{2, 4} {
		second <- v
	}
	close(first)
	close(second)

	merged, err := MergeChannels(workerPool, first, second)
	if err != nil {
		t.Fatal("Failed to merge channels:", err)
	}

	var got []int
	for v := range merged {
		got = append(got, v)
	}
	sort.Ints(got)

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected merged values: %v", got)
		}
	}
}

func TestMergeChannels_NoInputs(t *testing.T) {
	workerPool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	defer workerPool.Release()

	merged, err := MergeChannels[int](workerPool)
	if err != nil {
		t.Fatal("Failed to merge channels:", err)
	}

	if _, open := <-merged; open {
		t.Fatal("merged channel must close with no inputs")
	}
}
