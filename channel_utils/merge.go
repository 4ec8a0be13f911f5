package channel_utils

import (
	"sync"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
)

// MergeChannels fans the given channels into one. The merged channel closes
// once every input channel has closed. Draining happens on the worker pool;
// a submit failure is returned immediately and the merged channel is closed
// after the drains that did start finish.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	merged := make(chan T)

	var wg sync.WaitGroup
	drain := func(ch <-chan T) {
		defer wg.Done()
		for val := range ch {
			merged <- val
		}
	}

	var submitErr error
	for _, ch := range channels {
		ch := ch
		wg.Add(1)
		if err := workerPool.Submit(func() { drain(ch) }); err != nil {
			wg.Done()
			submitErr = err
			break
		}
	}

	go func() {
		wg.Wait()
		close(merged)
	}()

	return merged, submitErr
}
