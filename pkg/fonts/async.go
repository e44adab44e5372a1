package fonts

import "context"

// ListAsync runs List on its own goroutine and delivers the result over
// the returned channel, which is closed after at most one send. The
// delivered slice is fully owned by the receiver and holds no native
// handles, so it is safe to hand to another execution context. If ctx
// is done before the result is consumed, the channel closes without a
// send.
func (e *Enumerator) ListAsync(ctx context.Context) <-chan []Font {
	out := make(chan []Font)
	go func() {
		defer close(out)
		fonts := e.List()
		select {
		case out <- fonts:
		case <-ctx.Done():
		}
	}()
	return out
}
