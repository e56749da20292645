package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func закрывает один ресурс.
type Func func(ctx context.Context) error

type resource struct {
	name  string
	close Func
}

// Closer закрывает зарегистрированные ресурсы в обратном порядке (LIFO).
// Ресурсы, не успевшие закрыться до отмены контекста, закрываются
// параллельно с отдельным таймаутом.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	resources     []resource
	forcedTimeout time.Duration
}

func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует ресурс; name попадает в текст ошибки.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, close: f})
}

// Close выполняется один раз; повторные вызовы возвращают nil.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		resources := c.resources
		c.mu.Unlock()

		pending, failures := closeInOrder(ctx, resources)
		if len(pending) > 0 {
			failures = append(failures, c.closeForced(pending)...)
			err = fmt.Errorf("shutdown interrupted, %d/%d resources closed gracefully:\n%s",
				len(resources)-len(pending), len(resources), strings.Join(failures, "\n"))
			return
		}

		if len(failures) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(failures, "\n"))
		}
	})

	return err
}

// closeInOrder возвращает ресурсы, до которых не дошла очередь из-за отмены ctx.
func closeInOrder(ctx context.Context, resources []resource) ([]resource, []string) {
	var failures []string
	for i := len(resources) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return resources[:i+1], failures
		}

		res := resources[i]
		done := make(chan error, 1)
		go func() { done <- res.close(ctx) }()

		select {
		case err := <-done:
			if err != nil {
				failures = append(failures, fmt.Sprintf("[!] %s: %v", res.name, err))
			}
		case <-ctx.Done():
			return resources[:i+1], failures
		}
	}

	return nil, failures
}

func (c *Closer) closeForced(resources []resource) []string {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []string
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, res := range resources {
		res := res
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := res.close(ctx); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("[FORCED] %s: %v", res.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return failures
}
