// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при завершении приложения.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer обеспечивает потокобезопасное закрытие ресурсов.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []Func
}

// New создает новый экземпляр Closer.
func New() *Closer {
	return &Closer{}
}

// Add добавляет функцию в список закрытия.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close запускает закрытие всех зарегистрированных функций в порядке LIFO.
// Отмена контекста прерывает обход; уже начатая функция довершается сама.
// Повторные вызовы Close ничего не делают.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var msgs []string
		for i := len(funcs) - 1; i >= 0; i-- {
			if ctxErr := ctx.Err(); ctxErr != nil {
				msgs = append(msgs, fmt.Sprintf("[!] shutdown interrupted: %v, %d func(s) skipped", ctxErr, i+1))
				break
			}
			if fErr := funcs[i](ctx); fErr != nil {
				msgs = append(msgs, fmt.Sprintf("[!] %v", fErr))
			}
		}

		if len(msgs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
		}
	})

	return err
}
