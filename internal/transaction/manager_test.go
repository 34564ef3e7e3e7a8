package transaction

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewManager(t *testing.T) {
	logger := zerolog.Nop()
	manager := NewManager(&logger)
	assert.NotNil(t, manager)
	assert.Equal(t, 0, manager.Len())
}

func TestCommit(t *testing.T) {
	logger := zerolog.Nop()
	manager := NewManager(&logger)

	called := false
	manager.Add("restore link", func() error {
		called = true
		return nil
	})
	assert.Equal(t, 1, manager.Len())

	manager.Commit()
	assert.Equal(t, 0, manager.Len())
	assert.NoError(t, manager.Rollback())
	assert.False(t, called)
}

func TestRollbackOrder(t *testing.T) {
	logger := zerolog.Nop()
	manager := NewManager(&logger)

	var order []string
	for _, name := range []string{"op1", "op2", "op3"} {
		name := name
		manager.Add(name, func() error {
			order = append(order, name)
			return nil
		})
	}

	err := manager.Rollback()
	assert.NoError(t, err)
	assert.Equal(t, []string{"op3", "op2", "op1"}, order)
	assert.Equal(t, 0, manager.Len())
}

func TestRollbackWithErrors(t *testing.T) {
	manager := NewManager(nil)

	err1 := errors.New("error 1")
	err2 := errors.New("error 2")
	ran := 0
	manager.Add("op1", func() error { ran++; return err1 })
	manager.Add("op2", func() error { ran++; return err2 })
	manager.Add("op3", func() error { ran++; return nil })

	err := manager.Rollback()
	assert.Error(t, err)
	assert.ErrorIs(t, err, err1)
	assert.ErrorIs(t, err, err2)
	assert.Contains(t, err.Error(), `rollback "op1"`)
	assert.Equal(t, 3, ran)
	assert.Equal(t, 0, manager.Len())
}

func TestRollbackEmpty(t *testing.T) {
	logger := zerolog.Nop()
	manager := NewManager(&logger)

	assert.NoError(t, manager.Rollback())
}

func TestConcurrentAdd(t *testing.T) {
	logger := zerolog.Nop()
	manager := NewManager(&logger)

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				manager.Add(fmt.Sprintf("op-%d-%d", g, i), func() error { return nil })
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 200, manager.Len())
	assert.NoError(t, manager.Rollback())
	assert.Equal(t, 0, manager.Len())
}
