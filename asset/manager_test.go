package asset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerFiresOnceAfterAllItems(t *testing.T) {
	manager := NewManager(nil)
	loads := 0
	var progress []string
	manager.OnLoad = func() {
		loads++
	}
	manager.OnProgress = func(name string, loaded, total int) {
		progress = append(progress, name)
		assert.Equal(t, 2, total)
	}

	manager.ItemStart("witch")
	manager.ItemStart("bear")

	manager.ItemEnd("witch")
	assert.Equal(t, 0, loads)

	manager.ItemEnd("bear")
	assert.Equal(t, 1, loads)

	// repeated or unknown completions do not fire again
	manager.ItemEnd("bear")
	manager.ItemEnd("unicorn")
	assert.Equal(t, 1, loads)

	loaded, total := manager.Loaded()
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"witch", "bear"}, progress)
}

func TestManagerDuplicateStart(t *testing.T) {
	manager := NewManager(nil)
	loads := 0
	manager.OnLoad = func() {
		loads++
	}

	manager.ItemStart("bear")
	manager.ItemStart("bear")
	manager.ItemEnd("bear")
	assert.Equal(t, 1, loads)

	// the batch is done; late starts are ignored
	manager.ItemStart("witch")
	_, total := manager.Loaded()
	assert.Equal(t, 1, total)
}

func TestManagerFailureBlocksLoad(t *testing.T) {
	manager := NewManager(nil)
	loads := 0
	var failed []string
	manager.OnLoad = func() {
		loads++
	}
	manager.OnError = func(name string, err error) {
		failed = append(failed, name)
	}

	manager.ItemStart("witch")
	manager.ItemStart("bear")
	manager.ItemError("witch", errors.New("404"))
	manager.ItemEnd("bear")

	assert.Equal(t, 0, loads)
	assert.Equal(t, []string{"witch"}, failed)
	assert.True(t, manager.Failed())

	loaded, total := manager.Loaded()
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 2, total)
}

func TestManagerStartCallback(t *testing.T) {
	manager := NewManager(nil)
	var started []int
	manager.OnStart = func(name string, loaded, total int) {
		started = append(started, total)
	}
	manager.ItemStart("witch")
	manager.ItemStart("bear")
	assert.Equal(t, []int{1, 2}, started)
}
