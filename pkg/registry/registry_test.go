package registry

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linktime/pkg/errors"
)

// Greeter is a plug-in family used by the tests in this file.
type Greeter interface {
	Greet() string
}

type english struct{ calls int }

func (e *english) Greet() string {
	e.calls++
	return "hello"
}

func (e *english) Name() string { return "english" }
func (e *english) Description() string {
	return "Greets in English"
}

type french struct{}

func (f *french) Greet() string { return "bonjour" }

// notAGreeter has no Greet method.
type notAGreeter struct{}

func TestNewRegistrar(t *testing.T) {
	t.Run("constructs_zero_value", func(t *testing.T) {
		reg, err := NewRegistrar[Greeter, english]()
		require.NoError(t, err)

		assert.Equal(t, reflect.TypeOf(&english{}), reg.Type())
		assert.Equal(t, "hello", reg.Plugin().Greet())
	})

	t.Run("same_instance_every_call", func(t *testing.T) {
		reg, err := NewRegistrar[Greeter, english]()
		require.NoError(t, err)

		first := reg.Plugin()
		first.Greet()
		second := reg.Plugin()

		assert.Same(t, first.(*english), second.(*english))
		assert.Equal(t, 1, second.(*english).calls)
	})

	t.Run("rejects_contract_mismatch", func(t *testing.T) {
		reg, err := NewRegistrar[Greeter, notAGreeter]()

		assert.Nil(t, reg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrContractMismatch))
		assert.Contains(t, err.Error(), "*registry.notAGreeter does not implement registry.Greeter")
	})
}

func TestRegistryAdd(t *testing.T) {
	r := New[Greeter]()

	en, err := NewRegistrar[Greeter, english]()
	require.NoError(t, err)
	fr, err := NewRegistrar[Greeter, french]()
	require.NoError(t, err)

	t.Run("appends_in_order", func(t *testing.T) {
		require.NoError(t, r.Add(en))
		require.NoError(t, r.Add(fr))

		plugins := r.Plugins()
		require.Len(t, plugins, 2)
		assert.Equal(t, "hello", plugins[0].Greet())
		assert.Equal(t, "bonjour", plugins[1].Greet())
	})

	t.Run("rejects_duplicate_type", func(t *testing.T) {
		again, err := NewRegistrar[Greeter, english]()
		require.NoError(t, err)

		err = r.Add(again)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("rejects_nil", func(t *testing.T) {
		err := r.Add(nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestRegistryCapacity(t *testing.T) {
	r := New[Greeter](WithCapacity(1))

	en, _ := NewRegistrar[Greeter, english]()
	fr, _ := NewRegistrar[Greeter, french]()

	require.NoError(t, r.Add(en))
	err := r.Add(fr)

	assert.True(t, errors.IsErrorCode(err, errors.ErrStorageExhausted))
	assert.Equal(t, 1, r.Len())
}

func TestRegistryEmpty(t *testing.T) {
	r := New[Greeter]()

	plugins := r.Plugins()
	assert.NotNil(t, plugins)
	assert.Empty(t, plugins)
	assert.Empty(t, r.Registrars())
	assert.Equal(t, FamilyInfo{
		Family:  "registry.Greeter",
		Path:    "github.com/arthur-debert/linktime/pkg/registry.Greeter",
		Plugins: []PluginInfo{},
	}, r.Info())
}

func TestRegistryInfo(t *testing.T) {
	r := New[Greeter]()
	en, _ := NewRegistrar[Greeter, english]()
	fr, _ := NewRegistrar[Greeter, french]()
	require.NoError(t, r.Add(en))
	require.NoError(t, r.Add(fr))

	info := r.Info()

	assert.Equal(t, "registry.Greeter", info.Family)
	assert.Equal(t, []PluginInfo{
		{Type: "*registry.english", Name: "english", Description: "Greets in English"},
		{Type: "*registry.french"},
	}, info.Plugins)
}

func TestRegistryResultsAreCopies(t *testing.T) {
	r := New[Greeter]()
	en, _ := NewRegistrar[Greeter, english]()
	require.NoError(t, r.Add(en))

	plugins := r.Plugins()
	plugins[0] = nil
	regs := r.Registrars()
	regs[0] = nil

	assert.NotNil(t, r.Plugins()[0])
	assert.NotNil(t, r.Registrars()[0])
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := New[Greeter]()
	en, _ := NewRegistrar[Greeter, english]()
	fr, _ := NewRegistrar[Greeter, french]()
	require.NoError(t, r.Add(en))
	require.NoError(t, r.Add(fr))

	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if got := len(r.Plugins()); got != 2 {
					t.Errorf("Plugins() returned %d entries, want 2", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPlugins(b *testing.B) {
	r := New[Greeter]()
	en, _ := NewRegistrar[Greeter, english]()
	_ = r.Add(en)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Plugins()
	}
}

func ExampleRegistry() {
	r := New[Greeter]()

	en, _ := NewRegistrar[Greeter, english]()
	fr, _ := NewRegistrar[Greeter, french]()
	_ = r.Add(en)
	_ = r.Add(fr)

	for _, g := range r.Plugins() {
		fmt.Println(g.Greet())
	}

	// Output:
	// hello
	// bonjour
}

func TestFamilyPath(t *testing.T) {
	assert.Equal(t, "github.com/arthur-debert/linktime/pkg/registry.Greeter", familyPath[Greeter]())
	assert.Equal(t, "registry.Greeter", familyName[Greeter]())
	assert.Equal(t, "func() string", familyPath[func() string]())
	assert.Equal(t, "*registry.english", familyPath[*english]())
}
