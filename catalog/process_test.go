package catalog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/catalog"
)

func Test_Process_Catalog_ReturnsSameInstanceOnEveryCall(t *testing.T) {
	// arrange
	process := catalog.NewProcess()

	// act
	first := process.Catalog()
	second := process.Catalog()
	third := process.Catalog()

	// assert
	assert.Same(t, first, second)
	assert.Same(t, first, third)
}

func Test_Process_Catalog_ConcurrentFirstAccess_ReturnsSameInstance(t *testing.T) {
	// arrange
	process := catalog.NewProcess()
	instances := make([]*catalog.Catalog, 50)

	var wg sync.WaitGroup

	// act
	for i := range instances {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = process.Catalog()
		}(i)
	}
	wg.Wait()

	// assert
	for _, instance := range instances {
		assert.Same(t, instances[0], instance)
	}
}

func Test_Process_NewCatalog_FirstConstructionSucceeds(t *testing.T) {
	// arrange
	process := catalog.NewProcess()

	// act
	constructed, err := process.NewCatalog()

	// assert
	require.NoError(t, err)
	assert.Same(t, constructed, process.Catalog(), "accessor should return the directly constructed instance")
}

func Test_Process_NewCatalog_SecondConstructionFailsWithIllegalState(t *testing.T) {
	// arrange
	process := catalog.NewProcess()
	existing := process.Catalog()

	// act
	constructed, err := process.NewCatalog()

	// assert
	assert.ErrorIs(t, err, catalog.ErrIllegalState)
	assert.Nil(t, constructed)
	assert.Same(t, existing, process.Catalog())
}

func Test_Process_Instances_AreIsolated(t *testing.T) {
	// arrange
	one := catalog.NewProcess().Catalog()
	other := catalog.NewProcess().Catalog()

	// act
	one.Add("Clean Code")

	// assert
	assert.NotSame(t, one, other)
	assert.Equal(t, 0, other.Len())
}

func Test_Shared_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, catalog.Shared(), catalog.Shared())
}
