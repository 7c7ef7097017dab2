package plugins

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError_WrapsCause(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := &LoadError{Path: "/plugins/missing.so", Err: cause}

	assert.Contains(t, err.Error(), "/plugins/missing.so")
	assert.Contains(t, err.Error(), "no such file or directory")
	assert.ErrorIs(t, err, cause)
}

func TestSymbolResolutionError_WrapsCause(t *testing.T) {
	cause := errors.New("symbol not found")
	err := &SymbolResolutionError{Path: "/plugins/bare.so", Symbol: FactorySymbol, Err: cause}

	assert.Contains(t, err.Error(), FactorySymbol)
	assert.Contains(t, err.Error(), "/plugins/bare.so")
	assert.ErrorIs(t, err, cause)
}
