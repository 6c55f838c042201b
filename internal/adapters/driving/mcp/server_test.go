package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil query service returns error", func(t *testing.T) {
		ports := &Ports{Extract: &mockExtractService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingQueryService)
	})

	t.Run("nil extract service returns error", func(t *testing.T) {
		ports := &Ports{Query: &mockQueryService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingExtractService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Query:   &mockQueryService{},
			Extract: &mockExtractService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("query and extract are required", func(t *testing.T) {
		err := (&Ports{}).Validate()
		assert.ErrorIs(t, err, ErrMissingQueryService)
	})

	t.Run("tables is optional", func(t *testing.T) {
		ports := &Ports{
			Query:   &mockQueryService{},
			Extract: &mockExtractService{},
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Query:   &mockQueryService{},
			Extract: &mockExtractService{},
			Tables:  &mockTableService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
