package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landscapectl/landscapectl/internal/api"
)

func strPtr(s string) *string {
	return &s
}

func TestHostsService_ListHosts(t *testing.T) {
	computers := []api.Computer{
		{
			ID:                 10,
			Title:              strPtr("web server"),
			Hostname:           strPtr("web-01"),
			Distribution:       strPtr("24.04"),
			LastPingTime:       strPtr("2026-08-26T10:00:00Z"),
			RebootRequiredFlag: true,
		},
		{
			ID:       11,
			Hostname: strPtr("db-01"),
		},
	}

	mockClient := &mockClientInterface{
		getComputersFunc: func(_ context.Context, action api.GetComputers) ([]api.Computer, error) {
			assert.Equal(t, "tag:web", action.Query)
			assert.Equal(t, 25, action.Limit)
			return computers, nil
		},
	}
	mockOutput := &mockOutputInterface{}

	service := NewHostsService(mockClient, mockOutput)
	err := service.ListHosts(context.Background(), api.GetComputers{Query: "tag:web", Limit: 25}, false)
	require.NoError(t, err)

	tables := mockOutput.methodCalls("Table")
	require.Len(t, tables, 1)
	rows, ok := tables[0].args[1].([][]string)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"10", "web server", "24.04", "2026-08-26T10:00:00Z", "yes"}, rows[0])
	assert.Equal(t, []string{"11", "db-01", "", "", ""}, rows[1])
	assert.Len(t, mockOutput.methodCalls("Successf"), 1)
}

func TestHostsService_ListHosts_JSON(t *testing.T) {
	computers := []api.Computer{{ID: 10, Hostname: strPtr("web-01")}}

	mockClient := &mockClientInterface{
		getComputersFunc: func(_ context.Context, _ api.GetComputers) ([]api.Computer, error) {
			return computers, nil
		},
	}
	mockOutput := &mockOutputInterface{}

	service := NewHostsService(mockClient, mockOutput)
	err := service.ListHosts(context.Background(), api.GetComputers{}, true)
	require.NoError(t, err)

	jsonCalls := mockOutput.methodCalls("JSON")
	require.Len(t, jsonCalls, 1)
	assert.Equal(t, computers, jsonCalls[0].args[0])
	assert.Empty(t, mockOutput.methodCalls("Table"))
}

func TestHostsService_ListHosts_Empty(t *testing.T) {
	mockClient := &mockClientInterface{
		getComputersFunc: func(_ context.Context, _ api.GetComputers) ([]api.Computer, error) {
			return []api.Computer{}, nil
		},
	}
	mockOutput := &mockOutputInterface{}

	service := NewHostsService(mockClient, mockOutput)
	err := service.ListHosts(context.Background(), api.GetComputers{}, false)
	require.NoError(t, err)

	assert.Len(t, mockOutput.methodCalls("Warningf"), 1)
	assert.Empty(t, mockOutput.methodCalls("Table"))
}

func TestHostsService_ListHosts_Error(t *testing.T) {
	mockClient := &mockClientInterface{
		getComputersFunc: func(_ context.Context, _ api.GetComputers) ([]api.Computer, error) {
			return nil, errors.New("service unavailable")
		},
	}
	mockOutput := &mockOutputInterface{}

	service := NewHostsService(mockClient, mockOutput)
	err := service.ListHosts(context.Background(), api.GetComputers{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list hosts")
	assert.Contains(t, err.Error(), "service unavailable")
}
