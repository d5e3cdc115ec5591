package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptDecode(t *testing.T) {
	body := `{
		"id": 42,
		"title": "nightly-backup",
		"username": "root",
		"time_limit": 300,
		"attachments": ["backup.conf", "exclude.list"],
		"creator": {"id": 1, "name": "Alice", "email": "alice@example.com"},
		"access_group": "global"
	}`

	var script Script
	require.NoError(t, json.Unmarshal([]byte(body), &script))

	assert.Equal(t, 42, script.ID)
	assert.Equal(t, "nightly-backup", script.Title)
	assert.Equal(t, "root", script.Username)
	assert.Equal(t, 300, script.TimeLimit)
	assert.Equal(t, []string{"backup.conf", "exclude.list"}, script.Attachments)
	assert.Equal(t, "Alice", script.Creator.Name)
	assert.Equal(t, "global", script.AccessGroup)
}

func TestActivityDecode(t *testing.T) {
	body := `{
		"id": 9000,
		"computer_id": null,
		"creation_time": "2024-03-15T10:30:00Z",
		"creator": {"id": 1, "name": "Alice", "email": "alice@example.com"},
		"parent_id": null,
		"summary": "Run script: nightly-backup",
		"type": "ActivityGroup"
	}`

	var activity Activity
	require.NoError(t, json.Unmarshal([]byte(body), &activity))

	assert.Equal(t, 9000, activity.ID)
	assert.Nil(t, activity.ComputerID)
	assert.Equal(t, "Run script: nightly-backup", activity.Summary)
	assert.Equal(t, "ActivityGroup", activity.Type)
}

func TestComputerDecode(t *testing.T) {
	body := `{
		"id": 101,
		"title": "web-01",
		"hostname": "web-01.internal",
		"comment": null,
		"distribution": "22.04",
		"access_group": "global",
		"tags": ["web", "production"],
		"total_memory": 16384,
		"total_swap": 4096,
		"last_ping_time": "2024-03-15T10:29:00Z",
		"reboot_required_flag": true,
		"cloud_instance_metadata": {"instance-id": "i-0abc"}
	}`

	var computer Computer
	require.NoError(t, json.Unmarshal([]byte(body), &computer))

	assert.Equal(t, 101, computer.ID)
	assert.Equal(t, "web-01", computer.DisplayName())
	assert.Nil(t, computer.Comment)
	assert.Equal(t, []string{"web", "production"}, computer.Tags)
	assert.True(t, computer.RebootRequiredFlag)
	assert.Equal(t, "i-0abc", computer.CloudInstanceMetadata["instance-id"])
}

func TestComputerDisplayName(t *testing.T) {
	title := "web-01"
	hostname := "web-01.internal"
	empty := ""

	tests := []struct {
		name     string
		computer Computer
		want     string
	}{
		{name: "title preferred", computer: Computer{Title: &title, Hostname: &hostname}, want: "web-01"},
		{name: "hostname fallback", computer: Computer{Hostname: &hostname}, want: "web-01.internal"},
		{name: "empty title skipped", computer: Computer{Title: &empty, Hostname: &hostname}, want: "web-01.internal"},
		{name: "nothing reported", computer: Computer{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.computer.DisplayName())
		})
	}
}

func TestErrorEnvelopeDecode(t *testing.T) {
	body := `{"error": "InvalidCredentials", "message": "bad key"}`

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))

	assert.Equal(t, "InvalidCredentials", envelope.Code)
	assert.Equal(t, "bad key", envelope.Message)
}
