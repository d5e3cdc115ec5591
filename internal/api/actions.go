package api

import (
	"encoding/base64"
	"strconv"

	"github.com/landscapectl/landscapectl/internal/constants"
	"github.com/landscapectl/landscapectl/internal/request"
)

// Action is one remote Landscape operation with its own parameter shape.
// The set of implementations below is closed: the client exposes one typed
// method per variant, so an unsupported action cannot reach the signer.
type Action interface {
	// Name is the action parameter sent to the service.
	Name() string
	// Params builds the action-specific parameters, before signing metadata.
	Params() *request.Values
}

// GetComputers lists registered hosts, optionally filtered by a query
// expression understood by the service (e.g. "tag:web").
type GetComputers struct {
	Query           string
	Limit           int
	Offset          int
	WithAnnotations bool
}

// Name implements Action.
func (GetComputers) Name() string { return "GetComputers" }

// Params implements Action.
func (a GetComputers) Params() *request.Values {
	v := request.NewValues()
	if a.Query != "" {
		v.Set("query", a.Query)
	}
	if a.Limit > 0 {
		v.Set("limit", strconv.Itoa(a.Limit))
	}
	if a.Offset > 0 {
		v.Set("offset", strconv.Itoa(a.Offset))
	}
	if a.WithAnnotations {
		v.Set("with_annotations", "true")
	}
	return v
}

// GetScripts lists all stored scripts. The service has no way to query a
// single script by name; callers filter the full listing.
type GetScripts struct {
	Limit  int
	Offset int
}

// Name implements Action.
func (GetScripts) Name() string { return "GetScripts" }

// Params implements Action.
func (a GetScripts) Params() *request.Values {
	v := request.NewValues()
	if a.Limit > 0 {
		v.Set("limit", strconv.Itoa(a.Limit))
	}
	if a.Offset > 0 {
		v.Set("offset", strconv.Itoa(a.Offset))
	}
	return v
}

// ExecuteScript runs a stored script on every host matching the query.
type ExecuteScript struct {
	ScriptID int
	Query    string
	// Username overrides the account the script runs as. Optional.
	Username string
	// TimeLimit caps execution in seconds. Optional.
	TimeLimit int
}

// Name implements Action.
func (ExecuteScript) Name() string { return "ExecuteScript" }

// Params implements Action.
func (a ExecuteScript) Params() *request.Values {
	v := request.NewValues()
	v.Set("script_id", strconv.Itoa(a.ScriptID))
	v.Set("query", a.Query)
	if a.Username != "" {
		v.Set("username", a.Username)
	}
	if a.TimeLimit > 0 {
		v.Set("time_limit", strconv.Itoa(a.TimeLimit))
	}
	return v
}

// CreateScriptAttachment uploads a file and attaches it to a script. The
// service expects the name and base64 content joined in a single parameter.
type CreateScriptAttachment struct {
	ScriptID int
	Filename string
	Content  []byte
}

// Name implements Action.
func (CreateScriptAttachment) Name() string { return "CreateScriptAttachment" }

// Params implements Action.
func (a CreateScriptAttachment) Params() *request.Values {
	v := request.NewValues()
	v.Set("script_id", strconv.Itoa(a.ScriptID))
	v.Set("file", a.Filename+constants.AttachmentSeparator+base64.StdEncoding.EncodeToString(a.Content))
	return v
}

// RemoveScriptAttachment detaches a file from a script by name.
type RemoveScriptAttachment struct {
	ScriptID int
	Filename string
}

// Name implements Action.
func (RemoveScriptAttachment) Name() string { return "RemoveScriptAttachment" }

// Params implements Action.
func (a RemoveScriptAttachment) Params() *request.Values {
	v := request.NewValues()
	v.Set("script_id", strconv.Itoa(a.ScriptID))
	v.Set("filename", a.Filename)
	return v
}
