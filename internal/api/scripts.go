package api

// Creator identifies the Landscape account that owns a script.
type Creator struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Script is a stored script record as returned by GetScripts.
type Script struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Username    string   `json:"username"`
	TimeLimit   int      `json:"time_limit"`
	Attachments []string `json:"attachments"`
	Creator     Creator  `json:"creator"`
	AccessGroup string   `json:"access_group"`
}

// Activity is the server-side activity record created when an action with
// deferred effects (such as ExecuteScript) is accepted.
type Activity struct {
	ID           int     `json:"id"`
	ComputerID   *string `json:"computer_id"`
	CreationTime string  `json:"creation_time"`
	Creator      Creator `json:"creator"`
	ParentID     *string `json:"parent_id"`
	Summary      string  `json:"summary"`
	Type         string  `json:"type"`
}
