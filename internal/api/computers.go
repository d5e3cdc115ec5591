package api

// Computer is a registered host record as returned by GetComputers. Most
// fields are optional: the service omits what a host has never reported.
type Computer struct {
	ID                    int               `json:"id"`
	Title                 *string           `json:"title"`
	Hostname              *string           `json:"hostname"`
	Comment               *string           `json:"comment"`
	Distribution          *string           `json:"distribution"`
	AccessGroup           *string           `json:"access_group"`
	Tags                  []string          `json:"tags,omitempty"`
	TotalMemory           *int              `json:"total_memory"`
	TotalSwap             *int              `json:"total_swap"`
	LastPingTime          *string           `json:"last_ping_time"`
	LastExchangeTime      *string           `json:"last_exchange_time"`
	RebootRequiredFlag    bool              `json:"reboot_required_flag"`
	UpdateManagerPrompt   *string           `json:"update_manager_prompt"`
	ContainerInfo         *string           `json:"container_info"`
	VMInfo                *string           `json:"vm_info"`
	Annotations           map[string]string `json:"annotations,omitempty"`
	CloudInstanceMetadata map[string]string `json:"cloud_instance_metadata,omitempty"`
}

// DisplayName returns the best human-readable identifier for the host.
func (c *Computer) DisplayName() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	if c.Hostname != nil && *c.Hostname != "" {
		return *c.Hostname
	}
	return ""
}
