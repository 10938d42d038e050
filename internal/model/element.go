package model

// Element is one node of an inspected accessibility tree, ready for YAML or
// JSON output.
type Element struct {
	Depth           int               `yaml:"depth"                      json:"depth"`
	Role            string            `yaml:"role,omitempty"             json:"role,omitempty"`
	RoleDescription string            `yaml:"role_description,omitempty" json:"role_description,omitempty"`
	Title           string            `yaml:"title,omitempty"            json:"title,omitempty"`
	Value           string            `yaml:"value,omitempty"            json:"value,omitempty"`
	Attributes      map[string]string `yaml:"attributes,omitempty"       json:"attributes,omitempty"`
	Children        []Element         `yaml:"children,omitempty"         json:"children,omitempty"`
}
