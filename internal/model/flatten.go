package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	Depth           int               `yaml:"depth"                      json:"depth"`
	Role            string            `yaml:"role,omitempty"             json:"role,omitempty"`
	RoleDescription string            `yaml:"role_description,omitempty" json:"role_description,omitempty"`
	Title           string            `yaml:"title,omitempty"            json:"title,omitempty"`
	Value           string            `yaml:"value,omitempty"            json:"value,omitempty"`
	Attributes      map[string]string `yaml:"attributes,omitempty"       json:"attributes,omitempty"`
	Path            string            `yaml:"path"                       json:"path"`
}

// unknownRole stands in for a missing role in path breadcrumbs.
const unknownRole = "unknown"

// FlattenElements converts a tree of elements into a flat list in pre-order.
// Each element gets a path string showing its location in the tree
// using role names joined with " > ".
func FlattenElements(elements []Element) []FlatElement {
	result := []FlatElement{}
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	role := el.Role
	if role == "" {
		role = unknownRole
	}
	currentPath := role
	if parentPath != "" {
		currentPath = parentPath + " > " + role
	}

	*result = append(*result, FlatElement{
		Depth:           el.Depth,
		Role:            el.Role,
		RoleDescription: el.RoleDescription,
		Title:           el.Title,
		Value:           el.Value,
		Attributes:      el.Attributes,
		Path:            currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
