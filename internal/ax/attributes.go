package ax

// Attribute names used by the engine and renderer.
const (
	AttrRole            = "AXRole"
	AttrSubrole         = "AXSubrole"
	AttrRoleDescription = "AXRoleDescription"
	AttrTitle           = "AXTitle"
	AttrValue           = "AXValue"
	AttrDescription     = "AXDescription"
	AttrIdentifier      = "AXIdentifier"
	AttrEnabled         = "AXEnabled"
	AttrPosition        = "AXPosition"
	AttrSize            = "AXSize"
	AttrChildren        = "AXChildren"
)

// CuratedAttributes is the fixed, ordered list read in curated mode.
var CuratedAttributes = []string{
	AttrRole,
	AttrSubrole,
	AttrRoleDescription,
	AttrTitle,
	AttrValue,
	AttrDescription,
	AttrIdentifier,
	AttrEnabled,
	AttrPosition,
	AttrSize,
}

var curatedIndex = func() map[string]int {
	m := make(map[string]int, len(CuratedAttributes))
	for i, name := range CuratedAttributes {
		m[name] = i
	}
	return m
}()
