package theme

import "image/color"

// Role is a syntax token kind.
type Role string

const (
	RoleKeyword    Role = "keyword"
	RoleString     Role = "string"
	RoleComment    Role = "comment"
	RoleFunction   Role = "function"
	RoleClass      Role = "class"
	RoleVariable   Role = "variable"
	RoleParameter  Role = "parameter"
	RoleConstant   Role = "constant"
	RoleNumber     Role = "number"
	RoleAnnotation Role = "annotation"
	RoleField      Role = "field"
	RoleType       Role = "type"
)

// AllRoles lists every syntax role a palette carries.
var AllRoles = []Role{
	RoleKeyword, RoleString, RoleComment, RoleFunction, RoleClass, RoleVariable,
	RoleParameter, RoleConstant, RoleNumber, RoleAnnotation, RoleField, RoleType,
}

// AttributeMap maps a syntax role to the editor scheme attribute holding its
// foreground color.
type AttributeMap map[Role]string

// IsRole reports whether name is one of AllRoles.
func IsRole(name string) bool {
	for _, r := range AllRoles {
		if string(r) == name {
			return true
		}
	}
	return false
}

// WithOverrides returns a copy of m where every role in overrides maps to
// the given attribute instead.
func (m AttributeMap) WithOverrides(overrides map[string]string) AttributeMap {
	out := make(AttributeMap, len(m)+len(overrides))
	for role, attr := range m {
		out[role] = attr
	}
	for role, attr := range overrides {
		out[Role(role)] = attr
	}
	return out
}

// DefaultAttributeMap is the attribute mapping used for IntelliJ schemes.
var DefaultAttributeMap = AttributeMap{
	RoleKeyword:    "DEFAULT_KEYWORD",
	RoleString:     "DEFAULT_STRING",
	RoleComment:    "DEFAULT_BLOCK_COMMENT",
	RoleFunction:   "DEFAULT_FUNCTION_CALL",
	RoleClass:      "DEFAULT_CLASS_NAME",
	RoleVariable:   "DEFAULT_LOCAL_VARIABLE",
	RoleParameter:  "DEFAULT_PARAMETER",
	RoleConstant:   "DEFAULT_CONSTANT",
	RoleNumber:     "DEFAULT_NUMBER",
	RoleAnnotation: "DEFAULT_METADATA",
	RoleField:      "DEFAULT_INSTANCE_FIELD",
	RoleType:       "TYPE_PARAMETER_NAME_ATTRIBUTES",
}

// SyntaxPalette holds one foreground color per syntax role.
type SyntaxPalette map[Role]color.RGBA

// Color returns the color for role, or NeutralGray when the palette has none.
func (p SyntaxPalette) Color(role Role) color.RGBA {
	if c, ok := p[role]; ok {
		return c
	}
	return NeutralGray
}

// ExtractPalette resolves every role in AllRoles against the scheme. Roles
// whose attribute or foreground cannot be found resolve to NeutralGray, so
// the result is always complete.
func ExtractPalette(s *Scheme, m AttributeMap) SyntaxPalette {
	p := make(SyntaxPalette, len(AllRoles))
	for _, role := range AllRoles {
		p[role] = NeutralGray
		attr, ok := m[role]
		if !ok {
			continue
		}
		if c, ok := s.Foreground(attr); ok {
			p[role] = c
		}
	}
	return p
}
