package polyhedron

// Symmetric resolves the naming convention behind the symmetry pruning
// "auto" mode: antiprisms (a*), prisms (p*), regular-family solids (r*),
// and the first eleven semiregular solids (s01..s11) admit a mirror
// symmetry across the plane through a base edge; other names do not.
func Symmetric(name string) bool {
	if name == "" {
		return false
	}
	switch name[0] {
	case 'a', 'p', 'r':
		return true
	case 's':
		if len(name) < 3 {
			return false
		}
		d1, d2 := name[1], name[2]
		if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
			return false
		}
		num := int(d1-'0')*10 + int(d2-'0')
		return num >= 1 && num <= 11
	default:
		return false
	}
}
