package segment

import "strconv"

// FilePath renders the on-disk path for one segment file of a relation.
// File number 0 is the relation's base file and carries no suffix; every
// other file is named by its linear number: "<base>.<n>".
func FilePath(base string, n FileNumber) string {
	if n == 0 {
		return base
	}
	return base + "." + strconv.Itoa(int(n))
}
